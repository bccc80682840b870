package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
	"github.com/zatekoja/inspectionreport/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/inspectionreport/pkg/errors"
)

// selectAll runs a built select and scans every row into T by db tag.
// The result is never nil.
func selectAll[T any](ctx context.Context, client *postgres.Client, name string, ds *goqu.SelectDataset) ([]T, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to build %s query", name), err)
	}

	rows := []T{}
	if err := client.DBX().SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to query %s", name), err)
	}
	return rows, nil
}

// text selects a nullable text column as an empty string under its bare name
func text(col string) exp.AliasedExpression {
	return textOr(col, "")
}

// textOr selects a nullable text column with a fallback literal
func textOr(col, fallback string) exp.AliasedExpression {
	return goqu.L("COALESCE(?, ?)", goqu.I(col), goqu.L(quote(fallback))).As(bare(col))
}

// flag selects a nullable boolean column as false under its bare name
func flag(col string) exp.AliasedExpression {
	return goqu.L("COALESCE(?, FALSE)", goqu.I(col)).As(bare(col))
}

// count selects a nullable integer column as zero under its bare name
func count(col string) exp.AliasedExpression {
	return goqu.L("COALESCE(?, 0)", goqu.I(col)).As(bare(col))
}

// inSite restricts a dataset to one site
func inSite(ds *goqu.SelectDataset, col, siteID string) *goqu.SelectDataset {
	return ds.Where(goqu.I(col).Eq(siteID))
}

// inWindow restricts a dataset to rows whose col falls in [Start, EndExclusive)
func inWindow(ds *goqu.SelectDataset, col string, window entities.ReportWindow) *goqu.SelectDataset {
	return ds.Where(
		goqu.I(col).Gte(window.Start),
		goqu.I(col).Lt(window.EndExclusive()),
	)
}

func bare(col string) string {
	if i := strings.LastIndex(col, "."); i >= 0 {
		return col[i+1:]
	}
	return col
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
