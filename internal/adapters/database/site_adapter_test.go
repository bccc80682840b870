package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/inspectionreport/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/inspectionreport/pkg/errors"
)

func setupMockClient(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return postgres.NewClientFromDB(db), mock
}

func TestSiteAdapter_GetSite(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewSiteAdapter(client)

	rows := sqlmock.NewRows([]string{"id", "name", "address_line1", "address_line2", "city", "postcode", "organization_id"}).
		AddRow("S1", "High Street Kitchen", "1 High Street", "", "Leeds", "LS1 1AA", "O1")

	mock.ExpectQuery(`SELECT .+ FROM "sites" WHERE \("id" = \$1\)`).
		WithArgs("S1").
		WillReturnRows(rows)

	site, err := adapter.GetSite(context.Background(), "S1")

	require.NoError(t, err)
	assert.Equal(t, "High Street Kitchen", site.Name)
	require.NotNil(t, site.OrganizationID)
	assert.Equal(t, "O1", *site.OrganizationID)
	assert.Equal(t, "1 High Street, Leeds, LS1 1AA", site.Address())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSiteAdapter_GetSite_NullOrganization(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewSiteAdapter(client)

	rows := sqlmock.NewRows([]string{"id", "name", "address_line1", "address_line2", "city", "postcode", "organization_id"}).
		AddRow("S1", "Pop-up", "", "", "", "", nil)

	mock.ExpectQuery(`FROM "sites"`).WillReturnRows(rows)

	site, err := adapter.GetSite(context.Background(), "S1")

	require.NoError(t, err)
	assert.Nil(t, site.OrganizationID)
	assert.False(t, site.HasOrganization())
}

func TestSiteAdapter_GetSite_NotFound(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewSiteAdapter(client)

	mock.ExpectQuery(`FROM "sites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address_line1", "address_line2", "city", "postcode", "organization_id"}))

	site, err := adapter.GetSite(context.Background(), "missing")

	require.Error(t, err)
	assert.Nil(t, site)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSiteAdapter_ListOrganizationStaff(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewSiteAdapter(client)

	rows := sqlmock.NewRows([]string{"id", "full_name", "role", "email", "started_at", "active"}).
		AddRow("E1", "Alex Brown", "chef", "alex@example.com", nil, true).
		AddRow("E2", "Sam Green", "server", "", nil, false)

	mock.ExpectQuery(`SELECT .+ FROM "organization_staff" WHERE \("organization_id" = \$1\) ORDER BY "full_name" ASC`).
		WithArgs("O1").
		WillReturnRows(rows)

	staff, err := adapter.ListOrganizationStaff(context.Background(), "O1")

	require.NoError(t, err)
	require.Len(t, staff, 2)
	assert.Equal(t, "Alex Brown", staff[0].FullName)
	assert.True(t, staff[0].Active)
	assert.False(t, staff[1].Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSiteAdapter_ListSiteAccess(t *testing.T) {
	client, mock := setupMockClient(t)
	adapter := NewSiteAdapter(client)

	rows := sqlmock.NewRows([]string{"staff_id", "site_id"}).
		AddRow("E1", "S1").
		AddRow("E2", "S2")

	mock.ExpectQuery(`FROM "site_access" AS "sa" INNER JOIN "organization_staff" AS "os"`).
		WithArgs("O1").
		WillReturnRows(rows)

	access, err := adapter.ListSiteAccess(context.Background(), "O1")

	require.NoError(t, err)
	require.Len(t, access, 2)
	assert.Equal(t, "S2", access[1].SiteID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
