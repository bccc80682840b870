package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Date formats used throughout the report
const (
	DateFormat     = "02 Jan 2006"
	DateTimeFormat = "02 Jan 2006 15:04"
)

// Placeholder is shown for missing values
const Placeholder = "-"

// FormatDate renders the calendar day of t in loc
func FormatDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return Placeholder
	}
	return in(t, loc).Format(DateFormat)
}

// FormatDateTime renders t to the minute in loc
func FormatDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return Placeholder
	}
	return in(t, loc).Format(DateTimeFormat)
}

// FormatOptionalDate renders a nullable date
func FormatOptionalDate(t *time.Time, loc *time.Location) string {
	if t == nil {
		return Placeholder
	}
	return FormatDate(*t, loc)
}

// FormatPercent renders a ratio already scaled to 0-100 with no decimals
func FormatPercent(v float64) string {
	return decimal.NewFromFloat(v).Round(0).String() + "%"
}

// Percent returns part/total scaled to 0-100, or 0 when total is 0
func Percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(1).
		InexactFloat64()
}

// Humanize turns a snake_case value into sentence case
func Humanize(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", " "))
	if s == "" {
		return Placeholder
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FormatValue renders a plain cell value
func FormatValue(v any, loc *time.Location) string {
	switch t := v.(type) {
	case nil:
		return Placeholder
	case string:
		if strings.TrimSpace(t) == "" {
			return Placeholder
		}
		return t
	case time.Time:
		return FormatDateTime(t, loc)
	case *time.Time:
		if t == nil {
			return Placeholder
		}
		return FormatDateTime(*t, loc)
	case bool:
		if t {
			return "Yes"
		}
		return "No"
	case float64:
		return decimal.NewFromFloat(t).Round(1).String()
	case *string:
		if t == nil {
			return Placeholder
		}
		return FormatValue(*t, loc)
	default:
		return fmt.Sprint(t)
	}
}

func in(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}
