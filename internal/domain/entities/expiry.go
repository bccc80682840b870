package entities

import "time"

// ExpiryStatus classifies a dated certificate or document
type ExpiryStatus string

const (
	ExpiryExpired  ExpiryStatus = "expired"
	ExpiryExpiring ExpiryStatus = "expiring"
	ExpiryValid    ExpiryStatus = "valid"
	ExpiryNone     ExpiryStatus = "no_expiry"
)

// DefaultExpiryWarningDays is how far ahead an expiry counts as expiring
const DefaultExpiryWarningDays = 30

// Label is the human-readable status
func (s ExpiryStatus) Label() string {
	switch s {
	case ExpiryExpired:
		return "Expired"
	case ExpiryExpiring:
		return "Expiring"
	case ExpiryValid:
		return "Valid"
	default:
		return "No expiry"
	}
}

// ClassifyExpiry compares calendar days: before today is expired, within
// warningDays of today (today included) is expiring, anything later is valid.
// A nil expiry is not an error.
func ClassifyExpiry(expiry *time.Time, today time.Time, warningDays int) ExpiryStatus {
	if expiry == nil || expiry.IsZero() {
		return ExpiryNone
	}
	if warningDays < 0 {
		warningDays = DefaultExpiryWarningDays
	}
	day := truncateDay(*expiry, today.Location())
	now := truncateDay(today, today.Location())

	switch {
	case day.Before(now):
		return ExpiryExpired
	case !day.After(now.AddDate(0, 0, warningDays)):
		return ExpiryExpiring
	default:
		return ExpiryValid
	}
}

func truncateDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
