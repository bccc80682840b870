package entities

import (
	"fmt"
	"time"
)

// DateLayout is the wire format of window dates
const DateLayout = "2006-01-02"

// ReportWindow is an inclusive range of calendar days
type ReportWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ParseReportWindow parses two YYYY-MM-DD dates as midnight in loc
func ParseReportWindow(start, end string, loc *time.Location) (ReportWindow, error) {
	if loc == nil {
		loc = time.UTC
	}
	s, err := time.ParseInLocation(DateLayout, start, loc)
	if err != nil {
		return ReportWindow{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := time.ParseInLocation(DateLayout, end, loc)
	if err != nil {
		return ReportWindow{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	return ReportWindow{Start: s, End: e}, nil
}

// Validate checks start <= end and that the window spans at most maxDays days.
// maxDays <= 0 disables the length check.
func (w ReportWindow) Validate(maxDays int) error {
	if w.Start.IsZero() || w.End.IsZero() {
		return fmt.Errorf("start and end dates are required")
	}
	if w.Start.After(w.End) {
		return fmt.Errorf("start date %s is after end date %s", w.Start.Format(DateLayout), w.End.Format(DateLayout))
	}
	if maxDays > 0 && w.Days() > maxDays {
		return fmt.Errorf("report window spans %d days, maximum is %d", w.Days(), maxDays)
	}
	return nil
}

// EndExclusive is midnight after the last included day; queries use [Start, EndExclusive)
func (w ReportWindow) EndExclusive() time.Time {
	return w.End.AddDate(0, 0, 1)
}

// Days is the number of calendar days in the window, both ends included
func (w ReportWindow) Days() int {
	if w.Start.After(w.End) {
		return 0
	}
	return int(civilDay(w.End)-civilDay(w.Start)) + 1
}

// civilDay numbers t's calendar day. Unix seconds are used because a
// time.Duration overflows past about 292 years.
func civilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// Contains reports whether t falls on one of the window's days
func (w ReportWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.EndExclusive())
}

// EachDay calls fn for every day in the window in order
func (w ReportWindow) EachDay(fn func(day time.Time)) {
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

func (w ReportWindow) String() string {
	return w.Start.Format(DateLayout) + " to " + w.End.Format(DateLayout)
}
