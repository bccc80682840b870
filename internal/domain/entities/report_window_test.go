package entities

import (
	"testing"
	"time"
)

func TestParseReportWindow(t *testing.T) {
	w, err := ParseReportWindow("2024-01-01", "2024-01-31", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Days() != 31 {
		t.Errorf("expected 31 days, got %d", w.Days())
	}
	if !w.EndExclusive().Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected exclusive end %v", w.EndExclusive())
	}
	if err := w.Validate(366); err != nil {
		t.Errorf("expected valid window, got %v", err)
	}
}

func TestParseReportWindow_InvalidDate(t *testing.T) {
	if _, err := ParseReportWindow("2024-13-01", "2024-01-31", time.UTC); err == nil {
		t.Error("expected error for invalid month")
	}
	if _, err := ParseReportWindow("2024-01-01", "31/01/2024", time.UTC); err == nil {
		t.Error("expected error for wrong layout")
	}
}

func TestReportWindow_Validate(t *testing.T) {
	start := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if err := (ReportWindow{Start: start, End: end}).Validate(366); err == nil {
		t.Error("expected error when start is after end")
	}
	if err := (ReportWindow{Start: start, End: start}).Validate(366); err != nil {
		t.Errorf("single day window should be valid, got %v", err)
	}
	long := ReportWindow{Start: end, End: end.AddDate(2, 0, 0)}
	if err := long.Validate(366); err == nil {
		t.Error("expected error for window longer than the maximum")
	}
	if err := long.Validate(0); err != nil {
		t.Errorf("zero maximum disables the length check, got %v", err)
	}
	if err := (ReportWindow{}).Validate(366); err == nil {
		t.Error("expected error for empty window")
	}
}

func TestReportWindow_Days(t *testing.T) {
	w, err := ParseReportWindow("0001-01-02", "9999-12-31", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := w.Days(); got != 3652058 {
		t.Errorf("expected 3652058 days, got %d", got)
	}
	if err := w.Validate(366); err == nil {
		t.Error("expected error for a window spanning the whole calendar")
	}

	leap, _ := ParseReportWindow("2024-01-01", "2024-12-31", time.UTC)
	if leap.Days() != 366 {
		t.Errorf("expected 366 days in 2024, got %d", leap.Days())
	}

	london, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	dst, _ := ParseReportWindow("2024-03-01", "2024-03-31", london)
	if dst.Days() != 31 {
		t.Errorf("expected 31 days across the clock change, got %d", dst.Days())
	}
}

func TestReportWindow_Contains(t *testing.T) {
	w, _ := ParseReportWindow("2024-01-01", "2024-01-31", time.UTC)

	if !w.Contains(time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)) {
		t.Error("last day should be included")
	}
	if w.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("day after end should be excluded")
	}
}
