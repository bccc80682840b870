package sections

import (
	"html/template"
	"time"

	"github.com/zatekoja/inspectionreport/internal/document"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

// Input is everything a section builder may read. Builders never modify it.
type Input struct {
	ReportID     string
	GeneratedAt  time.Time
	Actor        entities.Actor
	Site         *entities.Site
	Window       entities.ReportWindow
	Data         *entities.ReportData
	Temperatures []entities.TemperatureReading
	Training     []entities.EmployeeTraining

	Location          *time.Location
	ExpiryWarningDays int
	RowLimit          int
}

// Today is the generation day in the report's timezone
func (in *Input) Today() time.Time {
	return in.GeneratedAt.In(in.loc())
}

func (in *Input) loc() *time.Location {
	if in.Location == nil {
		return time.UTC
	}
	return in.Location
}

func (in *Input) warningDays() int {
	if in.ExpiryWarningDays <= 0 {
		return entities.DefaultExpiryWarningDays
	}
	return in.ExpiryWarningDays
}

// expiry classifies a date against the generation day
func (in *Input) expiry(t *time.Time) entities.ExpiryStatus {
	return entities.ClassifyExpiry(t, in.Today(), in.warningDays())
}

func (in *Input) table(empty string, columns []document.Column, rows []document.Row) template.HTML {
	return document.Table{
		Columns:      columns,
		Rows:         rows,
		MaxRows:      in.RowLimit,
		EmptyMessage: empty,
		Location:     in.loc(),
	}.HTML()
}

func (in *Input) date(t time.Time) string {
	return document.FormatDate(t, in.loc())
}

func (in *Input) dateTime(t time.Time) string {
	return document.FormatDateTime(t, in.loc())
}

func (in *Input) periodLabel() string {
	return in.date(in.Window.Start) + " to " + in.date(in.Window.End)
}

func (in *Input) organizationName() string {
	if in.Data.Organization != nil && in.Data.Organization.Name != "" {
		return in.Data.Organization.Name
	}
	return document.Placeholder
}

// Shared badge maps
var (
	expiryBadges = map[string]document.Tone{
		string(entities.ExpiryExpired):  document.ToneDanger,
		string(entities.ExpiryExpiring): document.ToneWarning,
		string(entities.ExpiryValid):    document.ToneSuccess,
		string(entities.ExpiryNone):     document.ToneNeutral,
	}
	readingBadges = map[string]document.Tone{
		entities.ReadingOK:     document.ToneSuccess,
		entities.ReadingBreach: document.ToneDanger,
	}
	resultBadges = map[string]document.Tone{
		"pass":            document.ToneSuccess,
		"passed":          document.ToneSuccess,
		"ok":              document.ToneSuccess,
		"satisfactory":    document.ToneSuccess,
		"fail":            document.ToneDanger,
		"failed":          document.ToneDanger,
		"action_needed":   document.ToneWarning,
		"action_required": document.ToneWarning,
	}
	severityBadges = map[string]document.Tone{
		"minor":    document.ToneInfo,
		"moderate": document.ToneWarning,
		"major":    document.ToneDanger,
		"critical": document.ToneDanger,
	}
	trainingBadges = map[string]document.Tone{
		string(entities.TrainingCompliant):    document.ToneSuccess,
		string(entities.TrainingExpiringSoon): document.ToneWarning,
		string(entities.TrainingInProgress):   document.ToneInfo,
		string(entities.TrainingExpired):      document.ToneDanger,
		string(entities.TrainingRequired):     document.ToneDanger,
		string(entities.TrainingNotStarted):   document.ToneWarning,
		string(entities.TrainingOptional):     document.ToneNeutral,
		string(entities.TrainingNotRecorded):  document.ToneNeutral,
	}
)

// countTone is danger when n > 0, success otherwise
func countTone(n int) document.Tone {
	if n > 0 {
		return document.ToneDanger
	}
	return document.ToneSuccess
}

// warnTone is warning when n > 0, success otherwise
func warnTone(n int) document.Tone {
	if n > 0 {
		return document.ToneWarning
	}
	return document.ToneSuccess
}
