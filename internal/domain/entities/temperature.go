package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Reading statuses
const (
	ReadingOK     = "ok"
	ReadingBreach = "breach"
)

// Reading sources
const (
	SourceLog  = "log"
	SourceTask = "task"
)

// TemperatureReading is a normalized reading from either capture path
type TemperatureReading struct {
	AssetID    string    `json:"asset_id,omitempty"`
	AssetName  string    `json:"asset_name"`
	Reading    float64   `json:"reading"`
	Unit       string    `json:"unit"`
	Status     string    `json:"status"`
	RecordedAt time.Time `json:"recorded_at"`
	RecordedBy string    `json:"recorded_by"`
	Source     string    `json:"source"`
	TaskID     string    `json:"task_id,omitempty"`
}

// Breach reports whether the reading is out of range
func (r TemperatureReading) Breach() bool {
	return r.Status == ReadingBreach
}

// Fingerprint identifies the physical event a reading describes:
// asset name (case-folded), value rounded to one decimal place and the UTC minute.
func (r TemperatureReading) Fingerprint() string {
	return Fingerprint(r.AssetName, r.Reading, r.RecordedAt)
}

// Fingerprint builds the dedup key for an asset/value/time triple
func Fingerprint(assetName string, value float64, at time.Time) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(strings.TrimSpace(assetName)))
	b.WriteByte('|')
	b.WriteString(decimal.NewFromFloat(value).Round(1).StringFixed(1))
	b.WriteByte('|')
	b.WriteString(at.UTC().Truncate(time.Minute).Format(time.RFC3339))
	return b.String()
}

// FormatReading renders a value with one decimal place and its unit
func FormatReading(value float64, unit string) string {
	if unit == "" {
		unit = "°C"
	}
	return decimal.NewFromFloat(value).Round(1).StringFixed(1) + unit
}
