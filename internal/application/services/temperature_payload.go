package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmespath/go-jmespath"
	"github.com/shopspring/decimal"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

// payloadShape tags one historical encoding of readings inside a task payload
type payloadShape int

const (
	// {"equipment_readings": [{"equipment_id", "equipment_name", "temperature", "unit", "status", "recorded_at"}]}
	shapeEquipmentReadings payloadShape = iota + 1
	// {"readings": [{"asset", "name", "value", "time"}]}
	shapeReadingList
	// {"temp_<assetId>": 4.2}
	shapePrefixedKeys
	// {"temperature": 4.2}, attributed to the task itself
	shapeSingleReading
)

func (s payloadShape) String() string {
	switch s {
	case shapeEquipmentReadings:
		return "equipment_readings"
	case shapeReadingList:
		return "readings"
	case shapePrefixedKeys:
		return "prefixed_keys"
	case shapeSingleReading:
		return "single_reading"
	default:
		return "unknown"
	}
}

const prefixedKeyPrefix = "temp_"

var (
	exprEquipmentReadings = jmespath.MustCompile("equipment_readings")
	exprReadingList       = jmespath.MustCompile("readings")
	exprPrefixedKeys      = jmespath.MustCompile("keys(@)[?starts_with(@, 'temp_')]")
	exprSingleReading     = jmespath.MustCompile("temperature || reading")
	exprSingleUnit        = jmespath.MustCompile("unit")

	exprEquipmentID   = jmespath.MustCompile("equipment_id || equipment")
	exprEquipmentName = jmespath.MustCompile("equipment_name")
	exprEquipmentTemp = jmespath.MustCompile("temperature")
	exprEquipmentAt   = jmespath.MustCompile("recorded_at")

	exprListAsset = jmespath.MustCompile("asset || asset_id")
	exprListName  = jmespath.MustCompile("name || asset_name")
	exprListValue = jmespath.MustCompile("value || temperature")
	exprListAt    = jmespath.MustCompile("time || recorded_at")

	exprUnit   = jmespath.MustCompile("unit")
	exprStatus = jmespath.MustCompile("status")

	// Asset identifiers embedded as objects carry the id under one of several names.
	exprObjectIDs = []*jmespath.JMESPath{
		jmespath.MustCompile("id"),
		jmespath.MustCompile("asset_id"),
		jmespath.MustCompile("assetId"),
		jmespath.MustCompile("equipment_id"),
		jmespath.MustCompile("value"),
	}
)

// malformedIdentifiers are values legacy clients wrote instead of a real id
var malformedIdentifiers = map[string]struct{}{
	"":                {},
	"[object object]": {},
	"undefined":       {},
	"null":            {},
	"nan":             {},
}

// legacyReading is one reading mined from a payload before normalization
type legacyReading struct {
	Shape     payloadShape
	AssetID   string
	AssetName string
	Value     any
	Unit      string
	Status    string
	At        any
	// BadID is set when an identifier was present but malformed
	BadID bool
}

// payloadSkip records a reading or payload dropped during extraction
type payloadSkip struct {
	Shape  payloadShape
	Reason string
}

// payloadVariant is the parser for one shape
type payloadVariant struct {
	shape payloadShape
	parse func(doc map[string]any) []legacyReading
}

// structuredVariants are tried on every payload; shapeSingleReading is only a fallback.
var structuredVariants = []payloadVariant{
	{shape: shapeEquipmentReadings, parse: parseEquipmentReadings},
	{shape: shapeReadingList, parse: parseReadingList},
	{shape: shapePrefixedKeys, parse: parsePrefixedKeys},
}

// extractLegacyReadings decodes a task payload and mines readings from every shape it carries
func extractLegacyReadings(payload []byte) ([]legacyReading, *payloadSkip) {
	if len(strings.TrimSpace(string(payload))) == 0 {
		return nil, nil
	}

	var raw any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, &payloadSkip{Reason: "invalid_json"}
	}
	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, &payloadSkip{Reason: "not_an_object"}
	}

	var readings []legacyReading
	for _, variant := range structuredVariants {
		readings = append(readings, variant.parse(doc)...)
	}
	if len(readings) == 0 {
		readings = parseSingleReading(doc)
	}
	return readings, nil
}

func parseEquipmentReadings(doc map[string]any) []legacyReading {
	items, ok := search(exprEquipmentReadings, doc).([]any)
	if !ok {
		return nil
	}

	readings := make([]legacyReading, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, bad := assetIdentifier(search(exprEquipmentID, obj))
		readings = append(readings, legacyReading{
			Shape:     shapeEquipmentReadings,
			AssetID:   id,
			AssetName: stringValue(search(exprEquipmentName, obj)),
			Value:     search(exprEquipmentTemp, obj),
			Unit:      stringValue(search(exprUnit, obj)),
			Status:    stringValue(search(exprStatus, obj)),
			At:        search(exprEquipmentAt, obj),
			BadID:     bad,
		})
	}
	return readings
}

func parseReadingList(doc map[string]any) []legacyReading {
	items, ok := search(exprReadingList, doc).([]any)
	if !ok {
		return nil
	}

	readings := make([]legacyReading, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		asset := search(exprListAsset, obj)
		id, bad := assetIdentifier(asset)
		name := stringValue(search(exprListName, obj))
		if name == "" {
			// some clients nested the display name inside the asset object
			if assetObj, ok := asset.(map[string]any); ok {
				name = stringValue(search(exprListName, assetObj))
			}
		}
		readings = append(readings, legacyReading{
			Shape:     shapeReadingList,
			AssetID:   id,
			AssetName: name,
			Value:     search(exprListValue, obj),
			Unit:      stringValue(search(exprUnit, obj)),
			Status:    stringValue(search(exprStatus, obj)),
			At:        search(exprListAt, obj),
			BadID:     bad,
		})
	}
	return readings
}

func parsePrefixedKeys(doc map[string]any) []legacyReading {
	keys, ok := search(exprPrefixedKeys, doc).([]any)
	if !ok {
		return nil
	}

	readings := make([]legacyReading, 0, len(keys))
	for _, k := range keys {
		key, ok := k.(string)
		if !ok {
			continue
		}
		id, bad := assetIdentifier(strings.TrimPrefix(key, prefixedKeyPrefix))
		readings = append(readings, legacyReading{
			Shape:   shapePrefixedKeys,
			AssetID: id,
			Value:   doc[key],
			BadID:   bad,
		})
	}
	return readings
}

func parseSingleReading(doc map[string]any) []legacyReading {
	value := search(exprSingleReading, doc)
	if value == nil {
		return nil
	}
	switch value.(type) {
	case float64, string:
	default:
		return nil
	}
	return []legacyReading{{
		Shape:  shapeSingleReading,
		Value:  value,
		Unit:   stringValue(search(exprSingleUnit, doc)),
		Status: stringValue(search(exprStatus, doc)),
	}}
}

func search(expr *jmespath.JMESPath, data any) any {
	v, err := expr.Search(data)
	if err != nil {
		return nil
	}
	return v
}

// assetIdentifier resolves a bare or object-wrapped identifier. bad is true
// when something was supplied but it resolved to a malformed sentinel.
func assetIdentifier(v any) (id string, bad bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		id = t
	case float64:
		id = strconv.FormatFloat(t, 'f', -1, 64)
	case map[string]any:
		return objectIdentifier(t)
	default:
		return "", true
	}

	id = strings.TrimSpace(id)
	if _, malformed := malformedIdentifiers[strings.ToLower(id)]; malformed {
		return "", true
	}
	return id, false
}

// objectIdentifier takes the first alternate field holding a usable id
func objectIdentifier(obj map[string]any) (id string, bad bool) {
	for _, expr := range exprObjectIDs {
		candidate := stringValue(search(expr, obj))
		if _, malformed := malformedIdentifiers[strings.ToLower(candidate)]; !malformed {
			return candidate, false
		}
	}
	return "", true
}

func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// parseTemperature reads a numeric or textual value and returns it in Celsius.
// Textual values may carry a unit suffix such as "4.2°C" or "39F".
func parseTemperature(v any, unit string) (decimal.Decimal, error) {
	var (
		d   decimal.Decimal
		err error
	)
	switch t := v.(type) {
	case float64:
		d = decimal.NewFromFloat(t)
	case string:
		s := strings.ToUpper(strings.TrimSpace(t))
		s = strings.ReplaceAll(s, " ", "")
		s = strings.TrimSuffix(s, "°")
		switch {
		case strings.HasSuffix(s, "F"):
			unit = "F"
			s = strings.TrimSuffix(strings.TrimSuffix(s, "F"), "°")
		case strings.HasSuffix(s, "C"):
			s = strings.TrimSuffix(strings.TrimSuffix(s, "C"), "°")
		}
		d, err = decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("unparseable reading %q", t)
		}
	case nil:
		return decimal.Zero, fmt.Errorf("missing reading")
	default:
		return decimal.Zero, fmt.Errorf("unsupported reading type %T", v)
	}

	if isFahrenheit(unit) {
		d = d.Sub(decimal.NewFromInt(32)).Mul(decimal.NewFromInt(5)).Div(decimal.NewFromInt(9))
	}
	return d.Round(1), nil
}

func isFahrenheit(unit string) bool {
	u := strings.ToUpper(strings.TrimSpace(unit))
	return u == "F" || u == "°F" || u == "FAHRENHEIT"
}

// parseReadingTime reads an embedded timestamp, falling back to the task completion time.
// A bare clock time is placed on the task's completion day.
func parseReadingTime(v any, completedAt time.Time) time.Time {
	s := stringValue(v)
	if s == "" {
		return completedAt
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, s, completedAt.Location()); err == nil {
			return t
		}
	}
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := completedAt.Date()
			return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, completedAt.Location())
		}
	}
	return completedAt
}

// normalizeStatus maps free-text statuses onto ok/breach; unknown text returns ""
func normalizeStatus(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ok", "pass", "passed", "good", "in_range", "within_range", "normal", "compliant":
		return entities.ReadingOK
	case "breach", "fail", "failed", "out_of_range", "alert", "warning", "high", "low", "critical":
		return entities.ReadingBreach
	default:
		return ""
	}
}
