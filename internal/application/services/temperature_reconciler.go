package services

import (
	"context"
	"sort"
	"strings"

	"github.com/zatekoja/inspectionreport/internal/domain/entities"
	"github.com/zatekoja/inspectionreport/internal/infrastructure/observability"
	"go.opentelemetry.io/otel/attribute"
)

// Default safe ranges by asset category, used when an asset has no thresholds
var (
	chilledMax  = 8.0
	frozenMax   = -18.0
	hotHoldMin  = 63.0
	categoryMax = map[string]*float64{
		"fridge":       &chilledMax,
		"refrigerator": &chilledMax,
		"chiller":      &chilledMax,
		"display":      &chilledMax,
		"freezer":      &frozenMax,
	}
	categoryMin = map[string]*float64{
		"hot_hold": &hotHoldMin,
		"bain":     &hotHoldMin,
	}
)

// TemperatureReconciler merges canonical log readings with readings mined
// from legacy task payloads
type TemperatureReconciler struct{}

// NewTemperatureReconciler creates a new temperature reconciler
func NewTemperatureReconciler() *TemperatureReconciler {
	return &TemperatureReconciler{}
}

// Reconcile returns one collection ordered newest first. A task reading is
// dropped when a log reading with the same fingerprint exists.
func (r *TemperatureReconciler) Reconcile(ctx context.Context, logs []entities.TemperatureLog, tasks []entities.TaskCompletion, assets []entities.Asset) []entities.TemperatureReading {
	ctx, span := observability.StartSpan(ctx, "report.reconcile_temperatures")
	defer span.End()

	index := newAssetIndex(assets)
	readings := make([]entities.TemperatureReading, 0, len(logs))
	seen := make(map[string]struct{}, len(logs))

	for _, l := range logs {
		// Logs and task payloads meet in Celsius so twins share a fingerprint
		value, _ := parseTemperature(l.Reading, l.Unit)
		reading := entities.TemperatureReading{
			AssetID:    l.AssetID,
			AssetName:  l.AssetName,
			Reading:    value.InexactFloat64(),
			Unit:       "°C",
			RecordedAt: l.RecordedAt,
			RecordedBy: l.RecordedBy,
			Source:     entities.SourceLog,
		}
		if reading.AssetName == "" {
			if asset, ok := index.byID[l.AssetID]; ok {
				reading.AssetName = asset.Name
			}
		}
		reading.Status = resolveStatus(l.Status, reading, index)
		readings = append(readings, reading)
		seen[reading.Fingerprint()] = struct{}{}
	}

	var fromTasks, duplicates int
	for _, task := range tasks {
		for _, reading := range r.taskReadings(ctx, task, index) {
			if _, dup := seen[reading.Fingerprint()]; dup {
				duplicates++
				continue
			}
			readings = append(readings, reading)
			fromTasks++
		}
	}

	sort.SliceStable(readings, func(i, j int) bool {
		if !readings[i].RecordedAt.Equal(readings[j].RecordedAt) {
			return readings[i].RecordedAt.After(readings[j].RecordedAt)
		}
		return readings[i].AssetName < readings[j].AssetName
	})

	span.SetAttributes(
		attribute.Int("temperature.log_readings", len(logs)),
		attribute.Int("temperature.task_readings", fromTasks),
		attribute.Int("temperature.duplicates", duplicates),
	)
	return readings
}

// taskReadings normalizes every reading embedded in one task, skipping malformed ones
func (r *TemperatureReconciler) taskReadings(ctx context.Context, task entities.TaskCompletion, index assetIndex) []entities.TemperatureReading {
	raw, skip := extractLegacyReadings(task.Payload)
	if skip != nil {
		logSkip(ctx, task, *skip)
		return nil
	}

	readings := make([]entities.TemperatureReading, 0, len(raw))
	for _, lr := range raw {
		name := lr.AssetName
		if asset, ok := index.byID[lr.AssetID]; ok && name == "" {
			name = asset.Name
		}
		if lr.Shape == shapeSingleReading {
			name = task.TaskName
		}
		if name == "" && lr.Shape == shapePrefixedKeys {
			name = lr.AssetID
		}
		if name == "" {
			reason := "missing_asset"
			if lr.BadID {
				reason = "malformed_asset_id"
			}
			logSkip(ctx, task, payloadSkip{Shape: lr.Shape, Reason: reason})
			continue
		}

		value, err := parseTemperature(lr.Value, lr.Unit)
		if err != nil {
			logSkip(ctx, task, payloadSkip{Shape: lr.Shape, Reason: "unparseable_value"})
			continue
		}

		reading := entities.TemperatureReading{
			AssetID:    lr.AssetID,
			AssetName:  name,
			Reading:    value.InexactFloat64(),
			Unit:       "°C",
			RecordedAt: parseReadingTime(lr.At, task.CompletedAt),
			RecordedBy: task.CompletedBy,
			Source:     entities.SourceTask,
			TaskID:     task.ID,
		}
		reading.Status = resolveStatus(lr.Status, reading, index)
		readings = append(readings, reading)
	}
	return readings
}

func logSkip(ctx context.Context, task entities.TaskCompletion, skip payloadSkip) {
	observability.SkippedPayloadReadingsTotal.WithLabelValues(skip.Shape.String(), skip.Reason).Inc()
	observability.LoggerFromContext(ctx).Debug().
		Str("task_id", task.ID).
		Str("shape", skip.Shape.String()).
		Str("reason", skip.Reason).
		Msg("skipped legacy temperature reading")
}

// resolveStatus trusts a recognizable recorded status and otherwise checks the
// reading against the asset's range
func resolveStatus(recorded string, reading entities.TemperatureReading, index assetIndex) string {
	if status := normalizeStatus(recorded); status != "" {
		return status
	}
	lo, hi := index.limits(reading.AssetID, reading.AssetName)
	if (lo != nil && reading.Reading < *lo) || (hi != nil && reading.Reading > *hi) {
		return entities.ReadingBreach
	}
	return entities.ReadingOK
}

// assetIndex looks assets up by id and by case-folded name
type assetIndex struct {
	byID   map[string]entities.Asset
	byName map[string]entities.Asset
}

func newAssetIndex(assets []entities.Asset) assetIndex {
	idx := assetIndex{
		byID:   make(map[string]entities.Asset, len(assets)),
		byName: make(map[string]entities.Asset, len(assets)),
	}
	for _, a := range assets {
		idx.byID[a.ID] = a
		idx.byName[strings.ToLower(strings.TrimSpace(a.Name))] = a
	}
	return idx
}

func (idx assetIndex) lookup(id, name string) (entities.Asset, bool) {
	if id != "" {
		if a, ok := idx.byID[id]; ok {
			return a, true
		}
	}
	a, ok := idx.byName[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// limits returns the asset's configured range or its category default
func (idx assetIndex) limits(id, name string) (lo, hi *float64) {
	asset, ok := idx.lookup(id, name)
	if !ok {
		return nil, nil
	}
	if asset.MinTemp != nil || asset.MaxTemp != nil {
		return asset.MinTemp, asset.MaxTemp
	}
	category := strings.ToLower(strings.TrimSpace(asset.Category))
	return categoryMin[category], categoryMax[category]
}
