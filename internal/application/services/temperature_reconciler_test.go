package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/inspectionreport/internal/application/services"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

func float(v float64) *float64 { return &v }

var (
	walkIn  = entities.Asset{ID: "A1", Name: "Walk-in Fridge", Category: "fridge", MaxTemp: float(5)}
	freezer = entities.Asset{ID: "A2", Name: "Chest Freezer", Category: "freezer"}
)

func task(id, name string, at time.Time, payload string) entities.TaskCompletion {
	return entities.TaskCompletion{ID: id, TaskName: name, Category: "temperature", CompletedAt: at, CompletedBy: "Ana", Payload: []byte(payload)}
}

func TestTemperatureReconciler_Reconcile(t *testing.T) {
	at := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("task reading matching a log reading is shown once", func(t *testing.T) {
		// Arrange
		logs := []entities.TemperatureLog{{ID: "l1", AssetID: "A1", AssetName: "Walk-in Fridge", Reading: 4.2, RecordedAt: at}}
		tasks := []entities.TaskCompletion{
			task("t1", "Morning temps", at, `{"equipment_readings":[{"equipment_id":"A1","equipment_name":"walk-in fridge ","temperature":4.2}]}`),
		}

		// Act
		readings := services.NewTemperatureReconciler().Reconcile(ctx, logs, tasks, []entities.Asset{walkIn})

		// Assert
		require.Len(t, readings, 1)
		assert.Equal(t, entities.SourceLog, readings[0].Source)
	})

	t.Run("fahrenheit log and its task twin are shown once in celsius", func(t *testing.T) {
		// Arrange
		logs := []entities.TemperatureLog{{ID: "l1", AssetID: "A1", AssetName: "Walk-in Fridge", Reading: 39.2, Unit: "°F", RecordedAt: at}}
		tasks := []entities.TaskCompletion{
			task("t1", "Morning temps", at, `{"equipment_readings":[{"equipment_id":"A1","equipment_name":"Walk-in Fridge","temperature":39.2,"unit":"F"}]}`),
		}

		// Act
		readings := services.NewTemperatureReconciler().Reconcile(ctx, logs, tasks, []entities.Asset{walkIn})

		// Assert
		require.Len(t, readings, 1)
		assert.Equal(t, entities.SourceLog, readings[0].Source)
		assert.Equal(t, 4.0, readings[0].Reading)
		assert.Equal(t, "°C", readings[0].Unit)
		assert.Equal(t, entities.ReadingOK, readings[0].Status)
	})

	t.Run("hot fahrenheit log breaches a celsius limit", func(t *testing.T) {
		logs := []entities.TemperatureLog{{ID: "l1", AssetID: "A1", AssetName: "Walk-in Fridge", Reading: 50, Unit: "F", RecordedAt: at}}

		readings := services.NewTemperatureReconciler().Reconcile(ctx, logs, nil, []entities.Asset{walkIn})

		require.Len(t, readings, 1)
		assert.Equal(t, 10.0, readings[0].Reading)
		assert.Equal(t, entities.ReadingBreach, readings[0].Status)
	})

	t.Run("prefixed keys and equipment readings normalize identically", func(t *testing.T) {
		// Arrange
		structured := task("t1", "Temps", at, `{"equipment_readings":[{"equipment_id":"A1","equipment_name":"Walk-in Fridge","temperature":3.5}]}`)
		prefixed := task("t2", "Temps", at, `{"temp_A1": 3.5}`)
		reconciler := services.NewTemperatureReconciler()

		// Act
		a := reconciler.Reconcile(ctx, nil, []entities.TaskCompletion{structured}, []entities.Asset{walkIn})
		b := reconciler.Reconcile(ctx, nil, []entities.TaskCompletion{prefixed}, []entities.Asset{walkIn})

		// Assert
		require.Len(t, a, 1)
		require.Len(t, b, 1)
		assert.Equal(t, a[0].AssetName, b[0].AssetName)
		assert.Equal(t, a[0].Reading, b[0].Reading)
		assert.Equal(t, a[0].RecordedAt, b[0].RecordedAt)
		assert.Equal(t, a[0].Status, b[0].Status)
		assert.Equal(t, a[0].Fingerprint(), b[0].Fingerprint())
	})

	t.Run("single reading takes the task name", func(t *testing.T) {
		// Arrange
		tasks := []entities.TaskCompletion{task("t1", "Hot hold check", at, `{"temperature": "68°C"}`)}

		// Act
		readings := services.NewTemperatureReconciler().Reconcile(ctx, nil, tasks, nil)

		// Assert
		require.Len(t, readings, 1)
		assert.Equal(t, "Hot hold check", readings[0].AssetName)
		assert.Equal(t, 68.0, readings[0].Reading)
		assert.Equal(t, entities.SourceTask, readings[0].Source)
		assert.Equal(t, "t1", readings[0].TaskID)
	})

	t.Run("malformed identifiers and values are skipped", func(t *testing.T) {
		// Arrange
		tasks := []entities.TaskCompletion{
			task("t1", "Temps", at, `{"readings":[
				{"asset":{"id":"[object Object]"},"value":4},
				{"asset":"undefined","value":5},
				{"asset":{"assetId":"A2"},"value":"-20"},
				{"asset":{"id":"undefined","asset_id":"A1"},"value":"4.5"},
				{"asset":"A1","value":"warm"}
			]}`),
			task("t2", "Temps", at, `not json`),
		}

		// Act
		readings := services.NewTemperatureReconciler().Reconcile(ctx, nil, tasks, []entities.Asset{walkIn, freezer})

		// Assert
		require.Len(t, readings, 2)
		byAsset := map[string]entities.TemperatureReading{}
		for _, r := range readings {
			byAsset[r.AssetName] = r
		}
		assert.Equal(t, -20.0, byAsset["Chest Freezer"].Reading)
		assert.Equal(t, entities.ReadingOK, byAsset["Chest Freezer"].Status)
		assert.Equal(t, 4.5, byAsset["Walk-in Fridge"].Reading, "sentinel id falls through to asset_id")
	})

	t.Run("breach is judged against asset limits", func(t *testing.T) {
		// Arrange
		logs := []entities.TemperatureLog{
			{ID: "l1", AssetID: "A1", AssetName: "Walk-in Fridge", Reading: 7.5, RecordedAt: at},
			{ID: "l2", AssetID: "A2", AssetName: "Chest Freezer", Reading: -12, RecordedAt: at.Add(time.Hour)},
			{ID: "l3", AssetID: "A2", AssetName: "Chest Freezer", Reading: -21, RecordedAt: at.Add(2 * time.Hour)},
		}

		// Act
		readings := services.NewTemperatureReconciler().Reconcile(ctx, logs, nil, []entities.Asset{walkIn, freezer})

		// Assert
		require.Len(t, readings, 3)
		assert.Equal(t, entities.ReadingOK, readings[0].Status, "newest first")
		assert.Equal(t, entities.ReadingBreach, readings[1].Status)
		assert.Equal(t, entities.ReadingBreach, readings[2].Status)
	})

	t.Run("recorded status wins over limits", func(t *testing.T) {
		logs := []entities.TemperatureLog{{ID: "l1", AssetID: "A1", AssetName: "Walk-in Fridge", Reading: 9, Status: "ok", RecordedAt: at}}

		readings := services.NewTemperatureReconciler().Reconcile(ctx, logs, nil, []entities.Asset{walkIn})

		require.Len(t, readings, 1)
		assert.Equal(t, entities.ReadingOK, readings[0].Status)
	})
}
