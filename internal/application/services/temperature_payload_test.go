package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLegacyReadings(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		shapes  []payloadShape
		skip    string
	}{
		{name: "empty payload", payload: ``},
		{name: "invalid json", payload: `{"temp_A1":`, skip: "invalid_json"},
		{name: "array payload", payload: `[1,2]`, skip: "not_an_object"},
		{name: "equipment readings", payload: `{"equipment_readings":[{"equipment_id":"A1","temperature":4}]}`, shapes: []payloadShape{shapeEquipmentReadings}},
		{name: "reading list", payload: `{"readings":[{"asset":"A1","value":4},{"asset":"A2","value":5}]}`, shapes: []payloadShape{shapeReadingList, shapeReadingList}},
		{name: "prefixed keys", payload: `{"temp_A1":4,"notes":"ok"}`, shapes: []payloadShape{shapePrefixedKeys}},
		{name: "single reading", payload: `{"temperature":"4.5"}`, shapes: []payloadShape{shapeSingleReading}},
		{name: "single reading ignored beside structured readings", payload: `{"temperature":4,"temp_A1":5}`, shapes: []payloadShape{shapePrefixedKeys}},
		{name: "no readings", payload: `{"notes":"all fine"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readings, skip := extractLegacyReadings([]byte(tt.payload))
			if tt.skip != "" {
				require.NotNil(t, skip)
				assert.Equal(t, tt.skip, skip.Reason)
				return
			}
			require.Nil(t, skip)
			got := make([]payloadShape, 0, len(readings))
			for _, r := range readings {
				got = append(got, r.Shape)
			}
			assert.ElementsMatch(t, tt.shapes, got)
		})
	}
}

func TestAssetIdentifier(t *testing.T) {
	tests := []struct {
		in  any
		id  string
		bad bool
	}{
		{in: nil},
		{in: "A1", id: "A1"},
		{in: " A1 ", id: "A1"},
		{in: float64(42), id: "42"},
		{in: map[string]any{"asset_id": "A7"}, id: "A7"},
		{in: map[string]any{"value": "A8"}, id: "A8"},
		{in: "[object Object]", bad: true},
		{in: "undefined", bad: true},
		{in: "NaN", bad: true},
		{in: map[string]any{"label": "x"}, bad: true},
		{in: true, bad: true},
	}
	for _, tt := range tests {
		id, bad := assetIdentifier(tt.in)
		assert.Equal(t, tt.id, id, "%v", tt.in)
		assert.Equal(t, tt.bad, bad, "%v", tt.in)
	}
}

func TestParseTemperature(t *testing.T) {
	tests := []struct {
		in   any
		unit string
		want string
		err  bool
	}{
		{in: float64(4.24), want: "4.2"},
		{in: "3.5°C", want: "3.5"},
		{in: " -18 ", want: "-18"},
		{in: "39.2F", want: "4"},
		{in: float64(41), unit: "°F", want: "5"},
		{in: "cold", err: true},
		{in: nil, err: true},
	}
	for _, tt := range tests {
		got, err := parseTemperature(tt.in, tt.unit)
		if tt.err {
			assert.Error(t, err, "%v", tt.in)
			continue
		}
		require.NoError(t, err, "%v", tt.in)
		assert.Equal(t, tt.want, got.String(), "%v", tt.in)
	}
}

func TestParseReadingTime(t *testing.T) {
	completed := time.Date(2024, 1, 10, 17, 30, 0, 0, time.UTC)

	assert.Equal(t, completed, parseReadingTime(nil, completed))
	assert.Equal(t, completed, parseReadingTime("soon", completed))
	assert.Equal(t, time.Date(2024, 1, 10, 8, 15, 0, 0, time.UTC), parseReadingTime("08:15", completed))
	assert.Equal(t, time.Date(2024, 1, 9, 22, 0, 0, 0, time.UTC), parseReadingTime("2024-01-09T22:00:00Z", completed))
}
