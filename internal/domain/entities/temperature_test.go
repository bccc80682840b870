package entities

import (
	"testing"
	"time"
)

func TestFingerprint_MatchesSameEvent(t *testing.T) {
	at := time.Date(2024, 1, 15, 9, 30, 12, 0, time.UTC)

	a := TemperatureReading{AssetName: "Walk-in Fridge", Reading: 4.0, RecordedAt: at}
	b := TemperatureReading{AssetName: " walk-in fridge ", Reading: 4.04, RecordedAt: at.Add(40 * time.Second)}

	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("expected equal fingerprints, got %q and %q", a.Fingerprint(), b.Fingerprint())
	}
}

func TestFingerprint_DistinguishesEvents(t *testing.T) {
	at := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	base := Fingerprint("Fridge 1", 4.0, at)

	if base == Fingerprint("Fridge 2", 4.0, at) {
		t.Error("different assets must not collide")
	}
	if base == Fingerprint("Fridge 1", 4.2, at) {
		t.Error("different values must not collide")
	}
	if base == Fingerprint("Fridge 1", 4.0, at.Add(time.Minute)) {
		t.Error("different minutes must not collide")
	}
}

func TestFingerprint_NormalizesTimezone(t *testing.T) {
	loc := time.FixedZone("BST", 3600)
	utc := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	if Fingerprint("Freezer", -18, utc) != Fingerprint("Freezer", -18, utc.In(loc)) {
		t.Error("same instant in different zones must match")
	}
}

func TestFormatReading(t *testing.T) {
	if got := FormatReading(3.96, "°C"); got != "4.0°C" {
		t.Errorf("unexpected %q", got)
	}
	if got := FormatReading(-18, ""); got != "-18.0°C" {
		t.Errorf("unexpected %q", got)
	}
}
