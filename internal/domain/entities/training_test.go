package entities

import "testing"

func TestTrainingStatus_Priority(t *testing.T) {
	ordered := []TrainingStatus{
		TrainingCompliant,
		TrainingExpiringSoon,
		TrainingInProgress,
		TrainingExpired,
		TrainingRequired,
		TrainingNotStarted,
		TrainingOptional,
		TrainingStatus("archived"),
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Priority() >= ordered[i].Priority() {
			t.Errorf("%q should outrank %q", ordered[i-1], ordered[i])
		}
	}
}

func TestParseTrainingStatus(t *testing.T) {
	tests := map[string]TrainingStatus{
		"Compliant":      TrainingCompliant,
		" expiring soon": TrainingExpiringSoon,
		"In-Progress":    TrainingInProgress,
		"NOT_STARTED":    TrainingNotStarted,
	}
	for raw, want := range tests {
		if got := ParseTrainingStatus(raw); got != want {
			t.Errorf("ParseTrainingStatus(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestTrainingCourseCodes_CoverEveryCategory(t *testing.T) {
	for _, c := range TrainingCategories {
		if len(TrainingCourseCodes[c]) == 0 {
			t.Errorf("category %q has no course codes", c)
		}
	}
}

func TestIncident_NeedsAttention(t *testing.T) {
	tests := []struct {
		name     string
		incident Incident
		want     bool
	}{
		{"minor", Incident{Severity: "minor"}, false},
		{"major", Incident{Severity: "Major"}, true},
		{"critical", Incident{Severity: "critical"}, true},
		{"reportable not notified", Incident{Severity: "minor", Reportable: true}, true},
		{"reportable notified", Incident{Severity: "minor", Reportable: true, AuthorityNotified: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.incident.NeedsAttention(); got != tt.want {
				t.Errorf("NeedsAttention() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSite_Placeholder(t *testing.T) {
	site := PlaceholderSite("S1")
	if site.Name != UnknownSiteName || site.HasOrganization() || !site.Placeholder {
		t.Errorf("unexpected placeholder %+v", site)
	}
	org := "O1"
	site.OrganizationID = &org
	if !site.HasOrganization() {
		t.Error("expected organization")
	}
}
