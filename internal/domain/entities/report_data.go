package entities

// Named queries issued by the data gatherer
const (
	QueryOrganization       = "organization"
	QueryTaskCompletions    = "task_completions"
	QueryTemperatureLogs    = "temperature_logs"
	QueryCleaningRecords    = "cleaning_records"
	QueryPestControl        = "pest_control_records"
	QueryTrainingRecords    = "training_records"
	QueryIncidents          = "incidents"
	QueryChecklistRuns      = "checklist_runs"
	QueryAssets             = "assets"
	QueryAppliances         = "appliances"
	QueryComplianceScores   = "compliance_scores"
	QueryFireSafetyChecks   = "fire_safety_checks"
	QueryHealthSafetyChecks = "health_safety_checks"
	QuerySupplierRecords    = "supplier_records"
	QueryAttachments        = "attachments"
	QueryDocuments          = "documents"
	QueryChemicalSheets     = "chemical_sheets"
	QueryRiskAssessments    = "risk_assessments"
	QueryStaffRoster        = "staff_roster"
)

// QueryFailure records a named query that settled to its empty fallback
type QueryFailure struct {
	Query  string `json:"query"`
	Reason string `json:"reason"`
	Err    error  `json:"-"`
}

// ReportData is everything gathered for one report. Every collection is non-nil.
type ReportData struct {
	Organization       *Organization
	TaskCompletions    []TaskCompletion
	TemperatureLogs    []TemperatureLog
	CleaningRecords    []CleaningRecord
	PestControl        []PestControlRecord
	TrainingRecords    []TrainingRecord
	Incidents          []Incident
	ChecklistRuns      []ChecklistRun
	Assets             []Asset
	Appliances         []Appliance
	ComplianceScores   []ComplianceScore
	FireSafetyChecks   []SafetyCheck
	HealthSafetyChecks []SafetyCheck
	SupplierRecords    []SupplierRecord
	Attachments        []Attachment
	Documents          []ComplianceDocument
	ChemicalSheets     []ChemicalSheet
	RiskAssessments    []RiskAssessment
	StaffRoster        []StaffMember

	Failures []QueryFailure
}

// NewReportData returns a ReportData with every collection initialised empty
func NewReportData() *ReportData {
	return &ReportData{
		TaskCompletions:    []TaskCompletion{},
		TemperatureLogs:    []TemperatureLog{},
		CleaningRecords:    []CleaningRecord{},
		PestControl:        []PestControlRecord{},
		TrainingRecords:    []TrainingRecord{},
		Incidents:          []Incident{},
		ChecklistRuns:      []ChecklistRun{},
		Assets:             []Asset{},
		Appliances:         []Appliance{},
		ComplianceScores:   []ComplianceScore{},
		FireSafetyChecks:   []SafetyCheck{},
		HealthSafetyChecks: []SafetyCheck{},
		SupplierRecords:    []SupplierRecord{},
		Attachments:        []Attachment{},
		Documents:          []ComplianceDocument{},
		ChemicalSheets:     []ChemicalSheet{},
		RiskAssessments:    []RiskAssessment{},
		StaffRoster:        []StaffMember{},
		Failures:           []QueryFailure{},
	}
}

// Failed reports whether the named query fell back to empty
func (d *ReportData) Failed(query string) bool {
	for _, f := range d.Failures {
		if f.Query == query {
			return true
		}
	}
	return false
}
