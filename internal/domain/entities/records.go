package entities

import (
	"strings"
	"time"
)

// TaskCompletion is one completed checklist task. Payload is the free-form JSON
// captured by the task form and may embed legacy temperature readings.
type TaskCompletion struct {
	ID          string    `json:"id" db:"id"`
	TaskName    string    `json:"task_name" db:"task_name"`
	Category    string    `json:"category" db:"category"`
	CompletedAt time.Time `json:"completed_at" db:"completed_at"`
	CompletedBy string    `json:"completed_by" db:"completed_by"`
	Payload     []byte    `json:"payload" db:"payload"`
}

// TemperatureLog is a canonical temperature log row
type TemperatureLog struct {
	ID         string    `json:"id" db:"id"`
	AssetID    string    `json:"asset_id" db:"asset_id"`
	AssetName  string    `json:"asset_name" db:"asset_name"`
	Reading    float64   `json:"reading" db:"reading"`
	Unit       string    `json:"unit" db:"unit"`
	Status     string    `json:"status" db:"status"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
	RecordedBy string    `json:"recorded_by" db:"recorded_by"`
}

// CleaningRecord is one scheduled cleaning job and its outcome
type CleaningRecord struct {
	ID          string     `json:"id" db:"id"`
	Area        string     `json:"area" db:"area"`
	Task        string     `json:"task" db:"task"`
	Frequency   string     `json:"frequency" db:"frequency"`
	DueAt       time.Time  `json:"due_at" db:"due_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CompletedBy string     `json:"completed_by" db:"completed_by"`
	Status      string     `json:"status" db:"status"`
}

// Completed reports whether the job was signed off
func (c CleaningRecord) Completed() bool {
	return c.CompletedAt != nil || strings.EqualFold(c.Status, "completed")
}

// PestControlRecord is one contractor visit or internal pest check
type PestControlRecord struct {
	ID              string     `json:"id" db:"id"`
	VisitDate       time.Time  `json:"visit_date" db:"visit_date"`
	Contractor      string     `json:"contractor" db:"contractor"`
	VisitType       string     `json:"visit_type" db:"visit_type"`
	Findings        string     `json:"findings" db:"findings"`
	ActivityFound   bool       `json:"activity_found" db:"activity_found"`
	ActionsRequired string     `json:"actions_required" db:"actions_required"`
	FollowUpDate    *time.Time `json:"follow_up_date,omitempty" db:"follow_up_date"`
	ReportURL       string     `json:"report_url" db:"report_url"`
}

// TrainingRecord is one employee's enrolment in one course
type TrainingRecord struct {
	ID           string     `json:"id" db:"id"`
	EmployeeID   string     `json:"employee_id" db:"employee_id"`
	EmployeeName string     `json:"employee_name" db:"employee_name"`
	CourseCode   string     `json:"course_code" db:"course_code"`
	CourseName   string     `json:"course_name" db:"course_name"`
	Status       string     `json:"status" db:"status"`
	CompletedAt  *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty" db:"expires_at"`
}

// Incident is a reported accident, near miss or complaint
type Incident struct {
	ID                string    `json:"id" db:"id"`
	OccurredAt        time.Time `json:"occurred_at" db:"occurred_at"`
	Category          string    `json:"category" db:"category"`
	Severity          string    `json:"severity" db:"severity"`
	Description       string    `json:"description" db:"description"`
	ReportedBy        string    `json:"reported_by" db:"reported_by"`
	Status            string    `json:"status" db:"status"`
	Reportable        bool      `json:"reportable" db:"reportable"`
	AuthorityNotified bool      `json:"authority_notified" db:"authority_notified"`
	ActionsTaken      string    `json:"actions_taken" db:"actions_taken"`
}

// Serious reports whether the incident was graded major or critical
func (i Incident) Serious() bool {
	switch strings.ToLower(strings.TrimSpace(i.Severity)) {
	case "major", "critical":
		return true
	}
	return false
}

// NeedsAttention reports whether the incident is serious or legally
// notifiable without the authority having been told
func (i Incident) NeedsAttention() bool {
	return i.Serious() || (i.Reportable && !i.AuthorityNotified)
}

// Open reports whether the incident has not been closed
func (i Incident) Open() bool {
	switch strings.ToLower(strings.TrimSpace(i.Status)) {
	case "closed", "resolved":
		return false
	}
	return true
}

// Checklist types recorded in checklist runs
const (
	ChecklistOpening = "opening"
	ChecklistClosing = "closing"
)

// ChecklistRun is one opening or closing checklist completion
type ChecklistRun struct {
	ID             string     `json:"id" db:"id"`
	ChecklistType  string     `json:"checklist_type" db:"checklist_type"`
	RunDate        time.Time  `json:"run_date" db:"run_date"`
	CompletedAt    *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CompletedBy    string     `json:"completed_by" db:"completed_by"`
	ItemsTotal     int        `json:"items_total" db:"items_total"`
	ItemsCompleted int        `json:"items_completed" db:"items_completed"`
}

// Complete reports whether every item on the run was ticked
func (c ChecklistRun) Complete() bool {
	return c.CompletedAt != nil && c.ItemsCompleted >= c.ItemsTotal
}

// Asset is an item on the equipment register
type Asset struct {
	ID             string     `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	Category       string     `json:"category" db:"category"`
	Location       string     `json:"location" db:"location"`
	MinTemp        *float64   `json:"min_temp,omitempty" db:"min_temp"`
	MaxTemp        *float64   `json:"max_temp,omitempty" db:"max_temp"`
	LastServicedAt *time.Time `json:"last_serviced_at,omitempty" db:"last_serviced_at"`
	NextServiceDue *time.Time `json:"next_service_due,omitempty" db:"next_service_due"`
	Status         string     `json:"status" db:"status"`
}

// Appliance is a portable appliance with a test schedule
type Appliance struct {
	ID           string     `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Location     string     `json:"location" db:"location"`
	LastTestedAt *time.Time `json:"last_tested_at,omitempty" db:"last_tested_at"`
	NextTestDue  *time.Time `json:"next_test_due,omitempty" db:"next_test_due"`
	Result       string     `json:"result" db:"result"`
}

// ComplianceScore is an audit or hygiene rating
type ComplianceScore struct {
	ID         string    `json:"id" db:"id"`
	Source     string    `json:"source" db:"source"`
	Score      float64   `json:"score" db:"score"`
	Rating     *int      `json:"rating,omitempty" db:"rating"`
	AssessedAt time.Time `json:"assessed_at" db:"assessed_at"`
	Notes      string    `json:"notes" db:"notes"`
}

// SafetyCheck is one fire or health & safety check
type SafetyCheck struct {
	ID        string    `json:"id" db:"id"`
	CheckType string    `json:"check_type" db:"check_type"`
	Area      string    `json:"area" db:"area"`
	CheckedAt time.Time `json:"checked_at" db:"checked_at"`
	CheckedBy string    `json:"checked_by" db:"checked_by"`
	Result    string    `json:"result" db:"result"`
	Notes     string    `json:"notes" db:"notes"`
}

// Passed reports whether the check result is a pass
func (c SafetyCheck) Passed() bool {
	switch strings.ToLower(strings.TrimSpace(c.Result)) {
	case "pass", "passed", "ok", "satisfactory":
		return true
	}
	return false
}

// SupplierRecord is an approved supplier with its latest delivery
type SupplierRecord struct {
	ID                string     `json:"id" db:"id"`
	SupplierName      string     `json:"supplier_name" db:"supplier_name"`
	Category          string     `json:"category" db:"category"`
	ApprovalStatus    string     `json:"approval_status" db:"approval_status"`
	LastDeliveryAt    *time.Time `json:"last_delivery_at,omitempty" db:"last_delivery_at"`
	CertificateExpiry *time.Time `json:"certificate_expiry,omitempty" db:"certificate_expiry"`
}

// Attachment is an evidence photo or file with a pre-resolved URL
type Attachment struct {
	ID         string    `json:"id" db:"id"`
	Caption    string    `json:"caption" db:"caption"`
	URL        string    `json:"url" db:"url"`
	Category   string    `json:"category" db:"category"`
	TakenAt    time.Time `json:"taken_at" db:"taken_at"`
	SourceKind string    `json:"source_kind" db:"source_kind"`
}

// ComplianceDocument is an organization licence, certificate or policy
type ComplianceDocument struct {
	ID        string     `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Category  string     `json:"category" db:"category"`
	Reference string     `json:"reference" db:"reference"`
	IssuedAt  *time.Time `json:"issued_at,omitempty" db:"issued_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	URL       string     `json:"url" db:"url"`
}

// ChemicalSheet is a COSHH safety data sheet
type ChemicalSheet struct {
	ID          string     `json:"id" db:"id"`
	ProductName string     `json:"product_name" db:"product_name"`
	Supplier    string     `json:"supplier" db:"supplier"`
	HazardClass string     `json:"hazard_class" db:"hazard_class"`
	SheetURL    string     `json:"sheet_url" db:"sheet_url"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty" db:"reviewed_at"`
	ReviewDue   *time.Time `json:"review_due,omitempty" db:"review_due"`
}

// RiskAssessment is a written assessment with a review date
type RiskAssessment struct {
	ID         string     `json:"id" db:"id"`
	Title      string     `json:"title" db:"title"`
	Area       string     `json:"area" db:"area"`
	AssessedBy string     `json:"assessed_by" db:"assessed_by"`
	AssessedAt *time.Time `json:"assessed_at,omitempty" db:"assessed_at"`
	ReviewDue  *time.Time `json:"review_due,omitempty" db:"review_due"`
	RiskLevel  string     `json:"risk_level" db:"risk_level"`
}

// StaffMember is one person on the organization roster
type StaffMember struct {
	ID        string     `json:"id" db:"id"`
	FullName  string     `json:"full_name" db:"full_name"`
	Role      string     `json:"role" db:"role"`
	Email     string     `json:"email" db:"email"`
	StartedAt *time.Time `json:"started_at,omitempty" db:"started_at"`
	Active    bool       `json:"active" db:"active"`
}

// SiteAccess grants a staff member access to one site
type SiteAccess struct {
	StaffID string `json:"staff_id" db:"staff_id"`
	SiteID  string `json:"site_id" db:"site_id"`
}
