package entities

import (
	"strings"
	"time"
)

// TrainingCategory is one of the six tracked compliance domains
type TrainingCategory string

const (
	TrainingFoodSafety   TrainingCategory = "food_safety"
	TrainingHealthSafety TrainingCategory = "health_safety"
	TrainingFire         TrainingCategory = "fire"
	TrainingFirstAid     TrainingCategory = "first_aid"
	TrainingCOSHH        TrainingCategory = "coshh"
	TrainingAllergens    TrainingCategory = "allergens"
)

// TrainingCategories lists the categories in display order
var TrainingCategories = []TrainingCategory{
	TrainingFoodSafety,
	TrainingHealthSafety,
	TrainingFire,
	TrainingFirstAid,
	TrainingCOSHH,
	TrainingAllergens,
}

// TrainingCourseCodes maps each category to its course codes, higher level first
var TrainingCourseCodes = map[TrainingCategory][]string{
	TrainingFoodSafety:   {"FS_L3", "FS_L2"},
	TrainingHealthSafety: {"HS_L3", "HS_L2"},
	TrainingFire:         {"FIRE_WARDEN", "FIRE_AWARENESS"},
	TrainingFirstAid:     {"FAW", "EFAW"},
	TrainingCOSHH:        {"COSHH"},
	TrainingAllergens:    {"ALLERGEN"},
}

// Label is the column heading for the category
func (c TrainingCategory) Label() string {
	switch c {
	case TrainingFoodSafety:
		return "Food Safety"
	case TrainingHealthSafety:
		return "Health & Safety"
	case TrainingFire:
		return "Fire"
	case TrainingFirstAid:
		return "First Aid"
	case TrainingCOSHH:
		return "COSHH"
	case TrainingAllergens:
		return "Allergens"
	default:
		return string(c)
	}
}

// TrainingStatus is the status of one training record
type TrainingStatus string

const (
	TrainingCompliant    TrainingStatus = "compliant"
	TrainingExpiringSoon TrainingStatus = "expiring_soon"
	TrainingInProgress   TrainingStatus = "in_progress"
	TrainingExpired      TrainingStatus = "expired"
	TrainingRequired     TrainingStatus = "required"
	TrainingNotStarted   TrainingStatus = "not_started"
	TrainingOptional     TrainingStatus = "optional"
	TrainingNotRecorded  TrainingStatus = "not_recorded"
)

// trainingStatusPriority orders statuses from most to least informative.
// in_progress deliberately outranks expired.
var trainingStatusPriority = []TrainingStatus{
	TrainingCompliant,
	TrainingExpiringSoon,
	TrainingInProgress,
	TrainingExpired,
	TrainingRequired,
	TrainingNotStarted,
	TrainingOptional,
}

// ParseTrainingStatus normalizes a stored status value
func ParseTrainingStatus(raw string) TrainingStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return TrainingStatus(s)
}

// Priority is the rank of the status, lower is more informative.
// Unknown statuses rank after every known one.
func (s TrainingStatus) Priority() int {
	for i, known := range trainingStatusPriority {
		if s == known {
			return i
		}
	}
	return len(trainingStatusPriority)
}

// Label is the badge text for the status
func (s TrainingStatus) Label() string {
	switch s {
	case TrainingCompliant:
		return "Compliant"
	case TrainingExpiringSoon:
		return "Expiring soon"
	case TrainingInProgress:
		return "In progress"
	case TrainingExpired:
		return "Expired"
	case TrainingRequired:
		return "Required"
	case TrainingNotStarted:
		return "Not started"
	case TrainingOptional:
		return "Optional"
	case TrainingNotRecorded:
		return "Not recorded"
	default:
		return string(s)
	}
}

// TrainingComplianceEntry is the representative record for one employee in one category
type TrainingComplianceEntry struct {
	EmployeeID   string           `json:"employee_id"`
	EmployeeName string           `json:"employee_name"`
	Category     TrainingCategory `json:"category"`
	CourseCode   string           `json:"course_code"`
	Status       TrainingStatus   `json:"status"`
	Level        int              `json:"level"`
	ExpiresAt    *time.Time       `json:"expires_at,omitempty"`
	Recorded     bool             `json:"recorded"`
}

// EmployeeTraining holds one entry per category, in TrainingCategories order
type EmployeeTraining struct {
	EmployeeID   string                    `json:"employee_id"`
	EmployeeName string                    `json:"employee_name"`
	Entries      []TrainingComplianceEntry `json:"entries"`
}

// Entry returns the entry for a category
func (e EmployeeTraining) Entry(category TrainingCategory) (TrainingComplianceEntry, bool) {
	for _, entry := range e.Entries {
		if entry.Category == category {
			return entry, true
		}
	}
	return TrainingComplianceEntry{}, false
}
