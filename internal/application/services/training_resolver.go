package services

import (
	"context"
	"sort"
	"strings"

	"github.com/zatekoja/inspectionreport/internal/domain/entities"
	"github.com/zatekoja/inspectionreport/internal/infrastructure/observability"
	"go.opentelemetry.io/otel/attribute"
)

// TrainingResolver selects one representative training entry per employee per category
type TrainingResolver struct {
	codes map[entities.TrainingCategory][]string
}

// NewTrainingResolver creates a resolver over the standard course mapping
func NewTrainingResolver() *TrainingResolver {
	return &TrainingResolver{codes: entities.TrainingCourseCodes}
}

// Resolve builds the training matrix. With a roster, only roster employees appear
// and records of anyone else are ignored; without one, anyone with a training
// record appears. Each employee gets exactly one entry per category, in category order.
func (r *TrainingResolver) Resolve(ctx context.Context, roster []entities.StaffMember, records []entities.TrainingRecord) []entities.EmployeeTraining {
	_, span := observability.StartSpan(ctx, "report.resolve_training",
		attribute.Int("training.roster", len(roster)),
		attribute.Int("training.records", len(records)),
	)
	defer span.End()

	byEmployee := make(map[string][]entities.TrainingRecord)
	names := make(map[string]string)
	order := make([]string, 0, len(roster))

	addEmployee := func(id, name string) {
		if _, ok := names[id]; ok {
			if names[id] == "" {
				names[id] = name
			}
			return
		}
		names[id] = name
		order = append(order, id)
	}

	for _, member := range roster {
		addEmployee(member.ID, member.FullName)
	}
	restricted := len(roster) > 0
	for _, rec := range records {
		if strings.TrimSpace(rec.EmployeeID) == "" {
			continue
		}
		if _, onRoster := names[rec.EmployeeID]; restricted && !onRoster {
			continue
		}
		addEmployee(rec.EmployeeID, rec.EmployeeName)
		byEmployee[rec.EmployeeID] = append(byEmployee[rec.EmployeeID], rec)
	}

	sort.SliceStable(order, func(i, j int) bool {
		ni, nj := strings.ToLower(names[order[i]]), strings.ToLower(names[order[j]])
		if ni != nj {
			return ni < nj
		}
		return order[i] < order[j]
	})

	matrix := make([]entities.EmployeeTraining, 0, len(order))
	for _, id := range order {
		row := entities.EmployeeTraining{
			EmployeeID:   id,
			EmployeeName: names[id],
			Entries:      make([]entities.TrainingComplianceEntry, 0, len(entities.TrainingCategories)),
		}
		for _, category := range entities.TrainingCategories {
			row.Entries = append(row.Entries, r.representative(id, names[id], category, byEmployee[id]))
		}
		matrix = append(matrix, row)
	}
	return matrix
}

// representative ranks the employee's candidates for one category: higher-level
// course first, then status priority, then later expiry, then record id.
// With no candidates it returns a not-recorded placeholder.
func (r *TrainingResolver) representative(employeeID, employeeName string, category entities.TrainingCategory, records []entities.TrainingRecord) entities.TrainingComplianceEntry {
	codes := r.codes[category]

	candidates := make([]entities.TrainingComplianceEntry, 0, len(records))
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		level := courseLevel(codes, rec.CourseCode)
		if level < 0 {
			continue
		}
		candidates = append(candidates, entities.TrainingComplianceEntry{
			EmployeeID:   employeeID,
			EmployeeName: employeeName,
			Category:     category,
			CourseCode:   rec.CourseCode,
			Status:       entities.ParseTrainingStatus(rec.Status),
			Level:        level,
			ExpiresAt:    rec.ExpiresAt,
			Recorded:     true,
		})
		ids = append(ids, rec.ID)
	}

	if len(candidates) == 0 {
		return entities.TrainingComplianceEntry{
			EmployeeID:   employeeID,
			EmployeeName: employeeName,
			Category:     category,
			Status:       entities.TrainingNotRecorded,
			Level:        -1,
		}
	}

	best := 0
	for i := 1; i < len(candidates); i++ {
		if outranks(candidates[i], ids[i], candidates[best], ids[best]) {
			best = i
		}
	}
	return candidates[best]
}

func outranks(a entities.TrainingComplianceEntry, aID string, b entities.TrainingComplianceEntry, bID string) bool {
	if a.Level != b.Level {
		return a.Level < b.Level
	}
	if pa, pb := a.Status.Priority(), b.Status.Priority(); pa != pb {
		return pa < pb
	}
	switch {
	case a.ExpiresAt != nil && b.ExpiresAt == nil:
		return true
	case a.ExpiresAt == nil && b.ExpiresAt != nil:
		return false
	case a.ExpiresAt != nil && b.ExpiresAt != nil && !a.ExpiresAt.Equal(*b.ExpiresAt):
		return a.ExpiresAt.After(*b.ExpiresAt)
	}
	return aID < bID
}

// courseLevel is the index of code in the category's codes (0 is the higher
// level), or -1 when the code does not belong to the category
func courseLevel(codes []string, code string) int {
	code = strings.ToUpper(strings.TrimSpace(code))
	for i, c := range codes {
		if c == code {
			return i
		}
	}
	return -1
}
