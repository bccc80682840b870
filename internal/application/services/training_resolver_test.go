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

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func entryFor(t *testing.T, matrix []entities.EmployeeTraining, employeeID string, category entities.TrainingCategory) entities.TrainingComplianceEntry {
	t.Helper()
	for _, row := range matrix {
		if row.EmployeeID != employeeID {
			continue
		}
		entry, ok := row.Entry(category)
		require.True(t, ok)
		return entry
	}
	t.Fatalf("employee %s not in matrix", employeeID)
	return entities.TrainingComplianceEntry{}
}

func TestTrainingResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	resolver := services.NewTrainingResolver()

	t.Run("higher level course wins regardless of status", func(t *testing.T) {
		records := []entities.TrainingRecord{
			{ID: "r1", EmployeeID: "e1", EmployeeName: "Ana", CourseCode: "FS_L2", Status: "compliant", ExpiresAt: date(2026, 1, 1)},
			{ID: "r2", EmployeeID: "e1", EmployeeName: "Ana", CourseCode: "FS_L3", Status: "expired", ExpiresAt: date(2023, 1, 1)},
		}

		matrix := resolver.Resolve(ctx, nil, records)

		entry := entryFor(t, matrix, "e1", entities.TrainingFoodSafety)
		assert.Equal(t, "FS_L3", entry.CourseCode)
		assert.Equal(t, entities.TrainingExpired, entry.Status)
		assert.Equal(t, 0, entry.Level)
	})

	t.Run("same level ranks by status priority", func(t *testing.T) {
		records := []entities.TrainingRecord{
			{ID: "r1", EmployeeID: "e1", CourseCode: "FAW", Status: "Not Started"},
			{ID: "r2", EmployeeID: "e1", CourseCode: "FAW", Status: "in-progress"},
			{ID: "r3", EmployeeID: "e1", CourseCode: "FAW", Status: "expired"},
		}

		matrix := resolver.Resolve(ctx, nil, records)

		entry := entryFor(t, matrix, "e1", entities.TrainingFirstAid)
		assert.Equal(t, entities.TrainingInProgress, entry.Status)
	})

	t.Run("same level and status prefers the later expiry", func(t *testing.T) {
		records := []entities.TrainingRecord{
			{ID: "r1", EmployeeID: "e1", CourseCode: "COSHH", Status: "compliant"},
			{ID: "r2", EmployeeID: "e1", CourseCode: "COSHH", Status: "compliant", ExpiresAt: date(2025, 3, 1)},
			{ID: "r3", EmployeeID: "e1", CourseCode: "COSHH", Status: "compliant", ExpiresAt: date(2025, 9, 1)},
		}

		matrix := resolver.Resolve(ctx, nil, records)

		entry := entryFor(t, matrix, "e1", entities.TrainingCOSHH)
		require.NotNil(t, entry.ExpiresAt)
		assert.Equal(t, *date(2025, 9, 1), *entry.ExpiresAt)
	})

	t.Run("unknown status ranks after every known status", func(t *testing.T) {
		records := []entities.TrainingRecord{
			{ID: "r1", EmployeeID: "e1", CourseCode: "ALLERGEN", Status: "archived"},
			{ID: "r2", EmployeeID: "e1", CourseCode: "ALLERGEN", Status: "optional"},
		}

		matrix := resolver.Resolve(ctx, nil, records)

		assert.Equal(t, entities.TrainingOptional, entryFor(t, matrix, "e1", entities.TrainingAllergens).Status)
	})

	t.Run("every roster employee gets every category", func(t *testing.T) {
		roster := []entities.StaffMember{{ID: "e2", FullName: "Ben"}, {ID: "e1", FullName: "Ana"}}
		records := []entities.TrainingRecord{
			{ID: "r1", EmployeeID: "e3", EmployeeName: "Cal", CourseCode: "HS_L2", Status: "compliant"},
			{ID: "r2", EmployeeID: "e1", CourseCode: "UNMAPPED", Status: "compliant"},
		}

		matrix := resolver.Resolve(ctx, roster, records)

		require.Len(t, matrix, 2)
		assert.Equal(t, []string{"Ana", "Ben"}, []string{matrix[0].EmployeeName, matrix[1].EmployeeName})
		for _, row := range matrix {
			require.Len(t, row.Entries, len(entities.TrainingCategories))
			for i, e := range row.Entries {
				assert.Equal(t, entities.TrainingCategories[i], e.Category)
			}
		}
		ana := entryFor(t, matrix, "e1", entities.TrainingFoodSafety)
		assert.Equal(t, entities.TrainingNotRecorded, ana.Status)
		assert.False(t, ana.Recorded)
	})

	t.Run("records of staff off the roster are ignored", func(t *testing.T) {
		roster := []entities.StaffMember{{ID: "e1", FullName: "Ana"}}
		records := []entities.TrainingRecord{
			{ID: "r1", EmployeeID: "e1", CourseCode: "HS_L2", Status: "compliant"},
			{ID: "r2", EmployeeID: "e9", EmployeeName: "Other Site", CourseCode: "HS_L2", Status: "expired"},
		}

		matrix := resolver.Resolve(ctx, roster, records)

		require.Len(t, matrix, 1)
		assert.Equal(t, "e1", matrix[0].EmployeeID)
		assert.Equal(t, entities.TrainingCompliant, entryFor(t, matrix, "e1", entities.TrainingHealthSafety).Status)
	})

	t.Run("without a roster every employee with a record appears", func(t *testing.T) {
		records := []entities.TrainingRecord{
			{ID: "r1", EmployeeID: "e3", EmployeeName: "Cal", CourseCode: "HS_L2", Status: "compliant"},
		}

		matrix := resolver.Resolve(ctx, nil, records)

		require.Len(t, matrix, 1)
		assert.Equal(t, entities.TrainingCompliant, entryFor(t, matrix, "e3", entities.TrainingHealthSafety).Status)
	})

	t.Run("empty inputs give an empty matrix", func(t *testing.T) {
		assert.Empty(t, resolver.Resolve(ctx, nil, nil))
	})
}
