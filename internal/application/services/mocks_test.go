package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

// Mocks

type MockSiteRepository struct {
	mock.Mock
}

func (m *MockSiteRepository) GetSite(ctx context.Context, siteID string) (*entities.Site, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Site), args.Error(1)
}

func (m *MockSiteRepository) GetOrganization(ctx context.Context, organizationID string) (*entities.Organization, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Organization), args.Error(1)
}

func (m *MockSiteRepository) ListOrganizationStaff(ctx context.Context, organizationID string) ([]entities.StaffMember, error) {
	return rowsOf[entities.StaffMember](m.Called(ctx, organizationID))
}

func (m *MockSiteRepository) ListSiteAccess(ctx context.Context, organizationID string) ([]entities.SiteAccess, error) {
	return rowsOf[entities.SiteAccess](m.Called(ctx, organizationID))
}

type MockComplianceRecordRepository struct {
	mock.Mock
}

func (m *MockComplianceRecordRepository) ListTaskCompletions(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.TaskCompletion, error) {
	return rowsOf[entities.TaskCompletion](m.Called(ctx, siteID, window))
}

func (m *MockComplianceRecordRepository) ListTemperatureLogs(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.TemperatureLog, error) {
	return rowsOf[entities.TemperatureLog](m.Called(ctx, siteID, window))
}

func (m *MockComplianceRecordRepository) ListCleaningRecords(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.CleaningRecord, error) {
	return rowsOf[entities.CleaningRecord](m.Called(ctx, siteID, window))
}

func (m *MockComplianceRecordRepository) ListPestControlRecords(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.PestControlRecord, error) {
	return rowsOf[entities.PestControlRecord](m.Called(ctx, siteID, window))
}

func (m *MockComplianceRecordRepository) ListIncidents(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.Incident, error) {
	return rowsOf[entities.Incident](m.Called(ctx, siteID, window))
}

func (m *MockComplianceRecordRepository) ListChecklistRuns(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.ChecklistRun, error) {
	return rowsOf[entities.ChecklistRun](m.Called(ctx, siteID, window))
}

func (m *MockComplianceRecordRepository) ListComplianceScores(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.ComplianceScore, error) {
	return rowsOf[entities.ComplianceScore](m.Called(ctx, siteID, window))
}

func (m *MockComplianceRecordRepository) ListFireSafetyChecks(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.SafetyCheck, error) {
	return rowsOf[entities.SafetyCheck](m.Called(ctx, siteID, window))
}

func (m *MockComplianceRecordRepository) ListHealthSafetyChecks(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.SafetyCheck, error) {
	return rowsOf[entities.SafetyCheck](m.Called(ctx, siteID, window))
}

func (m *MockComplianceRecordRepository) ListAttachments(ctx context.Context, siteID string, window entities.ReportWindow) ([]entities.Attachment, error) {
	return rowsOf[entities.Attachment](m.Called(ctx, siteID, window))
}

func (m *MockComplianceRecordRepository) ListTrainingRecords(ctx context.Context, siteID string) ([]entities.TrainingRecord, error) {
	return rowsOf[entities.TrainingRecord](m.Called(ctx, siteID))
}

func (m *MockComplianceRecordRepository) ListAssets(ctx context.Context, siteID string) ([]entities.Asset, error) {
	return rowsOf[entities.Asset](m.Called(ctx, siteID))
}

func (m *MockComplianceRecordRepository) ListAppliances(ctx context.Context, siteID string) ([]entities.Appliance, error) {
	return rowsOf[entities.Appliance](m.Called(ctx, siteID))
}

func (m *MockComplianceRecordRepository) ListSupplierRecords(ctx context.Context, siteID string) ([]entities.SupplierRecord, error) {
	return rowsOf[entities.SupplierRecord](m.Called(ctx, siteID))
}

type MockOrganizationRecordRepository struct {
	mock.Mock
}

func (m *MockOrganizationRecordRepository) ListDocuments(ctx context.Context, organizationID string) ([]entities.ComplianceDocument, error) {
	return rowsOf[entities.ComplianceDocument](m.Called(ctx, organizationID))
}

func (m *MockOrganizationRecordRepository) ListChemicalSheets(ctx context.Context, organizationID string) ([]entities.ChemicalSheet, error) {
	return rowsOf[entities.ChemicalSheet](m.Called(ctx, organizationID))
}

func (m *MockOrganizationRecordRepository) ListRiskAssessments(ctx context.Context, organizationID string) ([]entities.RiskAssessment, error) {
	return rowsOf[entities.RiskAssessment](m.Called(ctx, organizationID))
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func rowsOf[T any](args mock.Arguments) ([]T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

var (
	windowedQueries = []string{
		"ListTaskCompletions", "ListTemperatureLogs", "ListCleaningRecords", "ListPestControlRecords",
		"ListIncidents", "ListChecklistRuns", "ListComplianceScores", "ListFireSafetyChecks",
		"ListHealthSafetyChecks", "ListAttachments",
	}
	siteQueries         = []string{"ListTrainingRecords", "ListAssets", "ListAppliances", "ListSupplierRecords"}
	organizationQueries = []string{"ListDocuments", "ListChemicalSheets", "ListRiskAssessments"}
)

// repos bundles the mocks behind one report
type repos struct {
	sites      *MockSiteRepository
	records    *MockComplianceRecordRepository
	orgRecords *MockOrganizationRecordRepository
}

func newRepos() *repos {
	return &repos{
		sites:      new(MockSiteRepository),
		records:    new(MockComplianceRecordRepository),
		orgRecords: new(MockOrganizationRecordRepository),
	}
}

// stubEmpty answers every query not already expected with no rows.
// Expectations registered before it take precedence.
func (r *repos) stubEmpty() {
	for _, name := range windowedQueries {
		r.records.On(name, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	}
	for _, name := range siteQueries {
		r.records.On(name, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	}
	for _, name := range organizationQueries {
		r.orgRecords.On(name, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	}
	r.sites.On("GetOrganization", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	r.sites.On("ListOrganizationStaff", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	r.sites.On("ListSiteAccess", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
}
