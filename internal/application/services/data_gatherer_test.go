package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/inspectionreport/internal/application/services"
	"github.com/zatekoja/inspectionreport/internal/domain/entities"
)

var januaryWindow = entities.ReportWindow{
	Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
}

func siteWithOrg() *entities.Site {
	org := "O1"
	return &entities.Site{ID: "S1", Name: "Quayside", OrganizationID: &org}
}

func TestDataGatherer_Gather(t *testing.T) {
	t.Run("one failing query degrades to an empty collection", func(t *testing.T) {
		// Arrange
		r := newRepos()
		r.records.On("ListIncidents", mock.Anything, "S1", januaryWindow).Return(nil, errors.New("relation does not exist"))
		r.records.On("ListTemperatureLogs", mock.Anything, "S1", januaryWindow).Return([]entities.TemperatureLog{
			{ID: "t1", AssetName: "Fridge", Reading: 4},
		}, nil)
		r.stubEmpty()
		gatherer := services.NewDataGatherer(r.sites, r.records, r.orgRecords, time.Second, nil)

		// Act
		data := gatherer.Gather(context.Background(), siteWithOrg(), januaryWindow)

		// Assert
		require.Len(t, data.Failures, 1)
		assert.Equal(t, entities.QueryIncidents, data.Failures[0].Query)
		assert.Equal(t, "error", data.Failures[0].Reason)
		assert.NotNil(t, data.Incidents)
		assert.Empty(t, data.Incidents)
		assert.Len(t, data.TemperatureLogs, 1)
		assert.True(t, data.Failed(entities.QueryIncidents))
		assert.False(t, data.Failed(entities.QueryTemperatureLogs))
	})

	t.Run("organization queries are skipped without an organization", func(t *testing.T) {
		// Arrange
		r := newRepos()
		r.stubEmpty()
		gatherer := services.NewDataGatherer(r.sites, r.records, r.orgRecords, time.Second, nil)

		// Act
		data := gatherer.Gather(context.Background(), entities.PlaceholderSite("S1"), januaryWindow)

		// Assert
		assert.Nil(t, data.Organization)
		assert.Empty(t, data.Failures)
		assert.NotNil(t, data.Documents)
		assert.NotNil(t, data.StaffRoster)
		r.orgRecords.AssertNotCalled(t, "ListDocuments", mock.Anything, mock.Anything)
		r.sites.AssertNotCalled(t, "GetOrganization", mock.Anything, mock.Anything)
		r.sites.AssertNotCalled(t, "ListOrganizationStaff", mock.Anything, mock.Anything)
	})

	t.Run("slow query is abandoned at the timeout", func(t *testing.T) {
		// Arrange
		r := newRepos()
		r.records.On("ListCleaningRecords", mock.Anything, "S1", januaryWindow).
			Run(func(args mock.Arguments) {
				<-args.Get(0).(context.Context).Done()
			}).
			Return(nil, context.DeadlineExceeded)
		r.stubEmpty()
		gatherer := services.NewDataGatherer(r.sites, r.records, r.orgRecords, 50*time.Millisecond, nil)

		// Act
		started := time.Now()
		data := gatherer.Gather(context.Background(), siteWithOrg(), januaryWindow)

		// Assert
		assert.Less(t, time.Since(started), 2*time.Second)
		require.Len(t, data.Failures, 1)
		assert.Equal(t, entities.QueryCleaningRecords, data.Failures[0].Query)
		assert.Equal(t, "timeout", data.Failures[0].Reason)
		assert.Empty(t, data.CleaningRecords)
	})

	t.Run("panicking query is recorded as a failure", func(t *testing.T) {
		// Arrange
		r := newRepos()
		r.records.On("ListAssets", mock.Anything, "S1").Run(func(mock.Arguments) { panic("driver bug") })
		r.stubEmpty()
		gatherer := services.NewDataGatherer(r.sites, r.records, r.orgRecords, time.Second, nil)

		// Act
		data := gatherer.Gather(context.Background(), siteWithOrg(), januaryWindow)

		// Assert
		require.Len(t, data.Failures, 1)
		assert.Equal(t, entities.QueryAssets, data.Failures[0].Query)
		assert.Equal(t, "panic", data.Failures[0].Reason)
	})

	t.Run("roster is narrowed to staff with access to the site", func(t *testing.T) {
		// Arrange
		r := newRepos()
		r.sites.On("GetOrganization", mock.Anything, "O1").Return(&entities.Organization{ID: "O1", Name: "Harbour Kitchens"}, nil)
		r.sites.On("ListOrganizationStaff", mock.Anything, "O1").Return([]entities.StaffMember{
			{ID: "e1", FullName: "Ana"}, {ID: "e2", FullName: "Ben"}, {ID: "e3", FullName: "Cal"},
		}, nil)
		r.sites.On("ListSiteAccess", mock.Anything, "O1").Return([]entities.SiteAccess{
			{StaffID: "e1", SiteID: "S1"}, {StaffID: "e2", SiteID: "S2"},
		}, nil)
		r.stubEmpty()
		gatherer := services.NewDataGatherer(r.sites, r.records, r.orgRecords, time.Second, nil)

		// Act
		data := gatherer.Gather(context.Background(), siteWithOrg(), januaryWindow)

		// Assert
		require.NotNil(t, data.Organization)
		assert.Equal(t, "Harbour Kitchens", data.Organization.Name)
		require.Len(t, data.StaffRoster, 1)
		assert.Equal(t, "e1", data.StaffRoster[0].ID)
	})

	t.Run("organization without site access rows keeps the full roster", func(t *testing.T) {
		// Arrange
		r := newRepos()
		r.sites.On("ListOrganizationStaff", mock.Anything, "O1").Return([]entities.StaffMember{
			{ID: "e1", FullName: "Ana"}, {ID: "e2", FullName: "Ben"},
		}, nil)
		r.stubEmpty()
		gatherer := services.NewDataGatherer(r.sites, r.records, r.orgRecords, time.Second, nil)

		// Act
		data := gatherer.Gather(context.Background(), siteWithOrg(), januaryWindow)

		// Assert
		assert.Len(t, data.StaffRoster, 2)
		assert.Empty(t, data.Failures)
	})

	t.Run("site access failure fails the roster", func(t *testing.T) {
		// Arrange
		r := newRepos()
		r.sites.On("ListOrganizationStaff", mock.Anything, "O1").Return([]entities.StaffMember{{ID: "e1"}}, nil)
		r.sites.On("ListSiteAccess", mock.Anything, "O1").Return(nil, errors.New("timeout"))
		r.stubEmpty()
		gatherer := services.NewDataGatherer(r.sites, r.records, r.orgRecords, time.Second, nil)

		// Act
		data := gatherer.Gather(context.Background(), siteWithOrg(), januaryWindow)

		// Assert
		assert.Empty(t, data.StaffRoster)
		require.Len(t, data.Failures, 1)
		assert.Equal(t, entities.QueryStaffRoster, data.Failures[0].Query)
	})
}

func TestContextResolver_Resolve(t *testing.T) {
	t.Run("returns the stored site", func(t *testing.T) {
		sites := new(MockSiteRepository)
		sites.On("GetSite", mock.Anything, "S1").Return(siteWithOrg(), nil)

		site := services.NewContextResolver(sites).Resolve(context.Background(), "S1")

		assert.Equal(t, "Quayside", site.Name)
		assert.True(t, site.HasOrganization())
		assert.False(t, site.Placeholder)
	})

	t.Run("falls back to the placeholder identity", func(t *testing.T) {
		sites := new(MockSiteRepository)
		sites.On("GetSite", mock.Anything, "S9").Return(nil, errors.New("connection reset"))

		site := services.NewContextResolver(sites).Resolve(context.Background(), "S9")

		assert.Equal(t, "S9", site.ID)
		assert.Equal(t, entities.UnknownSiteName, site.Name)
		assert.False(t, site.HasOrganization())
		assert.True(t, site.Placeholder)
	})
}
