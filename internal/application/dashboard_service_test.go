package application

import (
	"errors"
	"testing"

	"github.com/citizenconnect/complaints-api/internal/domain/view"
	"github.com/citizenconnect/complaints-api/internal/repository"
	"github.com/citizenconnect/complaints-api/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --------------------- Setup ---------------------
func setupDashboardServiceMocks(t *testing.T) (*DashboardService, *MockStatsRepo) {
	mockStats := new(MockStatsRepo)
	repos := &repository.Repos{
		Stats: mockStats,
	}
	return NewDashboardService(repos, nil), mockStats
}

func expectAllAggregates(m *MockStatsRepo, scope interface{}) {
	m.On("CountComplaints", scope).Return(int64(12), nil)
	m.On("CountByStatus", scope).Return([]view.StatusCount{{Status: "pending", Count: 8}}, nil)
	m.On("CountByCategory", scope, topCategories).Return([]view.CategoryCount{{Category: "Infrastructure", Count: 5}}, nil)
	m.On("CountByProvince", scope).Return([]view.ProvinceCount{{Province: "Kigali City", Count: 12}}, nil)
	m.On("RecentComplaints", scope, recentLimit).Return([]view.RecentComplaint{{ID: 1, TrackingID: "CMP-123456"}}, nil)
	m.On("AvgResolutionDays", scope).Return(3.0, nil)
}

// --------------------- GetStats ---------------------
func TestGetStats_RequiresActor(t *testing.T) {
	svc, mockStats := setupDashboardServiceMocks(t)

	_, err := svc.GetStats(nil, nil)
	assert.Equal(t, ErrAuthRequired, err)
	mockStats.AssertNotCalled(t, "CountComplaints", mock.Anything)
}

func TestGetStats_GlobalScopeForAdmin(t *testing.T) {
	svc, mockStats := setupDashboardServiceMocks(t)

	expectAllAggregates(mockStats, (*uint)(nil))

	stats, err := svc.GetStats(nil, &types.Claims{UserID: 1, Role: "admin"})
	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.Total)
	assert.Equal(t, 3.0, stats.AvgResolutionDays)
	mockStats.AssertExpectations(t)
}

func TestGetStats_FallsBackToActorInstitution(t *testing.T) {
	svc, mockStats := setupDashboardServiceMocks(t)

	actorInstitution := ptrUint(7)
	expectAllAggregates(mockStats, actorInstitution)

	_, err := svc.GetStats(nil, &types.Claims{UserID: 2, Role: "institution_admin", InstitutionID: actorInstitution})
	assert.NoError(t, err)
	mockStats.AssertExpectations(t)
}

func TestGetStats_ExplicitInstitutionWins(t *testing.T) {
	svc, mockStats := setupDashboardServiceMocks(t)

	requested := ptrUint(3)
	expectAllAggregates(mockStats, requested)

	_, err := svc.GetStats(requested, &types.Claims{UserID: 2, Role: "institution_admin", InstitutionID: ptrUint(7)})
	assert.NoError(t, err)
	mockStats.AssertExpectations(t)
}

func TestGetStats_AggregateFailuresAreIndependent(t *testing.T) {
	svc, mockStats := setupDashboardServiceMocks(t)

	scope := (*uint)(nil)
	mockStats.On("CountComplaints", scope).Return(int64(12), nil)
	mockStats.On("CountByStatus", scope).Return(nil, errors.New("db down"))
	mockStats.On("CountByCategory", scope, topCategories).Return(nil, errors.New("db down"))
	mockStats.On("CountByProvince", scope).Return([]view.ProvinceCount{{Province: "Kigali City", Count: 12}}, nil)
	mockStats.On("RecentComplaints", scope, recentLimit).Return(nil, errors.New("db down"))
	mockStats.On("AvgResolutionDays", scope).Return(0.0, errors.New("db down"))

	stats, err := svc.GetStats(nil, &types.Claims{UserID: 1, Role: "admin"})
	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.Total)
	assert.Empty(t, stats.ByStatus)
	assert.Empty(t, stats.ByCategory)
	assert.Len(t, stats.ByProvince, 1)
	assert.Empty(t, stats.Recent)
	assert.Zero(t, stats.AvgResolutionDays)
}
