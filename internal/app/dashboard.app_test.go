package app

import (
	"agencyhub/internal/db/models/postgres/public/model"
	"agencyhub/internal/insight"
	mock_repository "agencyhub/internal/repository/mocks"
	"agencyhub/internal/util"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDashboardHandler(t *testing.T, now time.Time) (
	*dashboardHandler,
	*mock_repository.MockClientRepository,
	*mock_repository.MockOpportunityRepository,
	*mock_repository.MockTaskRepository,
) {
	ctrl := gomock.NewController(t)
	clientRepository := mock_repository.NewMockClientRepository(ctrl)
	opportunityRepository := mock_repository.NewMockOpportunityRepository(ctrl)
	taskRepository := mock_repository.NewMockTaskRepository(ctrl)

	handler := NewDashboardHandler(
		clientRepository,
		opportunityRepository,
		taskRepository,
		insight.NewEngine(),
	).(*dashboardHandler)
	handler.now = func() time.Time { return now }

	return handler, clientRepository, opportunityRepository, taskRepository
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("nil tenant renders zeroed metrics without touching the db", func(t *testing.T) {
		handler, _, _, _ := newTestDashboardHandler(t, now)

		result, err := handler.GetDashboard(context.Background(), nil, "6m")
		require.NoError(t, err)

		require.Equal(t, "6m", result.Period.Token)
		require.Zero(t, result.Metrics.TotalClients)
		require.True(t, result.Metrics.TotalRevenue.IsZero())
		require.Empty(t, result.Activities)
		// bucket scaffolding is still present
		require.Len(t, result.Metrics.OpportunitiesByStage, 6)
	})

	t.Run("computes metrics from fetched collections", func(t *testing.T) {
		handler, clientRepository, opportunityRepository, taskRepository := newTestDashboardHandler(t, now)
		organizationID := uuid.New()

		activeStatus := model.ClientStatus_Active
		clients := []model.Client{
			{ClientID: uuid.New(), OrganizationID: organizationID, Name: "Acme", Status: &activeStatus, MonthlyValue: util.DecimalPointer(decimal.NewFromInt(1000)), CreatedAt: now.AddDate(0, 0, -3)},
		}
		closedAt := now.AddDate(0, 0, -2)
		opportunities := []model.Opportunity{
			{OpportunityID: uuid.New(), OrganizationID: organizationID, Title: "Rebrand", Stage: model.OpportunityStage_ClosedWon, Value: util.DecimalPointer(decimal.NewFromInt(5000)), CreatedAt: closedAt, UpdatedAt: &closedAt},
		}

		clientRepository.EXPECT().ListCreatedBetween(organizationID, gomock.Any(), gomock.Any()).Return(clients, nil)
		clientRepository.EXPECT().List(organizationID).Return(clients, nil)
		opportunityRepository.EXPECT().ListCreatedBetween(organizationID, gomock.Any(), gomock.Any()).Return(opportunities, nil)
		opportunityRepository.EXPECT().List(organizationID).Return(opportunities, nil)
		taskRepository.EXPECT().ListCreatedBetween(organizationID, gomock.Any(), gomock.Any()).Return([]model.Task{}, nil)

		result, err := handler.GetDashboard(context.Background(), &organizationID, "30")
		require.NoError(t, err)

		require.Equal(t, 1, result.Metrics.TotalClients)
		require.Equal(t, 1, result.Metrics.ActiveClients)
		require.Equal(t, 1, result.Metrics.WonOpportunities)
		require.True(t, result.Metrics.TotalRevenue.Equal(decimal.NewFromInt(6000)), "got %s", result.Metrics.TotalRevenue)
		require.NotEmpty(t, result.Activities)
	})

	t.Run("repository failure aborts the render", func(t *testing.T) {
		handler, clientRepository, _, _ := newTestDashboardHandler(t, now)
		organizationID := uuid.New()

		clientRepository.EXPECT().
			ListCreatedBetween(organizationID, gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("connection refused"))

		_, err := handler.GetDashboard(context.Background(), &organizationID, "30")

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to fetch dashboard data")
	})

	t.Run("serves the cached result within the staleness window", func(t *testing.T) {
		handler, clientRepository, opportunityRepository, taskRepository := newTestDashboardHandler(t, now)
		organizationID := uuid.New()

		// fetched exactly once despite two renders
		clientRepository.EXPECT().ListCreatedBetween(organizationID, gomock.Any(), gomock.Any()).Return([]model.Client{}, nil).Times(1)
		clientRepository.EXPECT().List(organizationID).Return([]model.Client{}, nil).Times(1)
		opportunityRepository.EXPECT().ListCreatedBetween(organizationID, gomock.Any(), gomock.Any()).Return([]model.Opportunity{}, nil).Times(1)
		opportunityRepository.EXPECT().List(organizationID).Return([]model.Opportunity{}, nil).Times(1)
		taskRepository.EXPECT().ListCreatedBetween(organizationID, gomock.Any(), gomock.Any()).Return([]model.Task{}, nil).Times(1)

		first, err := handler.GetDashboard(context.Background(), &organizationID, "6m")
		require.NoError(t, err)
		second, err := handler.GetDashboard(context.Background(), &organizationID, "6m")
		require.NoError(t, err)

		require.Equal(t, first.Metrics, second.Metrics)
	})

	t.Run("cache is keyed per period token", func(t *testing.T) {
		handler, clientRepository, opportunityRepository, taskRepository := newTestDashboardHandler(t, now)
		organizationID := uuid.New()

		clientRepository.EXPECT().ListCreatedBetween(organizationID, gomock.Any(), gomock.Any()).Return([]model.Client{}, nil).Times(2)
		clientRepository.EXPECT().List(organizationID).Return([]model.Client{}, nil).Times(2)
		opportunityRepository.EXPECT().ListCreatedBetween(organizationID, gomock.Any(), gomock.Any()).Return([]model.Opportunity{}, nil).Times(2)
		opportunityRepository.EXPECT().List(organizationID).Return([]model.Opportunity{}, nil).Times(2)
		taskRepository.EXPECT().ListCreatedBetween(organizationID, gomock.Any(), gomock.Any()).Return([]model.Task{}, nil).Times(2)

		_, err := handler.GetDashboard(context.Background(), &organizationID, "7")
		require.NoError(t, err)
		_, err = handler.GetDashboard(context.Background(), &organizationID, "30")
		require.NoError(t, err)
	})
}

func TestDashboardHandler_GetInsights(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("nil tenant yields no insights", func(t *testing.T) {
		handler, _, _, _ := newTestDashboardHandler(t, now)

		strategies, err := handler.GetInsights(context.Background(), nil)
		require.NoError(t, err)

		require.Empty(t, strategies)
	})

	t.Run("generates insights from tenant data", func(t *testing.T) {
		handler, clientRepository, opportunityRepository, taskRepository := newTestDashboardHandler(t, now)
		organizationID := uuid.New()

		inactiveStatus := model.ClientStatus_Inactive
		clientRepository.EXPECT().List(organizationID).Return([]model.Client{
			{ClientID: uuid.New(), Status: &inactiveStatus, MonthlyValue: util.DecimalPointer(decimal.NewFromInt(800)), CreatedAt: now.AddDate(0, -6, 0)},
		}, nil)
		opportunityRepository.EXPECT().List(organizationID).Return([]model.Opportunity{}, nil)
		taskRepository.EXPECT().List(organizationID).Return([]model.Task{}, nil)

		strategies, err := handler.GetInsights(context.Background(), &organizationID)
		require.NoError(t, err)

		require.NotEmpty(t, strategies)
		for _, strategy := range strategies {
			require.NotEmpty(t, strategy.Title)
			require.NotEmpty(t, strategy.ActionItems)
			require.GreaterOrEqual(t, strategy.UrgencyScore, 0.0)
			require.LessOrEqual(t, strategy.UrgencyScore, 100.0)
		}
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		handler, clientRepository, _, _ := newTestDashboardHandler(t, now)
		organizationID := uuid.New()

		clientRepository.EXPECT().List(organizationID).Return(nil, fmt.Errorf("connection refused"))

		_, err := handler.GetInsights(context.Background(), &organizationID)

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to fetch clients for insights")
	})
}
