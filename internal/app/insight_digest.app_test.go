package app

import (
	"agencyhub/internal/db/models/postgres/public/model"
	"agencyhub/internal/domain"
	mock_repository "agencyhub/internal/repository/mocks"
	"agencyhub/internal/service"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeDashboardHandler returns canned insights per organization.
type fakeDashboardHandler struct {
	strategies map[uuid.UUID][]domain.Strategy
	errors     map[uuid.UUID]error
}

func (f *fakeDashboardHandler) GetDashboard(ctx context.Context, organizationID *uuid.UUID, periodToken string) (*domain.DashboardResult, error) {
	return &domain.DashboardResult{}, nil
}

func (f *fakeDashboardHandler) GetInsights(ctx context.Context, organizationID *uuid.UUID) ([]domain.Strategy, error) {
	if err := f.errors[*organizationID]; err != nil {
		return nil, err
	}
	return f.strategies[*organizationID], nil
}

func strPointer(s string) *string {
	return &s
}

func TestInsightDigestApp_SendInsightDigests(t *testing.T) {
	strategy := domain.Strategy{
		ID:               "client-retention-1",
		Type:             domain.StrategyTypeClientRetention,
		Title:            "Win back inactive clients",
		Priority:         domain.StrategyPriorityHigh,
		ActionItems:      []string{"Run a win-back campaign"},
		UrgencyScore:     65,
		PotentialRevenue: decimal.NewFromInt(900),
	}

	t.Run("sends one digest per organization with insights", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		organizationRepository := mock_repository.NewMockOrganizationRepository(ctrl)
		emailRepository := mock_repository.NewMockEmailRepository(ctrl)

		withInsights := model.Organization{OrganizationID: uuid.New(), Name: "Studio North", OwnerEmail: strPointer("owner@studionorth.io")}
		noOwner := model.Organization{OrganizationID: uuid.New(), Name: "No Owner LLC"}
		noInsights := model.Organization{OrganizationID: uuid.New(), Name: "Quiet Co", OwnerEmail: strPointer("owner@quiet.co")}

		organizationRepository.EXPECT().List().Return([]model.Organization{withInsights, noOwner, noInsights}, nil)
		emailRepository.EXPECT().SendEmail("owner@studionorth.io", gomock.Any(), gomock.Any()).Return(nil)

		digestApp := NewInsightDigestApp(
			organizationRepository,
			&fakeDashboardHandler{strategies: map[uuid.UUID][]domain.Strategy{
				withInsights.OrganizationID: {strategy},
			}},
			service.NewEmailService(emailRepository),
		)

		err := digestApp.SendInsightDigests(context.Background())
		require.NoError(t, err)
	})

	t.Run("one failing organization does not stop the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		organizationRepository := mock_repository.NewMockOrganizationRepository(ctrl)
		emailRepository := mock_repository.NewMockEmailRepository(ctrl)

		failing := model.Organization{OrganizationID: uuid.New(), Name: "Broken Inc", OwnerEmail: strPointer("owner@broken.io")}
		healthy := model.Organization{OrganizationID: uuid.New(), Name: "Studio North", OwnerEmail: strPointer("owner@studionorth.io")}

		organizationRepository.EXPECT().List().Return([]model.Organization{failing, healthy}, nil)
		emailRepository.EXPECT().SendEmail("owner@studionorth.io", gomock.Any(), gomock.Any()).Return(nil)

		digestApp := NewInsightDigestApp(
			organizationRepository,
			&fakeDashboardHandler{
				strategies: map[uuid.UUID][]domain.Strategy{
					healthy.OrganizationID: {strategy},
				},
				errors: map[uuid.UUID]error{
					failing.OrganizationID: fmt.Errorf("connection refused"),
				},
			},
			service.NewEmailService(emailRepository),
		)

		err := digestApp.SendInsightDigests(context.Background())
		require.NoError(t, err)
	})

	t.Run("organization listing failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		organizationRepository := mock_repository.NewMockOrganizationRepository(ctrl)

		organizationRepository.EXPECT().List().Return(nil, fmt.Errorf("connection refused"))

		digestApp := NewInsightDigestApp(
			organizationRepository,
			&fakeDashboardHandler{},
			service.NewEmailService(mock_repository.NewMockEmailRepository(ctrl)),
		)

		err := digestApp.SendInsightDigests(context.Background())
		require.Error(t, err)
	})
}
