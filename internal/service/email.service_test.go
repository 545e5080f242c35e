package service

import (
	"agencyhub/internal/db/models/postgres/public/model"
	"agencyhub/internal/domain"
	mock_repository "agencyhub/internal/repository/mocks"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPointer(s string) *string {
	return &s
}

func sampleStrategies() []domain.Strategy {
	return []domain.Strategy{
		{
			ID:          "client-retention-2",
			Type:        domain.StrategyTypeClientRetention,
			Title:       "Win back inactive clients",
			Priority:    domain.StrategyPriorityHigh,
			Description: "2 clients are inactive.",
			ActionItems: []string{
				"Run a win-back campaign targeted at inactive clients",
			},
			UrgencyScore:     65,
			PotentialRevenue: decimal.NewFromInt(1800),
		},
		{
			ID:          "seasonal-growth-2024-11",
			Type:        domain.StrategyTypeSeasonalGrowth,
			Title:       "Capitalize on the seasonal peak",
			Priority:    domain.StrategyPriorityMedium,
			Description: "Seasonal demand is running hot.",
			ActionItems: []string{
				"Launch a seasonal campaign to the prospect segment",
			},
			UrgencyScore:     45,
			PotentialRevenue: decimal.NewFromInt(2500),
		},
	}
}

func TestEmailService_GenerateInsightDigestEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewEmailService(mock_repository.NewMockEmailRepository(ctrl))

	organization := &model.Organization{
		OrganizationID: uuid.New(),
		Name:           "Studio North",
		OwnerEmail:     strPointer("owner@studionorth.io"),
	}

	subject, body, err := service.GenerateInsightDigestEmail(organization, sampleStrategies())
	require.NoError(t, err)

	require.Equal(t, "Studio North: 2 recommended actions for your agency", subject)
	require.Contains(t, body, "Studio North")
	require.Contains(t, body, "Win back inactive clients")
	require.Contains(t, body, "Capitalize on the seasonal peak")
	require.Contains(t, body, "Run a win-back campaign targeted at inactive clients")
	require.Contains(t, body, "high priority")
}

func TestEmailService_SendInsightDigestEmail(t *testing.T) {
	organization := &model.Organization{
		OrganizationID: uuid.New(),
		Name:           "Studio North",
		OwnerEmail:     strPointer("owner@studionorth.io"),
	}

	t.Run("sends rendered digest to the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emailRepository := mock_repository.NewMockEmailRepository(ctrl)
		service := NewEmailService(emailRepository)

		emailRepository.EXPECT().
			SendEmail("owner@studionorth.io", gomock.Any(), gomock.Any()).
			Return(nil)

		err := service.SendInsightDigestEmail(organization, sampleStrategies())
		require.NoError(t, err)
	})

	t.Run("errors without an owner email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewEmailService(mock_repository.NewMockEmailRepository(ctrl))

		err := service.SendInsightDigestEmail(&model.Organization{
			OrganizationID: uuid.New(),
			Name:           "No Owner LLC",
		}, sampleStrategies())

		require.Error(t, err)
		require.ErrorContains(t, err, "no owner email")
	})

	t.Run("propagates transport failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emailRepository := mock_repository.NewMockEmailRepository(ctrl)
		service := NewEmailService(emailRepository)

		emailRepository.EXPECT().
			SendEmail(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("ses throttled"))

		err := service.SendInsightDigestEmail(organization, sampleStrategies())

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to send insight digest")
	})
}
