package service

import (
	"agencyhub/internal/db/models/postgres/public/model"
	mock_repository "agencyhub/internal/repository/mocks"
	"agencyhub/internal/util"
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExportService_ExportOpportunitiesCSV(t *testing.T) {
	organizationID := uuid.New()
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("writes one row per opportunity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		opportunityRepository := mock_repository.NewMockOpportunityRepository(ctrl)
		service := NewExportService(opportunityRepository)

		probability := int32(60)
		opportunityRepository.EXPECT().List(organizationID).Return([]model.Opportunity{
			{
				OpportunityID: uuid.New(),
				Title:         "Website redesign",
				Stage:         model.OpportunityStage_Proposal,
				Value:         util.DecimalPointer(decimal.NewFromInt(5000)),
				Probability:   &probability,
				CreatedAt:     createdAt,
			},
			{
				OpportunityID: uuid.New(),
				Title:         "Logo refresh",
				Stage:         model.OpportunityStage_Prospection,
				CreatedAt:     createdAt,
			},
		}, nil)

		var buf bytes.Buffer
		err := service.ExportOpportunitiesCSV(organizationID, &buf)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		require.Contains(t, lines[0], "opportunity_id")
		require.Contains(t, lines[1], "Website redesign")
		require.Contains(t, lines[1], "5000.00")
		require.Contains(t, lines[1], "60")
		require.Contains(t, lines[2], "Logo refresh")
	})

	t.Run("empty book still writes the header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		opportunityRepository := mock_repository.NewMockOpportunityRepository(ctrl)
		service := NewExportService(opportunityRepository)

		opportunityRepository.EXPECT().List(organizationID).Return([]model.Opportunity{}, nil)

		var buf bytes.Buffer
		err := service.ExportOpportunitiesCSV(organizationID, &buf)
		require.NoError(t, err)

		require.Contains(t, buf.String(), "opportunity_id")
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		opportunityRepository := mock_repository.NewMockOpportunityRepository(ctrl)
		service := NewExportService(opportunityRepository)

		opportunityRepository.EXPECT().List(organizationID).Return(nil, fmt.Errorf("connection refused"))

		var buf bytes.Buffer
		err := service.ExportOpportunitiesCSV(organizationID, &buf)

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to load opportunities for export")
	})
}
