package calculator

import (
	"agencyhub/internal/db/models/postgres/public/model"
	"agencyhub/internal/util"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFilterExpressionService_FilterOpportunities(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	service := NewFilterExpressionService()

	bigDealUpdated := now.AddDate(0, 0, -10)
	smallDealUpdated := now.AddDate(0, 0, -1)
	closeDate := now.AddDate(0, 0, 5)

	clientID := uuid.New()
	clients := []model.Client{
		{ClientID: clientID, Name: "Acme", Status: clientStatusPtr(model.ClientStatus_Inactive), CreatedAt: now},
	}

	opportunities := []model.Opportunity{
		{
			OpportunityID:     uuid.New(),
			ClientID:          &clientID,
			Title:             "Website redesign",
			Value:             util.DecimalPointer(decimal.NewFromInt(5000)),
			Stage:             model.OpportunityStage_Proposal,
			CreatedAt:         now.AddDate(0, 0, -20),
			UpdatedAt:         &bigDealUpdated,
			ExpectedCloseDate: &closeDate,
		},
		{
			OpportunityID: uuid.New(),
			Title:         "Logo refresh",
			Value:         util.DecimalPointer(decimal.NewFromInt(800)),
			Stage:         model.OpportunityStage_Prospection,
			CreatedAt:     now.AddDate(0, 0, -2),
			UpdatedAt:     &smallDealUpdated,
		},
		{
			OpportunityID: uuid.New(),
			Title:         "Retainer renewal",
			Stage:         model.OpportunityStage_ClosedWon,
			CreatedAt:     now.AddDate(0, -1, 0),
		},
	}

	t.Run("numeric comparison", func(t *testing.T) {
		matched, err := service.FilterOpportunities("value > 1000", opportunities, clients, now)
		require.NoError(t, err)

		require.Len(t, matched, 1)
		require.Equal(t, "Website redesign", matched[0].Title)
	})

	t.Run("stage equality and conjunction", func(t *testing.T) {
		matched, err := service.FilterOpportunities(`value > 100 && stage == "prospection"`, opportunities, clients, now)
		require.NoError(t, err)

		require.Len(t, matched, 1)
		require.Equal(t, "Logo refresh", matched[0].Title)
	})

	t.Run("isOpen excludes closed stages", func(t *testing.T) {
		matched, err := service.FilterOpportunities("isOpen", opportunities, clients, now)
		require.NoError(t, err)

		require.Len(t, matched, 2)
	})

	t.Run("clientStatus resolves through the linked client", func(t *testing.T) {
		matched, err := service.FilterOpportunities(`clientStatus == "inactive"`, opportunities, clients, now)
		require.NoError(t, err)

		require.Len(t, matched, 1)
		require.Equal(t, "Website redesign", matched[0].Title)
	})

	t.Run("daysInStage uses last stage change", func(t *testing.T) {
		matched, err := service.FilterOpportunities("daysInStage(7)", opportunities, clients, now)
		require.NoError(t, err)

		// the big deal stalled 10 days ago; the closed one a month ago
		require.Len(t, matched, 2)
	})

	t.Run("titleContains is case insensitive", func(t *testing.T) {
		matched, err := service.FilterOpportunities(`titleContains("WEBSITE")`, opportunities, clients, now)
		require.NoError(t, err)

		require.Len(t, matched, 1)
	})

	t.Run("closesWithin requires a close date", func(t *testing.T) {
		matched, err := service.FilterOpportunities("closesWithin(7)", opportunities, clients, now)
		require.NoError(t, err)

		require.Len(t, matched, 1)
		require.Equal(t, "Website redesign", matched[0].Title)
	})

	t.Run("malformed expression errors", func(t *testing.T) {
		_, err := service.FilterOpportunities("value >", opportunities, clients, now)
		require.Error(t, err)
	})

	t.Run("non boolean result errors", func(t *testing.T) {
		_, err := service.FilterOpportunities("value + 1", opportunities, clients, now)
		require.Error(t, err)
		require.ErrorContains(t, err, "boolean")
	})

	t.Run("no opportunities yields empty match set", func(t *testing.T) {
		matched, err := service.FilterOpportunities("value > 0", nil, clients, now)
		require.NoError(t, err)

		require.Empty(t, matched)
	})
}
