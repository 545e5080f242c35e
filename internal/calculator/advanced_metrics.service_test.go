package calculator

import (
	"agencyhub/internal/db/models/postgres/public/model"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestComputeAdvancedMetrics(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	newClient := func(status model.ClientStatus) model.Client {
		return model.Client{ClientID: uuid.New(), Status: clientStatusPtr(status), CreatedAt: now}
	}
	newOpportunity := func(stage model.OpportunityStage, createdAt time.Time) model.Opportunity {
		return model.Opportunity{OpportunityID: uuid.New(), Stage: stage, CreatedAt: createdAt}
	}

	t.Run("health and churn from client status split", func(t *testing.T) {
		clients := []model.Client{}
		for i := 0; i < 7; i++ {
			clients = append(clients, newClient(model.ClientStatus_Active))
		}
		for i := 0; i < 2; i++ {
			clients = append(clients, newClient(model.ClientStatus_Inactive))
		}
		clients = append(clients, newClient(model.ClientStatus_Prospect))

		metrics := ComputeAdvancedMetrics(clients, nil, now)

		require.InDelta(t, 70.0, metrics.ClientHealthScore, 1e-9)
		require.InDelta(t, 20.0, metrics.ChurnRisk, 1e-9)
	})

	t.Run("no clients leaves health and churn at zero", func(t *testing.T) {
		metrics := ComputeAdvancedMetrics(nil, nil, now)

		require.Zero(t, metrics.ClientHealthScore)
		require.Zero(t, metrics.ChurnRisk)
	})

	t.Run("pipeline velocity averages creations over thirty days", func(t *testing.T) {
		opportunities := []model.Opportunity{
			newOpportunity(model.OpportunityStage_Prospection, now.AddDate(0, 0, -1)),
			newOpportunity(model.OpportunityStage_Proposal, now.AddDate(0, 0, -5)),
			newOpportunity(model.OpportunityStage_Negotiation, now.AddDate(0, 0, -10)),
			// outside the trailing window, ignored
			newOpportunity(model.OpportunityStage_Prospection, now.AddDate(0, 0, -45)),
		}

		metrics := ComputeAdvancedMetrics(nil, opportunities, now)

		require.InDelta(t, 0.1, metrics.PipelineVelocity, 1e-9)
	})

	t.Run("growth trend compares trailing thirty day halves", func(t *testing.T) {
		opportunities := []model.Opportunity{
			newOpportunity(model.OpportunityStage_Prospection, now.AddDate(0, 0, -3)),
			newOpportunity(model.OpportunityStage_Prospection, now.AddDate(0, 0, -7)),
			newOpportunity(model.OpportunityStage_Prospection, now.AddDate(0, 0, -40)),
		}

		metrics := ComputeAdvancedMetrics(nil, opportunities, now)

		// 2 recent vs 1 prior
		require.InDelta(t, 100.0, metrics.GrowthTrend, 1e-9)
	})

	t.Run("growth trend is zero without a prior baseline", func(t *testing.T) {
		opportunities := []model.Opportunity{
			newOpportunity(model.OpportunityStage_Prospection, now.AddDate(0, 0, -3)),
		}

		metrics := ComputeAdvancedMetrics(nil, opportunities, now)

		require.Zero(t, metrics.GrowthTrend)
	})

	t.Run("competitive position is the closed deal win rate", func(t *testing.T) {
		opportunities := []model.Opportunity{
			newOpportunity(model.OpportunityStage_ClosedWon, now.AddDate(0, -2, 0)),
			newOpportunity(model.OpportunityStage_ClosedLost, now.AddDate(0, -2, 0)),
			newOpportunity(model.OpportunityStage_ClosedLost, now.AddDate(0, -2, 0)),
			newOpportunity(model.OpportunityStage_ClosedLost, now.AddDate(0, -2, 0)),
			// open deals do not affect the ratio
			newOpportunity(model.OpportunityStage_Proposal, now.AddDate(0, -2, 0)),
		}

		metrics := ComputeAdvancedMetrics(nil, opportunities, now)

		require.InDelta(t, 25.0, metrics.CompetitivePosition, 1e-9)
	})

	t.Run("competitive position defaults to fifty with no closed deals", func(t *testing.T) {
		opportunities := []model.Opportunity{
			newOpportunity(model.OpportunityStage_Proposal, now),
		}

		metrics := ComputeAdvancedMetrics(nil, opportunities, now)

		require.Equal(t, 50.0, metrics.CompetitivePosition)
	})

	t.Run("seasonal impact follows the calendar month", func(t *testing.T) {
		june := ComputeAdvancedMetrics(nil, nil, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
		december := ComputeAdvancedMetrics(nil, nil, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
		january := ComputeAdvancedMetrics(nil, nil, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

		require.InDelta(t, 100.0, june.SeasonalImpact, 1e-9)
		require.InDelta(t, 140.0, december.SeasonalImpact, 1e-9)
		require.InDelta(t, 80.0, january.SeasonalImpact, 1e-9)
	})
}
