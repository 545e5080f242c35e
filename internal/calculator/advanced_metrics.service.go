package calculator

import (
	"agencyhub/internal/db/models/postgres/public/model"
	"agencyhub/internal/domain"
	"time"

	"github.com/montanaflynn/stats"
)

// seasonalMultipliers is the fixed calendar-month demand table. Slow months
// sit below 1.0; the year-end peak tops out at 1.4 in December.
var seasonalMultipliers = [12]float64{
	0.80, // January
	0.85, // February
	0.95, // March
	1.00, // April
	1.05, // May
	1.00, // June
	0.90, // July
	0.85, // August
	1.05, // September
	1.10, // October
	1.25, // November
	1.40, // December
}

// ComputeAdvancedMetrics derives the secondary scores the insight generators
// run on. Operates over the unwindowed collections; pure and total.
func ComputeAdvancedMetrics(clients []model.Client, opportunities []model.Opportunity, now time.Time) domain.AdvancedMetrics {
	metrics := domain.AdvancedMetrics{
		SeasonalImpact: seasonalMultipliers[now.Month()-1] * 100,
	}

	var active, inactive int
	for _, client := range clients {
		switch EffectiveClientStatus(client) {
		case model.ClientStatus_Active:
			active++
		case model.ClientStatus_Inactive:
			inactive++
		}
	}
	if len(clients) > 0 {
		metrics.ClientHealthScore = float64(active) / float64(len(clients)) * 100
		metrics.ChurnRisk = float64(inactive) / float64(len(clients)) * 100
	}

	metrics.PipelineVelocity = pipelineVelocity(opportunities, now)

	last30 := countCreatedBetween(opportunities, now.AddDate(0, 0, -30), now)
	prior30 := countCreatedBetween(opportunities, now.AddDate(0, 0, -60), now.AddDate(0, 0, -30))
	if prior30 > 0 {
		metrics.GrowthTrend = float64(last30-prior30) / float64(prior30) * 100
	}

	var won, lost int
	for _, opp := range opportunities {
		switch opp.Stage {
		case model.OpportunityStage_ClosedWon:
			won++
		case model.OpportunityStage_ClosedLost:
			lost++
		}
	}
	if won+lost > 0 {
		metrics.CompetitivePosition = float64(won) / float64(won+lost) * 100
	} else {
		metrics.CompetitivePosition = 50
	}

	return metrics
}

// pipelineVelocity is the mean number of opportunities created per day over
// the trailing 30 days.
func pipelineVelocity(opportunities []model.Opportunity, now time.Time) float64 {
	perDay := make([]float64, 30)
	windowStart := now.AddDate(0, 0, -30)
	for _, opp := range opportunities {
		if opp.CreatedAt.After(windowStart) && !opp.CreatedAt.After(now) {
			dayIndex := int(now.Sub(opp.CreatedAt).Hours() / 24)
			if dayIndex >= 0 && dayIndex < len(perDay) {
				perDay[dayIndex]++
			}
		}
	}

	velocity, err := stats.Mean(perDay)
	if err != nil {
		return 0
	}
	return velocity
}

func countCreatedBetween(opportunities []model.Opportunity, start, end time.Time) int {
	count := 0
	for _, opp := range opportunities {
		if opp.CreatedAt.After(start) && !opp.CreatedAt.After(end) {
			count++
		}
	}
	return count
}
