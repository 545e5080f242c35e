package insight

import "agencyhub/internal/domain"

const urgencyBase = 40

// CalculateUrgencyScore produces the 0-100 urgency for a strategy type from
// the advanced metrics. Every type starts from the same base and earns fixed
// bonuses when its thresholds are crossed; generators may add their own
// signal-strength bonus on top before clamping.
func CalculateUrgencyScore(metrics domain.AdvancedMetrics, strategyType domain.StrategyType) float64 {
	score := float64(urgencyBase)

	switch strategyType {
	case domain.StrategyTypePipelineReactivation:
		if metrics.PipelineVelocity < 0.5 {
			score += 15
		}
		if metrics.GrowthTrend < 0 {
			score += 10
		}
	case domain.StrategyTypeCashFlow:
		if metrics.ChurnRisk > 30 {
			score += 20
		}
		if metrics.ClientHealthScore < 60 {
			score += 10
		}
	case domain.StrategyTypeClientRetention:
		if metrics.ChurnRisk > 20 {
			score += 15
		}
		if metrics.ClientHealthScore < 70 {
			score += 10
		}
	case domain.StrategyTypeTaskProductivity:
		if metrics.ClientHealthScore < 80 {
			score += 10
		}
	case domain.StrategyTypeSeasonalGrowth:
		if metrics.SeasonalImpact >= 120 {
			score += 15
		} else if metrics.SeasonalImpact >= 110 {
			score += 5
		}
	case domain.StrategyTypeCompetitive:
		if metrics.CompetitivePosition < 40 {
			score += 20
		} else if metrics.CompetitivePosition < 50 {
			score += 10
		}
	}

	return ClampScore(score)
}

// ClampScore bounds a score to [0, 100].
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
