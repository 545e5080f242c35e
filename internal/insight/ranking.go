package insight

import (
	"agencyhub/internal/domain"
	"sort"
)

const maxRankedStrategies = 5

// RankStrategies orders strategies by urgencyScore + potentialRevenue/10000
// descending and keeps the top 5. The revenue term lets a lower-urgency but
// high-value recommendation outrank a marginally more urgent one.
func RankStrategies(strategies []domain.Strategy) []domain.Strategy {
	ranked := make([]domain.Strategy, len(strategies))
	copy(ranked, strategies)

	sort.SliceStable(ranked, func(i, j int) bool {
		return rankScore(ranked[i]) > rankScore(ranked[j])
	})

	if len(ranked) > maxRankedStrategies {
		ranked = ranked[:maxRankedStrategies]
	}
	return ranked
}

func rankScore(s domain.Strategy) float64 {
	return s.UrgencyScore + s.PotentialRevenue.InexactFloat64()/10000
}
