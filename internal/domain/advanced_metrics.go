package domain

// AdvancedMetrics are the secondary scores the insight generators key off.
// All values are percentages except PipelineVelocity (opportunities/day) and
// GrowthTrend (percent change, may be negative).
type AdvancedMetrics struct {
	ClientHealthScore   float64 `json:"clientHealthScore"`
	PipelineVelocity    float64 `json:"pipelineVelocity"`
	ChurnRisk           float64 `json:"churnRisk"`
	GrowthTrend         float64 `json:"growthTrend"`
	SeasonalImpact      float64 `json:"seasonalImpact"`
	CompetitivePosition float64 `json:"competitivePosition"`
}
