package domain

// DashboardResult is the full payload one dashboard render needs.
type DashboardResult struct {
	Period     PeriodInterval `json:"period"`
	Metrics    MetricsRecord  `json:"metrics"`
	Activities []ActivityItem `json:"activities"`
}
