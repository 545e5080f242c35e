package domain

import "github.com/shopspring/decimal"

type StrategyType string

const (
	StrategyTypePipelineReactivation StrategyType = "pipeline_reactivation"
	StrategyTypeCashFlow             StrategyType = "cash_flow"
	StrategyTypeClientRetention      StrategyType = "client_retention"
	StrategyTypeTaskProductivity     StrategyType = "task_productivity"
	StrategyTypeSeasonalGrowth       StrategyType = "seasonal_growth"
	StrategyTypeCompetitive          StrategyType = "competitive_positioning"
)

type StrategyPriority string

const (
	StrategyPriorityLow    StrategyPriority = "low"
	StrategyPriorityMedium StrategyPriority = "medium"
	StrategyPriorityHigh   StrategyPriority = "high"
)

// Strategy is one heuristic recommendation card. Derived per request from
// the current entity snapshot and discarded after render.
type Strategy struct {
	ID               string           `json:"id"`
	Type             StrategyType     `json:"type"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Priority         StrategyPriority `json:"priority"`
	Impact           string           `json:"impact"`
	ActionItems      []string         `json:"actionItems"`
	Confidence       float64          `json:"confidence"`
	UrgencyScore     float64          `json:"urgencyScore"`
	PotentialRevenue decimal.Decimal  `json:"potentialRevenue"`
}
