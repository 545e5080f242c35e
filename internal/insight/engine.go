package insight

import (
	"agencyhub/internal/db/models/postgres/public/model"
	"agencyhub/internal/domain"
	"time"
)

// Context carries everything a rule may inspect: the tenant's unwindowed
// entity collections plus the advanced metrics derived from them.
type Context struct {
	Clients       []model.Client
	Opportunities []model.Opportunity
	Tasks         []model.Task
	Advanced      domain.AdvancedMetrics
	Now           time.Time
}

// Rule inspects the context and either emits a strategy recommendation or
// returns nil when its trigger condition is not met. Rules are independent
// and must not error - an unmet precondition is nil, not a failure.
type Rule func(ctx Context) *domain.Strategy

// Engine runs all registered rules and ranks the emitted strategies.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with all built-in generators registered.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			PipelineReactivation,
			CashFlowRisk,
			ClientRetention,
			TaskProductivity,
			SeasonalGrowth,
			CompetitivePositioning,
		},
	}
}

// Run executes every rule against ctx and returns the non-nil results
// ranked by urgency and revenue upside, truncated to the top 5.
func (e *Engine) Run(ctx Context) []domain.Strategy {
	var emitted []domain.Strategy
	for _, rule := range e.rules {
		if strategy := rule(ctx); strategy != nil {
			emitted = append(emitted, *strategy)
		}
	}
	return RankStrategies(emitted)
}
