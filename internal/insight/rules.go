package insight

import (
	"agencyhub/internal/db/models/postgres/public/model"
	"agencyhub/internal/domain"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const stalledAfterDays = 7

// PipelineReactivation fires when at least one open opportunity has sat in
// the same stage for more than a week. Urgency grows with the number of
// stalled deals, capped so a huge backlog cannot blow past 100.
func PipelineReactivation(ctx Context) *domain.Strategy {
	var stalled []model.Opportunity
	stalledValue := decimal.Zero
	for _, opp := range ctx.Opportunities {
		if !isOpenStage(opp.Stage) {
			continue
		}
		if ctx.Now.Sub(opportunityUpdatedAt(opp)).Hours() > stalledAfterDays*24 {
			stalled = append(stalled, opp)
			if opp.Value != nil {
				stalledValue = stalledValue.Add(*opp.Value)
			}
		}
	}
	if len(stalled) == 0 {
		return nil
	}

	urgency := CalculateUrgencyScore(ctx.Advanced, domain.StrategyTypePipelineReactivation)
	bonus := float64(2 * len(stalled))
	if bonus > 20 {
		bonus = 20
	}

	return &domain.Strategy{
		ID:       fmt.Sprintf("pipeline-reactivation-%d", len(stalled)),
		Type:     domain.StrategyTypePipelineReactivation,
		Title:    "Reactivate stalled pipeline deals",
		Priority: priorityForUrgency(urgency + bonus),
		Description: fmt.Sprintf(
			"%d open opportunities have not moved stage in over %d days, representing %s in paused deal value. "+
				"Deals that stall this long close at a fraction of the usual rate.",
			len(stalled), stalledAfterDays, stalledValue.StringFixed(2),
		),
		Impact: "Recover paused deal value and shorten the sales cycle",
		ActionItems: []string{
			"Review each stalled opportunity and schedule a follow-up this week",
			"Requalify deals stuck in prospection for over 30 days",
			"Offer a time-boxed incentive to deals stalled in negotiation",
		},
		Confidence:       0.8,
		UrgencyScore:     ClampScore(urgency + bonus),
		PotentialRevenue: stalledValue,
	}
}

// CashFlowRisk fires when churn risk threatens the recurring revenue base.
func CashFlowRisk(ctx Context) *domain.Strategy {
	atRiskRevenue := decimal.Zero
	atRiskClients := 0
	for _, client := range ctx.Clients {
		if effectiveStatus(client) == model.ClientStatus_Inactive {
			atRiskClients++
			if client.MonthlyValue != nil {
				atRiskRevenue = atRiskRevenue.Add(*client.MonthlyValue)
			}
		}
	}
	if ctx.Advanced.ChurnRisk < 20 || atRiskClients == 0 {
		return nil
	}

	urgency := CalculateUrgencyScore(ctx.Advanced, domain.StrategyTypeCashFlow)

	return &domain.Strategy{
		ID:       fmt.Sprintf("cash-flow-%d", atRiskClients),
		Type:     domain.StrategyTypeCashFlow,
		Title:    "Protect recurring revenue",
		Priority: priorityForUrgency(urgency),
		Description: fmt.Sprintf(
			"Churn risk is at %.0f%%: %d inactive clients account for %s of monthly recurring revenue. "+
				"Losing these retainers compounds month over month.",
			ctx.Advanced.ChurnRisk, atRiskClients, atRiskRevenue.StringFixed(2),
		),
		Impact: "Stabilize monthly cash flow before renewals lapse",
		ActionItems: []string{
			"Flag inactive retainer clients for an account review",
			"Prepare renewal offers for contracts expiring this quarter",
			"Shift at-risk clients to quarterly billing to smooth cash flow",
		},
		Confidence:       0.7,
		UrgencyScore:     urgency,
		PotentialRevenue: atRiskRevenue,
	}
}

// ClientRetention fires when any client has gone inactive.
func ClientRetention(ctx Context) *domain.Strategy {
	inactiveRevenue := decimal.Zero
	inactive := 0
	for _, client := range ctx.Clients {
		if effectiveStatus(client) == model.ClientStatus_Inactive {
			inactive++
			if client.MonthlyValue != nil {
				inactiveRevenue = inactiveRevenue.Add(*client.MonthlyValue)
			}
		}
	}
	if inactive == 0 {
		return nil
	}

	urgency := CalculateUrgencyScore(ctx.Advanced, domain.StrategyTypeClientRetention)

	return &domain.Strategy{
		ID:       fmt.Sprintf("client-retention-%d", inactive),
		Type:     domain.StrategyTypeClientRetention,
		Title:    "Win back inactive clients",
		Priority: priorityForUrgency(urgency),
		Description: fmt.Sprintf(
			"%d clients are inactive while overall client health sits at %.0f%%. "+
				"Reactivating a dormant client costs far less than closing a new one.",
			inactive, ctx.Advanced.ClientHealthScore,
		),
		Impact: "Recover dormant accounts at low acquisition cost",
		ActionItems: []string{
			"Run a win-back campaign targeted at inactive clients",
			"Survey churned clients for the top three cancellation reasons",
			"Assign an owner to every account with no activity in 60 days",
		},
		Confidence:       0.75,
		UrgencyScore:     urgency,
		PotentialRevenue: inactiveRevenue,
	}
}

// TaskProductivity fires when overdue tasks pile up or the pending backlog
// dominates the board.
func TaskProductivity(ctx Context) *domain.Strategy {
	var overdue, pending int
	for _, task := range ctx.Tasks {
		if task.Status == model.TaskStatus_Completed {
			continue
		}
		if task.Status == model.TaskStatus_Pending {
			pending++
		}
		if task.DueDate != nil && task.DueDate.Before(ctx.Now) {
			overdue++
		}
	}
	pendingRatio := 0.0
	if len(ctx.Tasks) > 0 {
		pendingRatio = float64(pending) / float64(len(ctx.Tasks))
	}
	if overdue == 0 && pendingRatio <= 0.5 {
		return nil
	}

	urgency := CalculateUrgencyScore(ctx.Advanced, domain.StrategyTypeTaskProductivity)
	bonus := float64(3 * overdue)
	if bonus > 15 {
		bonus = 15
	}

	return &domain.Strategy{
		ID:       fmt.Sprintf("task-productivity-%d-%d", overdue, pending),
		Type:     domain.StrategyTypeTaskProductivity,
		Title:    "Clear the delivery backlog",
		Priority: priorityForUrgency(urgency + bonus),
		Description: fmt.Sprintf(
			"%d tasks are overdue and %d are still pending. Delivery slippage is the "+
				"leading indicator of client churn for agencies.",
			overdue, pending,
		),
		Impact: "Protect delivery commitments and team credibility",
		ActionItems: []string{
			"Triage overdue tasks in the next daily standup",
			"Reassign work from overloaded owners",
			"Set due dates on every pending task older than a week",
		},
		Confidence:       0.85,
		UrgencyScore:     ClampScore(urgency + bonus),
		PotentialRevenue: decimal.Zero,
	}
}

// SeasonalGrowth fires entering a high-demand month.
func SeasonalGrowth(ctx Context) *domain.Strategy {
	if ctx.Advanced.SeasonalImpact < 110 {
		return nil
	}

	openValue := decimal.Zero
	for _, opp := range ctx.Opportunities {
		if isOpenStage(opp.Stage) && opp.Value != nil {
			openValue = openValue.Add(*opp.Value)
		}
	}

	urgency := CalculateUrgencyScore(ctx.Advanced, domain.StrategyTypeSeasonalGrowth)

	return &domain.Strategy{
		ID:       fmt.Sprintf("seasonal-growth-%s", ctx.Now.Format("2006-01")),
		Type:     domain.StrategyTypeSeasonalGrowth,
		Title:    "Capitalize on the seasonal peak",
		Priority: priorityForUrgency(urgency),
		Description: fmt.Sprintf(
			"Seasonal demand is running at %.0f%% of baseline for %s. Campaigns launched "+
				"now convert against the strongest buying intent of the year.",
			ctx.Advanced.SeasonalImpact, ctx.Now.Month(),
		),
		Impact: "Convert peak-season demand into closed deals",
		ActionItems: []string{
			"Accelerate proposals already in negotiation before month end",
			"Launch a seasonal campaign to the prospect segment",
			"Raise ad budget while acquisition costs are seasonally low",
		},
		Confidence:       0.65,
		UrgencyScore:     urgency,
		PotentialRevenue: openValue,
	}
}

// CompetitivePositioning fires when the win rate over closed deals drops
// below half.
func CompetitivePositioning(ctx Context) *domain.Strategy {
	var closed int
	lostValue := decimal.Zero
	for _, opp := range ctx.Opportunities {
		switch opp.Stage {
		case model.OpportunityStage_ClosedWon:
			closed++
		case model.OpportunityStage_ClosedLost:
			closed++
			if opp.Value != nil {
				lostValue = lostValue.Add(*opp.Value)
			}
		}
	}
	if closed == 0 || ctx.Advanced.CompetitivePosition >= 50 {
		return nil
	}

	urgency := CalculateUrgencyScore(ctx.Advanced, domain.StrategyTypeCompetitive)

	return &domain.Strategy{
		ID:       fmt.Sprintf("competitive-positioning-%d", closed),
		Type:     domain.StrategyTypeCompetitive,
		Title:    "Reverse the losing win rate",
		Priority: priorityForUrgency(urgency),
		Description: fmt.Sprintf(
			"Only %.0f%% of closed deals are being won; %s in deal value went to "+
				"competitors. Loss patterns this consistent usually trace to pricing or positioning.",
			ctx.Advanced.CompetitivePosition, lostValue.StringFixed(2),
		),
		Impact: "Lift win rate by fixing systematic loss causes",
		ActionItems: []string{
			"Run loss reviews on the last five closed-lost deals",
			"Benchmark pricing against the two most-cited competitors",
			"Sharpen the differentiation section of every proposal template",
		},
		Confidence:       0.7,
		UrgencyScore:     urgency,
		PotentialRevenue: lostValue,
	}
}

func isOpenStage(stage model.OpportunityStage) bool {
	return stage != model.OpportunityStage_ClosedWon && stage != model.OpportunityStage_ClosedLost
}

func effectiveStatus(client model.Client) model.ClientStatus {
	if client.Status == nil {
		return model.ClientStatus_Active
	}
	return *client.Status
}

func opportunityUpdatedAt(opp model.Opportunity) time.Time {
	if opp.UpdatedAt != nil {
		return *opp.UpdatedAt
	}
	return opp.CreatedAt
}

func priorityForUrgency(urgency float64) domain.StrategyPriority {
	switch {
	case urgency >= 70:
		return domain.StrategyPriorityHigh
	case urgency >= 50:
		return domain.StrategyPriorityMedium
	default:
		return domain.StrategyPriorityLow
	}
}
