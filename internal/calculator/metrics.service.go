package calculator

import (
	"agencyhub/internal/db/models/postgres/public/model"
	"agencyhub/internal/domain"
	"time"

	"github.com/shopspring/decimal"
)

var stageLabels = map[model.OpportunityStage]string{
	model.OpportunityStage_Prospection:   "Prospection",
	model.OpportunityStage_Qualification: "Qualification",
	model.OpportunityStage_Proposal:      "Proposal",
	model.OpportunityStage_Negotiation:   "Negotiation",
	model.OpportunityStage_ClosedWon:     "Closed Won",
	model.OpportunityStage_ClosedLost:    "Closed Lost",
}

var taskStatusLabels = map[model.TaskStatus]string{
	model.TaskStatus_Pending:    "Pending",
	model.TaskStatus_InProgress: "In Progress",
	model.TaskStatus_InApproval: "In Approval",
	model.TaskStatus_Completed:  "Completed",
}

var clientStatusLabels = map[model.ClientStatus]string{
	model.ClientStatus_Active:   "Active",
	model.ClientStatus_Inactive: "Inactive",
	model.ClientStatus_Prospect: "Prospect",
}

// ComputeMetrics derives the dashboard metrics record from the raw entity
// collections. It is a total function: nil slices count as empty, nil numeric
// fields count as zero, and it never errors.
//
// Two formulas are intentionally asymmetric and must stay that way:
//   - wonOpportunities scans AllOpportunities, not OpportunitiesInWindow. A
//     deal created before the window but closed inside it still counts.
//   - totalRevenue adds the full monthly value of every currently-active
//     client on top of window-closed deal value, regardless of how long the
//     selected period is.
func ComputeMetrics(raw domain.RawData, interval domain.PeriodInterval) domain.MetricsRecord {
	record := domain.MetricsRecord{
		TotalClients:       len(raw.ClientsInWindow),
		TotalOpportunities: len(raw.OpportunitiesInWindow),
		TotalRevenue:       decimal.Zero,
	}

	closedRevenue := decimal.Zero
	for _, opp := range raw.AllOpportunities {
		if opp.Stage == model.OpportunityStage_ClosedWon && interval.Contains(opportunityUpdatedAt(opp)) {
			record.WonOpportunities++
			if opp.Value != nil {
				closedRevenue = closedRevenue.Add(*opp.Value)
			}
		}
	}

	recurringRevenue := decimal.Zero
	for _, client := range raw.AllClients {
		if EffectiveClientStatus(client) == model.ClientStatus_Active {
			record.ActiveClients++
			if client.MonthlyValue != nil {
				recurringRevenue = recurringRevenue.Add(*client.MonthlyValue)
			}
		}
	}
	record.TotalRevenue = closedRevenue.Add(recurringRevenue)

	for _, task := range raw.TasksInWindow {
		switch task.Status {
		case model.TaskStatus_Pending:
			record.PendingTasks++
		case model.TaskStatus_Completed:
			record.CompletedTasks++
		}
	}

	if record.TotalOpportunities > 0 {
		record.ConversionRate = float64(record.WonOpportunities) / float64(record.TotalOpportunities) * 100
	}

	record.OpportunitiesByStage = opportunitiesByStage(raw.AllOpportunities)
	record.TasksByStatus = tasksByStatus(raw.TasksInWindow)
	record.ClientsByStatus = clientsByStatus(raw.AllClients)

	return record
}

// opportunitiesByStage buckets all opportunities into the six stages, in
// declared enum order, including empty buckets.
func opportunitiesByStage(opportunities []model.Opportunity) []domain.StageBucket {
	counts := map[model.OpportunityStage]int{}
	for _, opp := range opportunities {
		counts[opp.Stage]++
	}

	buckets := make([]domain.StageBucket, 0, len(model.OpportunityStageAllValues))
	for _, stage := range model.OpportunityStageAllValues {
		buckets = append(buckets, domain.StageBucket{
			Stage: stage,
			Label: stageLabels[stage],
			Count: counts[stage],
		})
	}
	return buckets
}

func tasksByStatus(tasks []model.Task) []domain.StatusBucket {
	counts := map[model.TaskStatus]int{}
	for _, task := range tasks {
		counts[task.Status]++
	}

	buckets := make([]domain.StatusBucket, 0, len(model.TaskStatusAllValues))
	for _, status := range model.TaskStatusAllValues {
		buckets = append(buckets, domain.StatusBucket{
			Status: status.String(),
			Label:  taskStatusLabels[status],
			Count:  counts[status],
		})
	}
	return buckets
}

func clientsByStatus(clients []model.Client) []domain.StatusBucket {
	counts := map[model.ClientStatus]int{}
	for _, client := range clients {
		counts[EffectiveClientStatus(client)]++
	}

	buckets := make([]domain.StatusBucket, 0, len(model.ClientStatusAllValues))
	for _, status := range model.ClientStatusAllValues {
		buckets = append(buckets, domain.StatusBucket{
			Status: status.String(),
			Label:  clientStatusLabels[status],
			Count:  counts[status],
		})
	}
	return buckets
}

// EffectiveClientStatus treats a missing status as active.
func EffectiveClientStatus(client model.Client) model.ClientStatus {
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
