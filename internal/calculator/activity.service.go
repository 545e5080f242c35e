package calculator

import (
	"agencyhub/internal/db/models/postgres/public/model"
	"agencyhub/internal/domain"
	"fmt"
)

const maxActivityItems = 4

// BuildRecentActivities assembles the dashboard's recent-activity feed:
// the last 2 clients created, at most 1 opportunity closed-won inside the
// window, and at most 1 task completed inside the window, concatenated in
// that category order and capped at 4 items.
//
// The feed is deliberately NOT re-sorted by timestamp across categories -
// it mirrors how the dashboard has always presented it. A true
// chronological merge is a product decision, not a refactor.
func BuildRecentActivities(raw domain.RawData, interval domain.PeriodInterval) []domain.ActivityItem {
	items := []domain.ActivityItem{}

	clients := raw.AllClients
	start := len(clients) - 2
	if start < 0 {
		start = 0
	}
	for _, client := range clients[start:] {
		items = append(items, domain.ActivityItem{
			ID:          client.ClientID,
			Kind:        domain.ActivityKindClientCreated,
			Title:       "New client",
			Description: fmt.Sprintf("%s was added as a client", client.Name),
			OccurredAt:  client.CreatedAt,
		})
	}

	for _, opp := range raw.AllOpportunities {
		if opp.Stage == model.OpportunityStage_ClosedWon && interval.Contains(opportunityUpdatedAt(opp)) {
			items = append(items, domain.ActivityItem{
				ID:          opp.OpportunityID,
				Kind:        domain.ActivityKindOpportunityWon,
				Title:       "Opportunity won",
				Description: fmt.Sprintf("%s was closed", opp.Title),
				OccurredAt:  opportunityUpdatedAt(opp),
			})
			break
		}
	}

	for _, task := range raw.TasksInWindow {
		if task.Status == model.TaskStatus_Completed {
			occurredAt := task.CreatedAt
			if task.UpdatedAt != nil {
				occurredAt = *task.UpdatedAt
			}
			items = append(items, domain.ActivityItem{
				ID:          task.TaskID,
				Kind:        domain.ActivityKindTaskCompleted,
				Title:       "Task completed",
				Description: fmt.Sprintf("%s was completed", task.Title),
				OccurredAt:  occurredAt,
			})
			break
		}
	}

	if len(items) > maxActivityItems {
		items = items[:maxActivityItems]
	}
	return items
}
