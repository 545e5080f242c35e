package calculator

import (
	"agencyhub/internal/db/models/postgres/public/model"
	"agencyhub/internal/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestBuildRecentActivities(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	interval := ResolvePeriod("30", now)

	t.Run("concatenates categories in fixed order", func(t *testing.T) {
		closedAt := now.AddDate(0, 0, -2)
		raw := domain.RawData{
			AllClients: []model.Client{
				{ClientID: uuid.New(), Name: "Acme", CreatedAt: now.AddDate(0, 0, -20)},
				{ClientID: uuid.New(), Name: "Globex", CreatedAt: now.AddDate(0, 0, -10)},
				{ClientID: uuid.New(), Name: "Initech", CreatedAt: now.AddDate(0, 0, -1)},
			},
			AllOpportunities: []model.Opportunity{
				{OpportunityID: uuid.New(), Title: "Rebrand", Stage: model.OpportunityStage_ClosedWon, CreatedAt: closedAt, UpdatedAt: &closedAt},
			},
			TasksInWindow: []model.Task{
				{TaskID: uuid.New(), Title: "Ship mockups", Status: model.TaskStatus_Completed, CreatedAt: now.AddDate(0, 0, -3)},
			},
		}

		items := BuildRecentActivities(raw, interval)

		require.Len(t, items, 4)
		require.Equal(t, domain.ActivityKindClientCreated, items[0].Kind)
		require.Equal(t, domain.ActivityKindClientCreated, items[1].Kind)
		require.Equal(t, domain.ActivityKindOpportunityWon, items[2].Kind)
		require.Equal(t, domain.ActivityKindTaskCompleted, items[3].Kind)

		// only the last two clients make the feed
		require.Contains(t, items[0].Description, "Globex")
		require.Contains(t, items[1].Description, "Initech")
	})

	t.Run("feed is not re-sorted chronologically", func(t *testing.T) {
		closedAt := now.AddDate(0, 0, -25)
		raw := domain.RawData{
			AllClients: []model.Client{
				{ClientID: uuid.New(), Name: "Acme", CreatedAt: now.AddDate(0, 0, -1)},
			},
			AllOpportunities: []model.Opportunity{
				{OpportunityID: uuid.New(), Title: "Rebrand", Stage: model.OpportunityStage_ClosedWon, CreatedAt: closedAt, UpdatedAt: &closedAt},
			},
		}

		items := BuildRecentActivities(raw, interval)

		require.Len(t, items, 2)
		// the win is older than the client add but still comes second
		require.Equal(t, domain.ActivityKindClientCreated, items[0].Kind)
		require.Equal(t, domain.ActivityKindOpportunityWon, items[1].Kind)
		require.True(t, items[1].OccurredAt.Before(items[0].OccurredAt))
	})

	t.Run("at most one win and it must close inside the window", func(t *testing.T) {
		insideWindow := now.AddDate(0, 0, -5)
		outsideWindow := now.AddDate(0, -2, 0)
		raw := domain.RawData{
			AllOpportunities: []model.Opportunity{
				{OpportunityID: uuid.New(), Title: "Stale win", Stage: model.OpportunityStage_ClosedWon, CreatedAt: outsideWindow, UpdatedAt: &outsideWindow},
				{OpportunityID: uuid.New(), Title: "Fresh win", Stage: model.OpportunityStage_ClosedWon, CreatedAt: insideWindow, UpdatedAt: &insideWindow},
				{OpportunityID: uuid.New(), Title: "Another win", Stage: model.OpportunityStage_ClosedWon, CreatedAt: insideWindow, UpdatedAt: &insideWindow},
			},
		}

		items := BuildRecentActivities(raw, interval)

		require.Len(t, items, 1)
		require.Contains(t, items[0].Description, "Fresh win")
	})

	t.Run("at most one completed task", func(t *testing.T) {
		raw := domain.RawData{
			TasksInWindow: []model.Task{
				{TaskID: uuid.New(), Title: "First", Status: model.TaskStatus_Completed, CreatedAt: now.AddDate(0, 0, -4)},
				{TaskID: uuid.New(), Title: "Second", Status: model.TaskStatus_Completed, CreatedAt: now.AddDate(0, 0, -2)},
				{TaskID: uuid.New(), Title: "Open", Status: model.TaskStatus_Pending, CreatedAt: now.AddDate(0, 0, -1)},
			},
		}

		items := BuildRecentActivities(raw, interval)

		require.Len(t, items, 1)
		require.Equal(t, domain.ActivityKindTaskCompleted, items[0].Kind)
		require.Contains(t, items[0].Description, "First")
	})

	t.Run("empty input yields an empty feed", func(t *testing.T) {
		items := BuildRecentActivities(domain.RawData{}, interval)

		require.NotNil(t, items)
		require.Empty(t, items)
	})
}
