package domain

import (
	"time"

	"github.com/google/uuid"
)

type ActivityKind string

const (
	ActivityKindClientCreated  ActivityKind = "client_created"
	ActivityKindOpportunityWon ActivityKind = "opportunity_won"
	ActivityKindTaskCompleted  ActivityKind = "task_completed"
)

// ActivityItem is one row of the dashboard's recent-activity feed.
type ActivityItem struct {
	ID          uuid.UUID    `json:"id"`
	Kind        ActivityKind `json:"kind"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	OccurredAt  time.Time    `json:"occurredAt"`
}
