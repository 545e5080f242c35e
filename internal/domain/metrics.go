package domain

import (
	"agencyhub/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

// RawData holds the entity collections one dashboard computation runs over.
// The in-window slices are filtered by created_at; the all-record slices are
// unfiltered because current-state counts (active clients, stage breakdowns,
// closed-in-window deals) must see rows created before the window opened.
type RawData struct {
	ClientsInWindow       []model.Client
	AllClients            []model.Client
	OpportunitiesInWindow []model.Opportunity
	AllOpportunities      []model.Opportunity
	TasksInWindow         []model.Task
}

// MetricsRecord is the flat dashboard metrics payload. Recomputed per
// request, never persisted.
type MetricsRecord struct {
	TotalClients       int             `json:"totalClients"`
	ActiveClients      int             `json:"activeClients"`
	TotalOpportunities int             `json:"totalOpportunities"`
	WonOpportunities   int             `json:"wonOpportunities"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	PendingTasks       int             `json:"pendingTasks"`
	CompletedTasks     int             `json:"completedTasks"`
	ConversionRate     float64         `json:"conversionRate"`

	OpportunitiesByStage []StageBucket  `json:"opportunitiesByStage"`
	TasksByStatus        []StatusBucket `json:"tasksByStatus"`
	ClientsByStatus      []StatusBucket `json:"clientsByStatus"`
}

type StageBucket struct {
	Stage model.OpportunityStage `json:"stage"`
	Label string                 `json:"label"`
	Count int                    `json:"count"`
}

type StatusBucket struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}
