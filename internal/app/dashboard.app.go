package app

import (
	"agencyhub/internal/calculator"
	"agencyhub/internal/domain"
	"agencyhub/internal/insight"
	"agencyhub/internal/repository"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// how long a computed dashboard may be served before recomputing
const dashboardStaleness = 30 * time.Second

// DashboardHandler orchestrates one dashboard render: resolve the period
// token, fetch the raw collections for the tenant, then run the pure
// calculators over them. Everything after the fetch is synchronous and
// deterministic, so results are memoized briefly per (tenant, token).
type DashboardHandler interface {
	GetDashboard(ctx context.Context, organizationID *uuid.UUID, periodToken string) (*domain.DashboardResult, error)
	GetInsights(ctx context.Context, organizationID *uuid.UUID) ([]domain.Strategy, error)
}

type dashboardHandler struct {
	ClientRepository      repository.ClientRepository
	OpportunityRepository repository.OpportunityRepository
	TaskRepository        repository.TaskRepository
	InsightEngine         *insight.Engine

	// now is swappable for tests; defaults to time.Now
	now func() time.Time

	cacheMu sync.Mutex
	cache   map[dashboardCacheKey]cachedDashboard
}

type dashboardCacheKey struct {
	organizationID uuid.UUID
	periodToken    string
}

type cachedDashboard struct {
	result     domain.DashboardResult
	computedAt time.Time
}

func NewDashboardHandler(
	clientRepository repository.ClientRepository,
	opportunityRepository repository.OpportunityRepository,
	taskRepository repository.TaskRepository,
	insightEngine *insight.Engine,
) DashboardHandler {
	return &dashboardHandler{
		ClientRepository:      clientRepository,
		OpportunityRepository: opportunityRepository,
		TaskRepository:        taskRepository,
		InsightEngine:         insightEngine,
		now:                   func() time.Time { return time.Now().UTC() },
		cache:                 map[dashboardCacheKey]cachedDashboard{},
	}
}

func (h *dashboardHandler) GetDashboard(ctx context.Context, organizationID *uuid.UUID, periodToken string) (*domain.DashboardResult, error) {
	now := h.now()

	if organizationID != nil {
		if cached, ok := h.lookupCache(*organizationID, periodToken, now); ok {
			return cached, nil
		}
	}

	interval := calculator.ResolvePeriod(periodToken, now)

	raw, err := h.fetchRawData(ctx, organizationID, interval)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard data: %w", err)
	}

	result := domain.DashboardResult{
		Period:     interval,
		Metrics:    calculator.ComputeMetrics(raw, interval),
		Activities: calculator.BuildRecentActivities(raw, interval),
	}

	if organizationID != nil {
		h.storeCache(*organizationID, periodToken, result, now)
	}

	return &result, nil
}

func (h *dashboardHandler) GetInsights(ctx context.Context, organizationID *uuid.UUID) ([]domain.Strategy, error) {
	if organizationID == nil {
		return []domain.Strategy{}, nil
	}

	clients, err := h.ClientRepository.List(*organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients for insights: %w", err)
	}
	opportunities, err := h.OpportunityRepository.List(*organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch opportunities for insights: %w", err)
	}
	tasks, err := h.TaskRepository.List(*organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks for insights: %w", err)
	}

	now := h.now()
	advanced := calculator.ComputeAdvancedMetrics(clients, opportunities, now)

	return h.InsightEngine.Run(insight.Context{
		Clients:       clients,
		Opportunities: opportunities,
		Tasks:         tasks,
		Advanced:      advanced,
		Now:           now,
	}), nil
}

// fetchRawData loads the windowed and unwindowed collections in one pass.
// A missing tenant is not an error: the dashboard renders zeroed metrics.
// Repository failures are fatal for the render - no retries, no partial
// results.
func (h *dashboardHandler) fetchRawData(_ context.Context, organizationID *uuid.UUID, interval domain.PeriodInterval) (domain.RawData, error) {
	if organizationID == nil {
		return domain.RawData{}, nil
	}
	orgID := *organizationID

	clientsInWindow, err := h.ClientRepository.ListCreatedBetween(orgID, interval.Start, interval.End)
	if err != nil {
		return domain.RawData{}, fmt.Errorf("failed to list clients in window: %w", err)
	}
	allClients, err := h.ClientRepository.List(orgID)
	if err != nil {
		return domain.RawData{}, fmt.Errorf("failed to list clients: %w", err)
	}
	opportunitiesInWindow, err := h.OpportunityRepository.ListCreatedBetween(orgID, interval.Start, interval.End)
	if err != nil {
		return domain.RawData{}, fmt.Errorf("failed to list opportunities in window: %w", err)
	}
	allOpportunities, err := h.OpportunityRepository.List(orgID)
	if err != nil {
		return domain.RawData{}, fmt.Errorf("failed to list opportunities: %w", err)
	}
	tasksInWindow, err := h.TaskRepository.ListCreatedBetween(orgID, interval.Start, interval.End)
	if err != nil {
		return domain.RawData{}, fmt.Errorf("failed to list tasks in window: %w", err)
	}

	return domain.RawData{
		ClientsInWindow:       clientsInWindow,
		AllClients:            allClients,
		OpportunitiesInWindow: opportunitiesInWindow,
		AllOpportunities:      allOpportunities,
		TasksInWindow:         tasksInWindow,
	}, nil
}

func (h *dashboardHandler) lookupCache(organizationID uuid.UUID, periodToken string, now time.Time) (*domain.DashboardResult, bool) {
	h.cacheMu.Lock()
	defer h.cacheMu.Unlock()

	key := dashboardCacheKey{organizationID: organizationID, periodToken: periodToken}
	cached, ok := h.cache[key]
	if !ok || now.Sub(cached.computedAt) > dashboardStaleness {
		return nil, false
	}
	result := cached.result
	return &result, true
}

func (h *dashboardHandler) storeCache(organizationID uuid.UUID, periodToken string, result domain.DashboardResult, now time.Time) {
	h.cacheMu.Lock()
	defer h.cacheMu.Unlock()

	key := dashboardCacheKey{organizationID: organizationID, periodToken: periodToken}
	h.cache[key] = cachedDashboard{result: result, computedAt: now}
}
