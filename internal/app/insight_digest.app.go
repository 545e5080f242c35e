package app

import (
	"agencyhub/internal/logger"
	"agencyhub/internal/repository"
	"agencyhub/internal/service"
	"context"
)

// InsightDigestApp sends each organization an email summarizing its current
// top-ranked insight strategies. Intended to run on a schedule from
// cmd/script; one organization failing does not stop the rest.
type InsightDigestApp interface {
	SendInsightDigests(ctx context.Context) error
}

type insightDigestAppHandler struct {
	OrganizationRepository repository.OrganizationRepository
	DashboardHandler       DashboardHandler
	EmailService           service.EmailService
}

func NewInsightDigestApp(
	organizationRepository repository.OrganizationRepository,
	dashboardHandler DashboardHandler,
	emailService service.EmailService,
) InsightDigestApp {
	return &insightDigestAppHandler{
		OrganizationRepository: organizationRepository,
		DashboardHandler:       dashboardHandler,
		EmailService:           emailService,
	}
}

func (h *insightDigestAppHandler) SendInsightDigests(ctx context.Context) error {
	log := logger.FromContext(ctx)

	organizations, err := h.OrganizationRepository.List()
	if err != nil {
		return err
	}

	for _, organization := range organizations {
		if organization.OwnerEmail == nil {
			continue
		}

		orgID := organization.OrganizationID
		strategies, err := h.DashboardHandler.GetInsights(ctx, &orgID)
		if err != nil {
			log.Errorf("failed to compute insights for %s: %v", orgID, err)
			continue
		}
		if len(strategies) == 0 {
			continue
		}

		org := organization
		err = h.EmailService.SendInsightDigestEmail(&org, strategies)
		if err != nil {
			log.Errorf("failed to send digest for %s: %v", orgID, err)
			continue
		}
		log.Infof("sent insight digest to %s (%d strategies)", orgID, len(strategies))
	}

	return nil
}
