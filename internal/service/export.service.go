package service

import (
	"agencyhub/internal/db/models/postgres/public/model"
	"agencyhub/internal/repository"
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

// ExportService writes a tenant's opportunity book as CSV for the
// reporting/export surface.
type ExportService interface {
	ExportOpportunitiesCSV(organizationID uuid.UUID, w io.Writer) error
}

type exportServiceHandler struct {
	OpportunityRepository repository.OpportunityRepository
}

func NewExportService(opportunityRepository repository.OpportunityRepository) ExportService {
	return &exportServiceHandler{
		OpportunityRepository: opportunityRepository,
	}
}

type opportunityCSVRow struct {
	OpportunityID string `csv:"opportunity_id"`
	Title         string `csv:"title"`
	Stage         string `csv:"stage"`
	Value         string `csv:"value"`
	Probability   string `csv:"probability"`
	CreatedAt     string `csv:"created_at"`
	UpdatedAt     string `csv:"updated_at"`
}

func (h *exportServiceHandler) ExportOpportunitiesCSV(organizationID uuid.UUID, w io.Writer) error {
	opportunities, err := h.OpportunityRepository.List(organizationID)
	if err != nil {
		return fmt.Errorf("failed to load opportunities for export: %w", err)
	}

	rows := make([]opportunityCSVRow, 0, len(opportunities))
	for _, opp := range opportunities {
		rows = append(rows, toCSVRow(opp))
	}

	err = gocsv.Marshal(rows, w)
	if err != nil {
		return fmt.Errorf("failed to write opportunity csv: %w", err)
	}

	return nil
}

func toCSVRow(opp model.Opportunity) opportunityCSVRow {
	row := opportunityCSVRow{
		OpportunityID: opp.OpportunityID.String(),
		Title:         opp.Title,
		Stage:         opp.Stage.String(),
		CreatedAt:     opp.CreatedAt.Format(time.RFC3339),
	}
	if opp.Value != nil {
		row.Value = opp.Value.StringFixed(2)
	}
	if opp.Probability != nil {
		row.Probability = fmt.Sprintf("%d", *opp.Probability)
	}
	if opp.UpdatedAt != nil {
		row.UpdatedAt = opp.UpdatedAt.Format(time.RFC3339)
	}
	return row
}
