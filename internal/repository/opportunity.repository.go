package repository

import (
	"agencyhub/internal/db/models/postgres/public/model"
	"agencyhub/internal/db/models/postgres/public/table"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type OpportunityRepository interface {
	List(organizationID uuid.UUID) ([]model.Opportunity, error)
	ListCreatedBetween(organizationID uuid.UUID, start, end time.Time) ([]model.Opportunity, error)
	Add(o model.Opportunity) (*model.Opportunity, error)
}

type opportunityRepositoryHandler struct {
	Db *sql.DB
}

func NewOpportunityRepository(db *sql.DB) OpportunityRepository {
	return opportunityRepositoryHandler{Db: db}
}

func (h opportunityRepositoryHandler) List(organizationID uuid.UUID) ([]model.Opportunity, error) {
	query := table.Opportunity.
		SELECT(table.Opportunity.AllColumns).
		WHERE(table.Opportunity.OrganizationID.EQ(postgres.UUID(organizationID))).
		ORDER_BY(table.Opportunity.CreatedAt.ASC())

	result := []model.Opportunity{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}

	return result, nil
}

func (h opportunityRepositoryHandler) ListCreatedBetween(organizationID uuid.UUID, start, end time.Time) ([]model.Opportunity, error) {
	query := table.Opportunity.
		SELECT(table.Opportunity.AllColumns).
		WHERE(
			table.Opportunity.OrganizationID.EQ(postgres.UUID(organizationID)).
				AND(table.Opportunity.CreatedAt.GT_EQ(postgres.TimestampzT(start))).
				AND(table.Opportunity.CreatedAt.LT_EQ(postgres.TimestampzT(end))),
		).
		ORDER_BY(table.Opportunity.CreatedAt.ASC())

	result := []model.Opportunity{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities in window: %w", err)
	}

	return result, nil
}

func (h opportunityRepositoryHandler) Add(o model.Opportunity) (*model.Opportunity, error) {
	o.OpportunityID = uuid.New()
	o.CreatedAt = time.Now().UTC()

	query := table.Opportunity.
		INSERT(table.Opportunity.MutableColumns).
		MODEL(o).
		RETURNING(table.Opportunity.AllColumns)

	out := model.Opportunity{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert opportunity: %w", err)
	}

	return &out, nil
}
