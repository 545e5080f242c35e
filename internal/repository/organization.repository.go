package repository

import (
	"agencyhub/internal/db/models/postgres/public/model"
	"agencyhub/internal/db/models/postgres/public/table"
	"database/sql"
	"fmt"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type OrganizationRepository interface {
	Get(organizationID uuid.UUID) (*model.Organization, error)
	List() ([]model.Organization, error)
}

type organizationRepositoryHandler struct {
	Db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) OrganizationRepository {
	return organizationRepositoryHandler{Db: db}
}

func (h organizationRepositoryHandler) Get(organizationID uuid.UUID) (*model.Organization, error) {
	query := table.Organization.
		SELECT(table.Organization.AllColumns).
		WHERE(table.Organization.OrganizationID.EQ(postgres.UUID(organizationID)))

	out := model.Organization{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &out, nil
}

func (h organizationRepositoryHandler) List() ([]model.Organization, error) {
	query := table.Organization.
		SELECT(table.Organization.AllColumns).
		ORDER_BY(table.Organization.CreatedAt.ASC())

	result := []model.Organization{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	return result, nil
}
