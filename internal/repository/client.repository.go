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

type ClientRepository interface {
	List(organizationID uuid.UUID) ([]model.Client, error)
	ListCreatedBetween(organizationID uuid.UUID, start, end time.Time) ([]model.Client, error)
	Add(c model.Client) (*model.Client, error)
}

type clientRepositoryHandler struct {
	Db *sql.DB
}

func NewClientRepository(db *sql.DB) ClientRepository {
	return clientRepositoryHandler{Db: db}
}

func (h clientRepositoryHandler) List(organizationID uuid.UUID) ([]model.Client, error) {
	query := table.Client.
		SELECT(table.Client.AllColumns).
		WHERE(table.Client.OrganizationID.EQ(postgres.UUID(organizationID))).
		ORDER_BY(table.Client.CreatedAt.ASC())

	result := []model.Client{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return result, nil
}

func (h clientRepositoryHandler) ListCreatedBetween(organizationID uuid.UUID, start, end time.Time) ([]model.Client, error) {
	query := table.Client.
		SELECT(table.Client.AllColumns).
		WHERE(
			table.Client.OrganizationID.EQ(postgres.UUID(organizationID)).
				AND(table.Client.CreatedAt.GT_EQ(postgres.TimestampzT(start))).
				AND(table.Client.CreatedAt.LT_EQ(postgres.TimestampzT(end))),
		).
		ORDER_BY(table.Client.CreatedAt.ASC())

	result := []model.Client{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients in window: %w", err)
	}

	return result, nil
}

func (h clientRepositoryHandler) Add(c model.Client) (*model.Client, error) {
	c.ClientID = uuid.New()
	c.CreatedAt = time.Now().UTC()

	query := table.Client.
		INSERT(table.Client.MutableColumns).
		MODEL(c).
		RETURNING(table.Client.AllColumns)

	out := model.Client{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert client: %w", err)
	}

	return &out, nil
}
