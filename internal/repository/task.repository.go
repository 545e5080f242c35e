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

type TaskRepository interface {
	List(organizationID uuid.UUID) ([]model.Task, error)
	ListCreatedBetween(organizationID uuid.UUID, start, end time.Time) ([]model.Task, error)
}

type taskRepositoryHandler struct {
	Db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return taskRepositoryHandler{Db: db}
}

func (h taskRepositoryHandler) List(organizationID uuid.UUID) ([]model.Task, error) {
	query := table.Task.
		SELECT(table.Task.AllColumns).
		WHERE(table.Task.OrganizationID.EQ(postgres.UUID(organizationID))).
		ORDER_BY(table.Task.CreatedAt.ASC())

	result := []model.Task{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return result, nil
}

func (h taskRepositoryHandler) ListCreatedBetween(organizationID uuid.UUID, start, end time.Time) ([]model.Task, error) {
	query := table.Task.
		SELECT(table.Task.AllColumns).
		WHERE(
			table.Task.OrganizationID.EQ(postgres.UUID(organizationID)).
				AND(table.Task.CreatedAt.GT_EQ(postgres.TimestampzT(start))).
				AND(table.Task.CreatedAt.LT_EQ(postgres.TimestampzT(end))),
		).
		ORDER_BY(table.Task.CreatedAt.ASC())

	result := []model.Task{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks in window: %w", err)
	}

	return result, nil
}
