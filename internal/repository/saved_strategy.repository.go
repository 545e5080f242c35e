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

type SavedStrategyRepository interface {
	Add(s model.SavedStrategy) (*model.SavedStrategy, error)
	List(organizationID uuid.UUID) ([]model.SavedStrategy, error)
}

type savedStrategyRepositoryHandler struct {
	Db *sql.DB
}

func NewSavedStrategyRepository(db *sql.DB) SavedStrategyRepository {
	return savedStrategyRepositoryHandler{Db: db}
}

func (h savedStrategyRepositoryHandler) Add(s model.SavedStrategy) (*model.SavedStrategy, error) {
	s.SavedStrategyID = uuid.New()
	s.CreatedAt = time.Now().UTC()

	query := table.SavedStrategy.
		INSERT(table.SavedStrategy.MutableColumns).
		MODEL(s).
		RETURNING(table.SavedStrategy.AllColumns)

	out := model.SavedStrategy{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert saved strategy: %w", err)
	}

	return &out, nil
}

func (h savedStrategyRepositoryHandler) List(organizationID uuid.UUID) ([]model.SavedStrategy, error) {
	query := table.SavedStrategy.
		SELECT(table.SavedStrategy.AllColumns).
		WHERE(table.SavedStrategy.OrganizationID.EQ(postgres.UUID(organizationID))).
		ORDER_BY(table.SavedStrategy.CreatedAt.DESC())

	result := []model.SavedStrategy{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved strategies: %w", err)
	}

	return result, nil
}
