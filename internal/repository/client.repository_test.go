package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestClientRepository_List(t *testing.T) {
	organizationID := uuid.New()

	t.Run("no rows yields an empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT").
			WillReturnRows(sqlmock.NewRows([]string{
				"client.client_id",
				"client.organization_id",
				"client.name",
				"client.email",
				"client.status",
				"client.monthly_value",
				"client.created_at",
				"client.updated_at",
			}))

		repo := NewClientRepository(db)
		clients, err := repo.List(organizationID)
		require.NoError(t, err)

		require.NotNil(t, clients)
		require.Empty(t, clients)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure surfaces wrapped", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT").
			WillReturnError(sqlmock.ErrCancelled)

		repo := NewClientRepository(db)
		_, err = repo.List(organizationID)

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to list clients")
	})
}

func TestClientRepository_ListCreatedBetween(t *testing.T) {
	organizationID := uuid.New()
	start := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("query failure surfaces wrapped", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT").
			WillReturnError(sqlmock.ErrCancelled)

		repo := NewClientRepository(db)
		_, err = repo.ListCreatedBetween(organizationID, start, end)

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to list clients in window")
	})
}
