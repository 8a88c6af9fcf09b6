package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	apperrors "ritual/internal/dashboard/errors"
	"ritual/internal/dashboard/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestCreateServer(t *testing.T) {
	testErr := errors.New("test error")
	tests := []struct {
		name          string
		input         model.Server
		mockSetup     func(mock sqlmock.Sqlmock, server model.Server)
		expectedError error
	}{
		{
			name: "Success",
			input: model.Server{
				ID:           "ps-1",
				Name:         "llama-server",
				Description:  "Test server",
				Model:        "meta-llama/Llama-2-7b-chat-hf",
				ProviderType: "PAPERSPACE",
			},
			mockSetup: func(mock sqlmock.Sqlmock, server model.Server) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "servers"`)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedError: nil,
		},
		{
			name: "Error Server Name Already Exists",
			input: model.Server{
				ID:   "ps-2",
				Name: "llama-server",
			},
			mockSetup: func(mock sqlmock.Sqlmock, server model.Server) {
				pgErr := &pgconn.PgError{
					Code:           "23505",
					ConstraintName: "servers_name_key",
				}
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "servers"`)).
					WillReturnError(pgErr)
				mock.ExpectRollback()
			},
			expectedError: apperrors.ErrServerNameAlreadyExists,
		},
		{
			name: "Error Generic Database Error",
			input: model.Server{
				ID:   "ps-3",
				Name: "broken-server",
			},
			mockSetup: func(mock sqlmock.Sqlmock, server model.Server) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "servers"`)).
					WillReturnError(testErr)
				mock.ExpectRollback()
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewServerRepository(db)
			ctx := context.Background()

			tc.mockSetup(mock, tc.input)

			createdServer, err := repo.CreateServer(ctx, tc.input)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.input.ID, createdServer.ID)
				assert.Equal(t, tc.input.Name, createdServer.Name)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetAllServersOrderedByName(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewServerRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "description", "model", "provider_type"}).
		AddRow("ps-2", "alpha", "", "m", "PAPERSPACE").
		AddRow("ps-1", "beta", "", "m", "PAPERSPACE")
	mock.ExpectQuery(`SELECT \* FROM "servers" ORDER BY name asc`).
		WillReturnRows(rows)

	servers, err := repo.GetAllServersOrderedByName(context.Background())

	require.NoError(t, err)
	require.Len(t, servers, 2)
	assert.Equal(t, "alpha", servers[0].Name)
	assert.Equal(t, "beta", servers[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteServersByIds(t *testing.T) {
	t.Run("deletes listed servers", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewServerRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "servers" WHERE id IN ($1,$2)`)).
			WithArgs("ps-1", "ps-2").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		err := repo.DeleteServersByIds(context.Background(), []string{"ps-1", "ps-2"})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty id list issues no statement", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewServerRepository(db)

		err := repo.DeleteServersByIds(context.Background(), nil)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
