package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"ritual/internal/dashboard/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestSettingRepoWithMockDB(t *testing.T) (SettingRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open gorm db: %v", err)
	}

	repo := NewSettingRepository(gormDB)
	return repo, mock
}

func TestSettingRepository_GetAllSettings(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedCount int
		expectError   bool
	}{
		{
			name: "Success, Settings returned",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"key", "value"}).
					AddRow("redact_email", model.RedactBlock).
					AddRow("redact_name", model.RedactRedact)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "configurations"`)).
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name: "Success, No stored settings",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "configurations"`)).
					WillReturnRows(sqlmock.NewRows([]string{"key", "value"}))
			},
			expectedCount: 0,
		},
		{
			name: "Error, Database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "configurations"`)).
					WillReturnError(errors.New("db error"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSettingRepoWithMockDB(t)
			tt.mockSetup(mock)

			settings, err := repo.GetAllSettings(context.Background())

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, settings, tt.expectedCount)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSettingRepository_UpsertSettings(t *testing.T) {
	settings := []model.Setting{
		{Key: "redact_email", Value: model.RedactBlock},
		{Key: "redact_name", Value: model.RedactRedact},
	}
	upsertSQL := regexp.QuoteMeta(`INSERT INTO "configurations" ("key","value") VALUES ($1,$2) ON CONFLICT ("key") DO UPDATE SET "value"="excluded"."value"`)

	tests := []struct {
		name      string
		input     []model.Setting
		mockSetup func(mock sqlmock.Sqlmock)
		expectErr bool
	}{
		{
			name:  "Success, All settings written in one transaction",
			input: settings,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(upsertSQL).
					WithArgs(settings[0].Key, settings[0].Value).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(upsertSQL).
					WithArgs(settings[1].Key, settings[1].Value).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:      "Success, Empty input is a no-op",
			input:     nil,
			mockSetup: func(mock sqlmock.Sqlmock) {},
		},
		{
			name:  "Error, Failed write rolls back the transaction",
			input: settings,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(upsertSQL).
					WithArgs(settings[0].Key, settings[0].Value).
					WillReturnError(errors.New("db error"))
				mock.ExpectRollback()
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSettingRepoWithMockDB(t)
			tt.mockSetup(mock)

			err := repo.UpsertSettings(context.Background(), tt.input)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
