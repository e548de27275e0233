package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestUpsertCacheEntry_AssignmentExistente(t *testing.T) {
	db, mock := newTestDB(t)
	userID := uuid.New()

	mock.ExpectExec(`INSERT INTO role_cache`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := UpsertCacheEntry(db, userID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertCacheEntry_AssignmentRemovidoLimpaCache(t *testing.T) {
	db, mock := newTestDB(t)
	userID := uuid.New()

	// o INSERT...SELECT não encontra assignment → 0 linhas → DELETE
	mock.ExpectExec(`INSERT INTO role_cache`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM role_cache WHERE role_cache_user_id`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := UpsertCacheEntry(db, userID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertCacheEntry_ErroAbortaOrigem(t *testing.T) {
	db, mock := newTestDB(t)
	userID := uuid.New()

	mock.ExpectExec(`INSERT INTO role_cache`).
		WithArgs(userID).
		WillReturnError(assert.AnError)

	err := UpsertCacheEntry(db, userID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role_cache sync")
}

func TestUpsertCacheEntry_UserIDNulo(t *testing.T) {
	db, _ := newTestDB(t)

	err := UpsertCacheEntry(db, uuid.Nil)
	assert.Error(t, err)
}
