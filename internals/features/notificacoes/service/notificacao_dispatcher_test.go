package service

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "sgescolar_backend/internals/features/notificacoes/model"
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

func TestDispatch_TipoDesconhecido(t *testing.T) {
	db, _ := newTestDB(t)

	err := Dispatch(db, uuid.New(), "alerta_meteorologico", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "desconhecido")
}

func TestDispatch_PersisteNaTransaccao(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`INSERT INTO "notificacoes"`).
		WillReturnRows(sqlmock.NewRows([]string{"notificacao_id"}).AddRow(uuid.New().String()))

	err := Dispatch(db, uuid.New(), TipoContaLigada, map[string]any{"aluno_nome": "Nzinga"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDispatch_HandlerComErroAborta(t *testing.T) {
	db, _ := newTestDB(t)

	require.NoError(t, RegisterHandler(TipoContaLigada, func(tx *gorm.DB, n *model.NotificacaoModel) error {
		return errors.New("destinatário bloqueado")
	}))
	t.Cleanup(func() { _ = RegisterHandler(TipoContaLigada, nil) })

	err := Dispatch(db, uuid.New(), TipoContaLigada, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destinatário bloqueado")
}

func TestRegisterHandler_TipoForaDoRegisto(t *testing.T) {
	err := RegisterHandler("alerta_meteorologico", nil)
	assert.Error(t, err)
}

func TestMarkAsRead_NaoDestinatarioNaoEncontra(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec(`UPDATE "notificacoes"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := MarkAsRead(db, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
