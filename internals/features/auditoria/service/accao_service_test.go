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

	model "sgescolar_backend/internals/features/auditoria/model"
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

func TestRecordAction_TipoDesconhecidoRejeitado(t *testing.T) {
	db, _ := newTestDB(t)
	actor := uuid.New()

	err := RecordAction(db, &actor, "escola_promovida", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tipo de acção desconhecido")
}

func TestRecordAction_InsereComPayload(t *testing.T) {
	db, mock := newTestDB(t)
	actor := uuid.New()
	escolaID := uuid.New()

	mock.ExpectQuery(`INSERT INTO "accoes_admin"`).
		WillReturnRows(sqlmock.NewRows([]string{"accao_admin_id"}).AddRow(uuid.New().String()))

	err := RecordAction(db, &actor, model.AccaoEscolaBloqueada, &escolaID, map[string]any{
		"escola_nome": "Colégio Kimbanda",
		"motivo":      "propinas em dívida",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordAction_ActorNuloPermitido(t *testing.T) {
	db, mock := newTestDB(t)

	// acções de sistema (sem actor humano) são válidas
	mock.ExpectQuery(`INSERT INTO "accoes_admin"`).
		WillReturnRows(sqlmock.NewRows([]string{"accao_admin_id"}).AddRow(uuid.New().String()))

	err := RecordAction(db, nil, model.AccaoRoleRevogado, nil, nil)
	assert.NoError(t, err)
}
