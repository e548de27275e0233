package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sgescolar_backend/internals/features/escolas/dto"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func registerReq() *dto.EscolaRegisterRequest {
	return &dto.EscolaRegisterRequest{
		EscolaNome:      "Colégio Kimbanda",
		EscolaCodigo:    "CKIM",
		EscolaEmail:     "geral@ckim.ao",
		EscolaProvincia: "Luanda",
		EscolaMunicipio: "Belas",
	}
}

func TestRegisterSchoolTenant_DonoJaTemEscola(t *testing.T) {
	db, mock := newTestDB(t)
	owner := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "escolas" WHERE escola_owner_user_id`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	result, err := RegisterSchoolTenant(db, owner, registerReq())
	require.NoError(t, err, "conflito é resultado de negócio, não fault")
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "já possui uma escola")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterSchoolTenant_CodigoDuplicado(t *testing.T) {
	db, mock := newTestDB(t)
	owner := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "escolas" WHERE escola_owner_user_id`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "escolas" WHERE LOWER\(escola_codigo\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	result, err := RegisterSchoolTenant(db, owner, registerReq())
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "CKIM")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterSchoolTenant_EmailDuplicado(t *testing.T) {
	db, mock := newTestDB(t)
	owner := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "escolas" WHERE escola_owner_user_id`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "escolas" WHERE LOWER\(escola_codigo\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "escolas" WHERE LOWER\(escola_email\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	result, err := RegisterSchoolTenant(db, owner, registerReq())
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "geral@ckim.ao")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Corrida entre dois registos com o mesmo código: o perdedor passa os
// counts mas cai no índice único do INSERT — o contrato continua a ser
// resultado estruturado, não fault.
func TestRegisterSchoolTenant_CorridaNoIndiceUnico(t *testing.T) {
	db, mock := newTestDB(t)
	owner := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "escolas" WHERE escola_owner_user_id`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "escolas" WHERE LOWER\(escola_codigo\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "escolas" WHERE LOWER\(escola_email\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "escolas"`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "idx_escolas_escola_codigo"})
	mock.ExpectRollback()

	result, err := RegisterSchoolTenant(db, owner, registerReq())
	require.NoError(t, err, "violação de unicidade na corrida volta como resultado de negócio")
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "código")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A ordem das expectativas do mock é estrita: o INSERT no log de
// auditoria TEM de acontecer antes de qualquer DELETE.
func TestEliminarEscolaComAuditoria_LogAntesDoDelete(t *testing.T) {
	db, mock := newTestDB(t)
	actor := uuid.New()
	escolaID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "escolas"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"escola_id", "escola_nome", "escola_codigo",
			"escola_provincia", "escola_municipio", "escola_owner_user_id",
		}).AddRow(
			escolaID.String(), "Colégio Kimbanda", "CKIM",
			"Luanda", "Belas", uuid.New().String(),
		))
	mock.ExpectQuery(`INSERT INTO "accoes_admin"`).
		WillReturnRows(sqlmock.NewRows([]string{"accao_admin_id"}).AddRow(uuid.New().String()))
	mock.ExpectExec(`DELETE FROM role_cache WHERE role_cache_escola_id`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM role_assignments WHERE role_assignment_escola_id`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "escolas"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := EliminarEscolaComAuditoria(db, actor, escolaID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEliminarEscolaComAuditoria_NaoEncontrada(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "escolas"`).
		WillReturnRows(sqlmock.NewRows([]string{"escola_id"}))
	mock.ExpectRollback()

	err := EliminarEscolaComAuditoria(db, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrEscolaNaoEncontrada)
}
