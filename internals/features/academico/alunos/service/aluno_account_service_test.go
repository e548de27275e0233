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
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestRegisterStudentAccount_MatriculaInexistente(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "alunos"`).
		WillReturnRows(sqlmock.NewRows([]string{"aluno_id"}))
	mock.ExpectCommit()

	result, err := RegisterStudentAccount(db, uuid.New(), uuid.New())
	require.NoError(t, err, "matrícula em falta é resultado de negócio")
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "não encontrada")
}

func TestRegisterStudentAccount_SlotJaOcupado(t *testing.T) {
	db, mock := newTestDB(t)
	alunoID := uuid.New()
	outroUser := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "alunos"`).
		WillReturnRows(sqlmock.NewRows([]string{"aluno_id", "aluno_turma_id", "aluno_user_id"}).
			AddRow(alunoID.String(), uuid.New().String(), outroUser.String()))
	mock.ExpectCommit()

	result, err := RegisterStudentAccount(db, alunoID, uuid.New())
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "já está ligada a outra conta")
}

func TestRegisterStudentAccount_ContaNoutraMatricula(t *testing.T) {
	db, mock := newTestDB(t)
	alunoID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "alunos"`).
		WillReturnRows(sqlmock.NewRows([]string{"aluno_id", "aluno_turma_id"}).
			AddRow(alunoID.String(), uuid.New().String()))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "alunos"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	result, err := RegisterStudentAccount(db, alunoID, uuid.New())
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "outra matrícula")
}

func TestRegisterGuardianAccount_EncarregadoJaAssociado(t *testing.T) {
	db, mock := newTestDB(t)
	alunoID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "alunos"`).
		WillReturnRows(sqlmock.NewRows([]string{"aluno_id", "aluno_turma_id", "aluno_encarregado_user_id"}).
			AddRow(alunoID.String(), uuid.New().String(), uuid.New().String()))
	mock.ExpectCommit()

	result, err := RegisterGuardianAccount(db, alunoID, uuid.New())
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "já tem encarregado")
}
