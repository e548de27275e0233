package model

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

type ptdCenario struct {
	professorID, turmaID, disciplinaID uuid.UUID
	escolaProfessor, escolaTurma       uuid.UUID
	turmaDaDisciplina                  uuid.UUID
}

func expectLookups(mock sqlmock.Sqlmock, c ptdCenario) {
	mock.ExpectQuery(`SELECT \* FROM "professores"`).
		WillReturnRows(sqlmock.NewRows([]string{"professor_id", "professor_escola_id"}).
			AddRow(c.professorID.String(), c.escolaProfessor.String()))
	mock.ExpectQuery(`SELECT \* FROM "turmas"`).
		WillReturnRows(sqlmock.NewRows([]string{"turma_id", "turma_escola_id"}).
			AddRow(c.turmaID.String(), c.escolaTurma.String()))
	mock.ExpectQuery(`SELECT \* FROM "disciplinas"`).
		WillReturnRows(sqlmock.NewRows([]string{"disciplina_id", "disciplina_turma_id"}).
			AddRow(c.disciplinaID.String(), c.turmaDaDisciplina.String()))
}

func TestPTDBeforeSave_AtribuicaoCoerente(t *testing.T) {
	db, mock := newTestDB(t)
	escola := uuid.New()
	c := ptdCenario{
		professorID:     uuid.New(),
		turmaID:         uuid.New(),
		disciplinaID:    uuid.New(),
		escolaProfessor: escola,
		escolaTurma:     escola,
	}
	c.turmaDaDisciplina = c.turmaID
	expectLookups(mock, c)

	m := PTDModel{
		PTDProfessorID:  c.professorID,
		PTDTurmaID:      c.turmaID,
		PTDDisciplinaID: c.disciplinaID,
	}
	assert.NoError(t, m.BeforeSave(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPTDBeforeSave_ProfessorDeOutraEscola(t *testing.T) {
	db, mock := newTestDB(t)
	c := ptdCenario{
		professorID:     uuid.New(),
		turmaID:         uuid.New(),
		disciplinaID:    uuid.New(),
		escolaProfessor: uuid.New(),
		escolaTurma:     uuid.New(),
	}
	c.turmaDaDisciplina = c.turmaID
	expectLookups(mock, c)

	m := PTDModel{
		PTDProfessorID:  c.professorID,
		PTDTurmaID:      c.turmaID,
		PTDDisciplinaID: c.disciplinaID,
	}
	err := m.BeforeSave(db)
	require.Error(t, err)
	// mensagem legível com os dois lados do conflito
	assert.Contains(t, err.Error(), c.escolaProfessor.String())
	assert.Contains(t, err.Error(), c.escolaTurma.String())
}

func TestPTDBeforeSave_DisciplinaDeOutraTurma(t *testing.T) {
	db, mock := newTestDB(t)
	escola := uuid.New()
	c := ptdCenario{
		professorID:       uuid.New(),
		turmaID:           uuid.New(),
		disciplinaID:      uuid.New(),
		escolaProfessor:   escola,
		escolaTurma:       escola,
		turmaDaDisciplina: uuid.New(),
	}
	expectLookups(mock, c)

	m := PTDModel{
		PTDProfessorID:  c.professorID,
		PTDTurmaID:      c.turmaID,
		PTDDisciplinaID: c.disciplinaID,
	}
	err := m.BeforeSave(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), c.turmaDaDisciplina.String())
	assert.Contains(t, err.Error(), c.turmaID.String())
}

func TestPTDBeforeSave_ErroDeInfraestruturaNaoVira404(t *testing.T) {
	db, mock := newTestDB(t)
	errInfra := errors.New("connection reset by peer")
	mock.ExpectQuery(`SELECT \* FROM "professores"`).WillReturnError(errInfra)

	m := PTDModel{
		PTDProfessorID:  uuid.New(),
		PTDTurmaID:      uuid.New(),
		PTDDisciplinaID: uuid.New(),
	}
	err := m.BeforeSave(db)
	require.Error(t, err)
	assert.ErrorIs(t, err, errInfra, "a falha da consulta propaga embrulhada")
	assert.NotContains(t, err.Error(), "não encontrado")
}

func TestPTDBeforeSave_ProfessorInexistente(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectQuery(`SELECT \* FROM "professores"`).
		WillReturnRows(sqlmock.NewRows([]string{"professor_id"}))

	m := PTDModel{
		PTDProfessorID:  uuid.New(),
		PTDTurmaID:      uuid.New(),
		PTDDisciplinaID: uuid.New(),
	}
	err := m.BeforeSave(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "não encontrado")
}
