package helper

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sgescolar_backend/internals/constants"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		DryRun:                 true,
	})
	require.NoError(t, err)
	return db
}

func scopeSQL(t *testing.T, db *gorm.DB, table string, scope func(*gorm.DB) *gorm.DB) (string, []any) {
	t.Helper()
	var rows []map[string]any
	tx := db.Table(table).Scopes(scope).Find(&rows)
	require.NoError(t, tx.Error)
	return tx.Statement.SQL.String(), tx.Statement.Vars
}

func ptrStr(s string) *string { return &s }

func adminDe(escolaID uuid.UUID) RoleCacheInfo {
	return RoleCacheInfo{
		UserID:   uuid.New(),
		Role:     constants.RoleAdminEscola,
		EscolaID: &escolaID,
		IsActive: true,
	}
}

func TestEscopoTurmas_AdminFiltraPorEscola(t *testing.T) {
	db := newDryRunDB(t)
	escolaID := uuid.New()

	sql, vars := scopeSQL(t, db, "turmas", EscopoTurmas(adminDe(escolaID)))

	assert.Contains(t, sql, "turmas.turma_escola_id")
	assert.Contains(t, vars, escolaID)
}

func TestEscopoTurmas_SuperadminSemFiltro(t *testing.T) {
	db := newDryRunDB(t)
	rc := RoleCacheInfo{UserID: uuid.New(), Role: constants.RoleSuperadmin, IsActive: true}

	sql, _ := scopeSQL(t, db, "turmas", EscopoTurmas(rc))

	assert.NotContains(t, sql, "WHERE")
}

func TestEscopoTurmas_SuperadminInactivoNaoVeNada(t *testing.T) {
	db := newDryRunDB(t)
	rc := RoleCacheInfo{UserID: uuid.New(), Role: constants.RoleSuperadmin, IsActive: false}

	sql, _ := scopeSQL(t, db, "turmas", EscopoTurmas(rc))

	assert.Contains(t, sql, "1 = 0")
}

func TestEscopoTurmas_DireccaoMunicipalJoinGeografico(t *testing.T) {
	db := newDryRunDB(t)
	rc := RoleCacheInfo{
		UserID:    uuid.New(),
		Role:      constants.RoleDireccaoMunicipal,
		Provincia: ptrStr("Luanda"),
		Municipio: ptrStr("Viana"),
		IsActive:  true,
	}

	sql, vars := scopeSQL(t, db, "turmas", EscopoTurmas(rc))

	assert.Contains(t, sql, "JOIN escolas")
	assert.Contains(t, sql, "escolas.escola_provincia")
	assert.Contains(t, sql, "escolas.escola_municipio")
	assert.Contains(t, vars, "Luanda")
	assert.Contains(t, vars, "Viana")
}

func TestEscopoAlunos_AlunoSoVeASuaLinha(t *testing.T) {
	db := newDryRunDB(t)
	rc := RoleCacheInfo{UserID: uuid.New(), Role: constants.RoleAluno, IsActive: true}

	sql, vars := scopeSQL(t, db, "alunos", EscopoAlunos(rc))

	assert.Contains(t, sql, "alunos.aluno_user_id")
	assert.NotContains(t, sql, "JOIN")
	assert.Contains(t, vars, rc.UserID)
}

func TestEscopoAlunos_EncarregadoVeEducandos(t *testing.T) {
	db := newDryRunDB(t)
	rc := RoleCacheInfo{UserID: uuid.New(), Role: constants.RoleEncarregado, IsActive: true}

	sql, _ := scopeSQL(t, db, "alunos", EscopoAlunos(rc))

	assert.Contains(t, sql, "alunos.aluno_encarregado_user_id")
}

func TestEscopoAlunos_StaffViaTurma(t *testing.T) {
	db := newDryRunDB(t)
	escolaID := uuid.New()

	sql, vars := scopeSQL(t, db, "alunos", EscopoAlunos(adminDe(escolaID)))

	assert.Contains(t, sql, "JOIN turmas ON turmas.turma_id = alunos.aluno_turma_id")
	assert.Contains(t, sql, "turmas.turma_escola_id")
	assert.Contains(t, vars, escolaID)
}

func TestEscopoAlunos_PapelInactivoNega(t *testing.T) {
	db := newDryRunDB(t)
	rc := RoleCacheInfo{UserID: uuid.New(), Role: constants.RoleAluno, IsActive: false}

	sql, _ := scopeSQL(t, db, "alunos", EscopoAlunos(rc))

	assert.Contains(t, sql, "1 = 0")
}

func TestEscopoRoleAssignments_AdminVeEscolaEOSeu(t *testing.T) {
	db := newDryRunDB(t)
	escolaID := uuid.New()
	rc := adminDe(escolaID)

	sql, vars := scopeSQL(t, db, "role_assignments", EscopoRoleAssignments(rc))

	assert.Contains(t, sql, "role_assignments.role_assignment_escola_id")
	assert.Contains(t, sql, "role_assignments.role_assignment_user_id")
	assert.Contains(t, vars, escolaID)
	assert.Contains(t, vars, rc.UserID)
}

func TestEscopoRoleAssignments_UtilizadorComumSoOSeu(t *testing.T) {
	db := newDryRunDB(t)
	rc := RoleCacheInfo{UserID: uuid.New(), Role: constants.RoleProfessor, IsActive: true}

	sql, vars := scopeSQL(t, db, "role_assignments", EscopoRoleAssignments(rc))

	assert.NotContains(t, sql, "role_assignment_escola_id")
	assert.Contains(t, sql, "role_assignments.role_assignment_user_id")
	assert.Contains(t, vars, rc.UserID)
}

func TestEscopoAccoesAdmin_SoSuperadmin(t *testing.T) {
	db := newDryRunDB(t)
	escolaID := uuid.New()

	sql, _ := scopeSQL(t, db, "accoes_admin", EscopoAccoesAdmin(adminDe(escolaID)))
	assert.Contains(t, sql, "1 = 0")

	super := RoleCacheInfo{UserID: uuid.New(), Role: constants.RoleSuperadmin, IsActive: true}
	sql, _ = scopeSQL(t, db, "accoes_admin", EscopoAccoesAdmin(super))
	assert.NotContains(t, sql, "1 = 0")
}

func TestEscopoPropinas_AlunoViaJoin(t *testing.T) {
	db := newDryRunDB(t)
	rc := RoleCacheInfo{UserID: uuid.New(), Role: constants.RoleAluno, IsActive: true}

	sql, _ := scopeSQL(t, db, "propinas", EscopoPropinas(rc))

	assert.Contains(t, sql, "JOIN alunos ON alunos.aluno_id = propinas.propina_aluno_id")
	assert.Contains(t, sql, "alunos.aluno_user_id")
}

func TestEscopoNotificacoes_SoDestinatario(t *testing.T) {
	db := newDryRunDB(t)
	rc := RoleCacheInfo{UserID: uuid.New(), Role: constants.RoleProfessor, IsActive: true}

	sql, vars := scopeSQL(t, db, "notificacoes", EscopoNotificacoes(rc))

	assert.Contains(t, sql, "notificacoes.notificacao_destinatario_id")
	assert.Contains(t, vars, rc.UserID)
}
