// file: internals/helpers/auth/policy_scopes.go
package helper

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sgescolar_backend/internals/constants"
)

/* =========================================================
   POLICY SCOPES (leitura)

   Cada tabela protegida tem um escopo que reproduz o predicado
   de visibilidade por papel. Regras:
   - resolvem-se APENAS com a role_cache (nunca role_assignments),
     igualdade directa de escola_id, ou joins não-recursivos para
     baixo na hierarquia (Turma→Escola, Aluno→Turma→Escola);
   - superadmin activo curto-circuita e vê tudo;
   - negação = conjunto vazio (WHERE 1=0), nunca erro;
   - escopos de escrita são no mínimo tão restritos quanto os de
     leitura (narrowing adicional nos guards dos controllers).
========================================================= */

// DenyAll força conjunto vazio — a negação nunca é distinguível
// de "não existe".
func DenyAll(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

func superadminActivo(rc RoleCacheInfo) bool {
	return rc.IsActive && rc.Role == constants.RoleSuperadmin
}

func escolaActiva(rc RoleCacheInfo) bool {
	return rc.IsActive && rc.EscolaID != nil && constants.IsEscolaScopedRole(rc.Role)
}

// EscopoEscolas — tabela escolas: igualdade directa de tenant;
// direcções vêem o seu âmbito geográfico.
func EscopoEscolas(rc RoleCacheInfo) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if superadminActivo(rc) {
			return db
		}
		if rc.IsActive && rc.Role == constants.RoleDireccaoProvincial && rc.Provincia != nil {
			return db.Where("escolas.escola_provincia = ?", *rc.Provincia)
		}
		if rc.IsActive && rc.Role == constants.RoleDireccaoMunicipal && rc.Municipio != nil && rc.Provincia != nil {
			return db.Where("escolas.escola_provincia = ? AND escolas.escola_municipio = ?", *rc.Provincia, *rc.Municipio)
		}
		if escolaActiva(rc) {
			return db.Where("escolas.escola_id = ?", *rc.EscolaID)
		}
		return DenyAll(db)
	}
}

// EscopoTurmas — um salto: turma → escola.
func EscopoTurmas(rc RoleCacheInfo) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if superadminActivo(rc) {
			return db
		}
		if escolaActiva(rc) {
			return db.Where("turmas.turma_escola_id = ?", *rc.EscolaID)
		}
		if rc.IsActive && rc.Role == constants.RoleDireccaoProvincial && rc.Provincia != nil {
			return db.Joins("JOIN escolas ON escolas.escola_id = turmas.turma_escola_id").
				Where("escolas.escola_provincia = ?", *rc.Provincia)
		}
		if rc.IsActive && rc.Role == constants.RoleDireccaoMunicipal && rc.Municipio != nil && rc.Provincia != nil {
			return db.Joins("JOIN escolas ON escolas.escola_id = turmas.turma_escola_id").
				Where("escolas.escola_provincia = ? AND escolas.escola_municipio = ?", *rc.Provincia, *rc.Municipio)
		}
		return DenyAll(db)
	}
}

// EscopoDisciplinas — um salto: disciplina → turma (→ escola).
func EscopoDisciplinas(rc RoleCacheInfo) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if superadminActivo(rc) {
			return db
		}
		if escolaActiva(rc) {
			return db.Joins("JOIN turmas ON turmas.turma_id = disciplinas.disciplina_turma_id").
				Where("turmas.turma_escola_id = ?", *rc.EscolaID)
		}
		return DenyAll(db)
	}
}

// EscopoProfessores — igualdade directa de escola.
func EscopoProfessores(rc RoleCacheInfo) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if superadminActivo(rc) {
			return db
		}
		if escolaActiva(rc) {
			return db.Where("professores.professor_escola_id = ?", *rc.EscolaID)
		}
		return DenyAll(db)
	}
}

// EscopoAlunos — staff da escola via turma; aluno e encarregado
// vêem apenas a(s) linha(s) que lhes pertencem.
func EscopoAlunos(rc RoleCacheInfo) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if superadminActivo(rc) {
			return db
		}
		if !rc.IsActive {
			return DenyAll(db)
		}
		switch rc.Role {
		case constants.RoleAdminEscola, constants.RoleProfessor:
			if rc.EscolaID == nil {
				return DenyAll(db)
			}
			return db.Joins("JOIN turmas ON turmas.turma_id = alunos.aluno_turma_id").
				Where("turmas.turma_escola_id = ?", *rc.EscolaID)
		case constants.RoleAluno:
			return db.Where("alunos.aluno_user_id = ?", rc.UserID)
		case constants.RoleEncarregado:
			return db.Where("alunos.aluno_encarregado_user_id = ?", rc.UserID)
		case constants.RoleDireccaoProvincial:
			if rc.Provincia == nil {
				return DenyAll(db)
			}
			return db.Joins("JOIN turmas ON turmas.turma_id = alunos.aluno_turma_id").
				Joins("JOIN escolas ON escolas.escola_id = turmas.turma_escola_id").
				Where("escolas.escola_provincia = ?", *rc.Provincia)
		case constants.RoleDireccaoMunicipal:
			if rc.Municipio == nil || rc.Provincia == nil {
				return DenyAll(db)
			}
			return db.Joins("JOIN turmas ON turmas.turma_id = alunos.aluno_turma_id").
				Joins("JOIN escolas ON escolas.escola_id = turmas.turma_escola_id").
				Where("escolas.escola_provincia = ? AND escolas.escola_municipio = ?", *rc.Provincia, *rc.Municipio)
		}
		return DenyAll(db)
	}
}

// EscopoAssociacoes — professor_turma_disciplina via turma.
func EscopoAssociacoes(rc RoleCacheInfo) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if superadminActivo(rc) {
			return db
		}
		if escolaActiva(rc) {
			return db.Joins("JOIN turmas ON turmas.turma_id = professor_turma_disciplina.ptd_turma_id").
				Where("turmas.turma_escola_id = ?", *rc.EscolaID)
		}
		return DenyAll(db)
	}
}

// EscopoPropinas — igualdade directa de escola; aluno/encarregado
// vêem apenas as propinas do seu aluno.
func EscopoPropinas(rc RoleCacheInfo) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if superadminActivo(rc) {
			return db
		}
		if !rc.IsActive {
			return DenyAll(db)
		}
		switch rc.Role {
		case constants.RoleAdminEscola, constants.RoleProfessor:
			if rc.EscolaID == nil {
				return DenyAll(db)
			}
			return db.Where("propinas.propina_escola_id = ?", *rc.EscolaID)
		case constants.RoleAluno:
			return db.Joins("JOIN alunos ON alunos.aluno_id = propinas.propina_aluno_id").
				Where("alunos.aluno_user_id = ?", rc.UserID)
		case constants.RoleEncarregado:
			return db.Joins("JOIN alunos ON alunos.aluno_id = propinas.propina_aluno_id").
				Where("alunos.aluno_encarregado_user_id = ?", rc.UserID)
		}
		return DenyAll(db)
	}
}

// EscopoRoleAssignments — a tabela de papéis é protegida SEM se
// consultar a si própria: admin da escola vê os assignments da sua
// escola, qualquer utilizador vê o seu; tudo resolvido pela cache.
func EscopoRoleAssignments(rc RoleCacheInfo) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if superadminActivo(rc) {
			return db
		}
		if rc.IsActive && rc.Role == constants.RoleAdminEscola && rc.EscolaID != nil {
			return db.Where("role_assignments.role_assignment_escola_id = ? OR role_assignments.role_assignment_user_id = ?", *rc.EscolaID, rc.UserID)
		}
		if rc.UserID != uuid.Nil {
			return db.Where("role_assignments.role_assignment_user_id = ?", rc.UserID)
		}
		return DenyAll(db)
	}
}

// EscopoNotificacoes — cada um lê as suas.
func EscopoNotificacoes(rc RoleCacheInfo) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if superadminActivo(rc) {
			return db
		}
		return db.Where("notificacoes.notificacao_destinatario_id = ?", rc.UserID)
	}
}

// EscopoAccoesAdmin — log de auditoria só para superadmin.
func EscopoAccoesAdmin(rc RoleCacheInfo) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if superadminActivo(rc) {
			return db
		}
		return DenyAll(db)
	}
}
