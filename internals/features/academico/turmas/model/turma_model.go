// file: internals/features/academico/turmas/model/turma_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TurmaModel — turmas pertencem directamente a uma escola; é o hop
// intermédio que liga alunos e disciplinas ao tenant.
type TurmaModel struct {
	TurmaID       uuid.UUID `gorm:"column:turma_id;type:uuid;default:gen_random_uuid();primaryKey" json:"turma_id"`
	TurmaEscolaID uuid.UUID `gorm:"column:turma_escola_id;type:uuid;not null;index" json:"turma_escola_id"`

	TurmaNome string `gorm:"column:turma_nome;type:varchar(80);not null" json:"turma_nome"`

	// Ano lectivo como texto livre ("2025/2026") — o formato varia
	// entre escolas e nunca entra em aritmética.
	TurmaAnoLectivo string `gorm:"column:turma_ano_lectivo;type:varchar(20);not null" json:"turma_ano_lectivo"`

	// Classe (1..13 no sistema angolano) e turno
	TurmaClasse int    `gorm:"column:turma_classe;not null" json:"turma_classe"`
	TurmaTurno  string `gorm:"column:turma_turno;type:varchar(20);not null;default:'manha'" json:"turma_turno"`

	TurmaCreatedAt time.Time      `gorm:"column:turma_created_at;autoCreateTime" json:"turma_created_at"`
	TurmaUpdatedAt time.Time      `gorm:"column:turma_updated_at;autoUpdateTime" json:"turma_updated_at"`
	TurmaDeletedAt gorm.DeletedAt `gorm:"column:turma_deleted_at;index" json:"turma_deleted_at,omitempty"`
}

func (TurmaModel) TableName() string { return "turmas" }
