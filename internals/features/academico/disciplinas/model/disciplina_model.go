// file: internals/features/academico/disciplinas/model/disciplina_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DisciplinaModel — disciplina ancorada numa turma concreta; o tenant
// resolve-se por um hop (disciplina → turma → escola).
type DisciplinaModel struct {
	DisciplinaID      uuid.UUID `gorm:"column:disciplina_id;type:uuid;default:gen_random_uuid();primaryKey" json:"disciplina_id"`
	DisciplinaTurmaID uuid.UUID `gorm:"column:disciplina_turma_id;type:uuid;not null;index" json:"disciplina_turma_id"`

	DisciplinaNome string `gorm:"column:disciplina_nome;type:varchar(100);not null" json:"disciplina_nome"`

	// Carga horária semanal em tempos lectivos (opcional)
	DisciplinaCargaSemanal *int `gorm:"column:disciplina_carga_semanal" json:"disciplina_carga_semanal,omitempty"`

	DisciplinaCreatedAt time.Time      `gorm:"column:disciplina_created_at;autoCreateTime" json:"disciplina_created_at"`
	DisciplinaUpdatedAt time.Time      `gorm:"column:disciplina_updated_at;autoUpdateTime" json:"disciplina_updated_at"`
	DisciplinaDeletedAt gorm.DeletedAt `gorm:"column:disciplina_deleted_at;index" json:"disciplina_deleted_at,omitempty"`
}

func (DisciplinaModel) TableName() string { return "disciplinas" }
