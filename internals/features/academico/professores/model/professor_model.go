// file: internals/features/academico/professores/model/professor_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfessorModel — ficha do docente dentro de uma escola. O vínculo com
// a conta de login (professor_user_id) é opcional: a ficha existe antes
// de o professor activar a conta.
type ProfessorModel struct {
	ProfessorID       uuid.UUID  `gorm:"column:professor_id;type:uuid;default:gen_random_uuid();primaryKey" json:"professor_id"`
	ProfessorEscolaID uuid.UUID  `gorm:"column:professor_escola_id;type:uuid;not null;index" json:"professor_escola_id"`
	ProfessorUserID   *uuid.UUID `gorm:"column:professor_user_id;type:uuid;index" json:"professor_user_id,omitempty"`

	ProfessorNome  string  `gorm:"column:professor_nome;type:varchar(150);not null" json:"professor_nome"`
	ProfessorEmail *string `gorm:"column:professor_email;type:varchar(120)" json:"professor_email,omitempty"`

	ProfessorIsActive bool `gorm:"column:professor_is_active;not null;default:true" json:"professor_is_active"`

	ProfessorCreatedAt time.Time      `gorm:"column:professor_created_at;autoCreateTime" json:"professor_created_at"`
	ProfessorUpdatedAt time.Time      `gorm:"column:professor_updated_at;autoUpdateTime" json:"professor_updated_at"`
	ProfessorDeletedAt gorm.DeletedAt `gorm:"column:professor_deleted_at;index" json:"professor_deleted_at,omitempty"`
}

func (ProfessorModel) TableName() string { return "professores" }
