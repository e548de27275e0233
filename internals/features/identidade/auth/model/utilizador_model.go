// file: internals/features/identidade/auth/model/utilizador_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UtilizadorModel representa a tabela utilizadores (principals).
// A identidade em si vem do fornecedor externo (JWT/Google); esta
// tabela só liga o principal ao resto do sistema.
type UtilizadorModel struct {
	UtilizadorID uuid.UUID `gorm:"column:utilizador_id;type:uuid;default:gen_random_uuid();primaryKey" json:"utilizador_id"`

	UtilizadorNome  string `gorm:"column:utilizador_nome;type:varchar(100);not null" json:"utilizador_nome"`
	UtilizadorEmail string `gorm:"column:utilizador_email;type:varchar(120);uniqueIndex;not null" json:"utilizador_email"`

	// nulo para contas criadas via Google
	UtilizadorPasswordHash *string `gorm:"column:utilizador_password_hash;type:text" json:"-"`
	UtilizadorGoogleSub    *string `gorm:"column:utilizador_google_sub;type:varchar(64);uniqueIndex" json:"-"`

	UtilizadorIsActive bool `gorm:"column:utilizador_is_active;not null;default:true" json:"utilizador_is_active"`

	UtilizadorCreatedAt time.Time      `gorm:"column:utilizador_created_at;autoCreateTime" json:"utilizador_created_at"`
	UtilizadorUpdatedAt time.Time      `gorm:"column:utilizador_updated_at;autoUpdateTime" json:"utilizador_updated_at"`
	UtilizadorDeletedAt gorm.DeletedAt `gorm:"column:utilizador_deleted_at;index" json:"utilizador_deleted_at,omitempty"`
}

func (UtilizadorModel) TableName() string { return "utilizadores" }
