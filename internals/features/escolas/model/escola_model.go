// file: internals/features/escolas/model/escola_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// EscolaModel representa a tabela escolas — o tenant de topo.
// Toda a hierarquia (turmas, alunos, disciplinas, propinas) pertence
// transitivamente a uma escola; o delete é em cascata.
type EscolaModel struct {
	// PK
	EscolaID uuid.UUID `gorm:"column:escola_id;type:uuid;default:gen_random_uuid();primaryKey" json:"escola_id"`

	// Identidade
	EscolaNome   string `gorm:"column:escola_nome;type:varchar(150);not null" json:"escola_nome"`
	EscolaCodigo string `gorm:"column:escola_codigo;type:varchar(30);uniqueIndex;not null" json:"escola_codigo"`
	EscolaEmail  string `gorm:"column:escola_email;type:varchar(120);uniqueIndex;not null" json:"escola_email"`

	// Localização (âmbito geográfico das direcções)
	EscolaProvincia string `gorm:"column:escola_provincia;type:varchar(80);not null" json:"escola_provincia"`
	EscolaMunicipio string `gorm:"column:escola_municipio;type:varchar(80);not null" json:"escola_municipio"`

	// Níveis de ensino oferecidos (ex.: ["primario","i_ciclo","ii_ciclo"])
	EscolaNiveisEnsino pq.StringArray `gorm:"column:escola_niveis_ensino;type:text[]" json:"escola_niveis_ensino,omitempty"`

	// Dono (admin que registou a escola)
	EscolaOwnerUserID uuid.UUID `gorm:"column:escola_owner_user_id;type:uuid;not null" json:"escola_owner_user_id"`

	// Estado & bloqueio (com campos de auditoria)
	EscolaIsActive        bool       `gorm:"column:escola_is_active;not null;default:true" json:"escola_is_active"`
	EscolaIsBloqueada     bool       `gorm:"column:escola_is_bloqueada;not null;default:false" json:"escola_is_bloqueada"`
	EscolaBloqueadaMotivo *string    `gorm:"column:escola_bloqueada_motivo;type:text" json:"escola_bloqueada_motivo,omitempty"`
	EscolaBloqueadaEm     *time.Time `gorm:"column:escola_bloqueada_em" json:"escola_bloqueada_em,omitempty"`
	EscolaBloqueadaPor    *uuid.UUID `gorm:"column:escola_bloqueada_por;type:uuid" json:"escola_bloqueada_por,omitempty"`

	// Audit
	EscolaCreatedAt time.Time      `gorm:"column:escola_created_at;autoCreateTime" json:"escola_created_at"`
	EscolaUpdatedAt time.Time      `gorm:"column:escola_updated_at;autoUpdateTime" json:"escola_updated_at"`
	EscolaDeletedAt gorm.DeletedAt `gorm:"column:escola_deleted_at;index" json:"escola_deleted_at,omitempty"`
}

func (EscolaModel) TableName() string { return "escolas" }
