// file: internals/features/direccoes/model/direccao_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DireccaoTipo string

const (
	DireccaoMunicipal  DireccaoTipo = "municipal"
	DireccaoProvincial DireccaoTipo = "provincial"
)

// DireccaoModel representa as direcções de educação (fiscalização
// municipal/provincial). É o tenant dos papéis de direcção e a origem
// do âmbito geográfico desnormalizado na role_cache.
type DireccaoModel struct {
	DireccaoID uuid.UUID `gorm:"column:direccao_id;type:uuid;default:gen_random_uuid();primaryKey" json:"direccao_id"`

	DireccaoNome string       `gorm:"column:direccao_nome;type:varchar(120);not null" json:"direccao_nome"`
	DireccaoTipo DireccaoTipo `gorm:"column:direccao_tipo;type:varchar(20);not null" json:"direccao_tipo"`

	DireccaoProvincia string  `gorm:"column:direccao_provincia;type:varchar(80);not null" json:"direccao_provincia"`
	DireccaoMunicipio *string `gorm:"column:direccao_municipio;type:varchar(80)" json:"direccao_municipio,omitempty"`

	DireccaoIsActive bool `gorm:"column:direccao_is_active;not null;default:true" json:"direccao_is_active"`

	DireccaoCreatedAt time.Time      `gorm:"column:direccao_created_at;autoCreateTime" json:"direccao_created_at"`
	DireccaoUpdatedAt time.Time      `gorm:"column:direccao_updated_at;autoUpdateTime" json:"direccao_updated_at"`
	DireccaoDeletedAt gorm.DeletedAt `gorm:"column:direccao_deleted_at;index" json:"direccao_deleted_at,omitempty"`
}

func (DireccaoModel) TableName() string { return "direccoes" }
