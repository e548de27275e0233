// file: internals/features/identidade/role_cache/model/role_cache_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// RoleCacheModel representa a tabela role_cache: projecção desnormalizada
// de role_assignments (papel + âmbito geográfico) usada pelos escopos de
// política. A tabela é deliberadamente ISENTA de escopos — proteger a
// cache com o próprio motor que depende dela criaria recursão infinita.
// Só guarda papel/âmbito, nunca dados pessoais.
type RoleCacheModel struct {
	// PK = utilizador (uma linha por principal)
	RoleCacheUserID uuid.UUID `gorm:"column:role_cache_user_id;type:uuid;primaryKey" json:"role_cache_user_id"`

	RoleCacheRole     string     `gorm:"column:role_cache_role;type:varchar(30);not null" json:"role_cache_role"`
	RoleCacheEscolaID *uuid.UUID `gorm:"column:role_cache_escola_id;type:uuid" json:"role_cache_escola_id,omitempty"`

	// Âmbito geográfico desnormalizado (resolvido via escola ou direcção)
	RoleCacheMunicipio *string `gorm:"column:role_cache_municipio;type:varchar(80)" json:"role_cache_municipio,omitempty"`
	RoleCacheProvincia *string `gorm:"column:role_cache_provincia;type:varchar(80)" json:"role_cache_provincia,omitempty"`

	RoleCacheIsActive  bool      `gorm:"column:role_cache_is_active;not null;default:true" json:"role_cache_is_active"`
	RoleCacheUpdatedAt time.Time `gorm:"column:role_cache_updated_at;autoUpdateTime" json:"role_cache_updated_at"`
}

func (RoleCacheModel) TableName() string { return "role_cache" }
