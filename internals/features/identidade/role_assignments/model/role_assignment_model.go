// file: internals/features/identidade/role_assignments/model/role_assignment_model.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sgescolar_backend/internals/constants"
	roleCacheService "sgescolar_backend/internals/features/identidade/role_cache/service"
)

// RoleAssignmentModel é a FONTE DE VERDADE de papéis: exactamente um
// assignment activo por utilizador. As políticas nunca lêem esta tabela
// directamente — usam a role_cache, mantida pelos hooks abaixo.
//
// Invariante (espelhado em CHECK no DDL):
//   superadmin            ⇔ escola_id e direccao_id nulos
//   papéis de escola      ⇒ escola_id não nulo
//   papéis de direcção    ⇒ direccao_id não nulo
type RoleAssignmentModel struct {
	RoleAssignmentID uuid.UUID `gorm:"column:role_assignment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"role_assignment_id"`

	// um assignment activo por principal
	RoleAssignmentUserID uuid.UUID `gorm:"column:role_assignment_user_id;type:uuid;uniqueIndex;not null" json:"role_assignment_user_id"`

	RoleAssignmentRole       string     `gorm:"column:role_assignment_role;type:varchar(30);not null" json:"role_assignment_role"`
	RoleAssignmentEscolaID   *uuid.UUID `gorm:"column:role_assignment_escola_id;type:uuid" json:"role_assignment_escola_id,omitempty"`
	RoleAssignmentDireccaoID *uuid.UUID `gorm:"column:role_assignment_direccao_id;type:uuid" json:"role_assignment_direccao_id,omitempty"`

	RoleAssignmentIsActive bool `gorm:"column:role_assignment_is_active;not null;default:true" json:"role_assignment_is_active"`

	RoleAssignmentCreatedAt time.Time `gorm:"column:role_assignment_created_at;autoCreateTime" json:"role_assignment_created_at"`
	RoleAssignmentUpdatedAt time.Time `gorm:"column:role_assignment_updated_at;autoUpdateTime" json:"role_assignment_updated_at"`
}

func (RoleAssignmentModel) TableName() string { return "role_assignments" }

// Validate verifica a enumeração fechada de papéis e o invariante de
// âmbito. É chamado no BeforeSave, mas é puro e testável isoladamente.
func (m *RoleAssignmentModel) Validate() error {
	if !constants.IsValidRole(m.RoleAssignmentRole) {
		return fmt.Errorf("papel desconhecido: %q", m.RoleAssignmentRole)
	}
	switch {
	case m.RoleAssignmentRole == constants.RoleSuperadmin:
		if m.RoleAssignmentEscolaID != nil || m.RoleAssignmentDireccaoID != nil {
			return fmt.Errorf("superadmin não pode ter escola nem direcção associada")
		}
	case constants.IsEscolaScopedRole(m.RoleAssignmentRole):
		if m.RoleAssignmentEscolaID == nil {
			return fmt.Errorf("o papel %q exige escola_id", m.RoleAssignmentRole)
		}
	default: // direcções
		if m.RoleAssignmentDireccaoID == nil {
			return fmt.Errorf("o papel %q exige direccao_id", m.RoleAssignmentRole)
		}
	}
	return nil
}

func (m *RoleAssignmentModel) BeforeSave(tx *gorm.DB) error {
	return m.Validate()
}

// AfterSave/AfterDelete mantêm a role_cache consistente na MESMA
// transacção. O erro propaga e aborta o write de origem — a cache
// nunca fica desactualizada num commit concluído.
func (m *RoleAssignmentModel) AfterSave(tx *gorm.DB) error {
	return roleCacheService.UpsertCacheEntry(tx, m.RoleAssignmentUserID)
}

func (m *RoleAssignmentModel) AfterDelete(tx *gorm.DB) error {
	return roleCacheService.UpsertCacheEntry(tx, m.RoleAssignmentUserID)
}
