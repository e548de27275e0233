// file: internals/features/identidade/role_assignments/service/role_assignment_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "sgescolar_backend/internals/features/identidade/role_assignments/model"
)

/* =====================================================
   Escritas na fonte de verdade de papéis

   Dois writers concorrentes para o mesmo utilizador são
   resolvidos pelo unique index + ON CONFLICT: o último
   vence APENAS nos campos que determinam o papel; o id e
   o created_at originais ficam intactos (merge, não
   overwrite cego).
===================================================== */

// UpsertAssignment cria/actualiza o assignment de um utilizador.
// Os hooks do model tratam da validação e da sincronização da cache.
func UpsertAssignment(db *gorm.DB, m *model.RoleAssignmentModel) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "role_assignment_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"role_assignment_role",
			"role_assignment_escola_id",
			"role_assignment_direccao_id",
			"role_assignment_is_active",
			"role_assignment_updated_at",
		}),
	}).Create(m).Error
}

// DeactivateAssignment desactiva sem apagar (histórico preservado);
// a cache é recalculada pelo AfterSave.
func DeactivateAssignment(db *gorm.DB, userID uuid.UUID) error {
	var m model.RoleAssignmentModel
	if err := db.Where("role_assignment_user_id = ?", userID).First(&m).Error; err != nil {
		return err
	}
	m.RoleAssignmentIsActive = false
	return db.Save(&m).Error
}

// RevokeAssignment remove o assignment; o AfterDelete limpa a cache
// na mesma transacção. Revogar quem não tem papel é no-op.
func RevokeAssignment(db *gorm.DB, userID uuid.UUID) error {
	var m model.RoleAssignmentModel
	if err := db.Where("role_assignment_user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return db.Delete(&m).Error
}
