// file: internals/features/identidade/role_cache/service/role_cache_sync.go
package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =====================================================
   Sincronizador da role_cache

   Chamado pelos hooks de role_assignments DENTRO da mesma
   transacção do write de origem. Se a sincronização falhar,
   o erro propaga e aborta o write — a cache nunca pode
   divergir silenciosamente da fonte de verdade.
===================================================== */

// UpsertCacheEntry recalcula a linha da cache de um utilizador a partir
// de role_assignments + joins de hierarquia (escola ou direcção). Quando
// o assignment deixou de existir, a linha da cache é removida.
func UpsertCacheEntry(tx *gorm.DB, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return fmt.Errorf("role_cache sync: userID nulo")
	}

	res := tx.Exec(`
		INSERT INTO role_cache (
			role_cache_user_id,
			role_cache_role,
			role_cache_escola_id,
			role_cache_municipio,
			role_cache_provincia,
			role_cache_is_active,
			role_cache_updated_at
		)
		SELECT ra.role_assignment_user_id,
		       ra.role_assignment_role,
		       ra.role_assignment_escola_id,
		       COALESCE(e.escola_municipio, d.direccao_municipio),
		       COALESCE(e.escola_provincia, d.direccao_provincia),
		       ra.role_assignment_is_active,
		       NOW()
		FROM role_assignments ra
		LEFT JOIN escolas e   ON e.escola_id   = ra.role_assignment_escola_id
		LEFT JOIN direccoes d ON d.direccao_id = ra.role_assignment_direccao_id
		WHERE ra.role_assignment_user_id = ?
		ON CONFLICT (role_cache_user_id) DO UPDATE SET
			role_cache_role       = EXCLUDED.role_cache_role,
			role_cache_escola_id  = EXCLUDED.role_cache_escola_id,
			role_cache_municipio  = EXCLUDED.role_cache_municipio,
			role_cache_provincia  = EXCLUDED.role_cache_provincia,
			role_cache_is_active  = EXCLUDED.role_cache_is_active,
			role_cache_updated_at = EXCLUDED.role_cache_updated_at
	`, userID)
	if res.Error != nil {
		return fmt.Errorf("role_cache sync (upsert) falhou para %s: %w", userID, res.Error)
	}

	// assignment removido → remover a projecção
	if res.RowsAffected == 0 {
		if err := tx.Exec(`DELETE FROM role_cache WHERE role_cache_user_id = ?`, userID).Error; err != nil {
			return fmt.Errorf("role_cache sync (delete) falhou para %s: %w", userID, err)
		}
	}
	return nil
}
