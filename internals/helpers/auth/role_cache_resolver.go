// file: internals/helpers/auth/role_cache_resolver.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sgescolar_backend/internals/constants"
)

// RoleCacheInfo é a projecção desnormalizada do papel do utilizador,
// lida da tabela role_cache (NUNCA de role_assignments — ver política de
// recursão em internals/features/identidade/role_cache).
type RoleCacheInfo struct {
	UserID    uuid.UUID  `json:"user_id"`
	Role      string     `json:"role"`
	EscolaID  *uuid.UUID `json:"escola_id,omitempty"`
	Municipio *string    `json:"municipio,omitempty"`
	Provincia *string    `json:"provincia,omitempty"`
	IsActive  bool       `json:"is_active"`
}

/* ============================
   Leitura da cache (via DB)
============================ */

// LoadRoleCache lê a linha da cache para um utilizador. A tabela role_cache
// é isenta de escopos de política — esta query nunca passa por EscopoX.
func LoadRoleCache(db *gorm.DB, userID uuid.UUID) (RoleCacheInfo, error) {
	var rc RoleCacheInfo
	err := db.Raw(`
		SELECT role_cache_user_id  AS user_id,
		       role_cache_role     AS role,
		       role_cache_escola_id AS escola_id,
		       role_cache_municipio AS municipio,
		       role_cache_provincia AS provincia,
		       role_cache_is_active AS is_active
		FROM role_cache
		WHERE role_cache_user_id = ?
		LIMIT 1
	`, userID).Scan(&rc).Error
	if err != nil {
		return RoleCacheInfo{}, err
	}
	if rc.UserID == uuid.Nil {
		return RoleCacheInfo{}, gorm.ErrRecordNotFound
	}
	return rc, nil
}

/* ============================
   Leitura a partir do request
============================ */

// GetRoleCache devolve a projecção carregada pelo middleware de auth.
// Utilizadores autenticados sem role assignment ficam com cache vazia
// (role "") — tratados como "sem papel" e não como erro.
func GetRoleCache(c *fiber.Ctx) RoleCacheInfo {
	if v := c.Locals(LocRoleCache); v != nil {
		if rc, ok := v.(RoleCacheInfo); ok {
			return rc
		}
	}
	return RoleCacheInfo{}
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals(LocUserID).(string)
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id em falta no token")
	}
	return id, nil
}

// ResolveCurrentTenantScope devolve a escola do chamador (nil para papéis
// globais/geográficos). Equivalente RPC: resolveCurrentTenantScope().
func ResolveCurrentTenantScope(c *fiber.Ctx) *uuid.UUID {
	rc := GetRoleCache(c)
	if !rc.IsActive {
		return nil
	}
	return rc.EscolaID
}

/* ============================
   Testes de papel (só via cache)
============================ */

func IsSuperadmin(c *fiber.Ctx) bool {
	rc := GetRoleCache(c)
	return rc.IsActive && rc.Role == constants.RoleSuperadmin
}

func IsDireccaoProvincial(c *fiber.Ctx) bool {
	rc := GetRoleCache(c)
	return rc.IsActive && rc.Role == constants.RoleDireccaoProvincial
}

func IsDireccaoMunicipal(c *fiber.Ctx) bool {
	rc := GetRoleCache(c)
	return rc.IsActive && rc.Role == constants.RoleDireccaoMunicipal
}

func IsAdminEscola(c *fiber.Ctx) bool {
	rc := GetRoleCache(c)
	return rc.IsActive && rc.Role == constants.RoleAdminEscola
}

func IsProfessor(c *fiber.Ctx) bool {
	rc := GetRoleCache(c)
	return rc.IsActive && rc.Role == constants.RoleProfessor
}
