// file: internals/helpers/auth/authz_strict.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sgescolar_backend/internals/constants"
	helper "sgescolar_backend/internals/helpers"
)

/* =====================================================
   Guards estritos de escrita (narrowing)

   Os escopos de leitura decidem o que se VÊ; estes guards
   decidem o que se pode ESCREVER. São sempre, no mínimo,
   tão restritos quanto o escopo de leitura correspondente.
===================================================== */

func isPrivilegedStrict(c *fiber.Ctx) bool {
	// superadmin activo faz bypass em todas as tabelas
	return IsSuperadmin(c)
}

// EnsureSuperadmin — única porta de entrada das operações globais
// (bloqueio/eliminação de escolas, auditoria).
func EnsureSuperadmin(c *fiber.Ctx) error {
	if isPrivilegedStrict(c) {
		return nil
	}
	return helper.JsonError(c, fiber.StatusForbidden, "[AUTHZ strict] Apenas o superadmin pode executar esta operação")
}

// EnsureAdminEscola — escrita reservada ao admin da escola alvo.
func EnsureAdminEscola(c *fiber.Ctx, escolaID uuid.UUID) error {
	if escolaID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "escola_id obrigatório")
	}
	if isPrivilegedStrict(c) {
		return nil
	}
	rc := GetRoleCache(c)
	if !rc.IsActive || rc.EscolaID == nil || *rc.EscolaID != escolaID {
		return helper.JsonError(c, fiber.StatusForbidden, "[AUTHZ strict] Esta escola não pertence ao seu âmbito")
	}
	if rc.Role != constants.RoleAdminEscola {
		return helper.JsonError(c, fiber.StatusForbidden, "[AUTHZ strict] Apenas o admin da escola é autorizado")
	}
	return nil
}

// EnsureStaffEscola — admin ou professor da escola alvo.
func EnsureStaffEscola(c *fiber.Ctx, escolaID uuid.UUID) error {
	if escolaID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "escola_id obrigatório")
	}
	if isPrivilegedStrict(c) {
		return nil
	}
	rc := GetRoleCache(c)
	if !rc.IsActive || rc.EscolaID == nil || *rc.EscolaID != escolaID {
		return helper.JsonError(c, fiber.StatusForbidden, "[AUTHZ strict] Esta escola não pertence ao seu âmbito")
	}
	if rc.Role == constants.RoleAdminEscola || rc.Role == constants.RoleProfessor {
		return nil
	}
	return helper.JsonError(c, fiber.StatusForbidden, "[AUTHZ strict] Apenas admin ou professor da escola é autorizado")
}

// EnsureDireccao — direcções municipais/provinciais (leitura de
// relatórios e fiscalização).
func EnsureDireccao(c *fiber.Ctx) error {
	if isPrivilegedStrict(c) {
		return nil
	}
	if IsDireccaoMunicipal(c) || IsDireccaoProvincial(c) {
		return nil
	}
	return helper.JsonError(c, fiber.StatusForbidden, "[AUTHZ strict] Apenas as direcções de educação são autorizadas")
}
