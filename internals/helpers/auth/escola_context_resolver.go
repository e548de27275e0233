// file: internals/helpers/auth/escola_context_resolver.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EscolaContext struct {
	ID     uuid.UUID
	Codigo string
}

var (
	ErrEscolaContextMissing = fiber.NewError(fiber.StatusBadRequest, "Contexto de escola não encontrado. Envie :escola_id no path, header X-Active-Escola-ID ou query ?escola_id.")
)

/* ============================
   Resolver código → ID (via DB)
============================ */
func GetEscolaIDByCodigo(c *fiber.Ctx, codigo string) (uuid.UUID, error) {
	dbAny := c.Locals("db")
	if dbAny == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "DB context não disponível")
	}
	db, ok := dbAny.(*gorm.DB)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "DB context inválido")
	}

	var id uuid.UUID
	// case-insensitive & apenas escolas vivas
	if err := db.Raw(`
		SELECT escola_id
		FROM escolas
		WHERE LOWER(escola_codigo) = LOWER(?) AND escola_deleted_at IS NULL
		LIMIT 1
	`, strings.TrimSpace(codigo)).Scan(&id).Error; err != nil {
		return uuid.Nil, err
	}
	if id == uuid.Nil {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	return id, nil
}

/* ==========================================
   Resolve contexto: path → header → query → cache
========================================== */
func ResolveEscolaContext(c *fiber.Ctx) (EscolaContext, error) {
	// 1) path
	if id := strings.TrimSpace(c.Params("escola_id")); id != "" {
		if uid, err := uuid.Parse(id); err == nil {
			return EscolaContext{ID: uid}, nil
		}
	}
	if codigo := strings.TrimSpace(c.Params("escola_codigo")); codigo != "" {
		return EscolaContext{Codigo: codigo}, nil
	}

	// 2) header
	if h := strings.TrimSpace(c.Get("X-Active-Escola-ID")); h != "" {
		if uid, err := uuid.Parse(h); err == nil {
			return EscolaContext{ID: uid}, nil
		}
	}

	// 3) query
	if q := strings.TrimSpace(c.Query("escola_id")); q != "" {
		if uid, err := uuid.Parse(q); err == nil {
			return EscolaContext{ID: uid}, nil
		}
	}

	// 4) fallback: escola da role_cache (single-tenant)
	if id := ResolveCurrentTenantScope(c); id != nil && *id != uuid.Nil {
		return EscolaContext{ID: *id}, nil
	}

	return EscolaContext{}, ErrEscolaContextMissing
}

// ResolveEscolaID concretiza o contexto em UUID (resolve código se preciso).
func ResolveEscolaID(c *fiber.Ctx) (uuid.UUID, error) {
	ec, err := ResolveEscolaContext(c)
	if err != nil {
		return uuid.Nil, err
	}
	if ec.ID != uuid.Nil {
		return ec.ID, nil
	}
	return GetEscolaIDByCodigo(c, ec.Codigo)
}
