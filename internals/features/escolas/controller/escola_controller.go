// file: internals/features/escolas/controller/escola_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sgescolar_backend/internals/features/escolas/dto"
	model "sgescolar_backend/internals/features/escolas/model"
	service "sgescolar_backend/internals/features/escolas/service"
	helper "sgescolar_backend/internals/helpers"
	helperAuth "sgescolar_backend/internals/helpers/auth"
)

type EscolaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEscolaController(db *gorm.DB) *EscolaController {
	return &EscolaController{DB: db, Validate: validator.New()}
}

/* =====================================================
   Registo do tenant
===================================================== */

// Register — registerSchoolTenant. Qualquer utilizador autenticado pode
// registar UMA escola; os conflitos voltam como resultado estruturado
// (success:false) em vez de erro HTTP.
func (ctl *EscolaController) Register(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.EscolaRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	result, err := service.RegisterSchoolTenant(ctl.DB, userID, &req)
	if err != nil {
		log.Printf("[ERROR] registo de escola falhou: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao registar escola")
	}
	if !result.Success {
		return c.Status(fiber.StatusOK).JSON(result)
	}
	return helper.JsonCreated(c, "Escola registada com sucesso", result)
}

/* =====================================================
   Leitura (escopo por papel)
===================================================== */

func (ctl *EscolaController) List(c *fiber.Ctx) error {
	rc := helperAuth.GetRoleCache(c)
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&model.EscolaModel{}).
		Scopes(helperAuth.EscopoEscolas(rc)).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar escolas")
	}

	var rows []model.EscolaModel
	if err := ctl.DB.Scopes(helperAuth.EscopoEscolas(rc)).
		Order("escola_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar escolas")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *EscolaController) GetByID(c *fiber.Ctx) error {
	escolaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	rc := helperAuth.GetRoleCache(c)
	var escola model.EscolaModel
	if err := ctl.DB.Scopes(helperAuth.EscopoEscolas(rc)).
		First(&escola, "escola_id = ?", escolaID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Escola não encontrada")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(&escola))
}

/* =====================================================
   Operações de superadmin
===================================================== */

func (ctl *EscolaController) Bloquear(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSuperadmin(c); err != nil {
		return err
	}
	escolaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req dto.EscolaBloqueioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	actor, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if err := service.BloquearEscola(ctl.DB, actor, escolaID, req.Motivo); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao bloquear escola")
	}
	return helper.JsonUpdated(c, "Escola bloqueada", nil)
}

func (ctl *EscolaController) Desbloquear(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSuperadmin(c); err != nil {
		return err
	}
	escolaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	actor, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if err := service.DesbloquearEscola(ctl.DB, actor, escolaID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao desbloquear escola")
	}
	return helper.JsonUpdated(c, "Escola desbloqueada", nil)
}

func (ctl *EscolaController) Eliminar(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSuperadmin(c); err != nil {
		return err
	}
	escolaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	actor, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if err := service.EliminarEscolaComAuditoria(ctl.DB, actor, escolaID); err != nil {
		if err == service.ErrEscolaNaoEncontrada {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		log.Printf("[ERROR] eliminação de escola falhou: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao eliminar escola")
	}
	return helper.JsonDeleted(c, "Escola eliminada (log de auditoria preservado)", nil)
}
