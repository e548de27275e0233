// file: internals/features/auditoria/controller/accao_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "sgescolar_backend/internals/features/auditoria/model"
	service "sgescolar_backend/internals/features/auditoria/service"
	helper "sgescolar_backend/internals/helpers"
	helperAuth "sgescolar_backend/internals/helpers/auth"

	"github.com/google/uuid"
)

type AccaoController struct {
	DB *gorm.DB
}

func NewAccaoController(db *gorm.DB) *AccaoController {
	return &AccaoController{DB: db}
}

// List — leitura do log, só superadmin (o escopo nega o resto).
func (ctl *AccaoController) List(c *fiber.Ctx) error {
	rc := helperAuth.GetRoleCache(c)
	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := ctl.DB.Model(&model.AccaoAdminModel{}).
		Scopes(helperAuth.EscopoAccoesAdmin(rc)).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar acções")
	}

	var rows []model.AccaoAdminModel
	if err := ctl.DB.Scopes(helperAuth.EscopoAccoesAdmin(rc)).
		Order("accao_admin_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar acções")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// LogAction — equivalente RPC de logPrivilegedAction; já chega aqui
// atrás do guard de superadmin.
func (ctl *AccaoController) LogAction(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSuperadmin(c); err != nil {
		return err
	}

	var req struct {
		Tipo     string     `json:"tipo"`
		EscolaID *uuid.UUID `json:"escola_id"`
		Detalhes any        `json:"detalhes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}

	actor, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	if err := service.RecordAction(ctl.DB, &actor, req.Tipo, req.EscolaID, req.Detalhes); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	return helper.JsonCreated(c, "Acção registada", nil)
}
