// file: internals/features/direccoes/controller/direccao_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditModel "sgescolar_backend/internals/features/auditoria/model"
	auditService "sgescolar_backend/internals/features/auditoria/service"
	"sgescolar_backend/internals/features/direccoes/dto"
	model "sgescolar_backend/internals/features/direccoes/model"
	helper "sgescolar_backend/internals/helpers"
	helperAuth "sgescolar_backend/internals/helpers/auth"
)

type DireccaoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDireccaoController(db *gorm.DB, v *validator.Validate) *DireccaoController {
	return &DireccaoController{DB: db, Validate: v}
}

// Create — só superadmin cria direcções.
func (ctl *DireccaoController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSuperadmin(c); err != nil {
		return err
	}

	var req dto.DireccaoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.DireccaoTipo == string(model.DireccaoMunicipal) && req.DireccaoMunicipio == nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "direcção municipal exige município")
	}

	actor, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	m := req.ToModel()
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return auditService.RecordAction(tx, &actor, auditModel.AccaoDireccaoCriada, nil, map[string]any{
			"direccao_id":   m.DireccaoID,
			"direccao_tipo": m.DireccaoTipo,
			"provincia":     m.DireccaoProvincia,
			"municipio":     m.DireccaoMunicipio,
		})
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar direcção")
	}
	return helper.JsonCreated(c, "Direcção criada", m)
}

func (ctl *DireccaoController) List(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSuperadmin(c); err != nil {
		return err
	}
	var rows []model.DireccaoModel
	if err := ctl.DB.Order("direccao_provincia, direccao_municipio").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar direcções")
	}
	return helper.JsonOK(c, "ok", rows)
}
