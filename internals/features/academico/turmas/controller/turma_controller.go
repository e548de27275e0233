// file: internals/features/academico/turmas/controller/turma_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sgescolar_backend/internals/features/academico/turmas/dto"
	model "sgescolar_backend/internals/features/academico/turmas/model"
	helper "sgescolar_backend/internals/helpers"
	helperAuth "sgescolar_backend/internals/helpers/auth"
)

type TurmaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTurmaController(db *gorm.DB) *TurmaController {
	return &TurmaController{DB: db, Validate: validator.New()}
}

// Create — só admin da escola activa.
func (ctl *TurmaController) Create(c *fiber.Ctx) error {
	escolaID, err := helperAuth.ResolveEscolaID(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureAdminEscola(c, escolaID); err != nil {
		return err
	}

	var req dto.TurmaCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	turma := req.ToModel(escolaID)
	if err := ctl.DB.Create(turma).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar turma")
	}
	return helper.JsonCreated(c, "Turma criada", dto.FromModel(turma))
}

func (ctl *TurmaController) List(c *fiber.Ctx) error {
	rc := helperAuth.GetRoleCache(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.TurmaModel{}).Scopes(helperAuth.EscopoTurmas(rc))
	if ano := c.Query("ano_lectivo"); ano != "" {
		q = q.Where("turmas.turma_ano_lectivo = ?", ano)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar turmas")
	}

	var rows []model.TurmaModel
	if err := q.Order("turmas.turma_classe ASC, turmas.turma_nome ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar turmas")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *TurmaController) GetByID(c *fiber.Ctx) error {
	turmaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	rc := helperAuth.GetRoleCache(c)
	var turma model.TurmaModel
	if err := ctl.DB.Scopes(helperAuth.EscopoTurmas(rc)).
		First(&turma, "turmas.turma_id = ?", turmaID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(&turma))
}

func (ctl *TurmaController) Update(c *fiber.Ctx) error {
	turmaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var turma model.TurmaModel
	if err := ctl.DB.First(&turma, "turma_id = ?", turmaID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
	}
	if err := helperAuth.EnsureAdminEscola(c, turma.TurmaEscolaID); err != nil {
		return err
	}

	var req dto.TurmaUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.ApplyTo(&turma)
	if err := ctl.DB.Save(&turma).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao actualizar turma")
	}
	return helper.JsonUpdated(c, "Turma actualizada", dto.FromModel(&turma))
}

func (ctl *TurmaController) Delete(c *fiber.Ctx) error {
	turmaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var turma model.TurmaModel
	if err := ctl.DB.First(&turma, "turma_id = ?", turmaID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
	}
	if err := helperAuth.EnsureAdminEscola(c, turma.TurmaEscolaID); err != nil {
		return err
	}

	if err := ctl.DB.Delete(&turma).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao eliminar turma")
	}
	return helper.JsonDeleted(c, "Turma eliminada", nil)
}
