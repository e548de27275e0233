// file: internals/features/academico/disciplinas/controller/disciplina_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sgescolar_backend/internals/features/academico/disciplinas/dto"
	model "sgescolar_backend/internals/features/academico/disciplinas/model"
	turmaModel "sgescolar_backend/internals/features/academico/turmas/model"
	helper "sgescolar_backend/internals/helpers"
	helperAuth "sgescolar_backend/internals/helpers/auth"
)

type DisciplinaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDisciplinaController(db *gorm.DB) *DisciplinaController {
	return &DisciplinaController{DB: db, Validate: validator.New()}
}

// Create — a escola resolve-se pela turma alvo, não pelo body.
func (ctl *DisciplinaController) Create(c *fiber.Ctx) error {
	var req dto.DisciplinaCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var turma turmaModel.TurmaModel
	if err := ctl.DB.First(&turma, "turma_id = ?", req.DisciplinaTurmaID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
	}
	if err := helperAuth.EnsureAdminEscola(c, turma.TurmaEscolaID); err != nil {
		return err
	}

	disciplina := req.ToModel()
	if err := ctl.DB.Create(disciplina).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar disciplina")
	}
	return helper.JsonCreated(c, "Disciplina criada", dto.FromModel(disciplina))
}

func (ctl *DisciplinaController) List(c *fiber.Ctx) error {
	rc := helperAuth.GetRoleCache(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.DisciplinaModel{}).Scopes(helperAuth.EscopoDisciplinas(rc))
	if turmaID := c.Query("turma_id"); turmaID != "" {
		q = q.Where("disciplinas.disciplina_turma_id = ?", turmaID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar disciplinas")
	}

	var rows []model.DisciplinaModel
	if err := q.Order("disciplinas.disciplina_nome ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar disciplinas")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *DisciplinaController) GetByID(c *fiber.Ctx) error {
	disciplinaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	rc := helperAuth.GetRoleCache(c)
	var disciplina model.DisciplinaModel
	if err := ctl.DB.Scopes(helperAuth.EscopoDisciplinas(rc)).
		First(&disciplina, "disciplinas.disciplina_id = ?", disciplinaID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Disciplina não encontrada")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(&disciplina))
}

func (ctl *DisciplinaController) Delete(c *fiber.Ctx) error {
	disciplinaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var disciplina model.DisciplinaModel
	if err := ctl.DB.First(&disciplina, "disciplina_id = ?", disciplinaID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Disciplina não encontrada")
	}

	var turma turmaModel.TurmaModel
	if err := ctl.DB.First(&turma, "turma_id = ?", disciplina.DisciplinaTurmaID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Turma da disciplina indisponível")
	}
	if err := helperAuth.EnsureAdminEscola(c, turma.TurmaEscolaID); err != nil {
		return err
	}

	if err := ctl.DB.Delete(&disciplina).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao eliminar disciplina")
	}
	return helper.JsonDeleted(c, "Disciplina eliminada", nil)
}
