// file: internals/features/academico/professor_turma_disciplina/controller/ptd_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sgescolar_backend/internals/features/academico/professor_turma_disciplina/dto"
	model "sgescolar_backend/internals/features/academico/professor_turma_disciplina/model"
	turmaModel "sgescolar_backend/internals/features/academico/turmas/model"
	helper "sgescolar_backend/internals/helpers"
	helperAuth "sgescolar_backend/internals/helpers/auth"
)

type PTDController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPTDController(db *gorm.DB) *PTDController {
	return &PTDController{DB: db, Validate: validator.New()}
}

// Create — a validação trilateral corre no BeforeSave do model; aqui
// só se garante que quem escreve é admin da escola da turma alvo.
func (ctl *PTDController) Create(c *fiber.Ctx) error {
	var req dto.PTDCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var turma turmaModel.TurmaModel
	if err := ctl.DB.First(&turma, "turma_id = ?", req.PTDTurmaID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
	}
	if err := helperAuth.EnsureAdminEscola(c, turma.TurmaEscolaID); err != nil {
		return err
	}

	ptd := req.ToModel()
	if err := ctl.DB.Create(ptd).Error; err != nil {
		// erro do validador trilateral chega aqui com mensagem legível
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	return helper.JsonCreated(c, "Atribuição criada", dto.FromModel(ptd))
}

func (ctl *PTDController) List(c *fiber.Ctx) error {
	rc := helperAuth.GetRoleCache(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.PTDModel{}).Scopes(helperAuth.EscopoAssociacoes(rc))
	if professorID := c.Query("professor_id"); professorID != "" {
		q = q.Where("professor_turma_disciplina.ptd_professor_id = ?", professorID)
	}
	if turmaID := c.Query("turma_id"); turmaID != "" {
		q = q.Where("professor_turma_disciplina.ptd_turma_id = ?", turmaID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar atribuições")
	}

	var rows []model.PTDModel
	if err := q.Order("professor_turma_disciplina.ptd_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar atribuições")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *PTDController) Delete(c *fiber.Ctx) error {
	ptdID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var ptd model.PTDModel
	if err := ctl.DB.First(&ptd, "ptd_id = ?", ptdID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Atribuição não encontrada")
	}

	var turma turmaModel.TurmaModel
	if err := ctl.DB.First(&turma, "turma_id = ?", ptd.PTDTurmaID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Turma da atribuição indisponível")
	}
	if err := helperAuth.EnsureAdminEscola(c, turma.TurmaEscolaID); err != nil {
		return err
	}

	if err := ctl.DB.Delete(&ptd).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao eliminar atribuição")
	}
	return helper.JsonDeleted(c, "Atribuição eliminada", nil)
}
