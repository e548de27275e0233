// file: internals/features/academico/alunos/controller/aluno_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sgescolar_backend/internals/features/academico/alunos/dto"
	model "sgescolar_backend/internals/features/academico/alunos/model"
	service "sgescolar_backend/internals/features/academico/alunos/service"
	turmaModel "sgescolar_backend/internals/features/academico/turmas/model"
	helper "sgescolar_backend/internals/helpers"
	helperAuth "sgescolar_backend/internals/helpers/auth"
)

type AlunoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAlunoController(db *gorm.DB) *AlunoController {
	return &AlunoController{DB: db, Validate: validator.New()}
}

// escolaDaTurma resolve a escola da turma alvo (guard de escrita).
func (ctl *AlunoController) escolaDaTurma(turmaID uuid.UUID) (uuid.UUID, error) {
	var turma turmaModel.TurmaModel
	if err := ctl.DB.First(&turma, "turma_id = ?", turmaID).Error; err != nil {
		return uuid.Nil, err
	}
	return turma.TurmaEscolaID, nil
}

// Create — matrícula nova; professor ou admin da escola.
func (ctl *AlunoController) Create(c *fiber.Ctx) error {
	var req dto.AlunoCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	escolaID, err := ctl.escolaDaTurma(req.AlunoTurmaID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
	}
	if err := helperAuth.EnsureStaffEscola(c, escolaID); err != nil {
		return err
	}

	aluno := req.ToModel()
	if err := ctl.DB.Create(aluno).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar matrícula")
	}
	return helper.JsonCreated(c, "Aluno matriculado", dto.FromModel(aluno))
}

func (ctl *AlunoController) List(c *fiber.Ctx) error {
	rc := helperAuth.GetRoleCache(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.AlunoModel{}).Scopes(helperAuth.EscopoAlunos(rc))
	if turmaID := c.Query("turma_id"); turmaID != "" {
		q = q.Where("alunos.aluno_turma_id = ?", turmaID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar alunos")
	}

	var rows []model.AlunoModel
	if err := q.Order("alunos.aluno_nome ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar alunos")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *AlunoController) GetByID(c *fiber.Ctx) error {
	alunoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	rc := helperAuth.GetRoleCache(c)
	var aluno model.AlunoModel
	if err := ctl.DB.Scopes(helperAuth.EscopoAlunos(rc)).
		First(&aluno, "alunos.aluno_id = ?", alunoID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(&aluno))
}

// UpdateTransicao — actualiza os campos de transição; o BeforeSave do
// model normaliza a coerência (condicional/exame/motivo).
func (ctl *AlunoController) UpdateTransicao(c *fiber.Ctx) error {
	alunoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var aluno model.AlunoModel
	if err := ctl.DB.First(&aluno, "aluno_id = ?", alunoID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
	}

	escolaID, err := ctl.escolaDaTurma(aluno.AlunoTurmaID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Turma do aluno indisponível")
	}
	if err := helperAuth.EnsureStaffEscola(c, escolaID); err != nil {
		return err
	}

	var req dto.AlunoTransicaoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.ApplyTo(&aluno)
	if err := ctl.DB.Save(&aluno).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao actualizar transição")
	}
	return helper.JsonUpdated(c, "Transição actualizada", dto.FromModel(&aluno))
}

// Delete — só o admin da escola; professores matriculam mas não apagam.
func (ctl *AlunoController) Delete(c *fiber.Ctx) error {
	alunoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var aluno model.AlunoModel
	if err := ctl.DB.First(&aluno, "aluno_id = ?", alunoID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
	}

	escolaID, err := ctl.escolaDaTurma(aluno.AlunoTurmaID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Turma do aluno indisponível")
	}
	if err := helperAuth.EnsureAdminEscola(c, escolaID); err != nil {
		return err
	}

	if err := ctl.DB.Delete(&aluno).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao eliminar matrícula")
	}
	return helper.JsonDeleted(c, "Matrícula eliminada", nil)
}

/* =====================================================
   RPCs de ligação de contas
===================================================== */

func (ctl *AlunoController) RegisterStudentAccount(c *fiber.Ctx) error {
	return ctl.registerAccount(c, service.RegisterStudentAccount)
}

func (ctl *AlunoController) RegisterGuardianAccount(c *fiber.Ctx) error {
	return ctl.registerAccount(c, service.RegisterGuardianAccount)
}

func (ctl *AlunoController) registerAccount(
	c *fiber.Ctx,
	fn func(*gorm.DB, uuid.UUID, uuid.UUID) (service.ContaResult, error),
) error {
	var req dto.RegisterAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var aluno model.AlunoModel
	if err := ctl.DB.First(&aluno, "aluno_id = ?", req.AlunoID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Matrícula não encontrada")
	}
	escolaID, err := ctl.escolaDaTurma(aluno.AlunoTurmaID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Turma do aluno indisponível")
	}
	if err := helperAuth.EnsureAdminEscola(c, escolaID); err != nil {
		return err
	}

	result, err := fn(ctl.DB, req.AlunoID, req.UserID)
	if err != nil {
		log.Printf("[ERROR] ligação de conta falhou: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao ligar conta")
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
