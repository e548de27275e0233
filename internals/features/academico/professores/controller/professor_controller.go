// file: internals/features/academico/professores/controller/professor_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sgescolar_backend/internals/constants"
	"sgescolar_backend/internals/features/academico/professores/dto"
	model "sgescolar_backend/internals/features/academico/professores/model"
	roleModel "sgescolar_backend/internals/features/identidade/role_assignments/model"
	roleService "sgescolar_backend/internals/features/identidade/role_assignments/service"
	helper "sgescolar_backend/internals/helpers"
	helperAuth "sgescolar_backend/internals/helpers/auth"
)

type ProfessorController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProfessorController(db *gorm.DB) *ProfessorController {
	return &ProfessorController{DB: db, Validate: validator.New()}
}

// Create — ficha do professor; se já vier ligada a uma conta, o papel
// "professor" é atribuído na mesma transacção.
func (ctl *ProfessorController) Create(c *fiber.Ctx) error {
	escolaID, err := helperAuth.ResolveEscolaID(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureAdminEscola(c, escolaID); err != nil {
		return err
	}

	var req dto.ProfessorCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	professor := req.ToModel(escolaID)
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(professor).Error; err != nil {
			return err
		}
		if professor.ProfessorUserID != nil {
			return roleService.UpsertAssignment(tx, &roleModel.RoleAssignmentModel{
				RoleAssignmentUserID:   *professor.ProfessorUserID,
				RoleAssignmentRole:     constants.RoleProfessor,
				RoleAssignmentEscolaID: &escolaID,
				RoleAssignmentIsActive: true,
			})
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar professor")
	}
	return helper.JsonCreated(c, "Professor criado", dto.FromModel(professor))
}

func (ctl *ProfessorController) List(c *fiber.Ctx) error {
	rc := helperAuth.GetRoleCache(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.ProfessorModel{}).Scopes(helperAuth.EscopoProfessores(rc))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar professores")
	}

	var rows []model.ProfessorModel
	if err := q.Order("professores.professor_nome ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar professores")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *ProfessorController) GetByID(c *fiber.Ctx) error {
	professorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	rc := helperAuth.GetRoleCache(c)
	var professor model.ProfessorModel
	if err := ctl.DB.Scopes(helperAuth.EscopoProfessores(rc)).
		First(&professor, "professores.professor_id = ?", professorID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Professor não encontrado")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(&professor))
}

func (ctl *ProfessorController) Delete(c *fiber.Ctx) error {
	professorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var professor model.ProfessorModel
	if err := ctl.DB.First(&professor, "professor_id = ?", professorID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Professor não encontrado")
	}
	if err := helperAuth.EnsureAdminEscola(c, professor.ProfessorEscolaID); err != nil {
		return err
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if professor.ProfessorUserID != nil {
			if err := roleService.RevokeAssignment(tx, *professor.ProfessorUserID); err != nil {
				return err
			}
		}
		return tx.Delete(&professor).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao eliminar professor")
	}
	return helper.JsonDeleted(c, "Professor eliminado", nil)
}
