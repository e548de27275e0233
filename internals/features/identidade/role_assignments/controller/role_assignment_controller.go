// file: internals/features/identidade/role_assignments/controller/role_assignment_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditModel "sgescolar_backend/internals/features/auditoria/model"
	auditService "sgescolar_backend/internals/features/auditoria/service"
	"sgescolar_backend/internals/features/identidade/role_assignments/dto"
	model "sgescolar_backend/internals/features/identidade/role_assignments/model"
	service "sgescolar_backend/internals/features/identidade/role_assignments/service"
	notifService "sgescolar_backend/internals/features/notificacoes/service"
	helper "sgescolar_backend/internals/helpers"
	helperAuth "sgescolar_backend/internals/helpers/auth"
)

type RoleAssignmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoleAssignmentController(db *gorm.DB, v *validator.Validate) *RoleAssignmentController {
	return &RoleAssignmentController{DB: db, Validate: v}
}

// List — visibilidade decidida pelo escopo (superadmin tudo, admin da
// escola os da sua escola, qualquer utilizador o seu próprio).
func (ctl *RoleAssignmentController) List(c *fiber.Ctx) error {
	rc := helperAuth.GetRoleCache(c)
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&model.RoleAssignmentModel{}).
		Scopes(helperAuth.EscopoRoleAssignments(rc)).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar assignments")
	}

	var rows []model.RoleAssignmentModel
	if err := ctl.DB.Scopes(helperAuth.EscopoRoleAssignments(rc)).
		Order("role_assignment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar assignments")
	}

	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// Upsert — só superadmin atribui papéis arbitrários.
func (ctl *RoleAssignmentController) Upsert(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSuperadmin(c); err != nil {
		return err
	}

	var req dto.RoleAssignmentRequest
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

	m := req.ToModel()
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := service.UpsertAssignment(tx, m); err != nil {
			return err
		}
		if err := auditService.RecordAction(tx, &actor, auditModel.AccaoRoleAtribuido, m.RoleAssignmentEscolaID, map[string]any{
			"user_id": m.RoleAssignmentUserID,
			"role":    m.RoleAssignmentRole,
		}); err != nil {
			return err
		}
		return notifService.Dispatch(tx, m.RoleAssignmentUserID, notifService.TipoPapelAtribuido, map[string]any{
			"role":      m.RoleAssignmentRole,
			"escola_id": m.RoleAssignmentEscolaID,
		})
	}); err != nil {
		// erros de invariante (BeforeSave) chegam aqui legíveis
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	return helper.JsonCreated(c, "assignment registado", dto.FromModel(m))
}

// Revoke — remove o assignment; a cache é limpa na mesma transacção.
func (ctl *RoleAssignmentController) Revoke(c *fiber.Ctx) error {
	if err := helperAuth.EnsureSuperadmin(c); err != nil {
		return err
	}

	userID, err := uuid.Parse(strings.TrimSpace(c.Params("user_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id inválido")
	}

	actor, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := service.RevokeAssignment(tx, userID); err != nil {
			return err
		}
		return auditService.RecordAction(tx, &actor, auditModel.AccaoRoleRevogado, nil, map[string]any{
			"user_id": userID,
		})
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao revogar assignment")
	}
	return helper.JsonDeleted(c, "assignment revogado", fiber.Map{"user_id": userID})
}

// MyScope — equivalente RPC de resolveCurrentTenantScope().
func (ctl *RoleAssignmentController) MyScope(c *fiber.Ctx) error {
	rc := helperAuth.GetRoleCache(c)
	return helper.JsonOK(c, "ok", fiber.Map{
		"role":      rc.Role,
		"escola_id": rc.EscolaID,
		"municipio": rc.Municipio,
		"provincia": rc.Provincia,
		"is_active": rc.IsActive,
	})
}
