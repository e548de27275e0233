// file: internals/features/financeiro/propinas/controller/propina_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sgescolar_backend/internals/features/financeiro/propinas/dto"
	model "sgescolar_backend/internals/features/financeiro/propinas/model"
	notifService "sgescolar_backend/internals/features/notificacoes/service"
	helper "sgescolar_backend/internals/helpers"
	helperAuth "sgescolar_backend/internals/helpers/auth"
)

type PropinaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPropinaController(db *gorm.DB) *PropinaController {
	return &PropinaController{DB: db, Validate: validator.New()}
}

// Create — emissão de mensalidade; só o admin da escola activa.
func (ctl *PropinaController) Create(c *fiber.Ctx) error {
	escolaID, err := helperAuth.ResolveEscolaID(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureAdminEscola(c, escolaID); err != nil {
		return err
	}

	var req dto.PropinaCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	propina := req.ToModel(escolaID)
	if err := ctl.DB.Create(propina).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir propina")
	}
	return helper.JsonCreated(c, "Propina emitida", dto.FromModel(propina))
}

func (ctl *PropinaController) List(c *fiber.Ctx) error {
	rc := helperAuth.GetRoleCache(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.PropinaModel{}).Scopes(helperAuth.EscopoPropinas(rc))
	if alunoID := c.Query("aluno_id"); alunoID != "" {
		q = q.Where("propinas.propina_aluno_id = ?", alunoID)
	}
	if estado := c.Query("estado"); estado != "" {
		q = q.Where("propinas.propina_estado = ?", estado)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar propinas")
	}

	var rows []model.PropinaModel
	if err := q.Order("propinas.propina_ano DESC, propinas.propina_mes DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar propinas")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// UpdateEstado — transição de estado; marcar "em_atraso" notifica o
// encarregado na mesma transacção.
func (ctl *PropinaController) UpdateEstado(c *fiber.Ctx) error {
	propinaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var propina model.PropinaModel
	if err := ctl.DB.First(&propina, "propina_id = ?", propinaID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Propina não encontrada")
	}
	if err := helperAuth.EnsureAdminEscola(c, propina.PropinaEscolaID); err != nil {
		return err
	}

	var req dto.PropinaEstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		propina.PropinaEstado = req.PropinaEstado
		if req.PropinaEstado == model.PropinaPaga {
			now := time.Now()
			propina.PropinaPagoEm = &now
		}
		if err := tx.Save(&propina).Error; err != nil {
			return err
		}

		if req.PropinaEstado == model.PropinaEmAtraso {
			var encarregadoID *uuid.UUID
			if err := tx.Raw(
				`SELECT aluno_encarregado_user_id FROM alunos WHERE aluno_id = ? AND aluno_deleted_at IS NULL`,
				propina.PropinaAlunoID,
			).Scan(&encarregadoID).Error; err != nil {
				return err
			}
			if encarregadoID != nil {
				return notifService.Dispatch(tx, *encarregadoID, notifService.TipoPropinaEmAtraso, map[string]any{
					"propina_id": propina.PropinaID,
					"aluno_id":   propina.PropinaAlunoID,
					"mes":        propina.PropinaMes,
					"ano":        propina.PropinaAno,
				})
			}
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao actualizar propina")
	}
	return helper.JsonUpdated(c, "Propina actualizada", dto.FromModel(&propina))
}
