// file: internals/features/notificacoes/controller/notificacao_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "sgescolar_backend/internals/features/notificacoes/model"
	service "sgescolar_backend/internals/features/notificacoes/service"
	helper "sgescolar_backend/internals/helpers"
	helperAuth "sgescolar_backend/internals/helpers/auth"
)

type NotificacaoController struct {
	DB *gorm.DB
}

func NewNotificacaoController(db *gorm.DB) *NotificacaoController {
	return &NotificacaoController{DB: db}
}

// List — caixa de entrada do próprio utilizador.
func (ctl *NotificacaoController) List(c *fiber.Ctx) error {
	rc := helperAuth.GetRoleCache(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.NotificacaoModel{}).Scopes(helperAuth.EscopoNotificacoes(rc))
	if c.Query("nao_lidas") == "true" {
		q = q.Where("notificacoes.notificacao_lida = false")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar notificações")
	}

	var rows []model.NotificacaoModel
	if err := q.Order("notificacoes.notificacao_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar notificações")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *NotificacaoController) MarkAsRead(c *fiber.Ctx) error {
	notificacaoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	if err := service.MarkAsRead(ctl.DB, userID, notificacaoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notificação não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao marcar notificação")
	}
	return helper.JsonUpdated(c, "Notificação lida", nil)
}
