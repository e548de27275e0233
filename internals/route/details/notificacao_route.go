// file: internals/route/details/notificacao_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificacaoController "sgescolar_backend/internals/features/notificacoes/controller"
)

// NotificacaoRoutes — caixa de entrada do próprio utilizador.
func NotificacaoRoutes(r fiber.Router, db *gorm.DB) {
	ctl := notificacaoController.NewNotificacaoController(db)

	notificacoes := r.Group("/notificacoes")
	notificacoes.Get("/", ctl.List)
	notificacoes.Put("/:id/lida", ctl.MarkAsRead)
}
