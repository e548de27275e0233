// file: internals/route/details/financeiro_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	propinaController "sgescolar_backend/internals/features/financeiro/propinas/controller"
)

// FinanceiroRoutes — propinas; aluno/encarregado vêem as suas, o
// staff da escola gere as do seu tenant.
func FinanceiroRoutes(r fiber.Router, db *gorm.DB) {
	ctl := propinaController.NewPropinaController(db)

	propinas := r.Group("/propinas")
	propinas.Post("/", ctl.Create)
	propinas.Get("/", ctl.List)
	propinas.Put("/:id/estado", ctl.UpdateEstado)
}
