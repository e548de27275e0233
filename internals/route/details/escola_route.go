// file: internals/route/details/escola_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	escolaController "sgescolar_backend/internals/features/escolas/controller"
	middlewares "sgescolar_backend/internals/middlewares"
)

// EscolaRoutes — registo de tenant e leitura por escopo.
func EscolaRoutes(r fiber.Router, db *gorm.DB) {
	ctl := escolaController.NewEscolaController(db)

	escolas := r.Group("/escolas")
	escolas.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	escolas.Get("/", ctl.List)
	escolas.Get("/:id", ctl.GetByID)
}
