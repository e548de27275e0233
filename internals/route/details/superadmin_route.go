// file: internals/route/details/superadmin_route.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accaoController "sgescolar_backend/internals/features/auditoria/controller"
	direccaoController "sgescolar_backend/internals/features/direccoes/controller"
	escolaController "sgescolar_backend/internals/features/escolas/controller"
)

// SuperadminRoutes — operações globais: direcções, bloqueio e
// eliminação de escolas, log de auditoria.
func SuperadminRoutes(r fiber.Router, db *gorm.DB) {
	direccoes := direccaoController.NewDireccaoController(db, validator.New())
	dg := r.Group("/direccoes")
	dg.Post("/", direccoes.Create)
	dg.Get("/", direccoes.List)

	escolas := escolaController.NewEscolaController(db)
	eg := r.Group("/escolas")
	eg.Put("/:id/bloquear", escolas.Bloquear)
	eg.Put("/:id/desbloquear", escolas.Desbloquear)
	eg.Delete("/:id", escolas.Eliminar)

	accoes := accaoController.NewAccaoController(db)
	ag := r.Group("/accoes")
	ag.Get("/", accoes.List)
	ag.Post("/", accoes.LogAction)
}
