// file: internals/route/details/identidade_route.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	roleController "sgescolar_backend/internals/features/identidade/role_assignments/controller"
)

// IdentidadeRoutes — papéis e âmbito do próprio utilizador. As escritas
// são guardadas dentro do controller (superadmin).
func IdentidadeRoutes(r fiber.Router, db *gorm.DB) {
	ctl := roleController.NewRoleAssignmentController(db, validator.New())

	roles := r.Group("/role-assignments")
	roles.Get("/", ctl.List)
	roles.Post("/", ctl.Upsert)
	roles.Delete("/:user_id", ctl.Revoke)

	r.Get("/my-scope", ctl.MyScope)
}
