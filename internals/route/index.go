// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sgescolar_backend/internals/constants"
	routeDetails "sgescolar_backend/internals/route/details"

	middlewares "sgescolar_backend/internals/middlewares"
	authMiddleware "sgescolar_backend/internals/middlewares/auth"
)

// SetupRoutes monta a árvore de rotas em três níveis de acesso:
//
//	/api/public — sem autenticação (registo, login)
//	/api/u      — qualquer utilizador autenticado (leituras por escopo)
//	/api/o      — operações globais de superadmin
//
// As escritas de escola são guardadas rota-a-rota (EnsureAdminEscola /
// EnsureStaffEscola), não por grupo — o narrowing depende do recurso.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api", middlewares.DBMiddleware(db))

	public := api.Group("/public")
	routeDetails.AuthPublicRoutes(public, db)

	user := api.Group("/u", authMiddleware.AuthMiddleware(db))
	routeDetails.AuthUserRoutes(user, db)
	routeDetails.IdentidadeRoutes(user, db)
	routeDetails.EscolaRoutes(user, db)
	routeDetails.AcademicoRoutes(user, db)
	routeDetails.FinanceiroRoutes(user, db)
	routeDetails.NotificacaoRoutes(user, db)

	owner := api.Group("/o",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice("acesso global", constants.SuperadminOnly),
	)
	routeDetails.SuperadminRoutes(owner, db)
}
