// file: internals/route/details/auth_route.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "sgescolar_backend/internals/features/identidade/auth/controller"
	middlewares "sgescolar_backend/internals/middlewares"
)

// AuthPublicRoutes — registo e login, sem autenticação.
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db, validator.New())

	auth := r.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	auth.Post("/refresh", ctl.Refresh)
}

// AuthUserRoutes — sessão do utilizador autenticado.
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db, validator.New())

	auth := r.Group("/auth")
	auth.Get("/me", ctl.Me)
	auth.Post("/logout", ctl.Logout)
}
