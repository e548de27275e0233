package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"sgescolar_backend/internals/middlewares/logger"
)

// SetupMiddlewares regista os middlewares globais (ordem importa:
// recovery primeiro, depois CORS, logger e limiter global).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
