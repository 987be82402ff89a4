package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EkiciFurkan/goldenpages-search/internals/middlewares/logger"
)

// SetupMiddlewares: temel middleware zinciri
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
