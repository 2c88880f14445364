package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/middlewares/logger"
)

// SetupMiddlewares registra a pilha padrão (ordem importa: recovery primeiro)
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(MetricsMiddleware())
	app.Use(GlobalRateLimiter())
}
