package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/users/auth/controller"
	"github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/middlewares"
	authMiddleware "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/middlewares/auth"
)

// AuthRoutes monta /api/auth (login público com limiter, resto autenticado)
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)

	authed := grp.Use(authMiddleware.AuthMiddleware(db))
	authed.Post("/logout", ctl.Logout)
	authed.Get("/me", ctl.Me)
}
