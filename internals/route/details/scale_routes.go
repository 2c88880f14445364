package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ScaleRoute "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/scales/scales/route"
)

// Exemplo de acesso: /api/u/scales/:id/conflicts
func ScaleUserRoutes(api fiber.Router, db *gorm.DB) {
	ScaleRoute.ScaleUserRoutes(api, db)
}

// Exemplo de acesso: /api/a/scales/:id/days/:date/services
func ScaleAdminRoutes(api fiber.Router, db *gorm.DB) {
	ScaleRoute.ScaleAdminRoutes(api, db)
}
