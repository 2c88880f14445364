package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	UserRoute "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/users/user/route"
)

// Exemplo de acesso: /api/u/profile
func UserProfileRoutes(api fiber.Router, db *gorm.DB) {
	UserRoute.UserProfileRoutes(api, db)
}

// Exemplo de acesso: /api/a/users
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	UserRoute.UserAdminRoutes(api, db)
}
