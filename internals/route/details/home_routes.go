package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	BootstrapRoute "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/home/bootstrap/route"
	NotificationRoute "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/home/notifications/route"
	ConfigurationRoute "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/system/configurations/route"
)

// Exemplo de acesso: /api/u/bootstrap, /api/u/notifications
func HomeUserRoutes(api fiber.Router, db *gorm.DB) {
	BootstrapRoute.BootstrapUserRoutes(api, db)
	NotificationRoute.NotificationUserRoutes(api, db)
	ConfigurationRoute.ConfigurationUserRoutes(api, db)
}

// Exemplo de acesso: /api/a/notifications, /api/a/configurations
func HomeAdminRoutes(api fiber.Router, db *gorm.DB) {
	NotificationRoute.NotificationAdminRoutes(api, db)
	ConfigurationRoute.ConfigurationAdminRoutes(api, db)
}
