package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	configurationController "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/system/configurations/controller"
)

func ConfigurationUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := configurationController.NewConfigurationController(db)
	api.Get("/configurations", ctl.List)
}

func ConfigurationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := configurationController.NewConfigurationController(db)

	grp := api.Group("/configurations")
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
