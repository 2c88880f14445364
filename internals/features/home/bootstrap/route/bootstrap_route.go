package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bootstrapController "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/home/bootstrap/controller"
)

func BootstrapUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := bootstrapController.NewBootstrapController(db)
	api.Get("/bootstrap", ctl.Bootstrap)
}
