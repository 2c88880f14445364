package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	typeController "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailability_types/controller"
)

func UnavailabilityTypeUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := typeController.NewUnavailabilityTypeController(db)
	api.Get("/unavailability-types", ctl.List)
}

func UnavailabilityTypeAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := typeController.NewUnavailabilityTypeController(db)

	grp := api.Group("/unavailability-types")
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
