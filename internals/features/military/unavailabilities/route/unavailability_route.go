package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	unavailabilityController "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailabilities/controller"
)

// UnavailabilityUserRoutes — consulta de indisponibilidades e disponibilidade.
func UnavailabilityUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := unavailabilityController.NewUnavailabilityController(db)

	api.Get("/unavailabilities", ctl.List)
	api.Get("/militaries/:id/availability", ctl.CheckAvailability)
}

// UnavailabilityAdminRoutes — escrita.
func UnavailabilityAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := unavailabilityController.NewUnavailabilityController(db)

	grp := api.Group("/unavailabilities")
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
