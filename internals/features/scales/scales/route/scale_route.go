package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scaleController "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/scales/scales/controller"
)

// ScaleUserRoutes — leitura das escalas e checagem de conflitos do dia.
func ScaleUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := scaleController.NewScaleController(db)

	grp := api.Group("/scales")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Get("/:id/conflicts", ctl.Conflicts)
}

// ScaleAdminRoutes — escrita, incluindo os endpoints de dia.
func ScaleAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := scaleController.NewScaleController(db)

	grp := api.Group("/scales")
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
	grp.Put("/:id/days/:date/services", ctl.ReplaceServicesForDay)
	grp.Put("/:id/days/:date/reservation", ctl.UpsertReservationForDay)
}
