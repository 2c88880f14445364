package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/home/notifications/controller"
)

func NotificationUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := notificationController.NewNotificationController(db)

	grp := api.Group("/notifications")
	grp.Get("/", ctl.List)
	grp.Patch("/:id/read", ctl.MarkRead)
}

func NotificationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := notificationController.NewNotificationController(db)

	grp := api.Group("/notifications")
	grp.Post("/", ctl.Create)
	grp.Delete("/:id", ctl.Delete)
}
