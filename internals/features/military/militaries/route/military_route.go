package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	militaryController "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/militaries/controller"
	"github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/helpers/storage"
)

// MilitaryUserRoutes — leitura do efetivo para qualquer usuário logado.
func MilitaryUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := militaryController.NewMilitaryController(db)

	grp := api.Group("/militaries")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
}

// MilitaryAdminRoutes — escrita do efetivo; avatar só quando há bucket.
func MilitaryAdminRoutes(api fiber.Router, db *gorm.DB, store *storage.AvatarStore) {
	ctl := militaryController.NewMilitaryController(db)

	grp := api.Group("/militaries")
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)

	if store != nil {
		avatarCtl := militaryController.NewAvatarController(db, store)
		grp.Post("/:id/avatar", avatarCtl.Upload)
	}
}
