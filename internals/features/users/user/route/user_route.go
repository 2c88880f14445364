package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/users/user/controller"
)

// UserProfileRoutes — edição do próprio cadastro.
func UserProfileRoutes(api fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)
	api.Put("/profile", ctl.UpdateProfile)
}

// UserAdminRoutes — gestão de contas, só Admin.
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	grp := api.Group("/users")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
