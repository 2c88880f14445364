package routes

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/constants"
	authRoute "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/users/auth/route"
	"github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/helpers/storage"
	authMiddleware "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/middlewares/auth"
	routeDetails "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// Storage de avatar é opcional: sem bucket, as rotas não sobem.
	store, err := storage.OpenFromEnv(context.Background())
	if err != nil {
		log.Printf("⚠️ Storage de avatar indisponível: %v", err)
		store = nil
	}

	// ===================== GROUPS =====================

	// USER → qualquer usuário logado
	log.Println("[INFO] Setting up USER group (/api/u)...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	// ADMIN → logado + papel Admin
	log.Println("[INFO] Setting up ADMIN group (/api/a)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Acesso restrito a administradores", constants.RoleAdmin),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Home routes...")
	routeDetails.HomeUserRoutes(user, db)
	routeDetails.HomeAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Military routes...")
	routeDetails.MilitaryUserRoutes(user, db)
	routeDetails.MilitaryAdminRoutes(admin, db, store)

	log.Println("[INFO] Mounting Scale routes...")
	routeDetails.ScaleUserRoutes(user, db)
	routeDetails.ScaleAdminRoutes(admin, db)

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserProfileRoutes(user, db)
	routeDetails.UserAdminRoutes(admin, db)
}
