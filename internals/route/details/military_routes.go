package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	MilitaryRoute "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/militaries/route"
	UnavailabilityRoute "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailabilities/route"
	TypeRoute "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailability_types/route"
	"github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/helpers/storage"
)

// Exemplo de acesso: /api/u/militaries, /api/u/unavailabilities
func MilitaryUserRoutes(api fiber.Router, db *gorm.DB) {
	MilitaryRoute.MilitaryUserRoutes(api, db)
	UnavailabilityRoute.UnavailabilityUserRoutes(api, db)
	TypeRoute.UnavailabilityTypeUserRoutes(api, db)
}

// Exemplo de acesso: /api/a/militaries, /api/a/unavailability-types
func MilitaryAdminRoutes(api fiber.Router, db *gorm.DB, store *storage.AvatarStore) {
	MilitaryRoute.MilitaryAdminRoutes(api, db, store)
	UnavailabilityRoute.UnavailabilityAdminRoutes(api, db)
	TypeRoute.UnavailabilityTypeAdminRoutes(api, db)
}
