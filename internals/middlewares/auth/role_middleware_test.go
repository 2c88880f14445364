package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/constants"
)

func appWithRole(role string) *fiber.App {
	app := fiber.New()
	if role != "" {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("userRole", role)
			return c.Next()
		})
	}
	app.Get("/admin-only",
		OnlyRoles("Acesso restrito a administradores", constants.RoleAdmin),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestOnlyRoles(t *testing.T) {
	cases := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{"admin passes", constants.RoleAdmin, fiber.StatusOK},
		{"militar forbidden", constants.RoleMilitar, fiber.StatusForbidden},
		{"unknown role forbidden", "Visitante", fiber.StatusForbidden},
		{"missing role unauthorized", "", fiber.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := appWithRole(tc.role)
			resp, err := app.Test(httptest.NewRequest("GET", "/admin-only", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tc.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
		})
	}
}
