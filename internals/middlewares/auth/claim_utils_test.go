package auth

import (
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/constants"
)

func TestValidateTokenExpiry(t *testing.T) {
	future := time.Now().Add(1 * time.Hour).Unix()
	past := time.Now().Add(-1 * time.Hour).Unix()
	justExpired := time.Now().Add(-10 * time.Second).Unix()

	cases := []struct {
		name    string
		claims  jwt.MapClaims
		skew    time.Duration
		wantErr bool
	}{
		{"future exp float64", jwt.MapClaims{"exp": float64(future)}, 0, false},
		{"past exp", jwt.MapClaims{"exp": float64(past)}, 0, true},
		{"just expired within skew", jwt.MapClaims{"exp": float64(justExpired)}, 30 * time.Second, false},
		{"exp as string", jwt.MapClaims{"exp": strconv.FormatInt(future, 10)}, 0, false},
		{"exp as int64", jwt.MapClaims{"exp": future}, 0, false},
		{"missing exp", jwt.MapClaims{}, 0, true},
		{"garbage exp", jwt.MapClaims{"exp": "abc"}, 0, true},
		{"wrong type", jwt.MapClaims{"exp": true}, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateTokenExpiry(tc.claims, tc.skew)
			if (err != nil) != tc.wantErr {
				t.Errorf("validateTokenExpiry() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestExtractUserID(t *testing.T) {
	want := uuid.New()

	got, err := extractUserID(jwt.MapClaims{"id": want.String()})
	if err != nil {
		t.Fatalf("extractUserID: %v", err)
	}
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	if _, err := extractUserID(jwt.MapClaims{"id": " " + want.String() + " "}); err != nil {
		t.Errorf("id with surrounding spaces should parse: %v", err)
	}

	if _, err := extractUserID(jwt.MapClaims{}); err == nil {
		t.Error("missing id should fail")
	}
	if _, err := extractUserID(jwt.MapClaims{"id": 123}); err == nil {
		t.Error("non-string id should fail")
	}
	if _, err := extractUserID(jwt.MapClaims{"id": "not-a-uuid"}); err == nil {
		t.Error("malformed id should fail")
	}
}

func TestStoreBasicClaimsToLocalsFiltersUnknownRole(t *testing.T) {
	cases := []struct {
		name       string
		role       string
		wantStored bool
	}{
		{"known role stored", constants.RoleMilitar, true},
		{"retired role not stored", "Gestor", false},
		{"empty role not stored", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got interface{}
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				storeBasicClaimsToLocals(c, jwt.MapClaims{"role": tc.role, "user_name": "x"})
				got = c.Locals("userRole")
				return c.SendStatus(fiber.StatusOK)
			})
			if _, err := app.Test(httptest.NewRequest("GET", "/", nil)); err != nil {
				t.Fatalf("app.Test: %v", err)
			}

			if tc.wantStored {
				if got != tc.role {
					t.Errorf("userRole = %v, want %q", got, tc.role)
				}
			} else if got != nil {
				t.Errorf("unknown role should not reach the Locals, got %v", got)
			}
		})
	}
}
