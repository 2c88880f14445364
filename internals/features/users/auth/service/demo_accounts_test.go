package service

import (
	"testing"

	"github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/constants"
)

func TestMatchDemoAccount(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		wantRole string
		wantNil  bool
	}{
		{"admin exact", "admin@escala.mil", "admin", constants.RoleAdmin, false},
		{"email case insensitive", "ADMIN@Escala.MIL", "admin", constants.RoleAdmin, false},
		{"email trimmed", "  admin@escala.mil  ", "admin", constants.RoleAdmin, false},
		{"militar account", "joao@escala.mil", "user123", constants.RoleMilitar, false},
		{"horus admin", "admin@horus.com", "123456", constants.RoleAdmin, false},
		{"wrong password", "admin@escala.mil", "ADMIN", "", true},
		{"unknown email", "alguem@escala.mil", "admin", "", true},
		{"empty", "", "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MatchDemoAccount(tc.email, tc.password)
			if tc.wantNil {
				if got != nil {
					t.Fatalf("expected nil, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a demo account, got nil")
			}
			if got.Role != tc.wantRole {
				t.Errorf("role = %q, want %q", got.Role, tc.wantRole)
			}
		})
	}
}

func TestMatchDemoAccountPasswordIsCaseSensitive(t *testing.T) {
	if MatchDemoAccount("joao@escala.mil", "USER123") != nil {
		t.Error("password comparison must be exact")
	}
}
