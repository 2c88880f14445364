package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/constants"
	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/users/user/model"
)

func TestCreateUserApplyToModel(t *testing.T) {
	req := CreateUserRequest{
		UserName: "  Cabo João  ",
		Email:    "Joao@Escala.MIL",
		Password: "user123",
		Role:     constants.RoleMilitar,
	}

	var dst m.UserModel
	req.ApplyToModel(&dst)

	if dst.UserName != "Cabo João" {
		t.Errorf("user_name not trimmed: %q", dst.UserName)
	}
	if dst.Email != "joao@escala.mil" {
		t.Errorf("email not lowered: %q", dst.Email)
	}
	if dst.Role != constants.RoleMilitar {
		t.Errorf("role = %q", dst.Role)
	}
	// ApplyToModel nunca grava a senha; o controller grava só o hash
	if dst.Password != "" {
		t.Errorf("password must not be copied in plaintext: %q", dst.Password)
	}
}

func TestUpdateUserApplyPatchToggleActive(t *testing.T) {
	dst := m.UserModel{UserName: "Cabo João", Email: "joao@escala.mil", Role: constants.RoleMilitar, IsActive: true}

	inactive := false
	req := UpdateUserRequest{IsActive: &inactive}
	req.ApplyPatch(&dst)

	if dst.IsActive {
		t.Error("is_active not patched to false")
	}
	if dst.UserName != "Cabo João" || dst.Role != constants.RoleMilitar {
		t.Errorf("untouched fields changed: %+v", dst)
	}
}

func TestUserResponseNeverLeaksPassword(t *testing.T) {
	u := m.UserModel{
		ID:       uuid.New(),
		UserName: "Cabo João",
		Email:    "joao@escala.mil",
		Password: "$2a$10$segredo",
		Role:     constants.RoleMilitar,
		IsActive: true,
	}

	raw, err := json.Marshal(NewUserResponse(&u))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "segredo") || strings.Contains(string(raw), "password") {
		t.Errorf("response leaks password material: %s", raw)
	}

	// o próprio model também esconde a senha no JSON
	rawModel, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal model: %v", err)
	}
	if strings.Contains(string(rawModel), "segredo") {
		t.Errorf("model JSON leaks password: %s", rawModel)
	}
}
