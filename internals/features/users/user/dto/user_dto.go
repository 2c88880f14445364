package dto

import (
	"strings"

	"github.com/lib/pq"

	"github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/constants"
	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/users/user/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateUserRequest struct {
	UserName         string   `json:"user_name" validate:"required,min=3,max=100"`
	Email            string   `json:"email" validate:"required,email"`
	Password         string   `json:"password" validate:"required,min=6"`
	Role             string   `json:"role" validate:"required,oneof=Admin Militar"`
	AvatarURL        *string  `json:"avatar_url,omitempty"`
	AssociatedScales []string `json:"associated_scale_ids" validate:"omitempty,dive,uuid4"`
}

// UpdateUserRequest — só campos não-nil são aplicados (PATCH-like,
// mesmo contrato do painel: updateUser manda só o que mudou).
type UpdateUserRequest struct {
	UserName         *string   `json:"user_name,omitempty" validate:"omitempty,min=3,max=100"`
	Email            *string   `json:"email,omitempty" validate:"omitempty,email"`
	Role             *string   `json:"role,omitempty" validate:"omitempty,oneof=Admin Militar"`
	AvatarURL        *string   `json:"avatar_url,omitempty"`
	AssociatedScales *[]string `json:"associated_scale_ids,omitempty" validate:"omitempty,dive,uuid4"`
	IsActive         *bool     `json:"is_active,omitempty"`
}

func (r *CreateUserRequest) ApplyToModel(dst *m.UserModel) {
	dst.UserName = strings.TrimSpace(r.UserName)
	dst.Email = strings.ToLower(strings.TrimSpace(r.Email))
	dst.Role = r.Role
	dst.AvatarURL = r.AvatarURL
	dst.AssociatedScales = pq.StringArray(r.AssociatedScales)
	if dst.Role == "" {
		dst.Role = constants.RoleMilitar
	}
}

func (r *UpdateUserRequest) ApplyPatch(dst *m.UserModel) {
	if r.UserName != nil {
		dst.UserName = strings.TrimSpace(*r.UserName)
	}
	if r.Email != nil {
		dst.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Role != nil {
		dst.Role = *r.Role
	}
	if r.AvatarURL != nil {
		dst.AvatarURL = r.AvatarURL
	}
	if r.AssociatedScales != nil {
		dst.AssociatedScales = pq.StringArray(*r.AssociatedScales)
	}
	if r.IsActive != nil {
		dst.IsActive = *r.IsActive
	}
}

// UpdateProfileRequest — o que o próprio usuário pode mudar em si.
// Papel e is_active ficam de fora de propósito.
type UpdateProfileRequest struct {
	UserName  *string `json:"user_name,omitempty" validate:"omitempty,min=3,max=100"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// ApplyProfile aplica os campos não-sensíveis; a senha é tratada pelo
// controller, que grava só o hash.
func (r *UpdateProfileRequest) ApplyProfile(dst *m.UserModel) {
	if r.UserName != nil {
		dst.UserName = strings.TrimSpace(*r.UserName)
	}
	if r.AvatarURL != nil {
		dst.AvatarURL = r.AvatarURL
	}
}

/* =======================================================
   Response DTO — senha nunca sai daqui
   ======================================================= */

type UserResponse struct {
	ID               string   `json:"id"`
	UserName         string   `json:"user_name"`
	Email            string   `json:"email"`
	Role             string   `json:"role"`
	AvatarURL        *string  `json:"avatar_url,omitempty"`
	AssociatedScales []string `json:"associated_scale_ids"`
	IsActive         bool     `json:"is_active"`
}

func NewUserResponse(src *m.UserModel) UserResponse {
	scales := []string(src.AssociatedScales)
	if scales == nil {
		scales = []string{}
	}
	return UserResponse{
		ID:               src.ID.String(),
		UserName:         src.UserName,
		Email:            src.Email,
		Role:             src.Role,
		AvatarURL:        src.AvatarURL,
		AssociatedScales: scales,
		IsActive:         src.IsActive,
	}
}
