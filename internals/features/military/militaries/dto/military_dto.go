package dto

import (
	"strings"

	"github.com/lib/pq"

	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/militaries/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateMilitaryRequest struct {
	Name             string   `json:"name" validate:"required,min=2,max=255"`
	Rank             string   `json:"rank" validate:"required,min=2,max=100"`
	Unit             string   `json:"unit" validate:"omitempty,max=100"`
	Status           string   `json:"status" validate:"omitempty,oneof=Ativo Inativo"`
	Email            string   `json:"email" validate:"omitempty,email"`
	Phone            string   `json:"phone" validate:"omitempty,max=30"`
	AvatarURL        *string  `json:"avatar_url,omitempty"`
	AssociatedScales []string `json:"associated_scale_ids" validate:"omitempty,dive,uuid4"`
}

type UpdateMilitaryRequest struct {
	Name             *string   `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Rank             *string   `json:"rank,omitempty" validate:"omitempty,min=2,max=100"`
	Unit             *string   `json:"unit,omitempty" validate:"omitempty,max=100"`
	Status           *string   `json:"status,omitempty" validate:"omitempty,oneof=Ativo Inativo"`
	Email            *string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone            *string   `json:"phone,omitempty" validate:"omitempty,max=30"`
	AvatarURL        *string   `json:"avatar_url,omitempty"`
	AssociatedScales *[]string `json:"associated_scale_ids,omitempty" validate:"omitempty,dive,uuid4"`
}

func (r *CreateMilitaryRequest) ApplyToModel(dst *m.MilitaryModel) {
	dst.Name = strings.TrimSpace(r.Name)
	dst.Rank = strings.TrimSpace(r.Rank)
	dst.Unit = strings.TrimSpace(r.Unit)
	if dst.Unit == "" {
		dst.Unit = "Desconhecida"
	}
	dst.Status = r.Status
	if dst.Status == "" {
		dst.Status = m.StatusActive
	}
	dst.Email = strings.ToLower(strings.TrimSpace(r.Email))
	dst.Phone = strings.TrimSpace(r.Phone)
	dst.AvatarURL = r.AvatarURL
	dst.AssociatedScales = pq.StringArray(r.AssociatedScales)
}

func (r *UpdateMilitaryRequest) ApplyPatch(dst *m.MilitaryModel) {
	if r.Name != nil {
		dst.Name = strings.TrimSpace(*r.Name)
	}
	if r.Rank != nil {
		dst.Rank = strings.TrimSpace(*r.Rank)
	}
	if r.Unit != nil {
		dst.Unit = strings.TrimSpace(*r.Unit)
	}
	if r.Status != nil {
		dst.Status = *r.Status
	}
	if r.Email != nil {
		dst.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Phone != nil {
		dst.Phone = strings.TrimSpace(*r.Phone)
	}
	if r.AvatarURL != nil {
		dst.AvatarURL = r.AvatarURL
	}
	if r.AssociatedScales != nil {
		dst.AssociatedScales = pq.StringArray(*r.AssociatedScales)
	}
}

/* =======================================================
   Response DTO
   ======================================================= */

type MilitaryResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Rank             string   `json:"rank"`
	Unit             string   `json:"unit"`
	Status           string   `json:"status"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	AvatarURL        *string  `json:"avatar_url,omitempty"`
	AssociatedScales []string `json:"associated_scale_ids"`
}

func NewMilitaryResponse(src *m.MilitaryModel) MilitaryResponse {
	scales := []string(src.AssociatedScales)
	if scales == nil {
		scales = []string{}
	}
	return MilitaryResponse{
		ID:               src.ID.String(),
		Name:             src.Name,
		Rank:             src.Rank,
		Unit:             src.Unit,
		Status:           src.Status,
		Email:            src.Email,
		Phone:            src.Phone,
		AvatarURL:        src.AvatarURL,
		AssociatedScales: scales,
	}
}
