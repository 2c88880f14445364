package dto

import (
	"strings"

	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailability_types/model"
)

type CreateUnavailabilityTypeRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type UpdateUnavailabilityTypeRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

func (r *CreateUnavailabilityTypeRequest) ApplyToModel(dst *m.UnavailabilityTypeModel) {
	dst.Name = strings.TrimSpace(r.Name)
	dst.Description = r.Description
}

func (r *UpdateUnavailabilityTypeRequest) ApplyPatch(dst *m.UnavailabilityTypeModel) {
	if r.Name != nil {
		dst.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		dst.Description = r.Description
	}
}

type UnavailabilityTypeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func NewUnavailabilityTypeResponse(src *m.UnavailabilityTypeModel) UnavailabilityTypeResponse {
	return UnavailabilityTypeResponse{
		ID:          src.ID.String(),
		Name:        src.Name,
		Description: src.Description,
	}
}
