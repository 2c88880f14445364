package dto

import (
	"strings"

	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/system/configurations/model"
)

type CreateConfigurationRequest struct {
	Key         string  `json:"key" validate:"required,min=2,max=100"`
	Value       string  `json:"value" validate:"required"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type UpdateConfigurationRequest struct {
	Key         *string `json:"key,omitempty" validate:"omitempty,min=2,max=100"`
	Value       *string `json:"value,omitempty"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

func (r *CreateConfigurationRequest) ApplyToModel(dst *m.ConfigurationModel) {
	dst.Key = strings.TrimSpace(r.Key)
	dst.Value = r.Value
	dst.Description = r.Description
}

func (r *UpdateConfigurationRequest) ApplyPatch(dst *m.ConfigurationModel) {
	if r.Key != nil {
		dst.Key = strings.TrimSpace(*r.Key)
	}
	if r.Value != nil {
		dst.Value = *r.Value
	}
	if r.Description != nil {
		dst.Description = r.Description
	}
}

type ConfigurationResponse struct {
	ID          string  `json:"id"`
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Description *string `json:"description,omitempty"`
}

func NewConfigurationResponse(src *m.ConfigurationModel) ConfigurationResponse {
	return ConfigurationResponse{
		ID:          src.ID.String(),
		Key:         src.Key,
		Value:       src.Value,
		Description: src.Description,
	}
}
