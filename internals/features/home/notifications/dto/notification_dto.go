package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/home/notifications/model"
)

type CreateNotificationRequest struct {
	Message string                 `json:"message" validate:"required,min=2,max=2000"`
	Type    string                 `json:"type" validate:"omitempty,oneof=info warning error success"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

func (r *CreateNotificationRequest) ApplyToModel(dst *m.NotificationModel) {
	dst.Message = strings.TrimSpace(r.Message)
	dst.Type = r.Type
	if dst.Type == "" {
		dst.Type = m.TypeInfo
	}
	if r.Data != nil {
		dst.Data = datatypes.JSONMap(r.Data)
	}
}

type NotificationResponse struct {
	ID        string                 `json:"id"`
	Message   string                 `json:"message"`
	Type      string                 `json:"type"`
	Read      bool                   `json:"read"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

func NewNotificationResponse(src *m.NotificationModel) NotificationResponse {
	return NotificationResponse{
		ID:        src.ID.String(),
		Message:   src.Message,
		Type:      src.Type,
		Read:      src.Read,
		Data:      map[string]interface{}(src.Data),
		CreatedAt: src.CreatedAt,
	}
}
