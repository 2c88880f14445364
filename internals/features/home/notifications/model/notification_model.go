package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Severidades aceitas em notifications.type
const (
	TypeInfo    = "info"
	TypeWarning = "warning"
	TypeError   = "error"
	TypeSuccess = "success"
)

type NotificationModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Message   string            `gorm:"type:text;not null" json:"message"`
	Type      string            `gorm:"type:varchar(20);not null;default:'info'" json:"type"`
	Read      bool              `gorm:"not null;default:false" json:"read"`
	Data      datatypes.JSONMap `gorm:"type:jsonb" json:"data,omitempty"` // payload livre (ex.: scale_id relacionado)
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
