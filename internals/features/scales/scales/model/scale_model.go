package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ScaleModel representa a tabela scales (escala de serviço).
// Services e reservations pertencem à escala (composição) e são
// reconstruídos como arrays aninhados nas respostas.
type ScaleModel struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name               string         `gorm:"size:255;not null" json:"name"`
	Description        string         `gorm:"type:text" json:"description"`
	AssociatedMilitary pq.StringArray `gorm:"type:text[];column:associated_military_ids" json:"associated_military_ids"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ScaleModel) TableName() string {
	return "scales"
}
