package model

import (
	"time"

	"github.com/google/uuid"
)

// UnavailabilityTypeModel representa a tabela unavailability_types
// (Férias, Licença, Missão, Dispensa Médica...).
type UnavailabilityTypeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"size:100;unique;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UnavailabilityTypeModel) TableName() string {
	return "unavailability_types"
}
