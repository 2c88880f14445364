package model

import (
	"time"

	"github.com/google/uuid"
)

// ConfigurationModel representa a tabela configurations: chave/valor/descrição
// para parâmetros do sistema (ex.: max_consecutive_services).
type ConfigurationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Key         string    `gorm:"size:100;unique;not null" json:"key"`
	Value       string    `gorm:"type:text;not null" json:"value"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ConfigurationModel) TableName() string {
	return "configurations"
}
