package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Status possíveis de um militar (schema canônico; variantes antigas
// sem unit/status entram com os defaults abaixo).
const (
	StatusActive   = "Ativo"
	StatusInactive = "Inativo"
)

// MilitaryModel representa a tabela military (efetivo gerenciado pelo painel,
// independente das contas de login).
type MilitaryModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	Rank             string         `gorm:"size:100;not null" json:"rank"`
	Unit             string         `gorm:"size:100;not null;default:'Desconhecida'" json:"unit"`
	Status           string         `gorm:"type:varchar(20);not null;default:'Ativo'" json:"status"`
	Email            string         `gorm:"size:255" json:"email"`
	Phone            string         `gorm:"size:30" json:"phone"`
	AvatarURL        *string        `gorm:"type:text;column:avatar_url" json:"avatar_url,omitempty"`
	AssociatedScales pq.StringArray `gorm:"type:text[];column:associated_scale_ids" json:"associated_scale_ids"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MilitaryModel) TableName() string {
	return "military"
}
