package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserModel representa a tabela users (contas de acesso ao painel).
// Conta de login é distinta do registro de Militar; o vínculo é apenas
// a lista de escalas associadas.
type UserModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName         string         `gorm:"size:100;not null" json:"user_name" validate:"required,min=3,max=100"`
	Email            string         `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password         string         `gorm:"not null" json:"-"`
	Role             string         `gorm:"type:varchar(20);not null;default:'Militar'" json:"role"`
	AvatarURL        *string        `gorm:"type:text" json:"avatar_url,omitempty"`
	AssociatedScales pq.StringArray `gorm:"type:text[];column:associated_scale_ids" json:"associated_scale_ids"`
	IsActive         bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
