package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceModel representa a tabela services: uma atribuição de serviço
// (militar + dia + janela de horário) dentro de uma escala. Pode haver
// várias por dia, cada uma uma janela distinta.
type ServiceModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ScaleID      uuid.UUID `gorm:"type:uuid;not null;index;column:scale_id" json:"scale_id"`
	MilitaryID   uuid.UUID `gorm:"type:uuid;not null;index;column:military_id" json:"military_id"`
	Date         time.Time `gorm:"type:date;not null;index" json:"date"`
	StartTime    string    `gorm:"type:varchar(5);not null" json:"start_time"` // "HH:mm"
	EndTime      string    `gorm:"type:varchar(5);not null" json:"end_time"`
	Observations *string   `gorm:"type:text" json:"observations,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ServiceModel) TableName() string {
	return "services"
}

// SameDay compara apenas ano/mês/dia, ignorando hora e fuso.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ServicesOfDay devolve apenas os services do dia informado.
func ServicesOfDay(services []ServiceModel, day time.Time) []ServiceModel {
	out := make([]ServiceModel, 0, 2)
	for _, s := range services {
		if SameDay(s.Date, day) {
			out = append(out, s)
		}
	}
	return out
}
