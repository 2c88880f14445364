package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ReservationModel representa a tabela reservations: militares de sobreaviso
// para um dia. No máximo uma linha por (scale_id, date), garantido por índice.
type ReservationModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ScaleID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_reservations_scale_date;column:scale_id" json:"scale_id"`
	Date        time.Time      `gorm:"type:date;not null;uniqueIndex:idx_reservations_scale_date" json:"date"`
	MilitaryIDs pq.StringArray `gorm:"type:text[];column:military_ids" json:"military_ids"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ReservationModel) TableName() string {
	return "reservations"
}

// ReservationChange é o destino decidido para a reserva de um dia.
type ReservationChange int

const (
	ReservationNoop ReservationChange = iota
	ReservationRemove
	ReservationCreate
	ReservationUpdate
)

// PlanReservationChange decide o que fazer com a linha (escala, dia):
// lista vazia remove a reserva existente (ou nada, se não houver); lista
// preenchida cria a linha ou sobrescreve a existente, nunca uma segunda.
func PlanReservationChange(militaryIDs []string, exists bool) ReservationChange {
	if len(militaryIDs) == 0 {
		if exists {
			return ReservationRemove
		}
		return ReservationNoop
	}
	if exists {
		return ReservationUpdate
	}
	return ReservationCreate
}
