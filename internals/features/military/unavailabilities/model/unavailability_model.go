package model

import (
	"time"

	"github.com/google/uuid"
)

// UnavailabilityModel representa a tabela unavailabilities: um intervalo de
// dias (inclusive nas duas pontas) em que o militar não pode ser escalado.
//
// Schema canônico: FK por id em unavailability_type_id. A coluna legacy_type
// carrega o valor texto-livre de gerações antigas do schema até a migração
// de boot preencher o FK; renomear um tipo reescreve também essas linhas.
type UnavailabilityModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MilitaryID    uuid.UUID  `gorm:"type:uuid;not null;index;column:military_id" json:"military_id"`
	TypeID        *uuid.UUID `gorm:"type:uuid;index;column:unavailability_type_id" json:"unavailability_type_id,omitempty"`
	LegacyType    *string    `gorm:"type:text;column:legacy_type" json:"legacy_type,omitempty"`
	StartDate     time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate       time.Time  `gorm:"type:date;not null" json:"end_date"`
	ReasonDetails *string    `gorm:"type:text;column:reason_details" json:"reason_details,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UnavailabilityModel) TableName() string {
	return "unavailabilities"
}

// CoversDate responde se o dia D cai dentro de [StartDate, EndDate],
// inclusive nas duas pontas. Compara só ano/mês/dia.
func (u UnavailabilityModel) CoversDate(day time.Time) bool {
	d := truncateDay(day)
	return !d.Before(truncateDay(u.StartDate)) && !d.After(truncateDay(u.EndDate))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LegacyRenameTargets devolve os IDs das linhas cujo texto legado bate
// exatamente com oldName. Linhas já resolvidas por FK ou com outro nome
// ficam de fora: renomear um tipo só pode arrastar quem aponta para ele.
func LegacyRenameTargets(rows []UnavailabilityModel, oldName string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		if rows[i].LegacyType != nil && *rows[i].LegacyType == oldName {
			ids = append(ids, rows[i].ID)
		}
	}
	return ids
}
