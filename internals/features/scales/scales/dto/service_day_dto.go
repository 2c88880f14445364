package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/scales/scales/model"
)

/* =======================================================
   Troca completa dos serviços de um dia
   ======================================================= */

// DayServiceEntry é uma atribuição dentro da lista enviada para o dia.
// A data vem da URL; aqui só militar + janela + observação.
type DayServiceEntry struct {
	MilitaryID   string  `json:"military_id" validate:"required,uuid4"`
	StartTime    string  `json:"start_time" validate:"required"`
	EndTime      string  `json:"end_time" validate:"required"`
	Observations *string `json:"observations,omitempty"`
}

// ReplaceDayServicesRequest substitui TODOS os serviços de (escala, dia).
// Lista vazia = dia sem serviço.
type ReplaceDayServicesRequest struct {
	Services []DayServiceEntry `json:"services" validate:"dive"`
}

// UpsertReservationRequest troca o sobreaviso do dia.
// Lista vazia remove a reserva por completo.
type UpsertReservationRequest struct {
	MilitaryIDs []string `json:"military_ids" validate:"omitempty,dive,uuid4"`
}

// ToModels valida horários e converte as entradas em linhas prontas
// para inserir, já com scale_id e date preenchidos.
func (r *ReplaceDayServicesRequest) ToModels(scaleID uuid.UUID, day time.Time) ([]m.ServiceModel, error) {
	out := make([]m.ServiceModel, 0, len(r.Services))
	for i, e := range r.Services {
		start, err := normalizeHourMinute(e.StartTime)
		if err != nil {
			return nil, fmt.Errorf("services[%d].start_time: %w", i, err)
		}
		end, err := normalizeHourMinute(e.EndTime)
		if err != nil {
			return nil, fmt.Errorf("services[%d].end_time: %w", i, err)
		}
		militaryID, err := uuid.Parse(strings.TrimSpace(e.MilitaryID))
		if err != nil {
			return nil, fmt.Errorf("services[%d].military_id: %w", i, err)
		}
		out = append(out, m.ServiceModel{
			ScaleID:      scaleID,
			MilitaryID:   militaryID,
			Date:         day,
			StartTime:    start,
			EndTime:      end,
			Observations: e.Observations,
		})
	}
	return out, nil
}

// normalizeHourMinute aceita "H:mm" ou "HH:mm" e devolve sempre "HH:mm".
// Janelas que viram a noite (ex.: 20:00 -> 08:00) são válidas, então não
// há comparação start < end aqui.
func normalizeHourMinute(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("horário vazio")
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", fmt.Errorf("horário inválido (esperado HH:mm): %w", err)
	}
	return t.Format("15:04"), nil
}
