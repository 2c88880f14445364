package dto

import (
	"strings"
	"time"

	"github.com/lib/pq"

	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/scales/scales/model"
)

const layoutDate = "2006-01-02"

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateScaleRequest struct {
	Name               string   `json:"name" validate:"required,min=2,max=255"`
	Description        string   `json:"description" validate:"omitempty,max=2000"`
	AssociatedMilitary []string `json:"associated_military_ids" validate:"omitempty,dive,uuid4"`
}

type UpdateScaleRequest struct {
	Name               *string   `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description        *string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	AssociatedMilitary *[]string `json:"associated_military_ids,omitempty" validate:"omitempty,dive,uuid4"`
}

func (r *CreateScaleRequest) ApplyToModel(dst *m.ScaleModel) {
	dst.Name = strings.TrimSpace(r.Name)
	dst.Description = strings.TrimSpace(r.Description)
	dst.AssociatedMilitary = pq.StringArray(r.AssociatedMilitary)
}

func (r *UpdateScaleRequest) ApplyPatch(dst *m.ScaleModel) {
	if r.Name != nil {
		dst.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		dst.Description = strings.TrimSpace(*r.Description)
	}
	if r.AssociatedMilitary != nil {
		dst.AssociatedMilitary = pq.StringArray(*r.AssociatedMilitary)
	}
}

/* =======================================================
   Response DTOs — escala com services/reservations aninhados,
   como o painel consome
   ======================================================= */

type ServiceResponse struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"` // YYYY-MM-DD
	MilitaryID   string  `json:"military_id"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Observations *string `json:"observations,omitempty"`
}

type ReservationResponse struct {
	Date        string   `json:"date"`
	MilitaryIDs []string `json:"military_ids"`
}

type ScaleResponse struct {
	ID                 string                `json:"id"`
	Name               string                `json:"name"`
	Description        string                `json:"description"`
	AssociatedMilitary []string              `json:"associated_military_ids"`
	Services           []ServiceResponse     `json:"services"`
	Reservations       []ReservationResponse `json:"reservations"`
}

func NewServiceResponse(src *m.ServiceModel) ServiceResponse {
	return ServiceResponse{
		ID:           src.ID.String(),
		Date:         src.Date.Format(layoutDate),
		MilitaryID:   src.MilitaryID.String(),
		StartTime:    src.StartTime,
		EndTime:      src.EndTime,
		Observations: src.Observations,
	}
}

func NewReservationResponse(src *m.ReservationModel) ReservationResponse {
	ids := []string(src.MilitaryIDs)
	if ids == nil {
		ids = []string{}
	}
	return ReservationResponse{
		Date:        src.Date.Format(layoutDate),
		MilitaryIDs: ids,
	}
}

// NewScaleResponse monta a escala aninhada a partir das coleções planas,
// casando pelo scale_id (o join que o painel fazia no cliente).
func NewScaleResponse(src *m.ScaleModel, services []m.ServiceModel, reservations []m.ReservationModel) ScaleResponse {
	military := []string(src.AssociatedMilitary)
	if military == nil {
		military = []string{}
	}

	svcOut := make([]ServiceResponse, 0, len(services))
	for i := range services {
		if services[i].ScaleID == src.ID {
			svcOut = append(svcOut, NewServiceResponse(&services[i]))
		}
	}

	resOut := make([]ReservationResponse, 0, len(reservations))
	for i := range reservations {
		if reservations[i].ScaleID == src.ID {
			resOut = append(resOut, NewReservationResponse(&reservations[i]))
		}
	}

	return ScaleResponse{
		ID:                 src.ID.String(),
		Name:               src.Name,
		Description:        src.Description,
		AssociatedMilitary: military,
		Services:           svcOut,
		Reservations:       resOut,
	}
}

// ParseDateParam interpreta o :date dos endpoints de dia (YYYY-MM-DD).
func ParseDateParam(s string) (time.Time, error) {
	return time.Parse(layoutDate, strings.TrimSpace(s))
}
