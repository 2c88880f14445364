package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailabilities/model"
)

const layoutDate = "2006-01-02"

// ParseDate interpreta datas YYYY-MM-DD vindas de query/body.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("data vazia")
	}
	t, err := time.Parse(layoutDate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida (esperado YYYY-MM-DD): %w", err)
	}
	return t, nil
}

/* =======================================================
   Request DTOs — datas como string, simples para o FE
   ======================================================= */

type CreateUnavailabilityRequest struct {
	MilitaryID    string  `json:"military_id" validate:"required,uuid4"`
	TypeID        string  `json:"unavailability_type_id" validate:"required,uuid4"`
	StartDate     string  `json:"start_date" validate:"required"`
	EndDate       string  `json:"end_date" validate:"required"`
	ReasonDetails *string `json:"reason_details,omitempty"`
}

type UpdateUnavailabilityRequest struct {
	TypeID        *string `json:"unavailability_type_id,omitempty" validate:"omitempty,uuid4"`
	StartDate     *string `json:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	ReasonDetails *string `json:"reason_details,omitempty"`
}

func (r *CreateUnavailabilityRequest) ApplyToModel(dst *m.UnavailabilityModel) error {
	militaryID, err := uuid.Parse(strings.TrimSpace(r.MilitaryID))
	if err != nil {
		return fmt.Errorf("military_id: %w", err)
	}
	typeID, err := uuid.Parse(strings.TrimSpace(r.TypeID))
	if err != nil {
		return fmt.Errorf("unavailability_type_id: %w", err)
	}
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return fmt.Errorf("start_date: %w", err)
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return fmt.Errorf("end_date: %w", err)
	}
	if end.Before(start) {
		return errors.New("end_date deve ser >= start_date")
	}

	dst.MilitaryID = militaryID
	dst.TypeID = &typeID
	dst.StartDate = start
	dst.EndDate = end
	dst.ReasonDetails = r.ReasonDetails
	return nil
}

func (r *UpdateUnavailabilityRequest) ApplyPatch(dst *m.UnavailabilityModel) error {
	if r.TypeID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*r.TypeID))
		if err != nil {
			return fmt.Errorf("unavailability_type_id: %w", err)
		}
		dst.TypeID = &id
		dst.LegacyType = nil // FK canônico substitui o texto legado
	}
	if r.StartDate != nil {
		d, err := ParseDate(*r.StartDate)
		if err != nil {
			return fmt.Errorf("start_date: %w", err)
		}
		dst.StartDate = d
	}
	if r.EndDate != nil {
		d, err := ParseDate(*r.EndDate)
		if err != nil {
			return fmt.Errorf("end_date: %w", err)
		}
		dst.EndDate = d
	}
	if r.StartDate != nil || r.EndDate != nil {
		if dst.EndDate.Before(dst.StartDate) {
			return errors.New("end_date deve ser >= start_date")
		}
	}
	if r.ReasonDetails != nil {
		dst.ReasonDetails = r.ReasonDetails
	}
	return nil
}

/* =======================================================
   Response DTO
   ======================================================= */

type UnavailabilityResponse struct {
	ID            string  `json:"id"`
	MilitaryID    string  `json:"military_id"`
	TypeID        *string `json:"unavailability_type_id,omitempty"`
	LegacyType    *string `json:"legacy_type,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	ReasonDetails *string `json:"reason_details,omitempty"`
}

func NewUnavailabilityResponse(src *m.UnavailabilityModel) UnavailabilityResponse {
	var typeID *string
	if src.TypeID != nil {
		s := src.TypeID.String()
		typeID = &s
	}
	return UnavailabilityResponse{
		ID:            src.ID.String(),
		MilitaryID:    src.MilitaryID.String(),
		TypeID:        typeID,
		LegacyType:    src.LegacyType,
		StartDate:     src.StartDate.Format(layoutDate),
		EndDate:       src.EndDate.Format(layoutDate),
		ReasonDetails: src.ReasonDetails,
	}
}
