package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	militaryModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/militaries/model"
	unavailabilityModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailabilities/model"
	typeModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailability_types/model"
	d "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/scales/scales/dto"
	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/scales/scales/model"
	helper "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/helpers"
)

// PUT /api/a/scales/:id/days/:date/services
//
// Substitui todos os serviços de (escala, dia) de uma vez: apaga e insere
// dentro da MESMA transação, para nunca deixar o dia pela metade.
func (ctl *ScaleController) ReplaceServicesForDay(c *fiber.Ctx) error {
	scaleID, day, ok := ctl.parseDayParams(c)
	if !ok {
		return nil // resposta já escrita
	}

	if _, err := ctl.findScale(scaleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Escala não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	var req d.ReplaceDayServicesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	rows, err := req.ToModels(scaleID, day)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var existing []m.ServiceModel
		if err := tx.Where("scale_id = ?", scaleID).Find(&existing).Error; err != nil {
			return err
		}
		if old := m.ServicesOfDay(existing, day); len(old) > 0 {
			ids := make([]uuid.UUID, 0, len(old))
			for i := range old {
				ids = append(ids, old[i].ID)
			}
			if err := tx.Delete(&m.ServiceModel{}, "id IN ?", ids).Error; err != nil {
				return err
			}
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		log.Printf("[ERROR] replace day services: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gravar serviços do dia")
	}

	out := make([]d.ServiceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewServiceResponse(&rows[i]))
	}
	return helper.Success(c, "Serviços do dia atualizados", out)
}

// PUT /api/a/scales/:id/days/:date/reservation
// Lista vazia remove a reserva; senão cria ou sobrescreve a linha do dia.
func (ctl *ScaleController) UpsertReservationForDay(c *fiber.Ctx) error {
	scaleID, day, ok := ctl.parseDayParams(c)
	if !ok {
		return nil
	}

	if _, err := ctl.findScale(scaleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Escala não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	var req d.UpsertReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.ReservationModel
	err := ctl.DB.Where("scale_id = ? AND date = ?", scaleID, day).First(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] load reservation: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao carregar reserva")
	}
	exists := err == nil

	switch m.PlanReservationChange(req.MilitaryIDs, exists) {
	case m.ReservationRemove:
		if err := ctl.DB.Delete(&row).Error; err != nil {
			log.Printf("[ERROR] delete reservation: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Falha ao remover reserva")
		}
		return helper.Success(c, "Reserva removida", nil)
	case m.ReservationNoop:
		return helper.Success(c, "Reserva removida", nil)
	case m.ReservationCreate:
		row = m.ReservationModel{ScaleID: scaleID, Date: day, MilitaryIDs: pq.StringArray(req.MilitaryIDs)}
		if err := ctl.DB.Create(&row).Error; err != nil {
			log.Printf("[ERROR] create reservation: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gravar reserva")
		}
	default: // ReservationUpdate
		row.MilitaryIDs = pq.StringArray(req.MilitaryIDs)
		if err := ctl.DB.Save(&row).Error; err != nil {
			log.Printf("[ERROR] update reservation: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gravar reserva")
		}
	}

	return helper.Success(c, "Reserva atualizada", d.NewReservationResponse(&row))
}

type conflictEntry struct {
	MilitaryID   string  `json:"military_id"`
	MilitaryName string  `json:"military_name"`
	Type         *string `json:"type,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
}

// GET /api/u/scales/:id/conflicts?date=YYYY-MM-DD
// Membros da escala indisponíveis na data informada.
func (ctl *ScaleController) Conflicts(c *fiber.Ctx) error {
	scaleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}
	day, err := d.ParseDateParam(c.Query("date"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "date inválida (esperado YYYY-MM-DD)")
	}

	scale, err := ctl.findScale(scaleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Escala não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	members := []string(scale.AssociatedMilitary)
	if len(members) == 0 {
		return helper.Success(c, "OK", []conflictEntry{})
	}

	var rows []unavailabilityModel.UnavailabilityModel
	if err := ctl.DB.
		Where("military_id IN ?", members).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] scale conflicts: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao verificar conflitos")
	}

	out := make([]conflictEntry, 0, len(rows))
	for i := range rows {
		u := &rows[i]
		if !u.CoversDate(day) {
			continue
		}
		out = append(out, conflictEntry{
			MilitaryID:   u.MilitaryID.String(),
			MilitaryName: ctl.militaryName(u.MilitaryID),
			Type:         ctl.typeName(u),
			StartDate:    u.StartDate.Format("2006-01-02"),
			EndDate:      u.EndDate.Format("2006-01-02"),
		})
	}
	return helper.Success(c, "OK", out)
}

func (ctl *ScaleController) parseDayParams(c *fiber.Ctx) (uuid.UUID, time.Time, bool) {
	scaleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = helper.Error(c, fiber.StatusBadRequest, "id inválido")
		return uuid.Nil, time.Time{}, false
	}
	day, err := d.ParseDateParam(c.Params("date"))
	if err != nil {
		_ = helper.Error(c, fiber.StatusBadRequest, "data inválida (esperado YYYY-MM-DD)")
		return uuid.Nil, time.Time{}, false
	}
	return scaleID, day, true
}

func (ctl *ScaleController) militaryName(id uuid.UUID) string {
	var mil militaryModel.MilitaryModel
	if err := ctl.DB.Select("name").First(&mil, "id = ?", id).Error; err != nil {
		return ""
	}
	return mil.Name
}

func (ctl *ScaleController) typeName(u *unavailabilityModel.UnavailabilityModel) *string {
	if u.TypeID != nil {
		var typ typeModel.UnavailabilityTypeModel
		if err := ctl.DB.Select("name").First(&typ, "id = ?", *u.TypeID).Error; err == nil {
			return &typ.Name
		}
	}
	return u.LegacyType
}
