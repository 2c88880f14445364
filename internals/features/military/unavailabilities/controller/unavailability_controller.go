package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailabilities/dto"
	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailabilities/model"
	helper "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/helpers"
)

type UnavailabilityController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUnavailabilityController(db *gorm.DB) *UnavailabilityController {
	return &UnavailabilityController{DB: db, Validate: validator.New()}
}

// GET /api/u/unavailabilities?military_id=&from=&to=
func (ctl *UnavailabilityController) List(c *fiber.Ctx) error {
	db := ctl.DB.Model(&m.UnavailabilityModel{})

	if militaryID := c.Query("military_id"); militaryID != "" {
		if _, err := uuid.Parse(militaryID); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "military_id inválido")
		}
		db = db.Where("military_id = ?", militaryID)
	}
	if from := c.Query("from"); from != "" {
		dt, err := d.ParseDate(from)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "from inválido (YYYY-MM-DD)")
		}
		db = db.Where("end_date >= ?", dt)
	}
	if to := c.Query("to"); to != "" {
		dt, err := d.ParseDate(to)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "to inválido (YYYY-MM-DD)")
		}
		db = db.Where("start_date <= ?", dt)
	}

	var rows []m.UnavailabilityModel
	if err := db.Order("start_date asc").Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list unavailabilities: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar indisponibilidades")
	}

	out := make([]d.UnavailabilityResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewUnavailabilityResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// POST /api/a/unavailabilities
func (ctl *UnavailabilityController) Create(c *fiber.Ctx) error {
	var req d.CreateUnavailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.UnavailabilityModel
	if err := req.ApplyToModel(&row); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] create unavailability: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao criar indisponibilidade")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Indisponibilidade criada", d.NewUnavailabilityResponse(&row))
}

// PUT /api/a/unavailabilities/:id
func (ctl *UnavailabilityController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	var req d.UpdateUnavailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.UnavailabilityModel
	if err := ctl.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Indisponibilidade não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	if err := req.ApplyPatch(&row); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Save(&row).Error; err != nil {
		log.Printf("[ERROR] update unavailability: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar indisponibilidade")
	}

	return helper.Success(c, "Indisponibilidade atualizada", d.NewUnavailabilityResponse(&row))
}

// DELETE /api/a/unavailabilities/:id
func (ctl *UnavailabilityController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.Delete(&m.UnavailabilityModel{}, "id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete unavailability: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao remover indisponibilidade")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Indisponibilidade não encontrada")
	}

	return helper.Success(c, "Indisponibilidade removida", nil)
}

// GET /api/u/militaries/:id/availability?date=YYYY-MM-DD
// Um militar está indisponível no dia D quando start_date <= D <= end_date
// (inclusive nas duas pontas).
func (ctl *UnavailabilityController) CheckAvailability(c *fiber.Ctx) error {
	militaryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}
	day, err := d.ParseDate(c.Query("date"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "date inválido (YYYY-MM-DD)")
	}

	var rows []m.UnavailabilityModel
	if err := ctl.DB.
		Where("military_id = ?", militaryID).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] availability check: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha na checagem de disponibilidade")
	}

	out := make([]d.UnavailabilityResponse, 0, len(rows))
	for i := range rows {
		if !rows[i].CoversDate(day) {
			continue
		}
		out = append(out, d.NewUnavailabilityResponse(&rows[i]))
	}

	return helper.Success(c, "OK", fiber.Map{
		"available":        len(out) == 0,
		"unavailabilities": out,
	})
}
