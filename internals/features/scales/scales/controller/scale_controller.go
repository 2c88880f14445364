package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/scales/scales/dto"
	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/scales/scales/model"
	helper "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/helpers"
)

type ScaleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewScaleController(db *gorm.DB) *ScaleController {
	return &ScaleController{DB: db, Validate: validator.New()}
}

// GET /api/u/scales
// Devolve cada escala já com services/reservations aninhados.
func (ctl *ScaleController) List(c *fiber.Ctx) error {
	var scales []m.ScaleModel
	if err := ctl.DB.Order("name asc").Find(&scales).Error; err != nil {
		log.Printf("[ERROR] list scales: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar escalas")
	}

	var services []m.ServiceModel
	if err := ctl.DB.Find(&services).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao carregar serviços")
	}
	var reservations []m.ReservationModel
	if err := ctl.DB.Find(&reservations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao carregar reservas")
	}

	out := make([]d.ScaleResponse, 0, len(scales))
	for i := range scales {
		out = append(out, d.NewScaleResponse(&scales[i], services, reservations))
	}
	return helper.Success(c, "OK", out)
}

// GET /api/u/scales/:id
func (ctl *ScaleController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	scale, err := ctl.findScale(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Escala não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	resp, err := ctl.buildResponse(scale)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}
	return helper.Success(c, "OK", resp)
}

// POST /api/a/scales
func (ctl *ScaleController) Create(c *fiber.Ctx) error {
	var req d.CreateScaleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.ScaleModel
	req.ApplyToModel(&row)

	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] create scale: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao criar escala")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Escala criada",
		d.NewScaleResponse(&row, nil, nil))
}

// PUT /api/a/scales/:id
func (ctl *ScaleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	var req d.UpdateScaleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	scale, err := ctl.findScale(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Escala não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	req.ApplyPatch(scale)
	if err := ctl.DB.Save(scale).Error; err != nil {
		log.Printf("[ERROR] update scale: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar escala")
	}

	resp, err := ctl.buildResponse(scale)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}
	return helper.Success(c, "Escala atualizada", resp)
}

// DELETE /api/a/scales/:id
// Remove também, na mesma transação, os serviços e reservas da escala.
func (ctl *ScaleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	scale, err := ctl.findScale(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Escala não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("scale_id = ?", id).Delete(&m.ServiceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("scale_id = ?", id).Delete(&m.ReservationModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(scale).Error
	})
	if err != nil {
		log.Printf("[ERROR] delete scale: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao remover escala")
	}

	return helper.Success(c, "Escala removida", nil)
}

func (ctl *ScaleController) findScale(id uuid.UUID) (*m.ScaleModel, error) {
	var scale m.ScaleModel
	if err := ctl.DB.First(&scale, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &scale, nil
}

func (ctl *ScaleController) buildResponse(scale *m.ScaleModel) (d.ScaleResponse, error) {
	var services []m.ServiceModel
	if err := ctl.DB.Where("scale_id = ?", scale.ID).Find(&services).Error; err != nil {
		return d.ScaleResponse{}, err
	}
	var reservations []m.ReservationModel
	if err := ctl.DB.Where("scale_id = ?", scale.ID).Find(&reservations).Error; err != nil {
		return d.ScaleResponse{}, err
	}
	return d.NewScaleResponse(scale, services, reservations), nil
}
