package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	unavailabilityModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailabilities/model"
	d "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailability_types/dto"
	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailability_types/model"
	helper "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/helpers"
)

type UnavailabilityTypeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUnavailabilityTypeController(db *gorm.DB) *UnavailabilityTypeController {
	return &UnavailabilityTypeController{DB: db, Validate: validator.New()}
}

// GET /api/u/unavailability-types
func (ctl *UnavailabilityTypeController) List(c *fiber.Ctx) error {
	var rows []m.UnavailabilityTypeModel
	if err := ctl.DB.Order("name asc").Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list types: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar tipos")
	}

	out := make([]d.UnavailabilityTypeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewUnavailabilityTypeResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// POST /api/a/unavailability-types
func (ctl *UnavailabilityTypeController) Create(c *fiber.Ctx) error {
	var req d.CreateUnavailabilityTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.UnavailabilityTypeModel
	req.ApplyToModel(&row)

	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] create type: %v", err)
		return helper.Error(c, fiber.StatusConflict, "Já existe um tipo com esse nome")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tipo criado", d.NewUnavailabilityTypeResponse(&row))
}

// PUT /api/a/unavailability-types/:id
//
// Renomear um tipo reescreve, NA MESMA transação, o texto legado de toda
// indisponibilidade que ainda referencia o tipo pelo nome antigo — resto
// da geração de schema em que o vínculo era por texto e não por FK.
func (ctl *UnavailabilityTypeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	var req d.UpdateUnavailabilityTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.UnavailabilityTypeModel
	if err := ctl.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tipo não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	oldName := row.Name
	req.ApplyPatch(&row)
	renamed := req.Name != nil && row.Name != oldName

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&row).Error; err != nil {
			return err
		}
		if renamed {
			var pending []unavailabilityModel.UnavailabilityModel
			if err := tx.Where("legacy_type IS NOT NULL").Find(&pending).Error; err != nil {
				return err
			}
			ids := unavailabilityModel.LegacyRenameTargets(pending, oldName)
			if len(ids) > 0 {
				if err := tx.Model(&unavailabilityModel.UnavailabilityModel{}).
					Where("id IN ?", ids).
					Update("legacy_type", row.Name).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] update type: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar tipo")
	}

	return helper.Success(c, "Tipo atualizado", d.NewUnavailabilityTypeResponse(&row))
}

// DELETE /api/a/unavailability-types/:id
// Bloqueado enquanto houver indisponibilidade referenciando o tipo,
// seja pelo FK, seja pelo nome legado.
func (ctl *UnavailabilityTypeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	var row m.UnavailabilityTypeModel
	if err := ctl.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tipo não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	var refCount int64
	if err := ctl.DB.Model(&unavailabilityModel.UnavailabilityModel{}).
		Where("unavailability_type_id = ? OR legacy_type = ?", id, row.Name).
		Count(&refCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}
	if refCount > 0 {
		return helper.Error(c, fiber.StatusConflict,
			"Tipo em uso por indisponibilidades. Remova ou reclassifique os registros antes.")
	}

	if err := ctl.DB.Delete(&row).Error; err != nil {
		log.Printf("[ERROR] delete type: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao remover tipo")
	}

	return helper.Success(c, "Tipo removido", nil)
}
