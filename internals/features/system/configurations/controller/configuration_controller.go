package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/system/configurations/dto"
	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/system/configurations/model"
	helper "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/helpers"
)

type ConfigurationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewConfigurationController(db *gorm.DB) *ConfigurationController {
	return &ConfigurationController{DB: db, Validate: validator.New()}
}

// GET /api/u/configurations
func (ctl *ConfigurationController) List(c *fiber.Ctx) error {
	var rows []m.ConfigurationModel
	if err := ctl.DB.Order("key asc").Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list configurations: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar configurações")
	}

	out := make([]d.ConfigurationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewConfigurationResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// POST /api/a/configurations
func (ctl *ConfigurationController) Create(c *fiber.Ctx) error {
	var req d.CreateConfigurationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.ConfigurationModel
	req.ApplyToModel(&row)

	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] create configuration: %v", err)
		return helper.Error(c, fiber.StatusConflict, "Já existe uma configuração com essa chave")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Configuração criada", d.NewConfigurationResponse(&row))
}

// PUT /api/a/configurations/:id
func (ctl *ConfigurationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	var req d.UpdateConfigurationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.ConfigurationModel
	if err := ctl.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Configuração não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	req.ApplyPatch(&row)
	if err := ctl.DB.Save(&row).Error; err != nil {
		log.Printf("[ERROR] update configuration: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar configuração")
	}

	return helper.Success(c, "Configuração atualizada", d.NewConfigurationResponse(&row))
}

// DELETE /api/a/configurations/:id
func (ctl *ConfigurationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.Delete(&m.ConfigurationModel{}, "id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete configuration: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao remover configuração")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Configuração não encontrada")
	}

	return helper.Success(c, "Configuração removida", nil)
}
