package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/militaries/dto"
	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/militaries/model"
	unavailabilityModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/unavailabilities/model"
	scaleModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/scales/scales/model"
	helper "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/helpers"
)

type MilitaryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMilitaryController(db *gorm.DB) *MilitaryController {
	return &MilitaryController{DB: db, Validate: validator.New()}
}

// GET /api/u/militaries
func (ctl *MilitaryController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&m.MilitaryModel{})
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count military: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar militares")
	}

	var rows []m.MilitaryModel
	if err := db.Order("name asc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list military: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar militares")
	}

	out := make([]d.MilitaryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewMilitaryResponse(&rows[i]))
	}

	return helper.Success(c, "OK", fiber.Map{
		"military":   out,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// GET /api/u/militaries/:id
func (ctl *MilitaryController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	var row m.MilitaryModel
	if err := ctl.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Militar não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	return helper.Success(c, "OK", d.NewMilitaryResponse(&row))
}

// POST /api/a/militaries
func (ctl *MilitaryController) Create(c *fiber.Ctx) error {
	var req d.CreateMilitaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.MilitaryModel
	req.ApplyToModel(&row)

	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] create military: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao criar militar")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Militar criado", d.NewMilitaryResponse(&row))
}

// PUT /api/a/militaries/:id
func (ctl *MilitaryController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	var req d.UpdateMilitaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.MilitaryModel
	if err := ctl.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Militar não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	req.ApplyPatch(&row)

	if err := ctl.DB.Save(&row).Error; err != nil {
		log.Printf("[ERROR] update military: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar militar")
	}

	return helper.Success(c, "Militar atualizado", d.NewMilitaryResponse(&row))
}

// DELETE /api/a/militaries/:id
// Bloqueia a remoção enquanto houver services ou unavailabilities
// apontando para o militar.
func (ctl *MilitaryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	var serviceCount int64
	if err := ctl.DB.Model(&scaleModel.ServiceModel{}).
		Where("military_id = ?", id).Count(&serviceCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}
	if serviceCount > 0 {
		return helper.Error(c, fiber.StatusConflict,
			"Militar possui serviços escalados. Remova os serviços antes.")
	}

	var unavCount int64
	if err := ctl.DB.Model(&unavailabilityModel.UnavailabilityModel{}).
		Where("military_id = ?", id).Count(&unavCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}
	if unavCount > 0 {
		return helper.Error(c, fiber.StatusConflict,
			"Militar possui indisponibilidades registradas. Remova-as antes.")
	}

	res := ctl.DB.Delete(&m.MilitaryModel{}, "id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete military: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao remover militar")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Militar não encontrado")
	}

	return helper.Success(c, "Militar removido", nil)
}
