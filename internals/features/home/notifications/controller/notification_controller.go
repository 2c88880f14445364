package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/home/notifications/dto"
	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/home/notifications/model"
	helper "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/helpers"
)

type NotificationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db, Validate: validator.New()}
}

// GET /api/u/notifications — mais recentes primeiro, paginado.
func (ctl *NotificationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&m.NotificationModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar notificações")
	}

	var rows []m.NotificationModel
	if err := ctl.DB.
		Order("created_at desc").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list notifications: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar notificações")
	}

	out := make([]d.NotificationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewNotificationResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"notifications": out,
		"pagination":    helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// POST /api/a/notifications
func (ctl *NotificationController) Create(c *fiber.Ctx) error {
	var req d.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row m.NotificationModel
	req.ApplyToModel(&row)

	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] create notification: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao criar notificação")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Notificação criada", d.NewNotificationResponse(&row))
}

// PATCH /api/u/notifications/:id/read
func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	var row m.NotificationModel
	if err := ctl.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Notificação não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	if !row.Read {
		row.Read = true
		if err := ctl.DB.Save(&row).Error; err != nil {
			log.Printf("[ERROR] mark notification read: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar notificação")
		}
	}

	return helper.Success(c, "Notificação lida", d.NewNotificationResponse(&row))
}

// DELETE /api/a/notifications/:id
func (ctl *NotificationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.Delete(&m.NotificationModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao remover notificação")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Notificação não encontrada")
	}

	return helper.Success(c, "Notificação removida", nil)
}
