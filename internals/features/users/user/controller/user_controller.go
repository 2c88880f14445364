package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authHelper "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/users/auth/helper"
	d "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/users/user/dto"
	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/users/user/model"
	helper "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// GET /api/a/users
func (ctl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&m.UserModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count users: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar usuários")
	}

	var users []m.UserModel
	if err := ctl.DB.Order("user_name asc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		log.Printf("[ERROR] list users: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar usuários")
	}

	out := make([]d.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, d.NewUserResponse(&users[i]))
	}

	return helper.Success(c, "OK", fiber.Map{
		"users":      out,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// POST /api/a/users
func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req d.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao processar senha")
	}

	var user m.UserModel
	req.ApplyToModel(&user)
	user.Password = hashed

	if err := ctl.DB.Create(&user).Error; err != nil {
		log.Printf("[ERROR] create user: %v", err)
		return helper.Error(c, fiber.StatusConflict, "Email já cadastrado")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Usuário criado", d.NewUserResponse(&user))
}

// PUT /api/a/users/:id
func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	var req d.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user m.UserModel
	if err := ctl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	req.ApplyPatch(&user)

	if err := ctl.DB.Save(&user).Error; err != nil {
		log.Printf("[ERROR] update user: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar usuário")
	}

	return helper.Success(c, "Usuário atualizado", d.NewUserResponse(&user))
}

// DELETE /api/a/users/:id
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.Delete(&m.UserModel{}, "id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete user: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao remover usuário")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	return helper.Success(c, "Usuário removido", nil)
}

// PUT /api/u/profile
// O usuário logado edita o próprio cadastro; papel e status ficam fora.
func (ctl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user m.UserModel
	if err := ctl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	req.ApplyProfile(&user)
	if req.Password != nil {
		hashed, err := authHelper.HashPassword(*req.Password)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Falha ao processar senha")
		}
		user.Password = hashed
	}

	if err := ctl.DB.Save(&user).Error; err != nil {
		log.Printf("[ERROR] update profile: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar perfil")
	}

	return helper.Success(c, "Perfil atualizado", d.NewUserResponse(&user))
}
