package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/configs"
	authHelper "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/users/auth/helper"
	authModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/users/auth/model"
	userDTO "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/users/user/dto"
	userModel "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/users/user/model"
	helpers "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/helpers"
)

const accessTTLDefault = 24 * time.Hour

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET não foi definido")
	}
	return secret, nil
}

/* ==========================
   LOGIN
========================== */

// Login tenta primeiro a tabela de contas demo e só depois o banco.
// Falha de credencial responde 401, nunca lança.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	input.Email = strings.TrimSpace(input.Email)

	if err := authHelper.ValidateLoginInput(input.Email, input.Password); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, err.Error())
	}

	// 1) Conta demo vence sobre o banco (sessão local > remota)
	if acc := MatchDemoAccount(input.Email, input.Password); acc != nil {
		user, err := ensureDemoUser(db, acc)
		if err != nil {
			log.Printf("[ERROR] ensureDemoUser: %v", err)
			return helpers.Error(c, fiber.StatusInternalServerError, "Falha ao preparar conta demo")
		}
		return issueToken(c, user)
	}

	// 2) Caminho normal: banco + bcrypt
	var user userModel.UserModel
	if err := db.Where("email = ?", strings.ToLower(input.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
		}
		log.Printf("[ERROR] login lookup: %v", err)
		return helpers.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}
	if !user.IsActive {
		return helpers.Error(c, fiber.StatusForbidden, "Sua conta foi desativada. Procure o administrador.")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
	}

	return issueToken(c, &user)
}

// ensureDemoUser garante a linha em users para a conta demo (senha nunca
// persiste em claro; o hash entra no lugar).
func ensureDemoUser(db *gorm.DB, acc *DemoAccount) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := db.Where("email = ?", strings.ToLower(acc.Email)).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := authHelper.HashPassword(acc.Password)
	if err != nil {
		return nil, err
	}
	user = userModel.UserModel{
		UserName: acc.Name,
		Email:    strings.ToLower(acc.Email),
		Password: hashed,
		Role:     acc.Role,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func issueToken(c *fiber.Ctx, user *userModel.UserModel) error {
	secret, err := getJWTSecret()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		log.Printf("[ERROR] assinar token: %v", err)
		return helpers.Error(c, fiber.StatusInternalServerError, "Falha ao gerar token")
	}

	return helpers.Success(c, "Login realizado", fiber.Map{
		"access_token": signed,
		"user":         userDTO.NewUserResponse(user),
	})
}

/* ==========================
   LOGOUT
========================== */

// Logout coloca o token apresentado na blacklist até o exp dele.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return helpers.Error(c, fiber.StatusBadRequest, "Token ausente")
	}
	tokenString := fields[1]

	// exp do próprio token define até quando a blacklist segura a entrada
	expiredAt := time.Now().UTC().Add(accessTTLDefault)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		secret, serr := getJWTSecret()
		if serr != nil {
			return nil, serr
		}
		return []byte(secret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0).UTC()
		}
	}

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	if err := db.Create(&entry).Error; err != nil {
		// token repetido na blacklist não é erro para o usuário
		log.Printf("[WARN] logout blacklist: %v", err)
	}

	return helpers.Success(c, "Logout realizado", nil)
}

/* ==========================
   ME
========================== */

// Me devolve a identidade atual (inicialização da sessão no painel).
func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	return helpers.Success(c, "OK", fiber.Map{
		"user": userDTO.NewUserResponse(&user),
	})
}
