package controller

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/militaries/dto"
	m "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/features/military/militaries/model"
	helper "github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/helpers"
	"github.com/geisonhoehr-ai/sistema-de-escala-horus/internals/helpers/storage"
)

const maxAvatarSize = 5 * 1024 * 1024 // 5 MB

var avatarExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// AvatarController sobe a foto do militar para o bucket configurado.
// Fica nulo quando AVATAR_S3_BUCKET não está setado e a rota não é montada.
type AvatarController struct {
	DB    *gorm.DB
	Store *storage.AvatarStore
}

func NewAvatarController(db *gorm.DB, store *storage.AvatarStore) *AvatarController {
	return &AvatarController{DB: db, Store: store}
}

// POST /api/a/militaries/:id/avatar  (multipart, campo "avatar")
// A imagem recebida é reencodada em webp antes de subir, então o objeto
// final tem sempre a mesma chave por militar.
func (ctl *AvatarController) Upload(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	var mil m.MilitaryModel
	if err := ctl.DB.First(&mil, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Militar não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	fh, err := c.FormFile("avatar")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Arquivo 'avatar' obrigatório")
	}
	if fh.Size > maxAvatarSize {
		return helper.Error(c, fiber.StatusRequestEntityTooLarge, "Avatar acima de 5MB")
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !avatarExtensions[ext] {
		return helper.Error(c, fiber.StatusBadRequest, "Formato não suportado (jpg, png ou webp)")
	}

	f, err := fh.Open()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao ler arquivo")
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao ler arquivo")
	}

	converted, err := storage.NormalizeAvatar(raw, fh.Filename)
	if err != nil {
		log.Printf("[WARN] avatar inválido (%s): %v", fh.Filename, err)
		return helper.Error(c, fiber.StatusBadRequest, "Imagem inválida ou corrompida")
	}

	key := fmt.Sprintf("avatars/military/%s.webp", mil.ID)
	publicURL, err := ctl.Store.Put(c.Context(), key, "image/webp", bytes.NewReader(converted))
	if err != nil {
		log.Printf("[ERROR] upload avatar: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Falha ao enviar avatar para o storage")
	}

	// Avatares antigos podem ter sido gravados com outra extensão.
	if mil.AvatarURL != nil {
		if old := ctl.Store.KeyFromURL(*mil.AvatarURL); old != "" && old != key {
			if err := ctl.Store.Delete(c.Context(), old); err != nil {
				log.Printf("[WARN] não removeu avatar antigo %s: %v", old, err)
			}
		}
	}

	mil.AvatarURL = &publicURL
	if err := ctl.DB.Save(&mil).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao salvar avatar")
	}

	return helper.Success(c, "Avatar atualizado", d.NewMilitaryResponse(&mil))
}
