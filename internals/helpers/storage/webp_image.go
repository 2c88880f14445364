package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	avatarMaxDim      = 512
	avatarWebPQuality = 80
)

// NormalizeAvatar decodifica jpeg/png/webp, reduz a imagem para caber em
// avatarMaxDim x avatarMaxDim mantendo a proporção e reencoda em webp.
// Todo avatar armazenado sai daqui no mesmo formato e tamanho máximo.
func NormalizeAvatar(raw []byte, filename string) ([]byte, error) {
	img, err := decodeAvatarImage(raw, filename)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() > avatarMaxDim || b.Dy() > avatarMaxDim {
		img = imaging.Fit(img, avatarMaxDim, avatarMaxDim, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: avatarWebPQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// decodeAvatarImage detecta o formato pelo conteúdo e cai para a
// extensão do arquivo quando o sniff não reconhece.
func decodeAvatarImage(raw []byte, filename string) (image.Image, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("arquivo vazio")
	}
	head := raw
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(raw))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(raw))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(raw))
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(raw))
	case ".png":
		return png.Decode(bytes.NewReader(raw))
	case ".webp":
		return webp.Decode(bytes.NewReader(raw))
	}
	return nil, fmt.Errorf("formato não suportado: %s", ct)
}
