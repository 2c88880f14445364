package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, nil); err != nil {
		t.Fatalf("jpeg.Encode: %v", err)
	}
	return buf.Bytes()
}

func decodeWebPConfig(t *testing.T, data []byte) image.Config {
	t.Helper()
	cfg, err := webp.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("result is not valid webp: %v", err)
	}
	return cfg
}

func TestNormalizeAvatarReencodesAsWebP(t *testing.T) {
	out, err := NormalizeAvatar(encodePNG(t, testImage(300, 200)), "foto.png")
	if err != nil {
		t.Fatalf("NormalizeAvatar: %v", err)
	}
	cfg := decodeWebPConfig(t, out)
	if cfg.Width != 300 || cfg.Height != 200 {
		t.Errorf("small image should not be resized: %dx%d", cfg.Width, cfg.Height)
	}
}

func TestNormalizeAvatarDownscalesLargeImages(t *testing.T) {
	out, err := NormalizeAvatar(encodePNG(t, testImage(1600, 1200)), "foto.png")
	if err != nil {
		t.Fatalf("NormalizeAvatar: %v", err)
	}
	cfg := decodeWebPConfig(t, out)
	if cfg.Width > avatarMaxDim || cfg.Height > avatarMaxDim {
		t.Fatalf("image did not fit the limit: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Width != 512 || cfg.Height != 384 {
		t.Errorf("4:3 ratio should become 512x384, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestNormalizeAvatarSniffsContentFormat(t *testing.T) {
	// Extensão mente; o sniff do conteúdo decide.
	out, err := NormalizeAvatar(encodeJPEG(t, testImage(64, 64)), "foto.png")
	if err != nil {
		t.Fatalf("NormalizeAvatar: %v", err)
	}
	decodeWebPConfig(t, out)
}

func TestNormalizeAvatarRejectsInvalidContent(t *testing.T) {
	if _, err := NormalizeAvatar([]byte("this is not an image"), "avatar.png"); err == nil {
		t.Fatal("invalid content should fail")
	}
	if _, err := NormalizeAvatar(nil, "avatar.jpg"); err == nil {
		t.Fatal("empty file should fail")
	}
}
