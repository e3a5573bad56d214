package imagestore_adapter

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // регистрация PNG-декодера для image.Decode
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/port"
)

// Максимальная сторона сохраняемого изображения, пиксели.
const maxDimension = 1024

// Качество JPEG при перекодировании.
const jpegQuality = 85

// Допустимые входные форматы. Тип определяется по байтам,
// а не по заголовкам клиента.
var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// DiskImageStore хранит изображения объявлений на локальном диске:
// <dir>/<piece_id>/<случайное имя>.jpg. Все входные изображения
// валидируются, ужимаются и перекодируются в JPEG.
type DiskImageStore struct {
	dir     string
	baseURL string
}

func NewDiskImageStore(dir, baseURL string) (*DiskImageStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("image storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image storage directory: %w", err)
	}
	return &DiskImageStore{dir: dir, baseURL: baseURL}, nil
}

func (s *DiskImageStore) SaveImage(ctx context.Context, pieceID uuid.UUID, filename string, data io.Reader) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "DiskImageStore",
		"piece_id":  pieceID.String(),
		"filename":  filename,
	})

	raw, err := io.ReadAll(data)
	if err != nil {
		return "", fmt.Errorf("reading image data: %w", err)
	}

	detected := http.DetectContentType(raw)
	if !allowedMIME[detected] {
		return "", fmt.Errorf("unsupported image format: %s (only JPEG and PNG accepted)", detected)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	img = downscale(img, maxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encoding JPEG: %w", err)
	}

	pieceDir := filepath.Join(s.dir, pieceID.String())
	if err := os.MkdirAll(pieceDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create piece image directory: %w", err)
	}

	// Имя файла генерируется заново: клиентским именам на диске не место.
	storedName := uuid.New().String() + ".jpg"
	if err := os.WriteFile(filepath.Join(pieceDir, storedName), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	logger.Debug("Image stored", port.Fields{"stored_name": storedName, "bytes": buf.Len()})
	return fmt.Sprintf("%s/%s/%s", s.baseURL, pieceID.String(), storedName), nil
}

// RemoveAll удаляет каталог изображений объявления целиком.
func (s *DiskImageStore) RemoveAll(ctx context.Context, pieceID uuid.UUID) error {
	if err := os.RemoveAll(filepath.Join(s.dir, pieceID.String())); err != nil {
		return fmt.Errorf("failed to remove piece images: %w", err)
	}
	return nil
}

// downscale ужимает изображение так, чтобы ни одна сторона не превышала
// maxDim, сохраняя пропорции. Интерполяция Catmull-Rom.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
