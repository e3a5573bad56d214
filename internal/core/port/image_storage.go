package port

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// ImageStoragePort - объектное хранилище изображений объявлений.
type ImageStoragePort interface {
	// SaveImage сохраняет изображение и его превью, возвращает URL оригинала.
	SaveImage(ctx context.Context, pieceID uuid.UUID, filename string, data io.Reader) (string, error)

	// RemoveAll удаляет все изображения объявления (каскад при удалении).
	RemoveAll(ctx context.Context, pieceID uuid.UUID) error
}
