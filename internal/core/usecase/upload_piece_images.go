package usecase

import (
	"context"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"
	"handmedown-service/internal/core/port/usecases_port"

	"github.com/google/uuid"
)

// UploadPieceImagesUseCase - загрузка пакета изображений объявления.
// Файлы внутри пакета обрабатываются последовательно; ошибка на файле
// прерывает пакет, уже сохраненные файлы остаются.
type UploadPieceImagesUseCase struct {
	storage port.PieceStoragePort
	images  port.ImageStoragePort
}

func NewUploadPieceImagesUseCase(storage port.PieceStoragePort, images port.ImageStoragePort) *UploadPieceImagesUseCase {
	return &UploadPieceImagesUseCase{storage: storage, images: images}
}

func (uc *UploadPieceImagesUseCase) Execute(ctx context.Context, pieceID, actorID uuid.UUID, files []usecases_port.ImageUpload) ([]string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UploadPieceImages",
		"piece_id":   pieceID.String(),
		"file_count": len(files),
	})

	ucLogger.Info("Use case started", nil)

	piece, err := uc.storage.GetByID(ctx, pieceID)
	if err != nil {
		ucLogger.Error("Storage failed while loading piece", err, nil)
		return nil, err
	}
	if piece == nil {
		return nil, domain.ErrPieceNotFound
	}
	if piece.UserID != actorID {
		ucLogger.Warn("Upload rejected: actor is not the owner", nil)
		return nil, domain.ErrNotPieceOwner
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := uc.images.SaveImage(ctx, pieceID, file.Filename, file.Data)
		if err != nil {
			ucLogger.Error("Failed to save image", err, port.Fields{"filename": file.Filename})
			return nil, err
		}
		urls = append(urls, url)
	}

	// Дописываем URL в упорядоченный список изображений объявления.
	piece.Images = append(piece.Images, urls...)
	if err := uc.storage.Update(ctx, piece); err != nil {
		ucLogger.Error("Storage failed to persist image URLs", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished: images uploaded", port.Fields{"uploaded": len(urls)})
	return urls, nil
}
