package usecase

import (
	"context"
	"errors"
	"testing"

	"handmedown-service/internal/constants"
	"handmedown-service/internal/core/domain"

	"github.com/google/uuid"
)

type stubFavoritesRepo struct {
	ids   []uuid.UUID
	total int64
	err   error
}

func (s *stubFavoritesRepo) Add(ctx context.Context, userID, pieceID uuid.UUID) error    { return nil }
func (s *stubFavoritesRepo) Remove(ctx context.Context, userID, pieceID uuid.UUID) error { return nil }
func (s *stubFavoritesRepo) FindIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return s.ids, s.err
}
func (s *stubFavoritesRepo) FindPaginatedByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]uuid.UUID, int64, error) {
	return s.ids, s.total, s.err
}

// favoritesPieceStorage возвращает для GetByIDs заранее заданный набор.
type favoritesPieceStorage struct {
	stubPieceStorage
	byIDs []domain.Piece
	err   error
}

func (s *favoritesPieceStorage) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Piece, error) {
	return s.byIDs, s.err
}

func TestGetUserFavoritesPreservesMarkOrder(t *testing.T) {
	first := testPiece(t, "flannel shirt")
	second := testPiece(t, "corduroy pants")

	repo := &stubFavoritesRepo{ids: []uuid.UUID{first.ID, second.ID}, total: 2}
	// Хранилище отдает карточки не в том порядке, в котором отмечали.
	storage := &favoritesPieceStorage{byIDs: []domain.Piece{second, first}}
	uc := NewGetUserFavoritesUseCase(repo, storage)

	page, err := uc.Execute(context.Background(), uuid.New(), 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalCount != 2 || len(page.Pieces) != 2 {
		t.Fatalf("page = %+v", page)
	}
	if page.Pieces[0].ID != first.ID || page.Pieces[1].ID != second.ID {
		t.Error("page order does not follow mark order")
	}
	if page.CurrentPage != 1 || page.ItemsPerPage != 20 {
		t.Errorf("pagination meta = %d/%d", page.CurrentPage, page.ItemsPerPage)
	}
}

// Отметка, чье объявление уже удалено, молча пропадает со страницы,
// счетчик при этом отражает число отметок.
func TestGetUserFavoritesSkipsDeletedPieces(t *testing.T) {
	kept := testPiece(t, "beanie")
	deletedID := uuid.New()

	repo := &stubFavoritesRepo{ids: []uuid.UUID{deletedID, kept.ID}, total: 2}
	storage := &favoritesPieceStorage{byIDs: []domain.Piece{kept}}
	uc := NewGetUserFavoritesUseCase(repo, storage)

	page, err := uc.Execute(context.Background(), uuid.New(), 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Pieces) != 1 || page.Pieces[0].ID != kept.ID {
		t.Errorf("pieces = %v", page.Pieces)
	}
	if page.TotalCount != 2 {
		t.Errorf("total = %d, want 2", page.TotalCount)
	}
}

func TestGetUserFavoritesEmptyPage(t *testing.T) {
	uc := NewGetUserFavoritesUseCase(&stubFavoritesRepo{}, &favoritesPieceStorage{})

	page, err := uc.Execute(context.Background(), uuid.New(), 10, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Pieces == nil || len(page.Pieces) != 0 {
		t.Errorf("pieces = %v, want empty non-nil slice", page.Pieces)
	}
	if page.CurrentPage != 3 {
		t.Errorf("current page = %d, want 3", page.CurrentPage)
	}
}

func TestGetUserFavoritesZeroLimitFallsBackToDefault(t *testing.T) {
	uc := NewGetUserFavoritesUseCase(&stubFavoritesRepo{}, &favoritesPieceStorage{})

	page, err := uc.Execute(context.Background(), uuid.New(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.ItemsPerPage != constants.DefaultPageLimit {
		t.Errorf("ItemsPerPage = %d, want %d", page.ItemsPerPage, constants.DefaultPageLimit)
	}
	if page.CurrentPage != 1 {
		t.Errorf("CurrentPage = %d, want 1", page.CurrentPage)
	}
}

func TestGetUserFavoritesRepositoryError(t *testing.T) {
	repoErr := errors.New("db down")
	uc := NewGetUserFavoritesUseCase(&stubFavoritesRepo{err: repoErr}, &favoritesPieceStorage{})

	_, err := uc.Execute(context.Background(), uuid.New(), 10, 0)
	if !errors.Is(err, repoErr) {
		t.Fatalf("err = %v, want %v", err, repoErr)
	}
}
