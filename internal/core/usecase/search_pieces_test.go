package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"handmedown-service/internal/core/domain"

	"github.com/google/uuid"
)

// testPiece собирает валидное объявление с заданным именем.
func testPiece(t *testing.T, name string) domain.Piece {
	t.Helper()
	piece, err := domain.MakePiece(domain.PieceRecord{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  "SHIRT",
		Gender:    "UNISEX",
		Size:      "M",
		Price:     12,
		Condition: "USED",
		UserID:    uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("testPiece(%q): %v", name, err)
	}
	return *piece
}

// stubPieceStorage реализует PieceStoragePort; поиску нужен только GetAll.
type stubPieceStorage struct {
	all    []domain.Piece
	allErr error
}

func (s *stubPieceStorage) GetAll(ctx context.Context) ([]domain.Piece, error) {
	return s.all, s.allErr
}
func (s *stubPieceStorage) GetByID(ctx context.Context, id uuid.UUID) (*domain.Piece, error) {
	return nil, domain.ErrPieceNotFound
}
func (s *stubPieceStorage) GetByUser(ctx context.Context, userID uuid.UUID) ([]domain.Piece, error) {
	return nil, nil
}
func (s *stubPieceStorage) Create(ctx context.Context, piece *domain.Piece) error { return nil }
func (s *stubPieceStorage) Update(ctx context.Context, piece *domain.Piece) error { return nil }
func (s *stubPieceStorage) Delete(ctx context.Context, id uuid.UUID) error        { return nil }
func (s *stubPieceStorage) Filter(ctx context.Context, filters domain.PieceFilters) ([]domain.Piece, error) {
	return nil, nil
}
func (s *stubPieceStorage) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Piece, error) {
	return nil, nil
}

// stubSearcher отвечает заранее заданными результатами по паре (поле, слово).
type stubSearcher struct {
	mu      sync.Mutex
	matches map[domain.SearchField]map[string][]domain.Piece
	err     error
	calls   int
}

func (s *stubSearcher) SearchField(ctx context.Context, field domain.SearchField, word string) ([]domain.Piece, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.matches[field][word], nil
}

func TestSearchPiecesBlankQueryReturnsFullListing(t *testing.T) {
	listing := []domain.Piece{testPiece(t, "wool sweater"), testPiece(t, "rain jacket")}
	storage := &stubPieceStorage{all: listing}
	searcher := &stubSearcher{}
	uc := NewSearchPiecesUseCase(storage, searcher)

	got, err := uc.Execute(context.Background(), "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d pieces, want 2", len(got))
	}
	if searcher.calls != 0 {
		t.Errorf("searcher queried %d times on blank query", searcher.calls)
	}
}

func TestSearchPiecesIntersectsWords(t *testing.T) {
	both := testPiece(t, "blue denim jacket")
	onlyBlue := testPiece(t, "blue scarf")
	onlyDenim := testPiece(t, "denim shorts")

	searcher := &stubSearcher{matches: map[domain.SearchField]map[string][]domain.Piece{
		domain.SearchFieldName: {
			"blue":  {onlyBlue, both},
			"denim": {both, onlyDenim},
		},
	}}
	uc := NewSearchPiecesUseCase(&stubPieceStorage{}, searcher)

	got, err := uc.Execute(context.Background(), "blue denim")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d pieces, want 1: %v", len(got), got)
	}
	if got[0].ID != both.ID {
		t.Errorf("got piece %s, want %s", got[0].ID, both.ID)
	}
}

// Результат следует порядку выдачи бэкенда для первого слова.
func TestSearchPiecesPreservesFirstWordOrder(t *testing.T) {
	first := testPiece(t, "red hoodie")
	second := testPiece(t, "red cap")

	searcher := &stubSearcher{matches: map[domain.SearchField]map[string][]domain.Piece{
		domain.SearchFieldName: {"red": {first, second}},
	}}
	uc := NewSearchPiecesUseCase(&stubPieceStorage{}, searcher)

	got, err := uc.Execute(context.Background(), "red")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != first.ID || got[1].ID != second.ID {
		t.Errorf("order not preserved: %v", got)
	}
}

// Одно и то же объявление, совпавшее в нескольких полях, попадает
// в результат один раз.
func TestSearchPiecesDeduplicatesAcrossFields(t *testing.T) {
	piece := testPiece(t, "black levis")
	searcher := &stubSearcher{matches: map[domain.SearchField]map[string][]domain.Piece{
		domain.SearchFieldName:  {"black": {piece}},
		domain.SearchFieldColor: {"black": {piece}},
		domain.SearchFieldBrand: {"black": {piece}},
	}}
	uc := NewSearchPiecesUseCase(&stubPieceStorage{}, searcher)

	got, err := uc.Execute(context.Background(), "black")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d pieces, want 1 after dedupe", len(got))
	}
}

// Слово без единого совпадения обнуляет все пересечение.
func TestSearchPiecesUnmatchedWordEmptiesResult(t *testing.T) {
	piece := testPiece(t, "green parka")
	searcher := &stubSearcher{matches: map[domain.SearchField]map[string][]domain.Piece{
		domain.SearchFieldName: {"green": {piece}},
	}}
	uc := NewSearchPiecesUseCase(&stubPieceStorage{}, searcher)

	got, err := uc.Execute(context.Background(), "green zzzqx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d pieces, want empty result", len(got))
	}
}

// Ошибка бэкенда проваливает весь поиск, частичные результаты не возвращаются.
func TestSearchPiecesFailsLoudOnBackendError(t *testing.T) {
	backendErr := errors.New("connection reset")
	uc := NewSearchPiecesUseCase(&stubPieceStorage{}, &stubSearcher{err: backendErr})

	_, err := uc.Execute(context.Background(), "anything")
	if !errors.Is(err, backendErr) {
		t.Fatalf("err = %v, want %v", err, backendErr)
	}
}
