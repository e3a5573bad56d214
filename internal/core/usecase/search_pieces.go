package usecase

import (
	"context"
	"strings"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// SearchPiecesUseCase - многословный поиск с пересечением:
// слово совпадает, если встречается хотя бы в одном из искомых полей (OR),
// объявление попадает в результат, только если совпало каждое слово (AND).
type SearchPiecesUseCase struct {
	storage  port.PieceStoragePort
	searcher port.PieceSearchPort
}

func NewSearchPiecesUseCase(storage port.PieceStoragePort, searcher port.PieceSearchPort) *SearchPiecesUseCase {
	return &SearchPiecesUseCase{storage: storage, searcher: searcher}
}

func (uc *SearchPiecesUseCase) Execute(ctx context.Context, query string) ([]domain.Piece, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchPieces",
		"query":    query,
	})

	words := strings.Fields(query)

	// Пустой или пробельный запрос - полный список без фильтрации.
	if len(words) == 0 {
		ucLogger.Info("Blank query, returning full listing", nil)
		return uc.storage.GetAll(ctx)
	}

	ucLogger.Info("Use case started", port.Fields{"word_count": len(words)})

	// Для каждого слова собираем объединение результатов по всем полям.
	// В отличие от fail-soft чтений, любая ошибка бэкенда проваливает
	// весь поиск: частичные результаты молча не возвращаются.
	wordSets := make([]map[uuid.UUID]domain.Piece, len(words))
	wordOrder := make([][]uuid.UUID, len(words))
	for i, word := range words {
		set, order, err := uc.resolveWord(ctx, word)
		if err != nil {
			ucLogger.Error("Per-word search failed", err, port.Fields{"word": word})
			return nil, err
		}

		// Слово, не совпавшее нигде, обнуляет все пересечение.
		if len(set) == 0 {
			ucLogger.Info("Word matched nothing, result is empty", port.Fields{"word": word})
			return []domain.Piece{}, nil
		}
		wordSets[i] = set
		wordOrder[i] = order
	}

	// Пересекаем множества слов одно за другим. Порядок результата
	// следует порядку выдачи бэкенда для первого слова.
	result := make([]domain.Piece, 0, len(wordOrder[0]))
	for _, id := range wordOrder[0] {
		inAll := true
		for _, set := range wordSets[1:] {
			if _, ok := set[id]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			result = append(result, wordSets[0][id])
		}
	}

	ucLogger.Info("Use case finished", port.Fields{"found": len(result)})
	return result, nil
}

// resolveWord запускает по одному запросу на каждое искомое поле
// параллельно, дожидается всех и объединяет результаты,
// дедуплицируя по идентификатору (предпочитается первая встреченная копия).
func (uc *SearchPiecesUseCase) resolveWord(ctx context.Context, word string) (map[uuid.UUID]domain.Piece, []uuid.UUID, error) {
	g, gctx := errgroup.WithContext(ctx)

	perField := make([][]domain.Piece, len(domain.SearchableFields))
	for i, field := range domain.SearchableFields {
		g.Go(func() error {
			pieces, err := uc.searcher.SearchField(gctx, field, word)
			if err != nil {
				return err
			}
			perField[i] = pieces
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	set := make(map[uuid.UUID]domain.Piece)
	order := make([]uuid.UUID, 0)
	for _, pieces := range perField {
		for _, p := range pieces {
			if _, seen := set[p.ID]; seen {
				continue
			}
			set[p.ID] = p
			order = append(order, p.ID)
		}
	}
	return set, order, nil
}
