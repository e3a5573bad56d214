package usecase

import (
	"context"
	"strings"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GetDictionariesUseCase - справочники перечислений для фильтров фронтенда.
// Системные имена ("LIKE_NEW") превращаются в отображаемые ("Like New").
type GetDictionariesUseCase struct{}

func NewGetDictionariesUseCase() *GetDictionariesUseCase {
	return &GetDictionariesUseCase{}
}

func (uc *GetDictionariesUseCase) Execute(ctx context.Context) (*domain.Dictionaries, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetDictionaries"})

	ucLogger.Debug("Building enum dictionaries", nil)

	return &domain.Dictionaries{
		Categories: buildDictionary(domain.CategoryNames()),
		Conditions: buildDictionary(domain.ConditionNames()),
		Genders:    buildDictionary(domain.GenderNames()),
		Sizes:      buildDictionarySizes(domain.SizeNames()),
		Statuses:   buildDictionary(domain.StatusNames()),
	}, nil
}

func buildDictionary(names []string) []domain.DictionaryItem {
	caser := cases.Title(language.English)

	items := make([]domain.DictionaryItem, 0, len(names))
	for _, name := range names {
		display := caser.String(strings.ToLower(strings.ReplaceAll(name, "_", " ")))
		items = append(items, domain.DictionaryItem{
			SystemName:  name,
			DisplayName: display,
		})
	}
	return items
}

// Размеры остаются как есть: "XL", а не "Xl".
func buildDictionarySizes(names []string) []domain.DictionaryItem {
	items := make([]domain.DictionaryItem, 0, len(names))
	for _, name := range names {
		items = append(items, domain.DictionaryItem{SystemName: name, DisplayName: name})
	}
	return items
}
