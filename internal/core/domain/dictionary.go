package domain

// DictionaryItem - универсальная структура для элемента справочника
// (категории, размеры и т.д.), отдаваемого фронтенду.
type DictionaryItem struct {
	SystemName  string
	DisplayName string
}

// Dictionaries - все справочники перечислений разом.
type Dictionaries struct {
	Categories []DictionaryItem
	Conditions []DictionaryItem
	Genders    []DictionaryItem
	Sizes      []DictionaryItem
	Statuses   []DictionaryItem
}
