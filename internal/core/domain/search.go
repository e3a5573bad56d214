package domain

// SearchField - поле объявления, по которому идет поиск подстроки.
type SearchField string

const (
	SearchFieldName      SearchField = "name"
	SearchFieldCategory  SearchField = "category"
	SearchFieldColor     SearchField = "color"
	SearchFieldBrand     SearchField = "brand"
	SearchFieldGender    SearchField = "gender"
	SearchFieldSize      SearchField = "size"
	SearchFieldCondition SearchField = "condition"
)

// SearchableFields - все поля, по которым слово запроса может дать совпадение.
// Слово "матчится", если встречается хотя бы в одном из них.
var SearchableFields = []SearchField{
	SearchFieldName,
	SearchFieldCategory,
	SearchFieldColor,
	SearchFieldBrand,
	SearchFieldGender,
	SearchFieldSize,
	SearchFieldCondition,
}

// PieceFilters - разреженный набор именованных критериев для filterPieces.
// nil-поля не участвуют в запросе. Строковые критерии ищутся по подстроке,
// перечисления и идентификаторы - по точному совпадению.
type PieceFilters struct {
	Name  *string
	Color *string
	Brand *string

	Category  *Category
	Gender    *Gender
	Size      *Size
	Condition *Condition
	Status    *Status

	UserID *string
}
