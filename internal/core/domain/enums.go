package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// UnknownEnumValueError возвращается, когда значение перечисления
// не удалось распознать ни как имя, ни как порядковый номер.
type UnknownEnumValueError struct {
	Field string
	Value interface{}
}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf("invalid %s value: %v", e.Field, e.Value)
}

// decodeEnum - общий алгоритм разбора значения перечисления.
// Принимает: число в допустимом диапазоне, имя члена (без учета регистра)
// или строку с числом. Все остальное - UnknownEnumValueError.
func decodeEnum(field string, value interface{}, names []string) (int8, error) {
	matchOrdinal := func(n int64) (int8, bool) {
		if n >= 0 && n < int64(len(names)) {
			return int8(n), true
		}
		return 0, false
	}

	switch v := value.(type) {
	case nil:
		// nil явно не является допустимым значением
	case int:
		if ord, ok := matchOrdinal(int64(v)); ok {
			return ord, nil
		}
	case int8:
		if ord, ok := matchOrdinal(int64(v)); ok {
			return ord, nil
		}
	case int64:
		if ord, ok := matchOrdinal(v); ok {
			return ord, nil
		}
	case float64:
		// JSON-числа приходят как float64
		if v == float64(int64(v)) {
			if ord, ok := matchOrdinal(int64(v)); ok {
				return ord, nil
			}
		}
	case string:
		upper := strings.ToUpper(strings.TrimSpace(v))
		for i, name := range names {
			if name == upper {
				return int8(i), nil
			}
		}
		// Строка может содержать число ("2" -> порядковый номер)
		if n, err := strconv.ParseInt(upper, 10, 64); err == nil {
			if ord, ok := matchOrdinal(n); ok {
				return ord, nil
			}
		}
	}

	return 0, &UnknownEnumValueError{Field: field, Value: value}
}

// Category - категория предмета одежды.
type Category int8

const (
	CategoryShirt Category = iota
	CategoryPants
	CategoryJacket
	CategoryDress
	CategorySkirt
	CategoryShoes
	CategoryAccessory
	CategoryOther
)

var categoryNames = []string{"SHIRT", "PANTS", "JACKET", "DRESS", "SKIRT", "SHOES", "ACCESSORY", "OTHER"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int8(c))
	}
	return categoryNames[c]
}

func ParseCategory(value interface{}) (Category, error) {
	ord, err := decodeEnum("category", value, categoryNames)
	return Category(ord), err
}

// CategoryNames возвращает копию списка всех имен категорий.
func CategoryNames() []string { return append([]string(nil), categoryNames...) }

// Condition - состояние предмета.
type Condition int8

const (
	ConditionNew Condition = iota
	ConditionLikeNew
	ConditionUsed
	ConditionWorn
)

var conditionNames = []string{"NEW", "LIKE_NEW", "USED", "WORN"}

func (c Condition) String() string {
	if c < 0 || int(c) >= len(conditionNames) {
		return fmt.Sprintf("Condition(%d)", int8(c))
	}
	return conditionNames[c]
}

func ParseCondition(value interface{}) (Condition, error) {
	ord, err := decodeEnum("condition", value, conditionNames)
	return Condition(ord), err
}

func ConditionNames() []string { return append([]string(nil), conditionNames...) }

// Gender - для кого предназначен предмет.
type Gender int8

const (
	GenderMale Gender = iota
	GenderFemale
	GenderUnisex
)

var genderNames = []string{"MALE", "FEMALE", "UNISEX"}

func (g Gender) String() string {
	if g < 0 || int(g) >= len(genderNames) {
		return fmt.Sprintf("Gender(%d)", int8(g))
	}
	return genderNames[g]
}

func ParseGender(value interface{}) (Gender, error) {
	ord, err := decodeEnum("gender", value, genderNames)
	return Gender(ord), err
}

func GenderNames() []string { return append([]string(nil), genderNames...) }

// Size - размер предмета.
type Size int8

const (
	SizeXS Size = iota
	SizeS
	SizeM
	SizeL
	SizeXL
	SizeXXL
)

var sizeNames = []string{"XS", "S", "M", "L", "XL", "XXL"}

func (s Size) String() string {
	if s < 0 || int(s) >= len(sizeNames) {
		return fmt.Sprintf("Size(%d)", int8(s))
	}
	return sizeNames[s]
}

func ParseSize(value interface{}) (Size, error) {
	ord, err := decodeEnum("size", value, sizeNames)
	return Size(ord), err
}

func SizeNames() []string { return append([]string(nil), sizeNames...) }

// Status - статус жизненного цикла объявления.
type Status int8

const (
	StatusActive Status = iota
	StatusSold
	StatusDonated
	StatusRetracted
)

var statusNames = []string{"ACTIVE", "SOLD", "DONATED", "RETRACTED"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int8(s))
	}
	return statusNames[s]
}

func ParseStatus(value interface{}) (Status, error) {
	ord, err := decodeEnum("status", value, statusNames)
	return Status(ord), err
}

func StatusNames() []string { return append([]string(nil), statusNames...) }
