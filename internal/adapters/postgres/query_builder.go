package postgres_adapter

import (
	"fmt"
	"strings"

	"handmedown-service/internal/constants"
	"handmedown-service/internal/core/domain"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId:      1,
		conditions: make([]string, 0),
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// AddContainsFilter - поиск подстроки. Значение длиннее лимита
// молча обрезается перед отправкой запроса. Лимит считается в рунах:
// обрезка по байтам могла бы разорвать многобайтовый символ и дать
// невалидный UTF-8 в аргументе запроса.
func (qb *queryBuilder) AddContainsFilter(fieldName string, value string) {
	if runes := []rune(value); len(runes) > constants.MaxFilterValueLen {
		value = string(runes[:constants.MaxFilterValueLen])
	}
	qb.addCondition("%s ILIKE $%d", fieldName, "%"+value+"%")
}

// AddExactFilter - точное совпадение (перечисления, идентификаторы).
func (qb *queryBuilder) AddExactFilter(fieldName string, value interface{}) {
	qb.addCondition("%s = $%d", fieldName, value)
}

// build создает финальную WHERE-часть запроса
func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyPieceFilters - разбирает разреженный набор критериев и строит запрос.
// Строковые поля из белого списка ищутся по подстроке, остальные - точно.
func applyPieceFilters(filters domain.PieceFilters) (string, []interface{}) {
	qb := newQueryBuilder()

	if filters.Name != nil {
		qb.AddContainsFilter("name", *filters.Name)
	}
	if filters.Color != nil {
		qb.AddContainsFilter("color", *filters.Color)
	}
	if filters.Brand != nil {
		qb.AddContainsFilter("brand", *filters.Brand)
	}

	if filters.Category != nil {
		qb.AddExactFilter("category", filters.Category.String())
	}
	if filters.Gender != nil {
		qb.AddExactFilter("gender", filters.Gender.String())
	}
	if filters.Size != nil {
		qb.AddExactFilter("size", filters.Size.String())
	}
	if filters.Condition != nil {
		qb.AddExactFilter("condition", filters.Condition.String())
	}

	if filters.Status != nil {
		qb.AddExactFilter("status", filters.Status.String())
	} else {
		// По умолчанию витрина показывает только активные объявления.
		qb.conditions = append(qb.conditions, "status = 'ACTIVE'")
	}

	if filters.UserID != nil {
		qb.AddExactFilter("user_id", *filters.UserID)
	}

	return qb.build()
}
