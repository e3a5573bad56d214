package postgres_adapter

import (
	"strings"
	"testing"
	"unicode/utf8"

	"handmedown-service/internal/constants"
	"handmedown-service/internal/core/domain"
)

func TestQueryBuilderEmpty(t *testing.T) {
	qb := newQueryBuilder()
	where, args := qb.build()
	if where != "" {
		t.Errorf("where = %q, want empty", where)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestQueryBuilderNumbersPlaceholders(t *testing.T) {
	qb := newQueryBuilder()
	qb.AddContainsFilter("name", "jacket")
	qb.AddExactFilter("size", "M")
	qb.AddExactFilter("user_id", "abc")

	where, args := qb.build()
	want := "WHERE name ILIKE $1 AND size = $2 AND user_id = $3"
	if where != want {
		t.Errorf("where = %q, want %q", where, want)
	}
	if len(args) != 3 || args[0] != "%jacket%" || args[1] != "M" || args[2] != "abc" {
		t.Errorf("args = %v", args)
	}
}

// Слишком длинное значение фильтра молча обрезается до лимита.
func TestAddContainsFilterTruncatesLongValue(t *testing.T) {
	qb := newQueryBuilder()
	long := strings.Repeat("x", constants.MaxFilterValueLen+50)
	qb.AddContainsFilter("name", long)

	_, args := qb.build()
	got, ok := args[0].(string)
	if !ok {
		t.Fatalf("arg type %T", args[0])
	}
	// Два символа % плюс обрезанное значение.
	if len(got) != constants.MaxFilterValueLen+2 {
		t.Errorf("arg length = %d, want %d", len(got), constants.MaxFilterValueLen+2)
	}
}

func TestAddContainsFilterTruncatesByRunes(t *testing.T) {
	qb := newQueryBuilder()
	long := strings.Repeat("日", constants.MaxFilterValueLen+50)
	qb.AddContainsFilter("name", long)

	_, args := qb.build()
	got, ok := args[0].(string)
	if !ok {
		t.Fatalf("arg type %T", args[0])
	}
	if !utf8.ValidString(got) {
		t.Fatalf("arg is not valid UTF-8: %q", got)
	}
	// Лимит считается в символах, а не в байтах.
	if n := utf8.RuneCountInString(got); n != constants.MaxFilterValueLen+2 {
		t.Errorf("arg rune count = %d, want %d", n, constants.MaxFilterValueLen+2)
	}
}

func TestApplyPieceFiltersDefaultsToActive(t *testing.T) {
	where, args := applyPieceFilters(domain.PieceFilters{})
	if where != "WHERE status = 'ACTIVE'" {
		t.Errorf("where = %q", where)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestApplyPieceFiltersExplicitStatus(t *testing.T) {
	status := domain.StatusSold
	where, args := applyPieceFilters(domain.PieceFilters{Status: &status})
	if where != "WHERE status = $1" {
		t.Errorf("where = %q", where)
	}
	if len(args) != 1 || args[0] != "SOLD" {
		t.Errorf("args = %v", args)
	}
}

func TestApplyPieceFiltersMixed(t *testing.T) {
	name := "denim"
	category := domain.CategoryJacket
	userID := "user-1"
	where, args := applyPieceFilters(domain.PieceFilters{
		Name:     &name,
		Category: &category,
		UserID:   &userID,
	})

	if !strings.Contains(where, "name ILIKE $1") {
		t.Errorf("where %q lacks name condition", where)
	}
	if !strings.Contains(where, "category = $2") {
		t.Errorf("where %q lacks category condition", where)
	}
	if !strings.Contains(where, "status = 'ACTIVE'") {
		t.Errorf("where %q lacks default status condition", where)
	}
	// Статус без аргумента не сбивает нумерацию следующего плейсхолдера.
	if !strings.Contains(where, "user_id = $3") {
		t.Errorf("where %q lacks user condition", where)
	}
	if len(args) != 3 {
		t.Errorf("args = %v, want 3", args)
	}
}
