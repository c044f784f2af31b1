package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chybatronik/goUserSearch/internal/types"
)

func TestResolveOrderWhitelistedColumns(t *testing.T) {
	assert.Equal(t, "registration_date ASC",
		resolveOrder(types.SortKeyRegistrationDate, types.SortAscending))
	assert.Equal(t, "registration_date DESC",
		resolveOrder(types.SortKeyRegistrationDate, types.SortDescending))
	assert.Equal(t, "nickname ASC",
		resolveOrder(types.SortKeyNickname, types.SortAscending))
	assert.Equal(t, "token DESC",
		resolveOrder(types.SortKeyToken, types.SortDescending))
}

func TestResolveOrderAgeUsesDerivedExpression(t *testing.T) {
	order := resolveOrder(types.SortKeyAge, types.SortAscending)
	assert.Equal(t, ageExpr+" ASC", order)
}

func TestResolveOrderFallbackForcesDescending(t *testing.T) {
	// The requested direction is ignored entirely on fallback
	assert.Equal(t, "id DESC", resolveOrder(types.SortKeyDefault, types.SortAscending))
	assert.Equal(t, "id DESC", resolveOrder(types.SortKeyDefault, types.SortDescending))
}
