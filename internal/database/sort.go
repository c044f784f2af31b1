package database

import (
	"github.com/chybatronik/goUserSearch/internal/types"
)

// resolveOrder maps a sort key and direction to an ORDER BY expression.
// Only whitelisted keys ever reach the SQL text. The fallback for an
// unrecognized or absent key is id DESC with the requested direction
// ignored entirely; that direction override is load-bearing compatibility
// behavior, not an accident of this implementation.
func resolveOrder(sortBy types.SortKey, sortDir types.SortDirection) string {
	switch sortBy {
	case types.SortKeyRegistrationDate, types.SortKeyNickname, types.SortKeyToken:
		return string(sortBy) + " " + string(sortDir)
	case types.SortKeyAge:
		return ageExpr + " " + string(sortDir)
	default:
		return "id DESC"
	}
}
