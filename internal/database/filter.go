package database

import (
	"github.com/Masterminds/squirrel"

	"github.com/chybatronik/goUserSearch/internal/types"
)

// applyFilters appends one predicate per present filter dimension in a fixed
// declaration order: registrationFrom, registrationTo, token, minAge, maxAge.
// Filter values are always bound as positional parameters; no user input
// ever reaches the SQL text itself.
//
// Date bounds compare the stored ISO strings lexicographically, which equals
// chronological order for well-formed dates and stays well-defined for
// malformed ones (they simply match nothing useful). The token predicate is
// a case-sensitive substring match; the connection enables
// case_sensitive_like so LIKE honors that. Age bounds compare against the
// derived age expression; a NaN bound binds as NULL and matches no rows.
func applyFilters(query squirrel.SelectBuilder, params types.SearchParams) squirrel.SelectBuilder {
	if params.RegistrationFrom != nil {
		query = query.Where(squirrel.GtOrEq{"registration_date": *params.RegistrationFrom})
	}
	if params.RegistrationTo != nil {
		query = query.Where(squirrel.LtOrEq{"registration_date": *params.RegistrationTo})
	}
	if params.Token != nil {
		query = query.Where(squirrel.Like{"token": "%" + *params.Token + "%"})
	}
	if params.MinAge != nil {
		query = query.Where(squirrel.Expr(ageExpr+" >= ?", *params.MinAge))
	}
	if params.MaxAge != nil {
		query = query.Where(squirrel.Expr(ageExpr+" <= ?", *params.MaxAge))
	}
	return query
}
