// Package validation turns raw query-string input into typed search
// parameters. The search endpoint is deliberately permissive: no field is
// ever rejected with an error. Every raw value parses either to a typed
// optional or to its documented default, and degenerate values (a
// non-numeric age bound, an unknown sort key) degrade to a well-defined
// variant instead of a 400 response.
package validation

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/chybatronik/goUserSearch/internal/types"
)

// ParseSearchParams parses the six optional search fields from a query
// string. Absent or empty fields contribute no constraint.
func ParseSearchParams(query url.Values) types.SearchParams {
	return types.SearchParams{
		RegistrationFrom: optionalString(query, "registrationFrom"),
		RegistrationTo:   optionalString(query, "registrationTo"),
		Token:            optionalString(query, "token"),
		MinAge:           optionalFloat(query, "minAge"),
		MaxAge:           optionalFloat(query, "maxAge"),
		SortBy:           ParseSortKey(query.Get("sortBy")),
		SortDir:          ParseSortDirection(query.Get("sortDir")),
	}
}

// ParseSortKey resolves a raw sort key against the whitelist. Anything not
// on the whitelist, including the empty string, becomes SortKeyDefault.
func ParseSortKey(raw string) types.SortKey {
	switch types.SortKey(raw) {
	case types.SortKeyRegistrationDate, types.SortKeyNickname, types.SortKeyAge, types.SortKeyToken:
		return types.SortKey(raw)
	default:
		return types.SortKeyDefault
	}
}

// ParseSortDirection resolves a raw direction string. Only a
// case-insensitive "asc" yields ascending; every other value, absent
// included, is descending.
func ParseSortDirection(raw string) types.SortDirection {
	if strings.EqualFold(raw, "asc") {
		return types.SortAscending
	}
	return types.SortDescending
}

// optionalString returns nil for an absent or empty field, mirroring the
// truthiness check the UI applies before appending a parameter.
func optionalString(query url.Values, name string) *string {
	value := query.Get(name)
	if value == "" {
		return nil
	}
	return &value
}

// optionalFloat returns nil for an absent or empty field. A present but
// non-numeric value parses to NaN: the bound predicate then matches no
// rows, which is the documented degraded behavior rather than an error.
func optionalFloat(query url.Values, name string) *float64 {
	raw := query.Get(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		nan := math.NaN()
		return &nan
	}
	return &value
}
