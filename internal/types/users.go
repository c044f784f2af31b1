// Package types provides shared types for the goUserSearch service
package types

// SortKey enumerates the whitelisted sort keys for the search endpoint.
// The zero value is the fallback: ordering by id with the direction forced
// to descending, regardless of the requested SortDirection.
type SortKey string

const (
	SortKeyDefault          SortKey = ""
	SortKeyRegistrationDate SortKey = "registration_date"
	SortKeyNickname         SortKey = "nickname"
	SortKeyAge              SortKey = "age"
	SortKeyToken            SortKey = "token"
)

// SortDirection is the two-valued sort direction enumeration.
type SortDirection string

const (
	SortAscending  SortDirection = "ASC"
	SortDescending SortDirection = "DESC"
)

// SearchParams represents parameters for SearchUsers. A nil pointer field
// means "no constraint on this dimension". MinAge/MaxAge may carry NaN when
// the client sent a non-numeric value; such a predicate matches no rows.
type SearchParams struct {
	RegistrationFrom *string
	RegistrationTo   *string
	Token            *string
	MinAge           *float64
	MaxAge           *float64
	SortBy           SortKey
	SortDir          SortDirection
}
