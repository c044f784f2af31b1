// Package models defines the data structures used by the goUserSearch service.
package models

// User represents one row of the users table together with the derived age
// column. Both date columns hold ISO-8601 (yyyy-mm-dd) strings; the store
// computes Age at query time and returns NULL when birth_date does not parse
// as a date, so the field is a pointer and serializes to JSON null.
type User struct {
	ID               int64  `db:"id" json:"id"`
	RegistrationDate string `db:"registration_date" json:"registration_date"`
	Nickname         string `db:"nickname" json:"nickname"`
	BirthDate        string `db:"birth_date" json:"birth_date"`
	Token            string `db:"token" json:"token"`
	Age              *int64 `db:"age" json:"age"`
}
