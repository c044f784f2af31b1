package database

import "time"

// The derived age is the elapsed time since birth measured in 365.25-day
// years and truncated toward zero. The same formula exists twice: as the
// SQL expression below, evaluated by SQLite for filtering/sorting/display,
// and as AgeAt for in-process use. age_test.go checks the two agree.
const (
	ageExpr       = "((julianday('now') - julianday(birth_date)) / 365.25)"
	ageProjection = "CAST(" + ageExpr + " AS INTEGER) AS age"

	daysPerYear = 365.25
	dateLayout  = "2006-01-02"
)

// AgeAt returns the whole number of elapsed years between birthDate and now.
// ok is false when birthDate is not a yyyy-mm-dd date, mirroring julianday()
// returning NULL for unparseable input. Truncation is toward zero, matching
// SQLite's CAST ... AS INTEGER.
func AgeAt(birthDate string, now time.Time) (int64, bool) {
	born, err := time.Parse(dateLayout, birthDate)
	if err != nil {
		return 0, false
	}

	// julianday('yyyy-mm-dd') lands on midnight UTC, so the day difference
	// is the exact UTC duration divided into days.
	days := now.UTC().Sub(born).Hours() / 24
	return int64(days / daysPerYear), true
}
