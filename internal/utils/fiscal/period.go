// Package fiscal holds the tax arithmetic shared by services and repositories:
// tax-period derivation and the IGV breakdown of a document total.
package fiscal

import "time"

const (
	// DateLayout is the issue-date format printed on Peruvian comprobantes.
	DateLayout = "02/01/2006"
	// PeriodLayout is the YYYYMM bucket used for periodic tax reporting.
	PeriodLayout = "200601"
)

// TaxPeriod derives the YYYYMM tax period from an issue date in DD/MM/YYYY.
// An empty or unparsable date falls back to the processing date's month: a
// documented approximation, not an error, so a smudged photo still lands in a
// reporting bucket.
func TaxPeriod(fechaEmision string, now time.Time) string {
	t, err := time.Parse(DateLayout, fechaEmision)
	if err != nil {
		return now.Format(PeriodLayout)
	}
	return t.Format(PeriodLayout)
}

// ValidDate reports whether the string is a parsable DD/MM/YYYY date.
func ValidDate(fechaEmision string) bool {
	_, err := time.Parse(DateLayout, fechaEmision)
	return err == nil
}
