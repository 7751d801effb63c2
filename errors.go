package jptime

import "errors"

// Error kinds returned by this package. Callers match them with
// errors.Is; the wrapped message carries the offending input.
var (
	// ErrParse is returned when an input string matches none of the
	// recognized date formats.
	ErrParse = errors.New("jptime: cannot parse input")

	// ErrUnknownEra is returned when an era name, code, or ordinal is
	// not present in the era table.
	ErrUnknownEra = errors.New("jptime: unknown era")

	// ErrEraNotFound is returned when a Gregorian date falls outside
	// every era range in the table.
	ErrEraNotFound = errors.New("jptime: no era covers date")

	// ErrInvalidDate is returned when numerically well-formed fields do
	// not denote a real calendar date, or the date exceeds its era.
	ErrInvalidDate = errors.New("jptime: invalid date")
)
