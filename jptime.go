// Package jptime converts between Japanese era-based dates (和暦) and
// Gregorian calendar dates.
//
// A date in the Japanese system is an era, the year within that era
// (year 1 is written 元年), the month, and the day. The five modern
// eras (明治, 大正, 昭和, 平成, 令和) are built in; alternate era
// tables can be supplied for testing or historical data.
//
// Basic usage with package-level functions:
//
//	t, _ := jptime.Parse("平成元年三月三日")
//	t.Tuple()  // 4, 1, 3, 3
//	t.Time()   // 1989-03-03 00:00:00 +0000 UTC
//
//	t, _ = jptime.FromTime(time.Date(2019, time.May, 1, 0, 0, 0, 0, time.UTC))
//	t.String() // "令和元年5月1日"
//
// Parse recognizes three input forms, tried in order: the era-symbol
// form (平成3年3月23日, 平成三年三月二十三日, S45.3.23), the compact
// era-code form (H040323, 3031123), and any Gregorian date string the
// fallback parser accepts (1991-3-23, 19910323).
//
// All time.Time inputs are normalized to JST (Asia/Tokyo, UTC+9)
// before extracting the calendar date, so the correct Japanese date is
// produced regardless of the input timezone.
package jptime

import (
	"fmt"
	"regexp"
	"time"
)

// A Time is a calendar date in the Japanese era system. It is
// immutable once constructed and always denotes a real Gregorian date
// no later than its era's end. Construct values with [Parse],
// [FromTime], [New], or the corresponding [Converter] methods; the
// zero Time is not a valid date.
type Time struct {
	era     Era
	ordinal int
	year    int
	month   int
	day     int
}

// Era returns the era the date belongs to.
func (t Time) Era() Era { return t.era }

// EraYear returns the year within the era; 1 is the first (元) year.
func (t Time) EraYear() int { return t.year }

// Month returns the month, 1 through 12.
func (t Time) Month() int { return t.month }

// Day returns the day of the month.
func (t Time) Day() int { return t.day }

// Tuple returns (eraOrdinal, eraYear, month, day), where eraOrdinal is
// the 1-based position of the era in the table. 平成 is the 4th era, so
// 平成元年3月3日 yields (4, 1, 3, 3).
func (t Time) Tuple() (eraOrdinal, eraYear, month, day int) {
	return t.ordinal, t.year, t.month, t.day
}

// gregorianYear returns the Gregorian year of the date. Era years
// count from the year the era begins: year 1 of 平成 is 1989.
func (t Time) gregorianYear() int {
	return t.era.Begin.Year() + t.year - 1
}

// Time returns the Gregorian date as a time.Time at midnight UTC.
func (t Time) Time() time.Time {
	return date{year: t.gregorianYear(), month: time.Month(t.month), day: t.day}.toTime()
}

// String renders the conventional Japanese layout, substituting 元年
// for the first year of an era: 平成元年3月3日, 令和5年8月13日.
func (t Time) String() string {
	if t.year == 1 {
		return fmt.Sprintf("%s元年%d月%d日", t.era.Name, t.month, t.day)
	}
	return fmt.Sprintf("%s%d年%d月%d日", t.era.Name, t.year, t.month, t.day)
}

// Equal reports whether t and other denote the same era date.
func (t Time) Equal(other Time) bool {
	return t.ordinal == other.ordinal && t.year == other.year &&
		t.month == other.month && t.day == other.day
}

// Before reports whether t is earlier than other on the Gregorian
// timeline.
func (t Time) Before(other Time) bool {
	return t.Time().Before(other.Time())
}

// After reports whether t is later than other.
func (t Time) After(other Time) bool {
	return other.Before(t)
}

// NumeralFunc rewrites Japanese numerals in a text as ASCII digits.
// See [NormalizeNumerals] for the default contract.
type NumeralFunc func(string) (string, error)

// DateParserFunc parses a free-form Gregorian date string. It backs
// the fallback branch of [Converter.Parse]; see [DefaultDateParser].
type DateParserFunc func(string) (time.Time, error)

// A Converter converts between Japanese era dates and Gregorian dates
// over a fixed era table. All state is immutable after construction,
// so a Converter is safe for concurrent use.
type Converter struct {
	table    *Table
	numerals NumeralFunc
	fallback DateParserFunc

	symbolKanji  *regexp.Regexp
	symbolDotted *regexp.Regexp
}

// Option configures a Converter.
type Option func(*Converter)

// WithNumeralFunc replaces the numeral normalizer used on the year,
// month, and day fields of era-symbol input.
func WithNumeralFunc(f NumeralFunc) Option {
	return func(c *Converter) { c.numerals = f }
}

// WithDateParser replaces the fallback Gregorian date parser.
func WithDateParser(f DateParserFunc) Option {
	return func(c *Converter) { c.fallback = f }
}

// NewConverter returns a Converter over the given era table. Kanji
// numerals are handled by [NormalizeNumerals] and the Gregorian
// fallback by [DefaultDateParser] unless overridden with options.
func NewConverter(table *Table, opts ...Option) *Converter {
	c := &Converter{
		table:    table,
		numerals: NormalizeNumerals,
		fallback: DefaultDateParser,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.symbolKanji, c.symbolDotted = symbolPatterns(table)
	return c
}

// New constructs a date in the era with the given 1-based ordinal,
// validating that the fields denote a real Gregorian date no later
// than the era's end. Dates in an era's first year that precede the
// proclamation day are accepted, mirroring common document usage
// (令和元年1月3日 is the same day as 平成31年1月3日).
func (c *Converter) New(eraOrdinal, eraYear, month, day int) (Time, error) {
	era, err := c.table.at(eraOrdinal)
	if err != nil {
		return Time{}, err
	}
	if eraYear < 1 {
		return Time{}, fmt.Errorf("%w: era year %d", ErrInvalidDate, eraYear)
	}
	if month < 1 || month > 12 {
		return Time{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	d := date{year: era.Begin.Year() + eraYear - 1, month: time.Month(month), day: day}
	if !d.valid() {
		return Time{}, fmt.Errorf("%w: %04d-%02d-%02d does not exist", ErrInvalidDate, d.year, month, day)
	}
	if !era.open() && d.after(dateFromTime(era.End)) {
		return Time{}, fmt.Errorf("%w: %s%d年%d月%d日 is past the era's end", ErrInvalidDate, era.Name, eraYear, month, day)
	}
	return Time{era: era, ordinal: eraOrdinal, year: eraYear, month: month, day: day}, nil
}

// FromTime converts a Gregorian moment to its Japanese era date. The
// moment is normalized to the JST calendar date first. Returns
// ErrEraNotFound when the date precedes the earliest era.
func (c *Converter) FromTime(tm time.Time) (Time, error) {
	era, ordinal, err := c.table.ByDate(tm)
	if err != nil {
		return Time{}, err
	}
	d := dateFromTime(tm)
	return Time{
		era:     era,
		ordinal: ordinal,
		year:    d.year - era.Begin.Year() + 1,
		month:   int(d.month),
		day:     d.day,
	}, nil
}

// defaultConverter backs the package-level functions.
var defaultConverter = NewConverter(DefaultTable())

// --- Package-level convenience functions ---

// Parse converts a date string in any supported form using the default
// converter over the five modern eras.
func Parse(s string) (Time, error) { return defaultConverter.Parse(s) }

// FromTime converts a Gregorian moment using the default converter.
func FromTime(t time.Time) (Time, error) { return defaultConverter.FromTime(t) }

// New constructs a validated date in the default era table.
func New(eraOrdinal, eraYear, month, day int) (Time, error) {
	return defaultConverter.New(eraOrdinal, eraYear, month, day)
}
