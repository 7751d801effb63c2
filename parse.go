package jptime

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/text/unicode/norm"
)

// numeralField matches one year/month/day field of era-symbol input:
// ASCII digits (full-width digits are folded before matching) or a
// run of kanji numerals.
const numeralField = `(?:\d{1,4}|[〇一二三四五六七八九十百千]+)`

// symbolPatterns builds the era-symbol regexps for a table: the 年月日
// form (平成3年3月23日, 平成元年三月三日) and the delimited form
// (S45.3.23). The era token is a full name or a one-letter code;
// squared era signs fold to the full name under NFKC before matching.
func symbolPatterns(t *Table) (kanjiForm, dottedForm *regexp.Regexp) {
	alts := make([]string, 0, 2*len(t.eras))
	for _, e := range t.eras {
		alts = append(alts, regexp.QuoteMeta(e.Name))
	}
	for _, e := range t.eras {
		if e.Code != 0 {
			alts = append(alts, regexp.QuoteMeta(string(e.Code)))
		}
	}
	era := `(` + strings.Join(alts, "|") + `)`

	kanjiForm = regexp.MustCompile(`^` + era + `(元|` + numeralField + `)年(` + numeralField + `)月(` + numeralField + `)日$`)
	dottedForm = regexp.MustCompile(`^` + era + `(\d{1,2})[.\-/](\d{1,2})[.\-/](\d{1,2})$`)
	return kanjiForm, dottedForm
}

// Parse converts a date string to a Time. Three forms are tried in
// strict order: the era-symbol form, the fixed-width era-code form,
// and finally the fallback Gregorian parser. The order resolves
// numeric ambiguity: a 7-character string whose leading character
// names a known era is an era-code date, while 8-digit strings such
// as "19910323" fall through to Gregorian parsing.
//
// A branch that matches structurally but names an impossible date
// (平成30年2月29日) fails with ErrInvalidDate instead of falling
// through. Input that matches nothing fails with ErrParse.
func (c *Converter) Parse(s string) (Time, error) {
	input := norm.NFKC.String(strings.TrimSpace(s))

	t, err := c.parseEraSymbol(input)
	if err == nil {
		return t, nil
	}
	if terminal(err) {
		return Time{}, err
	}

	t, err = c.parseEraCode(input)
	if err == nil {
		return t, nil
	}
	if terminal(err) {
		return Time{}, err
	}

	if tm, err := c.fallback(input); err == nil {
		return c.FromTime(tm)
	}
	return Time{}, fmt.Errorf("%w: %q", ErrParse, s)
}

// terminal reports whether a branch error aborts parsing rather than
// falling through to the next branch.
func terminal(err error) bool {
	return errors.Is(err, ErrInvalidDate)
}

// parseEraSymbol handles era-symbol input: an era name or code
// followed by year, month, and day written with 年月日 or separator
// characters. 元 in the year position means year 1.
func (c *Converter) parseEraSymbol(s string) (Time, error) {
	m := c.symbolKanji.FindStringSubmatch(s)
	if m == nil {
		m = c.symbolDotted.FindStringSubmatch(s)
	}
	if m == nil {
		return Time{}, fmt.Errorf("%w: not an era-symbol date", ErrParse)
	}

	_, ordinal, err := c.table.ByToken(m[1])
	if err != nil {
		return Time{}, err
	}
	var ymd [3]int
	for i, field := range m[2:5] {
		n, err := c.atoiField(field)
		if err != nil {
			return Time{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
		ymd[i] = n
	}
	return c.New(ordinal, ymd[0], ymd[1], ymd[2])
}

// atoiField normalizes one numeral field and parses it as an integer.
func (c *Converter) atoiField(field string) (int, error) {
	normalized, err := c.numerals(field)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(normalized)
}

// eraCodeLen is the fixed width of the era-code form: one era letter
// or ordinal digit followed by YYMMDD.
const eraCodeLen = 7

// parseEraCode handles compact era-code input such as "H040323" or
// "3031123". The leading character must resolve to a known era; an
// unknown code falls through to the Gregorian branch.
func (c *Converter) parseEraCode(s string) (Time, error) {
	rs := []rune(s)
	if len(rs) != eraCodeLen {
		return Time{}, fmt.Errorf("%w: not an era-code date", ErrParse)
	}
	for _, r := range rs[1:] {
		if r < '0' || r > '9' {
			return Time{}, fmt.Errorf("%w: not an era-code date", ErrParse)
		}
	}

	_, ordinal, err := c.table.ByToken(string(rs[0]))
	if err != nil {
		return Time{}, err
	}
	yy, _ := strconv.Atoi(string(rs[1:3]))
	mm, _ := strconv.Atoi(string(rs[3:5]))
	dd, _ := strconv.Atoi(string(rs[5:7]))
	return c.New(ordinal, yy, mm, dd)
}

// jpGregorianDate matches a Gregorian date written with kanji unit
// separators (2018年8月13日).
var jpGregorianDate = regexp.MustCompile(`^(\d{3,4})年(\d{1,2})月(\d{1,2})日$`)

// DefaultDateParser is the fallback Gregorian parser used by Parse.
// It folds the 年月日 form to a hyphenated date and delegates
// everything else to dateparse.ParseAny, which accepts most common
// layouts (1991-3-23, 1930/03/23, 1947.09.11, 19910323).
func DefaultDateParser(s string) (time.Time, error) {
	if m := jpGregorianDate.FindStringSubmatch(s); m != nil {
		s = m[1] + "-" + m[2] + "-" + m[3]
	}
	return dateparse.ParseAny(s)
}
