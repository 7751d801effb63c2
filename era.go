package jptime

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Era describes a single Japanese era: its name, the one-letter code
// used in compact numeric notation, and the Gregorian date range in
// which it is active.
type Era struct {
	Name  string    // Full era name (e.g., "平成").
	Code  rune      // One-letter code (e.g., 'H').
	Begin time.Time // First day of the era (midnight UTC).
	End   time.Time // Last day of the era (midnight UTC); zero means open-ended.
}

// open reports whether the era has no recorded end date, i.e. it is
// the current era.
func (e Era) open() bool {
	return e.End.IsZero()
}

// contains reports whether the calendar date d falls within the era's
// [begin, end] range. An open-ended era extends indefinitely forward.
func (e Era) contains(d date) bool {
	if d.before(dateFromTime(e.Begin)) {
		return false
	}
	return e.open() || !dateFromTime(e.End).before(d)
}

// Table is an immutable, chronologically ordered registry of eras.
// It is read-only after construction and safe for concurrent use
// without locking. Most callers use [DefaultTable]; alternate tables
// can be built with [NewTable] for testing or historical data.
type Table struct {
	eras []Era
}

// NewTable builds a Table from eras in chronological order. It fails
// if the slice is empty, if an era is missing a name or begin date,
// if era ranges overlap or are out of order, or if any era other than
// the newest is open-ended.
func NewTable(eras []Era) (*Table, error) {
	if len(eras) == 0 {
		return nil, errors.New("jptime: era table is empty")
	}
	for i, e := range eras {
		if e.Name == "" || e.Begin.IsZero() {
			return nil, fmt.Errorf("jptime: era %d is missing a name or begin date", i+1)
		}
		if e.open() && i != len(eras)-1 {
			return nil, fmt.Errorf("jptime: era %s is open-ended but not the newest", e.Name)
		}
		if i > 0 {
			prev := eras[i-1]
			if !dateFromTime(prev.End).before(dateFromTime(e.Begin)) {
				return nil, fmt.Errorf("jptime: era %s overlaps %s", e.Name, prev.Name)
			}
		}
	}
	cp := make([]Era, len(eras))
	copy(cp, eras)
	return &Table{eras: cp}, nil
}

// defaultEras are the five modern eras. Begin and end days follow the
// official proclamation dates.
var defaultEras = []Era{
	{Name: "明治", Code: 'M', Begin: time.Date(1868, time.January, 25, 0, 0, 0, 0, time.UTC), End: time.Date(1912, time.July, 29, 0, 0, 0, 0, time.UTC)},
	{Name: "大正", Code: 'T', Begin: time.Date(1912, time.July, 30, 0, 0, 0, 0, time.UTC), End: time.Date(1926, time.December, 24, 0, 0, 0, 0, time.UTC)},
	{Name: "昭和", Code: 'S', Begin: time.Date(1926, time.December, 25, 0, 0, 0, 0, time.UTC), End: time.Date(1989, time.January, 7, 0, 0, 0, 0, time.UTC)},
	{Name: "平成", Code: 'H', Begin: time.Date(1989, time.January, 8, 0, 0, 0, 0, time.UTC), End: time.Date(2019, time.April, 30, 0, 0, 0, 0, time.UTC)},
	{Name: "令和", Code: 'R', Begin: time.Date(2019, time.May, 1, 0, 0, 0, 0, time.UTC)},
}

var defaultTable = &Table{eras: defaultEras}

// DefaultTable returns the table of the five modern eras, 明治 (1868)
// through the open-ended 令和.
func DefaultTable() *Table {
	return defaultTable
}

// Len returns the number of eras in the table.
func (t *Table) Len() int {
	return len(t.eras)
}

// Eras returns the eras in chronological order. The returned slice is
// a copy; mutating it does not affect the table.
func (t *Table) Eras() []Era {
	cp := make([]Era, len(t.eras))
	copy(cp, t.eras)
	return cp
}

// at returns the era with the given 1-based ordinal.
func (t *Table) at(ordinal int) (Era, error) {
	if ordinal < 1 || ordinal > len(t.eras) {
		return Era{}, fmt.Errorf("%w: ordinal %d", ErrUnknownEra, ordinal)
	}
	return t.eras[ordinal-1], nil
}

// ByDate returns the era containing the given moment and its 1-based
// ordinal. The moment is normalized to the JST calendar date first.
// Returns ErrEraNotFound for dates before the earliest era or inside
// a gap between eras.
func (t *Table) ByDate(tm time.Time) (Era, int, error) {
	d := dateFromTime(tm)
	for i, e := range t.eras {
		if e.contains(d) {
			return e, i + 1, nil
		}
	}
	return Era{}, 0, fmt.Errorf("%w: %s", ErrEraNotFound, d.toTime().Format("2006-01-02"))
}

// ByToken returns the era matching a full era name ("平成"), a
// one-letter code ("H"), or a single ordinal digit ("4"), along with
// its 1-based ordinal. Squared era signs such as ㍻ fold to the full
// name under NFKC and are accepted too. Returns ErrUnknownEra when
// nothing matches.
func (t *Table) ByToken(token string) (Era, int, error) {
	token = norm.NFKC.String(token)
	if len(token) == 1 && token[0] >= '1' && token[0] <= '9' {
		ordinal := int(token[0] - '0')
		e, err := t.at(ordinal)
		if err != nil {
			return Era{}, 0, err
		}
		return e, ordinal, nil
	}
	for i, e := range t.eras {
		if token == e.Name || (e.Code != 0 && token == string(e.Code)) {
			return e, i + 1, nil
		}
	}
	return Era{}, 0, fmt.Errorf("%w: %q", ErrUnknownEra, token)
}
