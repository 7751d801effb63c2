package jptime

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// kanjiDigits maps kanji digit characters to their values.
var kanjiDigits = map[rune]int{
	'〇': 0, '一': 1, '二': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

// kanjiUnits maps positional unit characters to their multipliers.
var kanjiUnits = map[rune]int{'十': 10, '百': 100, '千': 1000}

func isKanjiNumeral(r rune) bool {
	if _, ok := kanjiDigits[r]; ok {
		return true
	}
	_, ok := kanjiUnits[r]
	return ok
}

// NormalizeNumerals rewrites the Japanese numerals in s as ASCII
// digits and returns the result. The input is NFKC-folded first, so
// full-width digits (３) become ASCII and squared era signs (㍻)
// become the full era name. Runs of kanji numerals are converted as a
// whole: positionally when 十/百/千 appear, digit by digit otherwise,
// so both 二十三 and 二三 become 23. The character 元 becomes 1.
// All other characters pass through unchanged.
//
// It is the default numeral collaborator of a [Converter] and fails
// only on a malformed kanji run such as 十十 or 二三十.
func NormalizeNumerals(s string) (string, error) {
	s = norm.NFKC.String(s)

	var b strings.Builder
	var run []rune
	flush := func() error {
		if len(run) == 0 {
			return nil
		}
		n, err := kanjiToInt(run)
		if err != nil {
			return err
		}
		b.WriteString(strconv.Itoa(n))
		run = run[:0]
		return nil
	}

	for _, r := range s {
		switch {
		case r == '元':
			if err := flush(); err != nil {
				return "", err
			}
			b.WriteByte('1')
		case isKanjiNumeral(r):
			run = append(run, r)
		default:
			if err := flush(); err != nil {
				return "", err
			}
			b.WriteRune(r)
		}
	}
	if err := flush(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// kanjiToInt converts one run of kanji numeral characters to an
// integer. Runs without a unit character are read digit by digit.
func kanjiToInt(run []rune) (int, error) {
	positional := false
	for _, r := range run {
		if _, ok := kanjiUnits[r]; ok {
			positional = true
			break
		}
	}

	if !positional {
		n := 0
		for _, r := range run {
			n = n*10 + kanjiDigits[r]
		}
		return n, nil
	}

	total, digit := 0, 0
	hasDigit := false
	lastUnit := 1 << 30
	for _, r := range run {
		if v, ok := kanjiDigits[r]; ok {
			if hasDigit {
				return 0, fmt.Errorf("jptime: malformed kanji numeral %q", string(run))
			}
			digit, hasDigit = v, true
			continue
		}
		unit := kanjiUnits[r]
		if unit >= lastUnit {
			return 0, fmt.Errorf("jptime: malformed kanji numeral %q", string(run))
		}
		if !hasDigit {
			digit = 1
		}
		total += digit * unit
		digit, hasDigit = 0, false
		lastUnit = unit
	}
	return total + digit, nil
}
