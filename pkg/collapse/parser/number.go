package parser

import (
	"math"
	"strconv"
	"strings"
)

// Locale describes how numbers are written in cell text.
type Locale struct {
	// Decimal is the decimal separator. Zero picks '.' or ',' per text:
	// when both appear the rightmost one is the decimal separator, and a
	// separator repeated alone is grouping.
	Decimal rune
	// Group is the digit grouping separator. Zero accepts space and
	// no-break space plus whichever of '.' and ',' is not the decimal
	// separator.
	Group rune
}

// DefaultLocale detects the separators from each text.
func DefaultLocale() Locale {
	return Locale{}
}

// ParseNumber parses cell text as a decimal number, accepting digit
// grouping such as "1,234.50" or "1 234,5".
// It returns false for empty or non-numeric text.
func ParseNumber(s string, loc Locale) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	decimal, group := separators(s, loc)
	var b strings.Builder
	b.Grow(len(s))
	decimalSeen := false
	for _, r := range s {
		switch {
		case group != 0 && r == group:
			continue
		case loc.Group == 0 && isSpace(r):
			continue
		case decimal != 0 && r == decimal:
			if decimalSeen {
				return 0, false
			}
			decimalSeen = true
			b.WriteByte('.')
		default:
			b.WriteRune(r)
		}
	}

	// Integers first keeps large whole values exact
	if i, err := strconv.ParseInt(b.String(), 10, 64); err == nil {
		return float64(i), true
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// separators returns the decimal and grouping separators for s. Zero means
// the separator does not apply.
func separators(s string, loc Locale) (decimal, group rune) {
	if loc.Decimal != 0 {
		return loc.Decimal, loc.Group
	}
	if loc.Group != 0 {
		if loc.Group == ',' {
			return '.', loc.Group
		}
		return ',', loc.Group
	}

	last := strings.LastIndexAny(s, ".,")
	if last < 0 {
		return 0, 0
	}
	d := rune(s[last])
	other := ','
	if d == ',' {
		other = '.'
	}
	switch {
	case strings.ContainsRune(s, other):
		return d, other
	case strings.Count(s, string(d)) > 1:
		return 0, d
	default:
		return d, 0
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\u00a0' || r == '\u202f'
}
