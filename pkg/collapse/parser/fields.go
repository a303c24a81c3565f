// Package parser provides schedule field scanning and cell value parsing.
package parser

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/models"
)

// TerminatorPrefix marks the field that closes the weight column run.
const TerminatorPrefix = '='

// ErrNoTerminator indicates the field list has no terminator field.
var ErrNoTerminator = errors.New("no terminator field")

// IsWeightName reports whether a field heading denotes a weight column,
// i.e. starts with a decimal digit.
func IsWeightName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return r != utf8.RuneError && unicode.IsDigit(r)
}

// IsTerminatorName reports whether a field heading closes the weight run.
func IsTerminatorName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return r == TerminatorPrefix
}

// FindRange scans fields once and returns the weight column range.
//
// The first weight field wins. Hidden non-weight fields before it are
// counted into StartHidden. The scan stops at the first terminator field,
// even when it precedes any weight field; the resulting range is then empty.
// If no weight field appears before the terminator, First equals Terminator.
func FindRange(fields []models.Field) (models.ColumnRange, error) {
	first := -1
	startHidden := 0

	for i, f := range fields {
		if first < 0 {
			if IsWeightName(f.Name) {
				first = i
			} else if f.Hidden {
				startHidden++
			}
		}
		if IsTerminatorName(f.Name) {
			if first < 0 {
				first = i
			}
			return models.ColumnRange{
				First:       first,
				Terminator:  i,
				StartHidden: startHidden,
			}, nil
		}
	}

	return models.ColumnRange{}, ErrNoTerminator
}
