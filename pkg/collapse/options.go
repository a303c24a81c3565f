// Package collapse hides schedule weight columns that carry no positive value.
package collapse

import (
	"strings"

	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/messages"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/parser"
)

// DefaultMarkers are the substrings that make a placed schedule eligible.
var DefaultMarkers = []string{"ВРС", "calculation"}

// Options configures a collapse pass.
type Options struct {
	// Markers lists case-sensitive substrings; a schedule selected on a
	// sheet is eligible when its name contains any of them.
	Markers []string
	// Language selects the message table for user-facing text.
	Language messages.Language
	// Locale controls how cell text is parsed as a number.
	Locale parser.Locale
}

// DefaultOptions returns default collapse options.
func DefaultOptions() Options {
	return Options{
		Markers:  append([]string(nil), DefaultMarkers...),
		Language: messages.English,
		Locale:   parser.DefaultLocale(),
	}
}

// MatchesSchedule reports whether a sheet-placed schedule name is eligible.
func (o Options) MatchesSchedule(name string) bool {
	for _, m := range o.Markers {
		if m != "" && strings.Contains(name, m) {
			return true
		}
	}
	return false
}

func (o Options) message(key messages.Key) string {
	return messages.Get(o.Language, key)
}
