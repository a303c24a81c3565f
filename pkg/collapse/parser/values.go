package parser

// OnlyTextAndZeros reports whether a column's cell texts carry no positive
// value but at least one number at or below zero. Empty and non-numeric
// texts are ignored, so a column without any number is not collapsible.
func OnlyTextAndZeros(values []string, loc Locale) bool {
	haveZeros := false
	haveNumber := false
	for _, s := range values {
		v, ok := ParseNumber(s, loc)
		if !ok {
			continue
		}
		if v > 0 {
			haveNumber = true
			continue
		}
		haveZeros = true
	}
	return haveZeros && !haveNumber
}
