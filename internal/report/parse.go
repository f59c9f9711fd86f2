package report

import (
	"strconv"
	"strings"
)

// ParseAmount extracts the numeric value from a display string such as
// "1250.50 USD", "$12.00" or "12.5". Every rune that is not a digit or a dot
// is stripped first. ok is false when nothing parseable remains.
func ParseAmount(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
