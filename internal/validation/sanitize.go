package validation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SanitizeRolls strips everything but digits from a rolls field — rolls are
// whole numbers.
func SanitizeRolls(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeMeters keeps digits and the first decimal point of a meters
// field. The value is cut at a second point: "12.5.5" reads as 12.5, the
// trailing digits never merge into the fraction.
func SanitizeMeters(s string) string {
	var b strings.Builder
	dotSeen := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			if dotSeen {
				return b.String()
			}
			dotSeen = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseOrZero parses a sanitized numeric field. An empty or unparsable
// field counts as zero — "nothing typed" is not an error by itself; the
// validators decide whether zero is acceptable.
func parseOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
