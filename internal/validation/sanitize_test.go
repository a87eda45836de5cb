package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeRolls(t *testing.T) {
	assert.Equal(t, "12", SanitizeRolls("12"))
	assert.Equal(t, "12", SanitizeRolls("1.2"))
	assert.Equal(t, "3", SanitizeRolls("3 rolls"))
	assert.Equal(t, "", SanitizeRolls("abc"))
	assert.Equal(t, "", SanitizeRolls(""))
}

func TestSanitizeMeters(t *testing.T) {
	assert.Equal(t, "12.5", SanitizeMeters("12.5"))
	assert.Equal(t, "15", SanitizeMeters("1O5m"))
	assert.Equal(t, ".5", SanitizeMeters(".5"))
	assert.Equal(t, "", SanitizeMeters(""))
}

func TestSanitizeMetersCutsAtSecondDot(t *testing.T) {
	assert.Equal(t, "12.5", SanitizeMeters("12.5.5"))
	assert.Equal(t, "1.2", SanitizeMeters("1a.2.3"))
	assert.Equal(t, ".", SanitizeMeters(".."))
}

func TestParseOrZero(t *testing.T) {
	assert.True(t, parseOrZero("").Equal(decimal.Zero))
	assert.True(t, parseOrZero(".").Equal(decimal.Zero))
	assert.True(t, parseOrZero("4.5").Equal(decimal.RequireFromString("4.5")))
}
