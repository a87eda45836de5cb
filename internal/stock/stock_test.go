package stock

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestFormatRollBreakdown(t *testing.T) {
	// 3.5 rolls of 10 m: three whole rolls plus half a roll.
	assert.Equal(t, "3 roll(s) and 5 m", Format(d("3.5"), d("10")))
}

func TestFormatWholeRolls(t *testing.T) {
	assert.Equal(t, "8 roll(s) and 0 m", Format(d("8"), d("25")))
}

func TestFormatRemainderRounds(t *testing.T) {
	// 0.33 of a 10 m roll is 3.3 m, rounded to the nearest meter.
	assert.Equal(t, "2 roll(s) and 3 m", Format(d("2.33"), d("10")))
}

func TestFormatZeroStock(t *testing.T) {
	assert.Equal(t, "0 roll(s) and 0 m", Format(d("0"), d("10")))
}

func TestFormatPlainUnits(t *testing.T) {
	assert.Equal(t, "42 units", Format(d("42"), decimal.Zero))
	assert.Equal(t, "42 units", Format(d("42"), d("-1")))
}

func TestFormatRemainderStaysBelowRollLength(t *testing.T) {
	for _, q := range []string{"0.1", "0.5", "0.99", "1.01", "7.42"} {
		wholeRolls := d(q).Floor()
		remainder := d(q).Sub(wholeRolls).Mul(d("25")).Round(0)
		assert.True(t, remainder.GreaterThanOrEqual(decimal.Zero), "quantity %s", q)
		assert.True(t, remainder.LessThanOrEqual(d("25")), "quantity %s", q)
	}
}

func TestVirtualRolls(t *testing.T) {
	assert.Equal(t, int64(2), VirtualRolls(d("25"), d("10")))
	assert.Equal(t, int64(1), VirtualRolls(d("10"), d("10")))
	assert.Equal(t, int64(0), VirtualRolls(d("9.9"), d("10")))
}

func TestVirtualRollsGuards(t *testing.T) {
	assert.Equal(t, int64(0), VirtualRolls(d("25"), decimal.Zero))
	assert.Equal(t, int64(0), VirtualRolls(decimal.Zero, d("10")))
	assert.Equal(t, int64(0), VirtualRolls(d("-5"), d("10")))
}
