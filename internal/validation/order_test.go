package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bluestrek/internal/model"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func boolPtr(b bool) *bool { return &b }

// rollProduct is 3.5 rolls of 10 m each: 35 m available.
func rollProduct() *model.Product {
	return &model.Product{
		Reference:     "TIS-001",
		Designation:   "Tissu rouleau coton",
		UnitLength:    d("10"),
		StockQuantity: d("3.5"),
		RollBased:     boolPtr(true),
	}
}

func plainProduct() *model.Product {
	return &model.Product{
		Reference:     "BTN-010",
		Designation:   "Boutons nacre x100",
		StockQuantity: d("42"),
	}
}

func aClient() *model.Client {
	return &model.Client{ID: 1, Name: "Atelier Nord"}
}

// ── Selection checks ─────────────────────────────────────────────────────────

func TestOrderWithoutClient(t *testing.T) {
	_, err := ValidateOrder(nil, rollProduct(), OrderInput{Rolls: "1"})
	assert.Equal(t, MissingClient, KindOf(err))
}

func TestOrderWithoutProduct(t *testing.T) {
	_, err := ValidateOrder(aClient(), nil, OrderInput{Rolls: "1"})
	assert.Equal(t, MissingProduct, KindOf(err))
}

func TestClientCheckedBeforeProduct(t *testing.T) {
	_, err := ValidateOrder(nil, nil, OrderInput{})
	assert.Equal(t, MissingClient, KindOf(err))
}

// ── Roll orders ──────────────────────────────────────────────────────────────

func TestRollOrderWithinStock(t *testing.T) {
	// 2 rolls of 10 m plus 10 loose meters = 30 m against 35 m available.
	out, err := ValidateOrder(aClient(), rollProduct(), OrderInput{Rolls: "2", Meters: "10"})
	require.NoError(t, err)
	assert.True(t, out.Quantity.Equal(d("30")))
	require.NotNil(t, out.MetersOrdered)
	assert.True(t, out.MetersOrdered.Equal(d("30")))
}

func TestRollOrderExceedsStock(t *testing.T) {
	// 3 rolls plus 10 m = 40 m against 35 m available.
	_, err := ValidateOrder(aClient(), rollProduct(), OrderInput{Rolls: "3", Meters: "10"})
	require.Error(t, err)

	var ve *Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, InsufficientStock, ve.Kind)
	assert.True(t, ve.Attempted.Equal(d("40")))
	assert.True(t, ve.Available.Equal(d("35")))
	assert.Equal(t, "m", ve.Unit)
}

func TestRollOrderExactlyAvailable(t *testing.T) {
	out, err := ValidateOrder(aClient(), rollProduct(), OrderInput{Meters: "35"})
	require.NoError(t, err)
	assert.True(t, out.Quantity.Equal(d("35")))
}

func TestRollOrderRollsOnly(t *testing.T) {
	out, err := ValidateOrder(aClient(), rollProduct(), OrderInput{Rolls: "3"})
	require.NoError(t, err)
	assert.True(t, out.Quantity.Equal(d("30")))
}

func TestRollOrderMetersOnly(t *testing.T) {
	out, err := ValidateOrder(aClient(), rollProduct(), OrderInput{Meters: "12.5"})
	require.NoError(t, err)
	assert.True(t, out.Quantity.Equal(d("12.5")))
}

func TestRollOrderBothFieldsEmpty(t *testing.T) {
	_, err := ValidateOrder(aClient(), rollProduct(), OrderInput{})
	assert.Equal(t, MissingQuantity, KindOf(err))
}

func TestRollOrderGarbageFieldsCountAsZero(t *testing.T) {
	_, err := ValidateOrder(aClient(), rollProduct(), OrderInput{Rolls: "abc", Meters: "-"})
	assert.Equal(t, MissingQuantity, KindOf(err))
}

func TestRollOrderSanitizesInput(t *testing.T) {
	// "2x" → 2 rolls, "1O.5" → 1.5 m (letters dropped, first dot kept).
	out, err := ValidateOrder(aClient(), rollProduct(), OrderInput{Rolls: "2x", Meters: "1O.5"})
	require.NoError(t, err)
	assert.True(t, out.Quantity.Equal(d("21.5")))
}

func TestRollOrderDoubleDotMetersReadUpToSecondDot(t *testing.T) {
	out, err := ValidateOrder(aClient(), rollProduct(), OrderInput{Meters: "12.5.5"})
	require.NoError(t, err)
	assert.True(t, out.Quantity.Equal(d("12.5")))
}

func TestRollOrderIdempotent(t *testing.T) {
	in := OrderInput{Rolls: "2", Meters: "10"}
	first, err1 := ValidateOrder(aClient(), rollProduct(), in)
	second, err2 := ValidateOrder(aClient(), rollProduct(), in)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, first.Quantity.Equal(second.Quantity))
}

func TestRollDetectionByDesignationFallback(t *testing.T) {
	// No explicit flag: "Rouleau" in the designation routes to the roll branch.
	p := &model.Product{
		Reference:     "TIS-002",
		Designation:   "Rouleau lin naturel",
		UnitLength:    d("25"),
		StockQuantity: d("8"),
	}
	out, err := ValidateOrder(aClient(), p, OrderInput{Rolls: "2"})
	require.NoError(t, err)
	require.NotNil(t, out.MetersOrdered)
	assert.True(t, out.Quantity.Equal(d("50")))
}

func TestExplicitFlagOverridesDesignation(t *testing.T) {
	// Flag says plain even though the designation matches the heuristic.
	p := &model.Product{
		Reference:     "DEC-001",
		Designation:   "Papier motif rouleaux",
		StockQuantity: d("10"),
		RollBased:     boolPtr(false),
	}
	out, err := ValidateOrder(aClient(), p, OrderInput{Quantity: "4"})
	require.NoError(t, err)
	assert.Nil(t, out.MetersOrdered)
	assert.True(t, out.Quantity.Equal(d("4")))
}

// ── Plain orders ─────────────────────────────────────────────────────────────

func TestPlainOrderWithinStock(t *testing.T) {
	out, err := ValidateOrder(aClient(), plainProduct(), OrderInput{Quantity: "10"})
	require.NoError(t, err)
	assert.True(t, out.Quantity.Equal(d("10")))
	assert.Nil(t, out.MetersOrdered)
}

func TestPlainOrderExactlyStock(t *testing.T) {
	out, err := ValidateOrder(aClient(), plainProduct(), OrderInput{Quantity: "42"})
	require.NoError(t, err)
	assert.True(t, out.Quantity.Equal(d("42")))
}

func TestPlainOrderJustOverStock(t *testing.T) {
	_, err := ValidateOrder(aClient(), plainProduct(), OrderInput{Quantity: "42.01"})
	var ve *Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, InsufficientStock, ve.Kind)
	assert.True(t, ve.Attempted.Equal(d("42.01")))
	assert.True(t, ve.Available.Equal(d("42")))
	assert.Empty(t, ve.Unit)
}

func TestPlainOrderInvalidQuantity(t *testing.T) {
	for _, q := range []string{"", "abc", "0", "-3"} {
		_, err := ValidateOrder(aClient(), plainProduct(), OrderInput{Quantity: q})
		assert.Equal(t, InvalidQuantity, KindOf(err), "quantity %q", q)
	}
}

func TestPlainOrderTrimsWhitespace(t *testing.T) {
	out, err := ValidateOrder(aClient(), plainProduct(), OrderInput{Quantity: " 7 "})
	require.NoError(t, err)
	assert.True(t, out.Quantity.Equal(d("7")))
}

// ── Request building ─────────────────────────────────────────────────────────

func TestNormalizedOrderRequest(t *testing.T) {
	out, err := ValidateOrder(aClient(), rollProduct(), OrderInput{Rolls: "1"})
	require.NoError(t, err)

	req := out.Request(1, "TIS-001")
	assert.Equal(t, int64(1), req.ClientID)
	assert.Equal(t, "TIS-001", req.ProductReference)
	assert.True(t, req.Quantity.Equal(d("10")))
	require.NotNil(t, req.MetersOrdered)
	assert.True(t, req.MetersOrdered.Equal(d("10")))
	require.NoError(t, Struct(req))
}
