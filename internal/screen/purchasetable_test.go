package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bluestrek/internal/model"
)

func seedPurchases() []model.Purchase {
	return []model.Purchase{
		{ID: 1, ProductReference: "TIS-001", Designation: "Tissu rouleau coton", QuantityPurchased: d("5"), PurchasePrice: d("95"), PurchaseDate: "2026-08-01"},
		{ID: 2, ProductReference: "BTN-010", Designation: "Boutons nacre x100", QuantityPurchased: d("10"), PurchasePrice: d("12"), PurchaseDate: "2026-08-03"},
	}
}

func TestPurchaseTableSeedsStagedText(t *testing.T) {
	table := NewPurchaseTable(seedPurchases())
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "5", table.Rows[0].QuantityText)
	assert.Equal(t, "95", table.Rows[0].PriceText)
	assert.False(t, table.Rows[0].Dirty())
}

func TestPurchaseTableEditStagesWithoutMutating(t *testing.T) {
	base := NewPurchaseTable(seedPurchases())
	edited := base.EditRowQuantity(0, "7")

	assert.Equal(t, "7", edited.Rows[0].QuantityText)
	assert.True(t, edited.Rows[0].Dirty())
	// The record itself is untouched; only staged text changes.
	assert.True(t, edited.Rows[0].Purchase.QuantityPurchased.Equal(d("5")))
	// And the prior state is untouched entirely.
	assert.Equal(t, "5", base.Rows[0].QuantityText)
}

func TestPurchaseTableEditOutOfRangeIgnored(t *testing.T) {
	table := NewPurchaseTable(seedPurchases())
	assert.Equal(t, table, table.EditRowQuantity(-1, "7"))
	assert.Equal(t, table, table.EditRowPrice(99, "7"))
}

func TestPurchaseTableCanAddRow(t *testing.T) {
	table := PurchaseTable{}
	assert.False(t, table.CanAddRow())

	table = table.EditNewReference("TIS-001")
	assert.False(t, table.CanAddRow())

	table = table.EditNewQuantity("5")
	assert.False(t, table.CanAddRow())

	table = table.EditNewPrice("95")
	assert.True(t, table.CanAddRow())
}

func TestPurchaseTableCanAddRowRejectsBadValues(t *testing.T) {
	base := PurchaseTable{}.EditNewReference("TIS-001").EditNewQuantity("5").EditNewPrice("95")

	assert.False(t, base.EditNewReference("  ").CanAddRow())
	assert.False(t, base.EditNewQuantity("0").CanAddRow())
	assert.False(t, base.EditNewQuantity("x").CanAddRow())
	assert.False(t, base.EditNewPrice("-1").CanAddRow())
}

func TestPurchaseTableClearNewRow(t *testing.T) {
	table := PurchaseTable{}.EditNewReference("TIS-001").EditNewQuantity("5").EditNewPrice("95")
	cleared := table.ClearNewRow()
	assert.False(t, cleared.CanAddRow())
	assert.Empty(t, cleared.NewRow.ProductReference)
}
