package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRow(t *testing.T) {
	items := AddRow(nil)
	require.Len(t, items, 1)
	assert.Equal(t, LineItem{SrNo: 1, Quantity: 1}, items[0])

	items = AddRow(items)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[1].SrNo)
	assert.Equal(t, 1.0, items[1].Quantity)
	assert.Zero(t, items[1].Price)
	assert.Zero(t, items[1].Amount)

	// existing rows keep their serial numbers
	assert.Equal(t, 1, items[0].SrNo)
}

func TestEditFieldRecomputesAmount(t *testing.T) {
	items := []LineItem{{SrNo: 1, Quantity: 1, Price: 0, Amount: 0}}

	items, err := EditField(items, 0, "price", 50)
	require.NoError(t, err)
	assert.Equal(t, 50.0, items[0].Amount)

	items, err = EditField(items, 0, "quantity", 3)
	require.NoError(t, err)
	assert.Equal(t, 150.0, items[0].Amount)
	assert.Equal(t, items[0].Quantity*items[0].Price, items[0].Amount)
}

func TestEditFieldTextLeavesAmount(t *testing.T) {
	items := []LineItem{{SrNo: 1, Quantity: 2, Price: 25, Amount: 50}}

	items, err := EditField(items, 0, "description", "MS Angle 40x40x5")
	require.NoError(t, err)
	assert.Equal(t, "MS Angle 40x40x5", items[0].Description)
	assert.Equal(t, 50.0, items[0].Amount)

	items, err = EditField(items, 0, "hsn_sac_code", "7216")
	require.NoError(t, err)
	assert.Equal(t, "7216", items[0].HSNSACCode)
	assert.Equal(t, 50.0, items[0].Amount)
}

func TestEditFieldDoesNotMutateInput(t *testing.T) {
	items := []LineItem{{SrNo: 1, Quantity: 1, Price: 10, Amount: 10}}

	_, err := EditField(items, 0, "price", 99)
	require.NoError(t, err)
	assert.Equal(t, 10.0, items[0].Price)
}

func TestEditFieldNaNPropagates(t *testing.T) {
	items := []LineItem{{SrNo: 1, Quantity: 2, Price: 10, Amount: 20}}

	items, err := EditField(items, 0, "quantity", "abc")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(items[0].Quantity))
	assert.True(t, math.IsNaN(items[0].Amount))

	// the submit gate catches it
	assert.Error(t, Validate(items))
}

func TestEditFieldStringNumbers(t *testing.T) {
	items := []LineItem{{SrNo: 1, Quantity: 1}}

	items, err := EditField(items, 0, "price", "12.50")
	require.NoError(t, err)
	assert.Equal(t, 12.5, items[0].Price)
	assert.Equal(t, 12.5, items[0].Amount)
}

func TestEditFieldErrors(t *testing.T) {
	items := []LineItem{{SrNo: 1}}

	_, err := EditField(items, 5, "price", 1)
	assert.Error(t, err)

	_, err = EditField(items, -1, "price", 1)
	assert.Error(t, err)

	_, err = EditField(items, 0, "discount", 1)
	assert.Error(t, err)
}

func TestComputeTotals(t *testing.T) {
	items := []LineItem{
		{Quantity: 2, Amount: 100},
		{Quantity: 3, Amount: 150},
	}

	got := ComputeTotals(items, 10, 0.18)

	assert.Equal(t, 5.0, got.TotalQuantity)
	assert.Equal(t, 250.0, got.TotalAmount)
	assert.Equal(t, 45.0, got.GSTAmount)
	assert.Equal(t, 305.0, got.GrandTotal)
}

func TestComputeTotalsDefaults(t *testing.T) {
	items := []LineItem{{Quantity: 1, Amount: 100}}

	got := ComputeTotals(items, 0, 0)

	assert.Equal(t, 18.0, got.GSTAmount)
	assert.Equal(t, 118.0, got.GrandTotal)
}

func TestComputeTotalsEmpty(t *testing.T) {
	got := ComputeTotals(nil, 0, 0.18)
	assert.Equal(t, Totals{}, got)
}

func TestComputeTotalsMatchesRowsAfterEdits(t *testing.T) {
	// No hidden state: totals recomputed from the returned rows always
	// agree with what the edits produced.
	items := AddRow(nil)
	items, err := EditField(items, 0, "price", 40)
	require.NoError(t, err)
	items = AddRow(items)
	items, err = EditField(items, 1, "quantity", 4)
	require.NoError(t, err)
	items, err = EditField(items, 1, "price", 15)
	require.NoError(t, err)

	got := ComputeTotals(items, 0, 0.18)
	assert.Equal(t, 5.0, got.TotalQuantity)
	assert.Equal(t, 100.0, got.TotalAmount)
}

func TestRecalculate(t *testing.T) {
	items := []LineItem{
		{SrNo: 7, Description: "Pipe", Quantity: 2, Price: 50, Amount: 9999},
		{SrNo: 2, Description: "Sheet", Quantity: 1, Price: 75, Amount: -3},
	}

	got := Recalculate(items)

	assert.Equal(t, 1, got[0].SrNo)
	assert.Equal(t, 100.0, got[0].Amount)
	assert.Equal(t, 2, got[1].SrNo)
	assert.Equal(t, 75.0, got[1].Amount)
	// input untouched
	assert.Equal(t, 9999.0, items[0].Amount)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		items   []LineItem
		wantErr bool
	}{
		{"empty list rejected", nil, true},
		{
			"valid",
			[]LineItem{{SrNo: 1, Description: "Rod", Quantity: 2, Price: 10, Amount: 20}},
			false,
		},
		{
			"blank description",
			[]LineItem{{SrNo: 1, Description: "   ", Quantity: 1, Price: 10}},
			true,
		},
		{
			"negative price",
			[]LineItem{{SrNo: 1, Description: "Rod", Quantity: 1, Price: -5}},
			true,
		},
		{
			"nan quantity",
			[]LineItem{{SrNo: 1, Description: "Rod", Quantity: math.NaN(), Price: 5}},
			true,
		},
		{
			"zero quantity allowed",
			[]LineItem{{SrNo: 1, Description: "Rod", Quantity: 0, Price: 5}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.items)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
