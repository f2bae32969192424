package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabbit-app/tabbit-backend/internal/receipt/split"
)

func TestBuildSummary(t *testing.T) {
	receipt := &Receipt{
		ID:       "r1",
		Merchant: "Noodle House",
		Currency: "USD",
		Subtotal: 40.00,
		Tax:      3.20,
		Total:    49.20,
		SplitData: &split.Result{
			Strategy:        split.SplitTypeEqual,
			Assignments:     []split.ItemAssignment{},
			FriendShares:    map[string]float64{"amy": 20.00, "ben": 20.00},
			TaxDistribution: map[string]float64{"amy": 1.60, "ben": 1.60},
			TipDistribution: map[string]float64{"amy": 3.00, "ben": 3.00},
			Totals:          map[string]float64{"amy": 24.60, "ben": 24.60},
			People:          []string{"amy", "ben"},
		},
	}

	summary, err := buildSummary(receipt)
	require.NoError(t, err)

	assert.Equal(t, "r1", summary.ReceiptID)
	assert.Equal(t, "Noodle House", summary.Merchant)
	assert.Equal(t, "EQUAL", summary.Strategy)
	require.Len(t, summary.People, 2)

	// People keep the participant order from the split input.
	assert.Equal(t, "amy", summary.People[0].ID)
	assert.Equal(t, 20.00, summary.People[0].Share)
	assert.Equal(t, 1.60, summary.People[0].Tax)
	assert.Equal(t, 3.00, summary.People[0].Tip)
	assert.Equal(t, 24.60, summary.People[0].Total)
}

func TestBuildSummaryWithoutTip(t *testing.T) {
	receipt := &Receipt{
		ID:       "r2",
		Merchant: "Cafe",
		Currency: "USD",
		Total:    10.80,
		SplitData: &split.Result{
			Strategy:        split.SplitTypeEqual,
			FriendShares:    map[string]float64{"amy": 10.00},
			TaxDistribution: map[string]float64{"amy": 0.80},
			Totals:          map[string]float64{"amy": 10.80},
			People:          []string{"amy"},
		},
	}

	summary, err := buildSummary(receipt)
	require.NoError(t, err)
	assert.Zero(t, summary.People[0].Tip)
}

func TestBuildSummaryNotFinalized(t *testing.T) {
	_, err := buildSummary(&Receipt{ID: "r3"})
	assert.ErrorIs(t, err, ErrSplitNotFinalized)
}

func TestReceiptToSplitReceipt(t *testing.T) {
	receipt := &Receipt{
		Subtotal: 12.00,
		Tax:      0.96,
		Fees:     0.50,
		Total:    13.46,
		Currency: "USD",
		Items: []Item{
			{ID: "a", Name: "Latte", Quantity: 2, UnitPrice: 6.00, TotalPrice: 12.00},
		},
	}

	engineReceipt := receipt.ToSplitReceipt()

	require.Len(t, engineReceipt.Items, 1)
	assert.Equal(t, "Latte", engineReceipt.Items[0].Name)
	assert.Equal(t, 12.00, engineReceipt.Items[0].TotalPrice)
	assert.Equal(t, 12.00, engineReceipt.Totals.Subtotal)
	assert.Equal(t, 0.50, engineReceipt.Totals.Fees)
	assert.Equal(t, "USD", engineReceipt.Totals.Currency)
}
