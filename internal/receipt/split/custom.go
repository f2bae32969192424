package split

import (
	"fmt"
	"math"
)

// =============================================================================
// CUSTOM SPLIT STRATEGY
// Each participant owes a caller-supplied absolute amount
// =============================================================================

// customTolerance bounds user input error: the supplied amounts must sum to
// the subtotal within two cents before the engine runs.
const customTolerance = 0.02

// CustomStrategy implements the Strategy interface for custom amount splits
type CustomStrategy struct{}

// Type returns the split type identifier
func (s *CustomStrategy) Type() SplitType {
	return SplitTypeCustom
}

// Validate checks that the supplied amounts sum to the receipt subtotal.
func (s *CustomStrategy) Validate(receipt *Receipt, in *Input) []string {
	var total float64
	for _, amount := range in.Amounts {
		total += amount
	}
	if math.Abs(total-receipt.Totals.Subtotal) > customTolerance {
		return []string{fmt.Sprintf(
			"amounts must add up to the subtotal of %.2f (currently %.2f)",
			receipt.Totals.Subtotal, total)}
	}
	return nil
}

// Shares takes the supplied amounts as given and reconciles them against the
// subtotal so that stray cents from user entry do not survive.
func (s *CustomStrategy) Shares(receipt *Receipt, in *Input) map[string]float64 {
	shares := zeroShares(in.Participants)
	if len(shares) == 0 {
		return shares
	}

	for p := range shares {
		shares[p] = in.Amounts[p]
	}

	return RoundAmounts(shares, receipt.Totals.Subtotal)
}
