package split

import (
	"fmt"
	"math"
)

// =============================================================================
// PERCENTAGE SPLIT STRATEGY
// Divides the subtotal based on a caller-supplied percentage per participant
// =============================================================================

// percentageTolerance bounds user input error: percentages must sum to 100
// within this slack before the engine runs. It is deliberately looser than
// the internal one-cent reconciliation tolerance, which corrects arithmetic
// rounding after the engine runs.
const percentageTolerance = 0.1

// PercentageStrategy implements the Strategy interface for percentage-based splits
type PercentageStrategy struct{}

// Type returns the split type identifier
func (s *PercentageStrategy) Type() SplitType {
	return SplitTypePercentage
}

// Validate checks that the supplied percentages sum to 100.
func (s *PercentageStrategy) Validate(receipt *Receipt, in *Input) []string {
	var total float64
	for _, pct := range in.Percentages {
		total += pct
	}
	if math.Abs(total-100) > percentageTolerance {
		return []string{fmt.Sprintf("percentages must add up to 100%% (currently %.1f%%)", total)}
	}
	return nil
}

// Shares computes each participant's base share as subtotal x percentage / 100.
// No normalization is performed; the input is trusted (validated upstream)
// and the resulting shares are reconciled against the subtotal.
func (s *PercentageStrategy) Shares(receipt *Receipt, in *Input) map[string]float64 {
	shares := zeroShares(in.Participants)
	if len(shares) == 0 {
		return shares
	}

	for p := range shares {
		shares[p] = receipt.Totals.Subtotal * in.Percentages[p] / 100
	}

	return RoundAmounts(shares, receipt.Totals.Subtotal)
}
