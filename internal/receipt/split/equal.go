package split

// =============================================================================
// EQUAL SPLIT STRATEGY
// Divides the receipt subtotal evenly among all participants
// =============================================================================

// EqualStrategy implements the Strategy interface for equal splits
type EqualStrategy struct{}

// Type returns the split type identifier
func (s *EqualStrategy) Type() SplitType {
	return SplitTypeEqual
}

// Validate checks if the inputs are valid for an equal split
func (s *EqualStrategy) Validate(receipt *Receipt, in *Input) []string {
	// Nothing strategy-specific to check; the participant requirement is
	// enforced by ValidateSplit for all strategies.
	return nil
}

// Shares divides the subtotal evenly among all participants.
// Zero participants returns an empty map rather than erroring; callers are
// expected to guard with ValidateSplit before finalizing.
func (s *EqualStrategy) Shares(receipt *Receipt, in *Input) map[string]float64 {
	shares := zeroShares(in.Participants)
	if len(shares) == 0 {
		return shares
	}

	perPerson := receipt.Totals.Subtotal / float64(len(shares))
	for p := range shares {
		shares[p] = perPerson
	}

	return RoundAmounts(shares, receipt.Totals.Subtotal)
}
