package split

// Result is the complete outcome of a split calculation. Its JSON field
// layout is the serialization contract the mobile client's summary and
// public share views depend on; it is persisted verbatim as the receipt's
// splitData.
type Result struct {
	Strategy        SplitType          `json:"strategy"`
	Assignments     []ItemAssignment   `json:"assignments"`
	FriendShares    map[string]float64 `json:"friendShares"`
	TaxDistribution map[string]float64 `json:"taxDistribution"`
	TipDistribution map[string]float64 `json:"tipDistribution,omitempty"`
	Totals          map[string]float64 `json:"totals"`
	People          []string           `json:"people"`
}

// CalculateSplit is the primary entry point of the engine. It computes base
// shares under the chosen strategy, layers proportional tax and inferred tip
// on top, and reconciles the final per-person totals against the receipt
// total so that no cent is lost or invented.
//
// The only error condition is an unknown split type; user-facing input
// problems are the domain of ValidateSplit and never surface here.
func CalculateSplit(receipt *Receipt, splitType SplitType, in *Input) (*Result, error) {
	strategy, err := NewFactory().Create(splitType)
	if err != nil {
		return nil, err
	}

	shares := strategy.Shares(receipt, in)
	taxDist, tipDist := CalculateProportionalTaxTip(shares, receipt.Totals.Tax, InferTip(receipt.Totals))

	totals := make(map[string]float64, len(shares))
	for p, base := range shares {
		totals[p] = base + taxDist[p] + tipDist[p]
	}
	totals = RoundAmounts(totals, receipt.Totals.Total)

	assignments := []ItemAssignment{}
	if splitType == SplitTypeItemized {
		assignments = in.Assignments
	}

	people := make([]string, len(in.Participants))
	copy(people, in.Participants)

	return &Result{
		Strategy:        splitType,
		Assignments:     assignments,
		FriendShares:    shares,
		TaxDistribution: taxDist,
		TipDistribution: tipDist,
		Totals:          totals,
		People:          people,
	}, nil
}
