package split

// =============================================================================
// PROPORTIONAL TAX/TIP DISTRIBUTOR
// Tax and tip track each participant's share of the subtotal, so someone
// who ordered more pays proportionally more tax and tip
// =============================================================================

// InferTip derives the tip from the receipt totals. The scanning API does
// not report tip separately, so anything left over after subtotal and tax is
// treated as tip. Fees folded into the total by the scanner end up here too;
// values within a cent of zero are discarded as noise.
func InferTip(totals Totals) float64 {
	tip := totals.Total - totals.Subtotal - totals.Tax
	if tip <= tipThreshold {
		return 0
	}
	return tip
}

// CalculateProportionalTaxTip distributes tax (and tip, when above the
// one-cent threshold) across participants in proportion to their base
// shares. When the base shares sum to zero -- nothing assigned yet, or a
// receipt of free items -- it falls back to an even split instead of
// dividing by zero. Both distributions are reconciled against their targets,
// so they conserve every cent.
//
// The returned tip distribution is nil when there is no tip to distribute.
func CalculateProportionalTaxTip(baseShares map[string]float64, tax, tip float64) (map[string]float64, map[string]float64) {
	taxDist := make(map[string]float64, len(baseShares))
	hasTip := tip > tipThreshold
	var tipDist map[string]float64
	if hasTip {
		tipDist = make(map[string]float64, len(baseShares))
	}

	if len(baseShares) == 0 {
		return taxDist, tipDist
	}

	var shareTotal float64
	for _, share := range baseShares {
		shareTotal += share
	}

	if shareTotal == 0 {
		// Even-split fallback
		n := float64(len(baseShares))
		for p := range baseShares {
			taxDist[p] = tax / n
			if hasTip {
				tipDist[p] = tip / n
			}
		}
	} else {
		for p, share := range baseShares {
			fraction := share / shareTotal
			taxDist[p] = tax * fraction
			if hasTip {
				tipDist[p] = tip * fraction
			}
		}
	}

	taxDist = RoundAmounts(taxDist, tax)
	if hasTip {
		tipDist = RoundAmounts(tipDist, tip)
	}
	return taxDist, tipDist
}
