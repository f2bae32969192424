package split

import (
	"math"
	"sort"
)

// RoundAmounts rounds every amount to two decimal places and forces the
// rounded values to sum exactly to target. This is the load-bearing
// correctness mechanism of the engine: division never comes out even, and
// every strategy and the tax/tip distributor route through this same
// reconciliation.
//
// The leftover difference is distributed one cent at a time starting with
// the largest shares, so adjustments are proportionally least noticeable and
// small or zero shares are not pushed negative. The function is idempotent:
// reconciled amounts pass through unchanged.
func RoundAmounts(amounts map[string]float64, target float64) map[string]float64 {
	rounded := make(map[string]float64, len(amounts))
	var sum float64
	for id, amount := range amounts {
		r := roundToTwoDecimals(amount)
		rounded[id] = r
		sum += r
	}

	if len(rounded) == 0 {
		return rounded
	}

	diffCents := int(math.Round((target - sum) * 100))
	if diffCents == 0 {
		return rounded
	}

	// Largest shares absorb the adjustment first. Ties break on the key so
	// the result is deterministic across runs.
	ids := make([]string, 0, len(rounded))
	for id := range rounded {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if rounded[ids[i]] != rounded[ids[j]] {
			return rounded[ids[i]] > rounded[ids[j]]
		}
		return ids[i] < ids[j]
	})

	step := 0.01
	if diffCents < 0 {
		step = -0.01
	}
	for i := 0; diffCents != 0; i = (i + 1) % len(ids) {
		rounded[ids[i]] = roundToTwoDecimals(rounded[ids[i]] + step)
		if step > 0 {
			diffCents--
		} else {
			diffCents++
		}
	}

	return rounded
}
