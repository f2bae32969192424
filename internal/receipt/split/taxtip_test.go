package split

import (
	"math"
	"testing"
)

func TestCalculateProportionalTaxTip(t *testing.T) {
	tests := []struct {
		name       string
		baseShares map[string]float64
		tax        float64
		tip        float64
		wantTax    map[string]float64
		wantTip    map[string]float64
	}{
		{
			name:       "proportional to shares",
			baseShares: map[string]float64{"amy": 30.00, "ben": 10.00},
			tax:        4.00,
			tip:        8.00,
			wantTax:    map[string]float64{"amy": 3.00, "ben": 1.00},
			wantTip:    map[string]float64{"amy": 6.00, "ben": 2.00},
		},
		{
			name:       "zero shares fall back to even split",
			baseShares: map[string]float64{"amy": 0, "ben": 0, "cleo": 0},
			tax:        3.00,
			tip:        6.00,
			wantTax:    map[string]float64{"amy": 1.00, "ben": 1.00, "cleo": 1.00},
			wantTip:    map[string]float64{"amy": 2.00, "ben": 2.00, "cleo": 2.00},
		},
		{
			name:       "tip at the threshold is dropped",
			baseShares: map[string]float64{"amy": 10.00, "ben": 10.00},
			tax:        2.00,
			tip:        0.01,
			wantTax:    map[string]float64{"amy": 1.00, "ben": 1.00},
			wantTip:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxDist, tipDist := CalculateProportionalTaxTip(tt.baseShares, tt.tax, tt.tip)

			for p, want := range tt.wantTax {
				if math.Abs(taxDist[p]-want) > tolerance {
					t.Errorf("%s tax = %v, want %v", p, taxDist[p], want)
				}
			}
			if tt.wantTip == nil {
				if tipDist != nil {
					t.Errorf("tip distribution = %v, want none", tipDist)
				}
				return
			}
			for p, want := range tt.wantTip {
				if math.Abs(tipDist[p]-want) > tolerance {
					t.Errorf("%s tip = %v, want %v", p, tipDist[p], want)
				}
			}
		})
	}
}

func TestCalculateProportionalTaxTipEvenFallbackUnevenCents(t *testing.T) {
	// 1.00 of tax across three zero shares cannot divide evenly; within a
	// cent of each other and conserved overall is the contract.
	taxDist, _ := CalculateProportionalTaxTip(map[string]float64{"amy": 0, "ben": 0, "cleo": 0}, 1.00, 0)

	var sum, min, max float64
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range taxDist {
		sum += v
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	if math.Abs(sum-1.00) > tolerance {
		t.Errorf("tax sum = %v, want 1.00", sum)
	}
	if max-min > 0.01+tolerance {
		t.Errorf("tax spread = %v, want within one cent", max-min)
	}
}

func TestCalculateProportionalTaxTipEmptyShares(t *testing.T) {
	taxDist, tipDist := CalculateProportionalTaxTip(map[string]float64{}, 5.00, 2.00)
	if len(taxDist) != 0 {
		t.Errorf("tax distribution = %v, want empty", taxDist)
	}
	if len(tipDist) != 0 {
		t.Errorf("tip distribution = %v, want empty", tipDist)
	}
}

func TestInferTip(t *testing.T) {
	tests := []struct {
		name   string
		totals Totals
		want   float64
	}{
		{"explicit tip", Totals{Subtotal: 40, Tax: 3.20, Total: 49.20}, 6.00},
		{"no tip", Totals{Subtotal: 45, Tax: 3.60, Total: 48.60}, 0},
		{"rounding noise discarded", Totals{Subtotal: 45, Tax: 3.60, Total: 48.61}, 0},
		{"negative noise discarded", Totals{Subtotal: 45, Tax: 3.60, Total: 48.59}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferTip(tt.totals); math.Abs(got-tt.want) > tolerance {
				t.Errorf("InferTip() = %v, want %v", got, tt.want)
			}
		})
	}
}
