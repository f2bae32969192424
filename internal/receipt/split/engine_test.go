package split

import (
	"math"
	"testing"
)

const tolerance = 0.001

func sumValues(m map[string]float64) float64 {
	var sum float64
	for _, v := range m {
		sum += v
	}
	return sum
}

func TestCalculateSplitEqual(t *testing.T) {
	receipt := &Receipt{
		Items: []Item{
			{ID: "a", Name: "Burger", Quantity: 1, UnitPrice: 45, TotalPrice: 45},
		},
		Totals: Totals{Subtotal: 45.00, Tax: 3.60, Total: 48.60, Currency: "USD"},
	}
	in := &Input{Participants: []string{"amy", "ben", "cleo"}}

	result, err := CalculateSplit(receipt, SplitTypeEqual, in)
	if err != nil {
		t.Fatalf("CalculateSplit() error = %v", err)
	}

	for _, p := range in.Participants {
		if math.Abs(result.FriendShares[p]-15.00) > tolerance {
			t.Errorf("%s share = %v, want 15.00", p, result.FriendShares[p])
		}
		if math.Abs(result.TaxDistribution[p]-1.20) > tolerance {
			t.Errorf("%s tax = %v, want 1.20", p, result.TaxDistribution[p])
		}
		if math.Abs(result.Totals[p]-16.20) > tolerance {
			t.Errorf("%s total = %v, want 16.20", p, result.Totals[p])
		}
	}
	if result.TipDistribution != nil {
		t.Errorf("tip distribution = %v, want none", result.TipDistribution)
	}
	if math.Abs(sumValues(result.Totals)-48.60) > tolerance {
		t.Errorf("totals sum = %v, want 48.60", sumValues(result.Totals))
	}
}

func TestCalculateSplitEqualNoParticipants(t *testing.T) {
	receipt := &Receipt{Totals: Totals{Subtotal: 10, Tax: 1, Total: 11}}

	result, err := CalculateSplit(receipt, SplitTypeEqual, &Input{})
	if err != nil {
		t.Fatalf("CalculateSplit() error = %v", err)
	}
	if len(result.FriendShares) != 0 || len(result.Totals) != 0 {
		t.Errorf("expected empty result for zero participants, got %+v", result)
	}
}

func TestCalculateSplitEqualUnevenCents(t *testing.T) {
	// 10.00 / 3 does not divide evenly; reconciliation must conserve it.
	receipt := &Receipt{Totals: Totals{Subtotal: 10.00, Tax: 0.83, Total: 10.83}}
	in := &Input{Participants: []string{"amy", "ben", "cleo"}}

	result, err := CalculateSplit(receipt, SplitTypeEqual, in)
	if err != nil {
		t.Fatalf("CalculateSplit() error = %v", err)
	}

	if math.Abs(sumValues(result.FriendShares)-10.00) > tolerance {
		t.Errorf("shares sum = %v, want 10.00", sumValues(result.FriendShares))
	}
	if math.Abs(sumValues(result.TaxDistribution)-0.83) > tolerance {
		t.Errorf("tax sum = %v, want 0.83", sumValues(result.TaxDistribution))
	}
	if math.Abs(sumValues(result.Totals)-10.83) > tolerance {
		t.Errorf("totals sum = %v, want 10.83", sumValues(result.Totals))
	}
}

func TestCalculateSplitItemized(t *testing.T) {
	receipt := &Receipt{
		Items: []Item{
			{ID: "i1", Name: "Ramen", Quantity: 1, UnitPrice: 18, TotalPrice: 18},
			{ID: "i2", Name: "Gyoza", Quantity: 2, UnitPrice: 6, TotalPrice: 12},
		},
		Totals: Totals{Subtotal: 30.00, Tax: 2.40, Total: 32.40},
	}
	in := &Input{
		Participants: []string{"amy", "ben"},
		Assignments: []ItemAssignment{
			{ItemID: "i1", FriendIDs: []string{"amy"}},
			{ItemID: "i2", FriendIDs: []string{"amy", "ben"}},
		},
	}

	result, err := CalculateSplit(receipt, SplitTypeItemized, in)
	if err != nil {
		t.Fatalf("CalculateSplit() error = %v", err)
	}

	if math.Abs(result.FriendShares["amy"]-24.00) > tolerance {
		t.Errorf("amy share = %v, want 24.00", result.FriendShares["amy"])
	}
	if math.Abs(result.FriendShares["ben"]-6.00) > tolerance {
		t.Errorf("ben share = %v, want 6.00", result.FriendShares["ben"])
	}

	// Tax tracks the base shares proportionally: amy 80%, ben 20%.
	if math.Abs(result.TaxDistribution["amy"]-1.92) > tolerance {
		t.Errorf("amy tax = %v, want 1.92", result.TaxDistribution["amy"])
	}
	if math.Abs(result.TaxDistribution["ben"]-0.48) > tolerance {
		t.Errorf("ben tax = %v, want 0.48", result.TaxDistribution["ben"])
	}
	if math.Abs(sumValues(result.Totals)-32.40) > tolerance {
		t.Errorf("totals sum = %v, want 32.40", sumValues(result.Totals))
	}
	if len(result.Assignments) != 2 {
		t.Errorf("assignments not echoed: %v", result.Assignments)
	}
}

func TestCalculateSplitItemizedQuantities(t *testing.T) {
	// One $30 item shared 1:2 must come out exactly $10/$20.
	receipt := &Receipt{
		Items: []Item{
			{ID: "i1", Name: "Pitcher", Quantity: 3, UnitPrice: 10, TotalPrice: 30},
		},
		Totals: Totals{Subtotal: 30.00, Tax: 0, Total: 30.00},
	}
	in := &Input{
		Participants: []string{"amy", "ben"},
		Assignments: []ItemAssignment{
			{ItemID: "i1", FriendIDs: []string{"amy", "ben"}, Quantities: []float64{1, 2}},
		},
	}

	result, err := CalculateSplit(receipt, SplitTypeItemized, in)
	if err != nil {
		t.Fatalf("CalculateSplit() error = %v", err)
	}

	if math.Abs(result.FriendShares["amy"]-10.00) > tolerance {
		t.Errorf("amy share = %v, want 10.00", result.FriendShares["amy"])
	}
	if math.Abs(result.FriendShares["ben"]-20.00) > tolerance {
		t.Errorf("ben share = %v, want 20.00", result.FriendShares["ben"])
	}
}

func TestCalculateSplitItemizedIndexFallback(t *testing.T) {
	// Items without stable ids are addressed by stringified position.
	receipt := &Receipt{
		Items: []Item{
			{Name: "Coffee", Quantity: 1, UnitPrice: 4, TotalPrice: 4},
			{Name: "Bagel", Quantity: 1, UnitPrice: 3, TotalPrice: 3},
		},
		Totals: Totals{Subtotal: 7.00, Tax: 0, Total: 7.00},
	}
	in := &Input{
		Participants: []string{"amy", "ben"},
		Assignments: []ItemAssignment{
			{ItemID: "0", FriendIDs: []string{"amy"}},
			{ItemID: "1", FriendIDs: []string{"ben"}},
		},
	}

	result, err := CalculateSplit(receipt, SplitTypeItemized, in)
	if err != nil {
		t.Fatalf("CalculateSplit() error = %v", err)
	}
	if math.Abs(result.FriendShares["amy"]-4.00) > tolerance {
		t.Errorf("amy share = %v, want 4.00", result.FriendShares["amy"])
	}
	if math.Abs(result.FriendShares["ben"]-3.00) > tolerance {
		t.Errorf("ben share = %v, want 3.00", result.FriendShares["ben"])
	}
}

func TestCalculateSplitItemizedSkipsUnmatched(t *testing.T) {
	receipt := &Receipt{
		Items: []Item{
			{ID: "i1", Name: "Soup", Quantity: 1, UnitPrice: 8, TotalPrice: 8},
		},
		Totals: Totals{Subtotal: 8.00, Tax: 0, Total: 8.00},
	}
	in := &Input{
		Participants: []string{"amy"},
		Assignments: []ItemAssignment{
			{ItemID: "i1", FriendIDs: []string{"amy"}},
			{ItemID: "ghost", FriendIDs: []string{"amy"}},
			{ItemID: "i1", FriendIDs: nil},
		},
	}

	result, err := CalculateSplit(receipt, SplitTypeItemized, in)
	if err != nil {
		t.Fatalf("CalculateSplit() error = %v", err)
	}
	if math.Abs(result.FriendShares["amy"]-8.00) > tolerance {
		t.Errorf("amy share = %v, want 8.00", result.FriendShares["amy"])
	}
}

func TestCalculateSplitPercentage(t *testing.T) {
	receipt := &Receipt{Totals: Totals{Subtotal: 80.00, Tax: 6.40, Total: 86.40}}
	in := &Input{
		Participants: []string{"amy", "ben"},
		Percentages:  map[string]float64{"amy": 75, "ben": 25},
	}

	result, err := CalculateSplit(receipt, SplitTypePercentage, in)
	if err != nil {
		t.Fatalf("CalculateSplit() error = %v", err)
	}

	if math.Abs(result.FriendShares["amy"]-60.00) > tolerance {
		t.Errorf("amy share = %v, want 60.00", result.FriendShares["amy"])
	}
	if math.Abs(result.FriendShares["ben"]-20.00) > tolerance {
		t.Errorf("ben share = %v, want 20.00", result.FriendShares["ben"])
	}
	if math.Abs(sumValues(result.Totals)-86.40) > tolerance {
		t.Errorf("totals sum = %v, want 86.40", sumValues(result.Totals))
	}
}

func TestCalculateSplitCustom(t *testing.T) {
	receipt := &Receipt{Totals: Totals{Subtotal: 50.00, Tax: 4.00, Total: 54.00}}
	in := &Input{
		Participants: []string{"amy", "ben", "cleo"},
		Amounts:      map[string]float64{"amy": 25.00, "ben": 15.00, "cleo": 10.00},
	}

	result, err := CalculateSplit(receipt, SplitTypeCustom, in)
	if err != nil {
		t.Fatalf("CalculateSplit() error = %v", err)
	}

	if math.Abs(result.FriendShares["amy"]-25.00) > tolerance {
		t.Errorf("amy share = %v, want 25.00", result.FriendShares["amy"])
	}
	if math.Abs(sumValues(result.TaxDistribution)-4.00) > tolerance {
		t.Errorf("tax sum = %v, want 4.00", sumValues(result.TaxDistribution))
	}
	if math.Abs(sumValues(result.Totals)-54.00) > tolerance {
		t.Errorf("totals sum = %v, want 54.00", sumValues(result.Totals))
	}
}

func TestCalculateSplitWithTip(t *testing.T) {
	// Total exceeds subtotal+tax by 6.00, which the engine infers as tip.
	receipt := &Receipt{Totals: Totals{Subtotal: 40.00, Tax: 3.20, Total: 49.20}}
	in := &Input{Participants: []string{"amy", "ben"}}

	result, err := CalculateSplit(receipt, SplitTypeEqual, in)
	if err != nil {
		t.Fatalf("CalculateSplit() error = %v", err)
	}

	if result.TipDistribution == nil {
		t.Fatal("expected a tip distribution")
	}
	if math.Abs(sumValues(result.TipDistribution)-6.00) > tolerance {
		t.Errorf("tip sum = %v, want 6.00", sumValues(result.TipDistribution))
	}
	if math.Abs(result.Totals["amy"]-24.60) > tolerance {
		t.Errorf("amy total = %v, want 24.60", result.Totals["amy"])
	}
	if math.Abs(sumValues(result.Totals)-49.20) > tolerance {
		t.Errorf("totals sum = %v, want 49.20", sumValues(result.Totals))
	}
}

func TestCalculateSplitUnknownStrategy(t *testing.T) {
	receipt := &Receipt{Totals: Totals{Subtotal: 10, Total: 10}}
	if _, err := CalculateSplit(receipt, SplitType("VIBES"), &Input{Participants: []string{"amy"}}); err == nil {
		t.Error("expected error for unknown split type")
	}
}

func TestConservationAcrossStrategies(t *testing.T) {
	receipt := &Receipt{
		Items: []Item{
			{ID: "i1", Name: "Tapas", Quantity: 1, UnitPrice: 23.47, TotalPrice: 23.47},
			{ID: "i2", Name: "Paella", Quantity: 1, UnitPrice: 41.20, TotalPrice: 41.20},
			{ID: "i3", Name: "Sangria", Quantity: 1, UnitPrice: 18.33, TotalPrice: 18.33},
		},
		Totals: Totals{Subtotal: 83.00, Tax: 7.06, Total: 95.06}, // 5.00 tip
	}
	participants := []string{"amy", "ben", "cleo"}

	tests := []struct {
		name      string
		splitType SplitType
		in        *Input
	}{
		{
			name:      "equal",
			splitType: SplitTypeEqual,
			in:        &Input{Participants: participants},
		},
		{
			name:      "itemized",
			splitType: SplitTypeItemized,
			in: &Input{
				Participants: participants,
				Assignments: []ItemAssignment{
					{ItemID: "i1", FriendIDs: []string{"amy", "ben"}},
					{ItemID: "i2", FriendIDs: []string{"cleo"}},
					{ItemID: "i3", FriendIDs: []string{"amy", "ben", "cleo"}},
				},
			},
		},
		{
			name:      "percentage",
			splitType: SplitTypePercentage,
			in: &Input{
				Participants: participants,
				Percentages:  map[string]float64{"amy": 33.3, "ben": 33.3, "cleo": 33.4},
			},
		},
		{
			name:      "custom",
			splitType: SplitTypeCustom,
			in: &Input{
				Participants: participants,
				Amounts:      map[string]float64{"amy": 20.00, "ben": 30.00, "cleo": 33.00},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CalculateSplit(receipt, tt.splitType, tt.in)
			if err != nil {
				t.Fatalf("CalculateSplit() error = %v", err)
			}
			if math.Abs(sumValues(result.TaxDistribution)-receipt.Totals.Tax) > tolerance {
				t.Errorf("tax sum = %v, want %v", sumValues(result.TaxDistribution), receipt.Totals.Tax)
			}
			if math.Abs(sumValues(result.TipDistribution)-5.00) > tolerance {
				t.Errorf("tip sum = %v, want 5.00", sumValues(result.TipDistribution))
			}
			if math.Abs(sumValues(result.Totals)-receipt.Totals.Total) > tolerance {
				t.Errorf("totals sum = %v, want %v", sumValues(result.Totals), receipt.Totals.Total)
			}
			for _, p := range participants {
				if _, ok := result.FriendShares[p]; !ok {
					t.Errorf("participant %s missing from friendShares", p)
				}
				if _, ok := result.Totals[p]; !ok {
					t.Errorf("participant %s missing from totals", p)
				}
			}
		})
	}
}
