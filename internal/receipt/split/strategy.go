// Package split is the bill-splitting engine: pure, stateless functions that
// take a receipt snapshot plus a strategy selection and produce a
// penny-accurate allocation of items, tax, and tip across participants.
//
// Every strategy and both tax/tip distributions route through the same
// rounding reconciliation, so individual shares always sum exactly to their
// target amount. The engine never mutates its inputs and holds no state, so
// it is safe to call from any goroutine.
package split

import (
	"fmt"
	"math"
)

// SplitType defines the strategy used to compute base shares
type SplitType string

const (
	SplitTypeEqual      SplitType = "EQUAL"
	SplitTypeItemized   SplitType = "ITEMIZED"
	SplitTypePercentage SplitType = "PERCENTAGE"
	SplitTypeCustom     SplitType = "CUSTOM"
)

// tipThreshold is the minimum inferred tip worth distributing.
// Anything at or below a cent is treated as rounding noise from the
// upstream scanning API.
const tipThreshold = 0.01

// Item is the engine's view of a single receipt line item.
// TotalPrice is stored independently of Quantity x UnitPrice and is
// treated as authoritative.
type Item struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// Totals holds the receipt's monetary totals. Tip is not stored; it is
// inferred as Total - Subtotal - Tax.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Fees     float64 `json:"fees"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

// Receipt is the read-only input to the engine.
type Receipt struct {
	Items  []Item
	Totals Totals
}

// ItemAssignment maps one receipt item to the participants sharing it.
// Quantities, when present, is parallel to FriendIDs and weights each
// assignee's share of the item by their fraction of the summed quantities.
type ItemAssignment struct {
	ItemID     string    `json:"itemId"`
	FriendIDs  []string  `json:"friendIds"`
	Quantities []float64 `json:"quantities,omitempty"`
}

// Input carries the strategy-specific data alongside the participant list.
// Participants are opaque string keys; display-name resolution is the
// caller's concern. Only the field matching the chosen strategy is read:
// Assignments for ITEMIZED, Percentages for PERCENTAGE, Amounts for CUSTOM.
type Input struct {
	Participants []string           `json:"participants"`
	Assignments  []ItemAssignment   `json:"assignments,omitempty"`
	Percentages  map[string]float64 `json:"percentages,omitempty"`
	Amounts      map[string]float64 `json:"amounts,omitempty"`
}

// Strategy is the interface all split strategies implement
type Strategy interface {
	// Type returns the strategy identifier
	Type() SplitType

	// Shares computes each participant's base (pre-tax, pre-tip) amount,
	// already passed through rounding reconciliation. Every participant in
	// the input appears in the result, possibly with a zero value.
	Shares(receipt *Receipt, in *Input) map[string]float64

	// Validate returns user-facing problem descriptions for this strategy's
	// inputs. An empty slice means the inputs are acceptable.
	Validate(receipt *Receipt, in *Input) []string
}

// Factory creates split strategies based on the requested type
type Factory struct{}

// NewFactory creates a new strategy factory
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the strategy implementation for the given type
func (f *Factory) Create(splitType SplitType) (Strategy, error) {
	switch splitType {
	case SplitTypeEqual:
		return &EqualStrategy{}, nil
	case SplitTypeItemized:
		return &ItemizedStrategy{}, nil
	case SplitTypePercentage:
		return &PercentageStrategy{}, nil
	case SplitTypeCustom:
		return &CustomStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown split type: %s", splitType)
	}
}

// CreateFromString creates a strategy from a string type (useful for API requests)
func (f *Factory) CreateFromString(splitType string) (Strategy, error) {
	return f.Create(SplitType(splitType))
}

// roundToTwoDecimals rounds a float to 2 decimal places
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// zeroShares builds a share map with every participant present at zero.
func zeroShares(participants []string) map[string]float64 {
	shares := make(map[string]float64, len(participants))
	for _, p := range participants {
		shares[p] = 0
	}
	return shares
}
