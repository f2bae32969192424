package receipt

import (
	"time"

	"github.com/tabbit-app/tabbit-backend/internal/receipt/split"
)

// Receipt represents a scanned receipt in the system
type Receipt struct {
	ID          string     `json:"id"`
	Merchant    string     `json:"merchant"`
	PurchasedAt *time.Time `json:"purchased_at,omitempty"`
	Subtotal    float64    `json:"subtotal"`
	Tax         float64    `json:"tax"`
	Fees        float64    `json:"fees"`
	Total       float64    `json:"total"`
	Currency    string     `json:"currency"`

	// SplitData holds the finalized split calculation, if any. Its field
	// layout is owned by the split package and persisted verbatim.
	SplitData *split.Result `json:"split_data,omitempty"`

	// ShareCode addresses the public share page for this receipt.
	ShareCode string    `json:"share_code"`
	CreatedAt time.Time `json:"created_at"`

	// Populated alongside the receipt row
	Items []Item `json:"items"`
}

// Item represents a single line item on a receipt. TotalPrice comes from the
// scanning API independently of Quantity x UnitPrice and is authoritative.
type Item struct {
	ID         string  `json:"id"`
	ReceiptID  string  `json:"receipt_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
	Position   int     `json:"position"`
}

// ToSplitReceipt converts to the split engine's read-only receipt view
func (r *Receipt) ToSplitReceipt() *split.Receipt {
	items := make([]split.Item, len(r.Items))
	for i, item := range r.Items {
		items[i] = split.Item{
			ID:         item.ID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		}
	}
	return &split.Receipt{
		Items: items,
		Totals: split.Totals{
			Subtotal: r.Subtotal,
			Tax:      r.Tax,
			Fees:     r.Fees,
			Total:    r.Total,
			Currency: r.Currency,
		},
	}
}
