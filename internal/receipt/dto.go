package receipt

import (
	"time"

	"github.com/tabbit-app/tabbit-backend/internal/receipt/split"
)

// CreateReceiptRequest represents the request to store a receipt, typically
// the reviewed output of the scanning endpoint
type CreateReceiptRequest struct {
	Merchant    string              `json:"merchant" validate:"required,min=1,max=255"`
	PurchasedAt *time.Time          `json:"purchased_at,omitempty"`
	Subtotal    float64             `json:"subtotal" validate:"gte=0"`
	Tax         float64             `json:"tax" validate:"gte=0"`
	Fees        float64             `json:"fees" validate:"gte=0"`
	Total       float64             `json:"total" validate:"gte=0"`
	Currency    string              `json:"currency" validate:"required,len=3"`
	Items       []CreateReceiptItem `json:"items" validate:"required,min=1"`
}

// CreateReceiptItem represents one line item in a create request
type CreateReceiptItem struct {
	Name       string  `json:"name" validate:"required,min=1,max=255"`
	Quantity   int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice  float64 `json:"unit_price" validate:"gte=0"`
	TotalPrice float64 `json:"total_price" validate:"gte=0"`
}

// SplitRequest represents the request to validate or finalize a split.
// Only the field matching the strategy is read: assignments for ITEMIZED,
// percentages for PERCENTAGE, amounts for CUSTOM.
type SplitRequest struct {
	Strategy     string                 `json:"strategy" validate:"required,oneof=EQUAL ITEMIZED PERCENTAGE CUSTOM"`
	Participants []string               `json:"participants" validate:"required"`
	Assignments  []split.ItemAssignment `json:"assignments,omitempty"`
	Percentages  map[string]float64     `json:"percentages,omitempty"`
	Amounts      map[string]float64     `json:"amounts,omitempty"`
}

// ToSplitInput converts to the split engine's input type
func (r *SplitRequest) ToSplitInput() *split.Input {
	return &split.Input{
		Participants: r.Participants,
		Assignments:  r.Assignments,
		Percentages:  r.Percentages,
		Amounts:      r.Amounts,
	}
}

// ReceiptResponse represents the response for a receipt
type ReceiptResponse struct {
	ID          string         `json:"id"`
	Merchant    string         `json:"merchant"`
	PurchasedAt *string        `json:"purchased_at,omitempty"`
	Subtotal    float64        `json:"subtotal"`
	Tax         float64        `json:"tax"`
	Fees        float64        `json:"fees"`
	Total       float64        `json:"total"`
	Currency    string         `json:"currency"`
	SplitData   *split.Result  `json:"split_data,omitempty"`
	ShareCode   string         `json:"share_code"`
	CreatedAt   string         `json:"created_at"`
	Items       []ItemResponse `json:"items"`
}

// ItemResponse represents one receipt line item in a response
type ItemResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// PersonSummary represents one participant's line on the summary and the
// public share page
type PersonSummary struct {
	ID    string  `json:"id"`
	Share float64 `json:"share"`
	Tax   float64 `json:"tax"`
	Tip   float64 `json:"tip,omitempty"`
	Total float64 `json:"total"`
}

// SummaryResponse represents the per-person breakdown of a finalized split
type SummaryResponse struct {
	ReceiptID string          `json:"receipt_id"`
	Merchant  string          `json:"merchant"`
	Currency  string          `json:"currency"`
	Total     float64         `json:"total"`
	Strategy  string          `json:"strategy"`
	People    []PersonSummary `json:"people"`
}

// ToResponse converts a Receipt model to a ReceiptResponse DTO
func (r *Receipt) ToResponse() *ReceiptResponse {
	items := make([]ItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = ItemResponse{
			ID:         item.ID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		}
	}

	resp := &ReceiptResponse{
		ID:        r.ID,
		Merchant:  r.Merchant,
		Subtotal:  r.Subtotal,
		Tax:       r.Tax,
		Fees:      r.Fees,
		Total:     r.Total,
		Currency:  r.Currency,
		SplitData: r.SplitData,
		ShareCode: r.ShareCode,
		CreatedAt: r.CreatedAt.Format("2006-01-02T15:04:05Z"),
		Items:     items,
	}
	if r.PurchasedAt != nil {
		formatted := r.PurchasedAt.Format("2006-01-02T15:04:05Z")
		resp.PurchasedAt = &formatted
	}
	return resp
}
