// Package scan is the boundary to the external receipt-scanning API. The
// service turns a receipt image into structured receipt JSON; everything
// about how it does that is opaque to this application.
package scan

import "context"

// ParsedReceipt is the structured result of scanning a receipt image. The
// client reviews it and stores it via the receipts endpoint; nothing is
// persisted at scan time.
type ParsedReceipt struct {
	Merchant string       `json:"merchant"`
	Date     string       `json:"date,omitempty"` // ISO 8601, as reported by the scanner
	Items    []ParsedItem `json:"items"`
	Subtotal float64      `json:"subtotal"`
	Tax      float64      `json:"tax"`
	Fees     float64      `json:"fees"`
	Total    float64      `json:"total"`
	Currency string       `json:"currency"`
}

// ParsedItem is a single line item extracted from the image
type ParsedItem struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// Scanner defines the interface for receipt scanning operations
type Scanner interface {
	// Scan analyzes a receipt image and extracts its structured contents
	Scan(ctx context.Context, image []byte, contentType string) (*ParsedReceipt, error)
}
