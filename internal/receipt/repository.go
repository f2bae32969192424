package receipt

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/tabbit-app/tabbit-backend/internal/receipt/split"
)

// Repository handles receipt data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new receipt repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a receipt and its items in a single transaction
func (r *Repository) Create(ctx context.Context, receipt *Receipt) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO receipts (id, merchant, purchased_at, subtotal, tax, fees, total, currency, share_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	err = tx.QueryRowContext(ctx, query,
		receipt.ID,
		receipt.Merchant,
		receipt.PurchasedAt,
		receipt.Subtotal,
		receipt.Tax,
		receipt.Fees,
		receipt.Total,
		receipt.Currency,
		receipt.ShareCode,
	).Scan(&receipt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create receipt: %w", err)
	}

	itemQuery := `
		INSERT INTO receipt_items (id, receipt_id, name, quantity, unit_price, total_price, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, item := range receipt.Items {
		if _, err := tx.ExecContext(ctx, itemQuery,
			item.ID,
			receipt.ID,
			item.Name,
			item.Quantity,
			item.UnitPrice,
			item.TotalPrice,
			item.Position,
		); err != nil {
			return fmt.Errorf("failed to create receipt item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a receipt with its items by ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Receipt, error) {
	return r.getByColumn(ctx, "id", id)
}

// GetByShareCode retrieves a receipt with its items by its public share code
func (r *Repository) GetByShareCode(ctx context.Context, code string) (*Receipt, error) {
	return r.getByColumn(ctx, "share_code", code)
}

func (r *Repository) getByColumn(ctx context.Context, column, value string) (*Receipt, error) {
	query := fmt.Sprintf(`
		SELECT id, merchant, purchased_at, subtotal, tax, fees, total, currency, split_data, share_code, created_at
		FROM receipts
		WHERE %s = $1
	`, column)

	receipt := &Receipt{}
	var splitData []byte
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&receipt.ID,
		&receipt.Merchant,
		&receipt.PurchasedAt,
		&receipt.Subtotal,
		&receipt.Tax,
		&receipt.Fees,
		&receipt.Total,
		&receipt.Currency,
		&splitData,
		&receipt.ShareCode,
		&receipt.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	if len(splitData) > 0 {
		result := &split.Result{}
		if err := json.Unmarshal(splitData, result); err != nil {
			return nil, fmt.Errorf("failed to decode split data: %w", err)
		}
		receipt.SplitData = result
	}

	items, err := r.getItems(ctx, receipt.ID)
	if err != nil {
		return nil, err
	}
	receipt.Items = items

	return receipt, nil
}

func (r *Repository) getItems(ctx context.Context, receiptID string) ([]Item, error) {
	query := `
		SELECT id, receipt_id, name, quantity, unit_price, total_price, position
		FROM receipt_items
		WHERE receipt_id = $1
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipt items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		item := Item{}
		if err := rows.Scan(
			&item.ID,
			&item.ReceiptID,
			&item.Name,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
			&item.Position,
		); err != nil {
			return nil, fmt.Errorf("failed to scan receipt item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// List retrieves receipts with pagination, newest first. Items are not
// loaded for listings; the mobile history screen only shows header fields.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*Receipt, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM receipts`
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count receipts: %w", err)
	}

	query := `
		SELECT id, merchant, purchased_at, subtotal, tax, fees, total, currency, split_data, share_code, created_at
		FROM receipts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	var receipts []*Receipt
	for rows.Next() {
		receipt := &Receipt{Items: []Item{}}
		var splitData []byte
		if err := rows.Scan(
			&receipt.ID,
			&receipt.Merchant,
			&receipt.PurchasedAt,
			&receipt.Subtotal,
			&receipt.Tax,
			&receipt.Fees,
			&receipt.Total,
			&receipt.Currency,
			&splitData,
			&receipt.ShareCode,
			&receipt.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan receipt: %w", err)
		}
		if len(splitData) > 0 {
			result := &split.Result{}
			if err := json.Unmarshal(splitData, result); err != nil {
				return nil, 0, fmt.Errorf("failed to decode split data: %w", err)
			}
			receipt.SplitData = result
		}
		receipts = append(receipts, receipt)
	}

	return receipts, total, rows.Err()
}

// UpdateSplitData persists a finalized split onto the receipt record
func (r *Repository) UpdateSplitData(ctx context.Context, id string, result *split.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode split data: %w", err)
	}

	query := `UPDATE receipts SET split_data = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, data)
	if err != nil {
		return fmt.Errorf("failed to update split data: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("receipt not found")
	}
	return nil
}

// Delete removes a receipt; items are removed by the ON DELETE CASCADE
// constraint on receipt_items
func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM receipts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete receipt: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("receipt not found")
	}
	return nil
}
