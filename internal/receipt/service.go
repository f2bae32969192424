package receipt

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/tabbit-app/tabbit-backend/internal/receipt/split"
)

// Common errors
var (
	ErrReceiptNotFound   = errors.New("receipt not found")
	ErrSplitNotFinalized = errors.New("receipt has no finalized split")
	ErrInvalidSplit      = errors.New("split did not pass validation")
)

// Service handles receipt business logic
type Service struct {
	repo *Repository
}

// NewService creates a new receipt service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a receipt, assigning ids and a share code
func (s *Service) Create(ctx context.Context, req *CreateReceiptRequest) (*Receipt, error) {
	receipt := &Receipt{
		ID:          uuid.NewString(),
		Merchant:    req.Merchant,
		PurchasedAt: req.PurchasedAt,
		Subtotal:    req.Subtotal,
		Tax:         req.Tax,
		Fees:        req.Fees,
		Total:       req.Total,
		Currency:    req.Currency,
		ShareCode:   uuid.NewString(),
	}

	receipt.Items = make([]Item, len(req.Items))
	for i, item := range req.Items {
		receipt.Items[i] = Item{
			ID:         uuid.NewString(),
			ReceiptID:  receipt.ID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
			Position:   i,
		}
	}

	if err := s.repo.Create(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// GetByID retrieves a receipt by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Receipt, error) {
	receipt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, ErrReceiptNotFound
	}
	return receipt, nil
}

// List retrieves receipts with pagination
func (s *Service) List(ctx context.Context, page, perPage int) ([]*Receipt, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, perPage, offset)
}

// Delete removes a receipt
func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrReceiptNotFound
	}
	return s.repo.Delete(ctx, id)
}

// ValidateSplit checks a proposed split against the receipt without
// persisting anything. Validation failures are data, not errors.
func (s *Service) ValidateSplit(ctx context.Context, id string, req *SplitRequest) (*split.Validation, error) {
	receipt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	v := split.ValidateSplit(receipt.ToSplitReceipt(), split.SplitType(req.Strategy), req.ToSplitInput())
	return &v, nil
}

// FinalizeSplit validates the proposed split, runs the calculation, and
// persists the result onto the receipt record. When validation fails, the
// returned Validation carries the user-facing messages and the error is
// ErrInvalidSplit so handlers can distinguish it from faults.
func (s *Service) FinalizeSplit(ctx context.Context, id string, req *SplitRequest) (*split.Result, *split.Validation, error) {
	receipt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	engineReceipt := receipt.ToSplitReceipt()
	splitType := split.SplitType(req.Strategy)
	in := req.ToSplitInput()

	v := split.ValidateSplit(engineReceipt, splitType, in)
	if !v.Valid {
		return nil, &v, ErrInvalidSplit
	}

	result, err := split.CalculateSplit(engineReceipt, splitType, in)
	if err != nil {
		return nil, nil, err
	}

	if err := s.repo.UpdateSplitData(ctx, id, result); err != nil {
		return nil, nil, err
	}
	return result, &v, nil
}

// Summary builds the per-person breakdown from a finalized split, used by
// the summary screen and reused by the public share page.
func (s *Service) Summary(ctx context.Context, id string) (*SummaryResponse, error) {
	receipt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return buildSummary(receipt)
}

// SummaryByShareCode builds the same breakdown addressed by share code, so
// the share page never exposes receipt ids.
func (s *Service) SummaryByShareCode(ctx context.Context, code string) (*SummaryResponse, error) {
	receipt, err := s.repo.GetByShareCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, ErrReceiptNotFound
	}
	return buildSummary(receipt)
}

func buildSummary(receipt *Receipt) (*SummaryResponse, error) {
	data := receipt.SplitData
	if data == nil {
		return nil, ErrSplitNotFinalized
	}

	people := make([]PersonSummary, 0, len(data.People))
	for _, id := range data.People {
		people = append(people, PersonSummary{
			ID:    id,
			Share: data.FriendShares[id],
			Tax:   data.TaxDistribution[id],
			Tip:   data.TipDistribution[id],
			Total: data.Totals[id],
		})
	}

	return &SummaryResponse{
		ReceiptID: receipt.ID,
		Merchant:  receipt.Merchant,
		Currency:  receipt.Currency,
		Total:     receipt.Total,
		Strategy:  string(data.Strategy),
		People:    people,
	}, nil
}
