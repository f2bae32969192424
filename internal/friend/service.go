package friend

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrFriendNotFound = errors.New("friend not found")
)

// Service handles friend business logic
type Service struct {
	repo *Repository
}

// NewService creates a new friend service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create adds a new friend
func (s *Service) Create(ctx context.Context, req *CreateFriendRequest) (*Friend, error) {
	return s.repo.Create(ctx, uuid.NewString(), req)
}

// GetByID retrieves a friend by their ID
func (s *Service) GetByID(ctx context.Context, id string) (*Friend, error) {
	friend, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if friend == nil {
		return nil, ErrFriendNotFound
	}
	return friend, nil
}

// List retrieves all friends. The list feeds the participant picker, which
// always wants everyone, so there is no pagination here.
func (s *Service) List(ctx context.Context) ([]*Friend, error) {
	return s.repo.List(ctx)
}

// Update modifies an existing friend
func (s *Service) Update(ctx context.Context, id string, req *UpdateFriendRequest) (*Friend, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrFriendNotFound
	}

	return s.repo.Update(ctx, id, req)
}

// Delete removes a friend. Receipts that already reference the friend's id
// in their split data keep it; participant keys are opaque and stable.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
