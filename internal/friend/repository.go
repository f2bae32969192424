package friend

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles friend data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new friend repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new friend into the database
func (r *Repository) Create(ctx context.Context, id string, req *CreateFriendRequest) (*Friend, error) {
	query := `
		INSERT INTO friends (id, name, phone, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, phone, email, created_at
	`

	friend := &Friend{}
	err := r.db.QueryRowContext(ctx, query, id, req.Name, req.Phone, req.Email).Scan(
		&friend.ID,
		&friend.Name,
		&friend.Phone,
		&friend.Email,
		&friend.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create friend: %w", err)
	}

	return friend, nil
}

// GetByID retrieves a friend by their ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Friend, error) {
	query := `
		SELECT id, name, phone, email, created_at
		FROM friends
		WHERE id = $1
	`

	friend := &Friend{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&friend.ID,
		&friend.Name,
		&friend.Phone,
		&friend.Email,
		&friend.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get friend: %w", err)
	}

	return friend, nil
}

// List retrieves all friends ordered by name
func (r *Repository) List(ctx context.Context) ([]*Friend, error) {
	query := `
		SELECT id, name, phone, email, created_at
		FROM friends
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	defer rows.Close()

	var friends []*Friend
	for rows.Next() {
		friend := &Friend{}
		if err := rows.Scan(
			&friend.ID,
			&friend.Name,
			&friend.Phone,
			&friend.Email,
			&friend.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		friends = append(friends, friend)
	}

	return friends, rows.Err()
}

// Update modifies an existing friend
func (r *Repository) Update(ctx context.Context, id string, req *UpdateFriendRequest) (*Friend, error) {
	query := `
		UPDATE friends
		SET name = COALESCE($2, name),
		    phone = COALESCE($3, phone),
		    email = COALESCE($4, email)
		WHERE id = $1
		RETURNING id, name, phone, email, created_at
	`

	friend := &Friend{}
	err := r.db.QueryRowContext(ctx, query, id, req.Name, req.Phone, req.Email).Scan(
		&friend.ID,
		&friend.Name,
		&friend.Phone,
		&friend.Email,
		&friend.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update friend: %w", err)
	}

	return friend, nil
}

// Delete removes a friend from the database
func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM friends WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete friend: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("friend not found")
	}

	return nil
}
