package friend

// CreateFriendRequest represents the request body for adding a friend
type CreateFriendRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=100"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// UpdateFriendRequest represents the request body for updating a friend
type UpdateFriendRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// FriendResponse represents the response for a single friend
type FriendResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// ToResponse converts a Friend model to a FriendResponse DTO
func (f *Friend) ToResponse() *FriendResponse {
	return &FriendResponse{
		ID:        f.ID,
		Name:      f.Name,
		Phone:     f.Phone,
		Email:     f.Email,
		CreatedAt: f.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
