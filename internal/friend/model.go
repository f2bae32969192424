package friend

import "time"

// Friend represents a person in the user's friends list. Friend ids are the
// opaque participant keys fed into the split engine; the engine never
// interprets them.
type Friend struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
