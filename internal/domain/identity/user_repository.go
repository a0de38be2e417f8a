package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// Update updates an existing user with a version check. A stale
	// version yields shared.ErrConcurrencyConflict.
	Update(ctx context.Context, user *User) error

	// FindByID finds an active user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds an active user by email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks if an email is already registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindAll returns active users with pagination
	FindAll(ctx context.Context, filter UserFilter) ([]*User, int64, error)
}

// UserFilter contains filter options for querying users
type UserFilter struct {
	// Search keyword for email or display name
	Keyword string

	// Filter by held role
	Role *Role

	// Pagination (1-based)
	Page     int
	PageSize int
}

// NewUserFilter creates a new UserFilter with default values
func NewUserFilter() UserFilter {
	return UserFilter{
		Page:     1,
		PageSize: 20,
	}
}

// Offset returns the offset for pagination
func (f UserFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Limit caps the page size; validation of non-positive sizes happens
// before a filter is built, so only the upper bound is enforced here.
func (f UserFilter) Limit() int {
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}
