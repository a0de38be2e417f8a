package project

import (
	"context"

	"github.com/google/uuid"
)

// ProjectRepository defines the interface for project persistence
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *Project) error

	// Update updates a project with a version check. A stale version
	// yields shared.ErrConcurrencyConflict.
	Update(ctx context.Context, project *Project) error

	// FindByID finds an active project by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)

	// FindVisibleTo returns active projects the user owns or is an
	// active member of, newest first, with the total count
	FindVisibleTo(ctx context.Context, userID uuid.UUID, filter Filter) ([]*Project, int64, error)
}

// MemberRepository defines the interface for membership persistence
type MemberRepository interface {
	// Create appends a membership row
	Create(ctx context.Context, member *Member) error

	// Update persists changes to a membership row
	Update(ctx context.Context, member *Member) error

	// FindActive returns the active membership for a (project, user)
	// pair, or shared.ErrNotFound
	FindActive(ctx context.Context, projectID, userID uuid.UUID) (*Member, error)

	// FindByProject returns all active memberships of a project
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*Member, error)

	// FindByUser returns all active memberships held by a user
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*Member, error)
}

// Filter contains filter options for querying projects
type Filter struct {
	Status  *Status
	Keyword string

	// Pagination (1-based)
	Page     int
	PageSize int
}

// NewFilter creates a Filter with default values
func NewFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
	}
}

// Offset returns the offset for pagination
func (f Filter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Limit caps the page size; validation of non-positive sizes happens
// before a filter is built, so only the upper bound is enforced here.
func (f Filter) Limit() int {
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}
