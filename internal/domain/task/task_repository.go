package task

import (
	"context"

	"github.com/google/uuid"
)

// TaskRepository defines the interface for task persistence
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *Task) error

	// Update updates a task with a version check. A stale version
	// yields shared.ErrConcurrencyConflict.
	Update(ctx context.Context, task *Task) error

	// FindByID finds an active task by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)

	// FindAll returns active tasks restricted to the given project IDs
	// (the caller's visible set), newest first, with the total count.
	// An empty visible set yields no rows.
	FindAll(ctx context.Context, visibleProjectIDs []uuid.UUID, filter Filter) ([]*Task, int64, error)
}

// CommentRepository defines the interface for comment persistence
type CommentRepository interface {
	// Create appends a comment
	Create(ctx context.Context, comment *Comment) error

	// Update persists changes to a comment
	Update(ctx context.Context, comment *Comment) error

	// FindByID finds an active comment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Comment, error)

	// FindByTask returns active comments of a task in creation order
	FindByTask(ctx context.Context, taskID uuid.UUID) ([]*Comment, error)
}

// Filter contains filter options for querying tasks
type Filter struct {
	ProjectID  *uuid.UUID
	Status     *Status
	Priority   *Priority
	AssigneeID *uuid.UUID
	Keyword    string

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
