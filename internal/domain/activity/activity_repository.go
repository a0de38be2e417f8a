package activity

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the append-only persistence interface for audit
// entries. There is deliberately no update or delete.
type Repository interface {
	// Append stores a new entry
	Append(ctx context.Context, entry *Entry) error

	// FindByTask returns entries referencing a task in creation order
	FindByTask(ctx context.Context, taskID uuid.UUID) ([]*Entry, error)

	// FindByProject returns entries referencing a project in creation order
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*Entry, error)
}
