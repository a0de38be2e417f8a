// Package activity provides the application-level recorder for the
// append-only audit trail. Mutating services call the recorder after a
// successful write; a recorder failure fails the whole operation so the
// trail never silently misses an entry.
package activity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskhub/backend/internal/domain/activity"
	"github.com/taskhub/backend/internal/domain/shared"
)

// Recorder appends audit entries on behalf of the mutating services
type Recorder struct {
	repo   activity.Repository
	logger *zap.Logger
}

// NewRecorder creates a new Recorder
func NewRecorder(repo activity.Repository, logger *zap.Logger) *Recorder {
	return &Recorder{
		repo:   repo,
		logger: logger,
	}
}

// RecordInput describes one audit entry
type RecordInput struct {
	ActorID     uuid.UUID
	Kind        activity.Kind
	Description string
	TaskID      *uuid.UUID
	ProjectID   *uuid.UUID
	OldValue    string
	NewValue    string
}

// Record appends an audit entry. Storage errors propagate to the caller.
func (r *Recorder) Record(ctx context.Context, input RecordInput) error {
	entry, err := activity.NewEntry(input.ActorID, input.Kind, input.Description)
	if err != nil {
		return err
	}
	if input.TaskID != nil {
		entry.WithTask(*input.TaskID)
	}
	if input.ProjectID != nil {
		entry.WithProject(*input.ProjectID)
	}
	if input.OldValue != "" || input.NewValue != "" {
		entry.WithChange(input.OldValue, input.NewValue)
	}

	if err := r.repo.Append(ctx, entry); err != nil {
		r.logger.Error("Failed to append activity entry",
			zap.String("kind", string(input.Kind)),
			zap.String("actor_id", input.ActorID.String()),
			zap.Error(err))
		return shared.ErrStorageUnavailable
	}

	return nil
}

// TaskHistory returns the audit entries referencing a task, oldest first
func (r *Recorder) TaskHistory(ctx context.Context, taskID uuid.UUID) ([]*activity.Entry, error) {
	return r.repo.FindByTask(ctx, taskID)
}

// ProjectHistory returns the audit entries referencing a project, oldest first
func (r *Recorder) ProjectHistory(ctx context.Context, projectID uuid.UUID) ([]*activity.Entry, error) {
	return r.repo.FindByProject(ctx, projectID)
}
