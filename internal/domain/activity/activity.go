package activity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskhub/backend/internal/domain/shared"
)

// Kind enumerates the auditable state transitions
type Kind string

const (
	KindTaskCreated       Kind = "task_created"
	KindTaskUpdated       Kind = "task_updated"
	KindTaskStatusChanged Kind = "task_status_changed"
	KindTaskAssigned      Kind = "task_assigned"
	KindCommentAdded      Kind = "comment_added"
	KindProjectCreated    Kind = "project_created"
	KindProjectUpdated    Kind = "project_updated"
	KindUserJoinedProject Kind = "user_joined_project"
	KindUserLeftProject   Kind = "user_left_project"
)

// ParseKind converts a string to a Kind
func ParseKind(s string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch kind {
	case KindTaskCreated, KindTaskUpdated, KindTaskStatusChanged, KindTaskAssigned,
		KindCommentAdded, KindProjectCreated, KindProjectUpdated,
		KindUserJoinedProject, KindUserLeftProject:
		return kind, nil
	default:
		return "", shared.NewDomainError("INVALID_ACTIVITY_KIND", "Unknown activity kind: "+s)
	}
}

// Entry is a single append-only audit record. Entries carry no version
// or soft-delete fields: they are never updated or deleted after
// creation.
type Entry struct {
	ID          uuid.UUID
	ActorID     uuid.UUID
	Kind        Kind
	Description string
	TaskID      *uuid.UUID
	ProjectID   *uuid.UUID
	OldValue    string
	NewValue    string
	CreatedAt   time.Time
}

// NewEntry builds an audit entry for a mutation
func NewEntry(actorID uuid.UUID, kind Kind, description string) (*Entry, error) {
	if actorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Actor ID cannot be empty")
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}

	return &Entry{
		ID:          uuid.New(),
		ActorID:     actorID,
		Kind:        kind,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now(),
	}, nil
}

// WithTask links the entry to a task
func (e *Entry) WithTask(taskID uuid.UUID) *Entry {
	e.TaskID = &taskID
	return e
}

// WithProject links the entry to a project
func (e *Entry) WithProject(projectID uuid.UUID) *Entry {
	e.ProjectID = &projectID
	return e
}

// WithChange records old and new value snapshots
func (e *Entry) WithChange(oldValue, newValue string) *Entry {
	e.OldValue = oldValue
	e.NewValue = newValue
	return e
}
