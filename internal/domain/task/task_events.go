package task

import (
	"github.com/google/uuid"
	"github.com/taskhub/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeTask = "Task"

// Event type constants
const (
	EventTypeTaskCreated       = "TaskCreated"
	EventTypeTaskStatusChanged = "TaskStatusChanged"
	EventTypeTaskAssigned      = "TaskAssigned"
)

// TaskCreatedEvent is published when a new task is created
type TaskCreatedEvent struct {
	shared.BaseDomainEvent
	TaskID    uuid.UUID `json:"task_id"`
	ProjectID uuid.UUID `json:"project_id"`
	Title     string    `json:"title"`
	CreatorID uuid.UUID `json:"creator_id"`
}

// NewTaskCreatedEvent creates a new TaskCreatedEvent
func NewTaskCreatedEvent(t *Task) *TaskCreatedEvent {
	return &TaskCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTaskCreated, AggregateTypeTask, t.ID),
		TaskID:          t.ID,
		ProjectID:       t.ProjectID,
		Title:           t.Title,
		CreatorID:       t.CreatorID,
	}
}

// TaskStatusChangedEvent is published on every status update, including
// updates that re-apply the current status
type TaskStatusChangedEvent struct {
	shared.BaseDomainEvent
	TaskID    uuid.UUID `json:"task_id"`
	OldStatus Status    `json:"old_status"`
	NewStatus Status    `json:"new_status"`
}

// NewTaskStatusChangedEvent creates a new TaskStatusChangedEvent
func NewTaskStatusChangedEvent(t *Task, oldStatus, newStatus Status) *TaskStatusChangedEvent {
	return &TaskStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTaskStatusChanged, AggregateTypeTask, t.ID),
		TaskID:          t.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// TaskAssignedEvent is published when a task is assigned to a user
type TaskAssignedEvent struct {
	shared.BaseDomainEvent
	TaskID     uuid.UUID `json:"task_id"`
	AssigneeID uuid.UUID `json:"assignee_id"`
}

// NewTaskAssignedEvent creates a new TaskAssignedEvent
func NewTaskAssignedEvent(t *Task, assigneeID uuid.UUID) *TaskAssignedEvent {
	return &TaskAssignedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTaskAssigned, AggregateTypeTask, t.ID),
		TaskID:          t.ID,
		AssigneeID:      assigneeID,
	}
}
