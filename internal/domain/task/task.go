package task

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/taskhub/backend/internal/domain/shared"
)

// Status represents the workflow status of a task
type Status string

const (
	StatusToDo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusCancelled  Status = "cancelled"
	StatusOnHold     Status = "on_hold"
)

// ParseStatus converts a string to a task Status
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusToDo:
		return StatusToDo, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusDone:
		return StatusDone, nil
	case StatusCancelled:
		return StatusCancelled, nil
	case StatusOnHold:
		return StatusOnHold, nil
	default:
		return "", shared.NewDomainError("INVALID_STATUS", "Unknown task status: "+s)
	}
}

// Priority represents the urgency of a task
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// ParsePriority converts a string to a Priority
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	case PriorityCritical:
		return PriorityCritical, nil
	default:
		return "", shared.NewDomainError("INVALID_PRIORITY", "Unknown task priority: "+s)
	}
}

// Task is the aggregate root for work items. Invariant: CompletedAt is
// set iff Status == done; any transition away from done clears it. All
// status transitions are allowed, including reopening done or cancelled
// tasks.
type Task struct {
	shared.BaseAggregateRoot
	Title          string
	Description    string
	Status         Status
	Priority       Priority
	ProjectID      uuid.UUID
	CreatorID      uuid.UUID
	AssigneeID     *uuid.UUID
	DueDate        *time.Time
	CompletedAt    *time.Time
	EstimatedHours decimal.Decimal
	ActualHours    decimal.Decimal
	Tags           []string
}

// NewTaskInput carries the optional fields for task creation
type NewTaskInput struct {
	Description    string
	Priority       Priority
	AssigneeID     *uuid.UUID
	DueDate        *time.Time
	EstimatedHours decimal.Decimal
	Tags           []string
}

// NewTask creates a new task in the todo status
func NewTask(projectID, creatorID uuid.UUID, title string, input NewTaskInput) (*Task, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT", "Project ID cannot be empty")
	}
	if creatorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CREATOR", "Creator ID cannot be empty")
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if _, err := ParsePriority(string(priority)); err != nil {
		return nil, err
	}
	if input.EstimatedHours.IsNegative() {
		return nil, shared.NewDomainError("INVALID_EFFORT", "Estimated hours cannot be negative")
	}

	task := &Task{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             strings.TrimSpace(title),
		Description:       strings.TrimSpace(input.Description),
		Status:            StatusToDo,
		Priority:          priority,
		ProjectID:         projectID,
		CreatorID:         creatorID,
		AssigneeID:        input.AssigneeID,
		DueDate:           input.DueDate,
		EstimatedHours:    input.EstimatedHours,
		Tags:              normalizeTags(input.Tags),
	}

	task.AddDomainEvent(NewTaskCreatedEvent(task))

	return task, nil
}

// SetTitle updates the task title
func (t *Task) SetTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	t.Title = strings.TrimSpace(title)
	t.Touch()

	return nil
}

// SetDescription updates the task description
func (t *Task) SetDescription(description string) {
	t.Description = strings.TrimSpace(description)
	t.Touch()
}

// SetPriority updates the task priority
func (t *Task) SetPriority(priority Priority) error {
	if _, err := ParsePriority(string(priority)); err != nil {
		return err
	}

	t.Priority = priority
	t.Touch()

	return nil
}

// SetDueDate updates the due date
func (t *Task) SetDueDate(dueDate *time.Time) {
	t.DueDate = dueDate
	t.Touch()
}

// SetEstimatedHours updates the estimated effort
func (t *Task) SetEstimatedHours(hours decimal.Decimal) error {
	if hours.IsNegative() {
		return shared.NewDomainError("INVALID_EFFORT", "Estimated hours cannot be negative")
	}

	t.EstimatedHours = hours
	t.Touch()

	return nil
}

// SetActualHours updates the recorded effort
func (t *Task) SetActualHours(hours decimal.Decimal) error {
	if hours.IsNegative() {
		return shared.NewDomainError("INVALID_EFFORT", "Actual hours cannot be negative")
	}

	t.ActualHours = hours
	t.Touch()

	return nil
}

// SetTags replaces the tag list
func (t *Task) SetTags(tags []string) {
	t.Tags = normalizeTags(tags)
	t.Touch()
}

// ChangeStatus moves the task to a new status and maintains the
// CompletedAt invariant. Returns the previous status.
func (t *Task) ChangeStatus(status Status) (Status, error) {
	if _, err := ParseStatus(string(status)); err != nil {
		return "", err
	}

	old := t.Status
	t.Status = status

	if status == StatusDone {
		if t.CompletedAt == nil {
			now := time.Now()
			t.CompletedAt = &now
		}
	} else {
		t.CompletedAt = nil
	}

	t.Touch()
	t.AddDomainEvent(NewTaskStatusChangedEvent(t, old, status))

	return old, nil
}

// Assign sets the assignee; nil unassigns
func (t *Task) Assign(assigneeID *uuid.UUID) {
	t.AssigneeID = assigneeID
	t.Touch()

	if assigneeID != nil {
		t.AddDomainEvent(NewTaskAssignedEvent(t, *assigneeID))
	}
}

// IsAssignedTo reports whether the task is currently assigned to the user
func (t *Task) IsAssignedTo(userID uuid.UUID) bool {
	return t.AssigneeID != nil && userID != uuid.Nil && *t.AssigneeID == userID
}

// Archive soft-deletes the task
func (t *Task) Archive() error {
	if t.IsDeleted() {
		return shared.NewDomainError("ALREADY_ARCHIVED", "Task is already archived")
	}

	t.SoftDelete()
	t.IncrementVersion()

	return nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Task title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Task title cannot exceed 200 characters")
	}
	return nil
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	return result
}
