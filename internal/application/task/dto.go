package task

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/taskhub/backend/internal/domain/task"
)

// CreateTaskInput contains the input for task creation
type CreateTaskInput struct {
	ActorID        uuid.UUID
	ProjectID      uuid.UUID
	Title          string
	Description    string
	Priority       string
	AssigneeID     *uuid.UUID
	DueDate        *time.Time
	EstimatedHours decimal.Decimal
	Tags           []string
}

// GetTaskInput contains the input for fetching a task
type GetTaskInput struct {
	ActorID uuid.UUID
	TaskID  uuid.UUID
}

// ListTasksInput contains the input for listing visible tasks
type ListTasksInput struct {
	ActorID    uuid.UUID
	ProjectID  *uuid.UUID
	Status     string
	Priority   string
	AssigneeID *uuid.UUID
	Keyword    string
	Page       int
	PageSize   int
}

// UpdateTaskInput contains the input for task updates. Nil fields are
// left unchanged.
type UpdateTaskInput struct {
	ActorID        uuid.UUID
	TaskID         uuid.UUID
	Title          *string
	Description    *string
	Priority       *string
	DueDate        *time.Time
	SetDueDate     bool
	EstimatedHours *decimal.Decimal
	ActualHours    *decimal.Decimal
	Tags           []string
	SetTags        bool
}

// UpdateStatusInput contains the input for a status change
type UpdateStatusInput struct {
	ActorID uuid.UUID
	TaskID  uuid.UUID
	Status  string
}

// AssignTaskInput contains the input for (un)assignment. A nil
// AssigneeID unassigns the task.
type AssignTaskInput struct {
	ActorID    uuid.UUID
	TaskID     uuid.UUID
	AssigneeID *uuid.UUID
}

// ArchiveTaskInput contains the input for archiving a task
type ArchiveTaskInput struct {
	ActorID uuid.UUID
	TaskID  uuid.UUID
}

// AddCommentInput contains the input for commenting on a task
type AddCommentInput struct {
	ActorID uuid.UUID
	TaskID  uuid.UUID
	Content string
}

// TaskInfo is the read model for a task
type TaskInfo struct {
	ID             uuid.UUID
	Title          string
	Description    string
	Status         string
	Priority       string
	ProjectID      uuid.UUID
	CreatorID      uuid.UUID
	AssigneeID     *uuid.UUID
	DueDate        *time.Time
	CompletedAt    *time.Time
	EstimatedHours decimal.Decimal
	ActualHours    decimal.Decimal
	Tags           []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int
}

// NewTaskInfo builds a TaskInfo from a domain task
func NewTaskInfo(t *task.Task) TaskInfo {
	return TaskInfo{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		ProjectID:      t.ProjectID,
		CreatorID:      t.CreatorID,
		AssigneeID:     t.AssigneeID,
		DueDate:        t.DueDate,
		CompletedAt:    t.CompletedAt,
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		Tags:           t.Tags,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
		Version:        t.Version,
	}
}

// CommentInfo is the read model for a comment
type CommentInfo struct {
	ID        uuid.UUID
	TaskID    uuid.UUID
	AuthorID  uuid.UUID
	Content   string
	CreatedAt time.Time
}

// NewCommentInfo builds a CommentInfo from a domain comment
func NewCommentInfo(c *task.Comment) CommentInfo {
	return CommentInfo{
		ID:        c.ID,
		TaskID:    c.TaskID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
