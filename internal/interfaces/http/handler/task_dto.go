package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apptask "github.com/taskhub/backend/internal/application/task"
	"github.com/taskhub/backend/internal/interfaces/http/dto"
)

// =====================
// Task Request DTOs
// =====================

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	ProjectID      uuid.UUID  `json:"project_id" binding:"required"`
	Title          string     `json:"title" binding:"required,min=1,max=200"`
	Description    string     `json:"description" binding:"max=5000"`
	Priority       string     `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	AssigneeID     *uuid.UUID `json:"assignee_id"`
	DueDate        *time.Time `json:"due_date"`
	EstimatedHours float64    `json:"estimated_hours" binding:"omitempty,min=0"`
	Tags           []string   `json:"tags" binding:"max=20,dive,min=1,max=50"`
}

// UpdateTaskRequest represents the request body for task updates.
// Omitted fields are left unchanged.
type UpdateTaskRequest struct {
	Title          *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description    *string    `json:"description" binding:"omitempty,max=5000"`
	Priority       *string    `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	DueDate        *time.Time `json:"due_date"`
	ClearDueDate   bool       `json:"clear_due_date"`
	EstimatedHours *float64   `json:"estimated_hours" binding:"omitempty,min=0"`
	ActualHours    *float64   `json:"actual_hours" binding:"omitempty,min=0"`
	Tags           []string   `json:"tags" binding:"omitempty,max=20,dive,min=1,max=50"`
}

// UpdateStatusRequest represents the request body for a status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=todo in_progress done cancelled on_hold"`
}

// AssignTaskRequest represents the request body for (un)assignment.
// A null assignee_id unassigns the task.
type AssignTaskRequest struct {
	AssigneeID *uuid.UUID `json:"assignee_id"`
}

// AddCommentRequest represents the request body for commenting
type AddCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

// ListTasksRequest represents query parameters for listing tasks
type ListTasksRequest struct {
	dto.ListRequest
	ProjectID  string `form:"project_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=todo in_progress done cancelled on_hold"`
	Priority   string `form:"priority" binding:"omitempty,oneof=low medium high critical"`
	AssigneeID string `form:"assignee_id" binding:"omitempty,uuid"`
}

// =====================
// Task Response DTOs
// =====================

// TaskResponse represents a task in responses
type TaskResponse struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Status         string          `json:"status"`
	Priority       string          `json:"priority"`
	ProjectID      uuid.UUID       `json:"project_id"`
	CreatorID      uuid.UUID       `json:"creator_id"`
	AssigneeID     *uuid.UUID      `json:"assignee_id,omitempty"`
	DueDate        *time.Time      `json:"due_date,omitempty"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	EstimatedHours decimal.Decimal `json:"estimated_hours"`
	ActualHours    decimal.Decimal `json:"actual_hours"`
	Tags           []string        `json:"tags"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Version        int             `json:"version"`
}

func newTaskResponse(info apptask.TaskInfo) TaskResponse {
	return TaskResponse{
		ID:             info.ID,
		Title:          info.Title,
		Description:    info.Description,
		Status:         info.Status,
		Priority:       info.Priority,
		ProjectID:      info.ProjectID,
		CreatorID:      info.CreatorID,
		AssigneeID:     info.AssigneeID,
		DueDate:        info.DueDate,
		CompletedAt:    info.CompletedAt,
		EstimatedHours: info.EstimatedHours,
		ActualHours:    info.ActualHours,
		Tags:           info.Tags,
		CreatedAt:      info.CreatedAt,
		UpdatedAt:      info.UpdatedAt,
		Version:        info.Version,
	}
}

// CommentResponse represents a task comment in responses
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	TaskID    uuid.UUID `json:"task_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func newCommentResponse(info apptask.CommentInfo) CommentResponse {
	return CommentResponse{
		ID:        info.ID,
		TaskID:    info.TaskID,
		AuthorID:  info.AuthorID,
		Content:   info.Content,
		CreatedAt: info.CreatedAt,
	}
}
