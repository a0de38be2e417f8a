package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/taskhub/backend/internal/domain/task"
)

// TaskModel is the persistence model for the Task aggregate.
type TaskModel struct {
	AggregateModel
	Title          string        `gorm:"type:varchar(200);not null"`
	Description    string        `gorm:"type:text"`
	Status         task.Status   `gorm:"type:varchar(20);not null;default:'todo';index"`
	Priority       task.Priority `gorm:"type:varchar(20);not null;default:'medium';index"`
	ProjectID      uuid.UUID     `gorm:"type:uuid;not null;index"`
	CreatorID      uuid.UUID     `gorm:"type:uuid;not null;index"`
	AssigneeID     *uuid.UUID    `gorm:"type:uuid;index"`
	DueDate        *time.Time
	CompletedAt    *time.Time
	EstimatedHours decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`
	ActualHours    decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`
	Tags           pq.StringArray  `gorm:"type:text[]"`
}

// TableName returns the table name for GORM
func (TaskModel) TableName() string {
	return "tasks"
}

// ToDomain converts the persistence model to a domain Task entity.
func (m *TaskModel) ToDomain() *task.Task {
	return &task.Task{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Title:             m.Title,
		Description:       m.Description,
		Status:            m.Status,
		Priority:          m.Priority,
		ProjectID:         m.ProjectID,
		CreatorID:         m.CreatorID,
		AssigneeID:        m.AssigneeID,
		DueDate:           m.DueDate,
		CompletedAt:       m.CompletedAt,
		EstimatedHours:    m.EstimatedHours,
		ActualHours:       m.ActualHours,
		Tags:              []string(m.Tags),
	}
}

// FromDomain populates the persistence model from a domain Task entity.
func (m *TaskModel) FromDomain(t *task.Task) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.Title = t.Title
	m.Description = t.Description
	m.Status = t.Status
	m.Priority = t.Priority
	m.ProjectID = t.ProjectID
	m.CreatorID = t.CreatorID
	m.AssigneeID = t.AssigneeID
	m.DueDate = t.DueDate
	m.CompletedAt = t.CompletedAt
	m.EstimatedHours = t.EstimatedHours
	m.ActualHours = t.ActualHours
	m.Tags = pq.StringArray(t.Tags)
}

// TaskModelFromDomain creates a new persistence model from a domain Task entity.
func TaskModelFromDomain(t *task.Task) *TaskModel {
	m := &TaskModel{}
	m.FromDomain(t)
	return m
}

// CommentModel is the persistence model for task comments.
type CommentModel struct {
	BaseModel
	TaskID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null;index"`
	Content  string    `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (CommentModel) TableName() string {
	return "task_comments"
}

// ToDomain converts the persistence model to a domain Comment entity.
func (m *CommentModel) ToDomain() *task.Comment {
	return &task.Comment{
		BaseEntity: m.BaseModel.ToDomain(),
		TaskID:     m.TaskID,
		AuthorID:   m.AuthorID,
		Content:    m.Content,
	}
}

// FromDomain populates the persistence model from a domain Comment entity.
func (m *CommentModel) FromDomain(c *task.Comment) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.TaskID = c.TaskID
	m.AuthorID = c.AuthorID
	m.Content = c.Content
}

// CommentModelFromDomain creates a new persistence model from a domain Comment entity.
func CommentModelFromDomain(c *task.Comment) *CommentModel {
	m := &CommentModel{}
	m.FromDomain(c)
	return m
}
