package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/backend/internal/domain/activity"
)

// ActivityModel is the persistence model for audit entries. The table
// is append-only: no updated_at, no deleted_at, no version column.
type ActivityModel struct {
	ID          uuid.UUID     `gorm:"type:uuid;primary_key"`
	ActorID     uuid.UUID     `gorm:"type:uuid;not null;index"`
	Kind        activity.Kind `gorm:"type:varchar(40);not null;index"`
	Description string        `gorm:"type:text"`
	TaskID      *uuid.UUID    `gorm:"type:uuid;index"`
	ProjectID   *uuid.UUID    `gorm:"type:uuid;index"`
	OldValue    string        `gorm:"type:text"`
	NewValue    string        `gorm:"type:text"`
	CreatedAt   time.Time     `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ActivityModel) TableName() string {
	return "activity_log"
}

// ToDomain converts the persistence model to a domain Entry.
func (m *ActivityModel) ToDomain() *activity.Entry {
	return &activity.Entry{
		ID:          m.ID,
		ActorID:     m.ActorID,
		Kind:        m.Kind,
		Description: m.Description,
		TaskID:      m.TaskID,
		ProjectID:   m.ProjectID,
		OldValue:    m.OldValue,
		NewValue:    m.NewValue,
		CreatedAt:   m.CreatedAt,
	}
}

// ActivityModelFromDomain creates a new persistence model from a domain Entry.
func ActivityModelFromDomain(e *activity.Entry) *ActivityModel {
	return &ActivityModel{
		ID:          e.ID,
		ActorID:     e.ActorID,
		Kind:        e.Kind,
		Description: e.Description,
		TaskID:      e.TaskID,
		ProjectID:   e.ProjectID,
		OldValue:    e.OldValue,
		NewValue:    e.NewValue,
		CreatedAt:   e.CreatedAt,
	}
}
