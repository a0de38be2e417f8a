package project

import (
	"github.com/google/uuid"
	"github.com/taskhub/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeProject = "Project"

// Event type constants
const (
	EventTypeProjectCreated = "ProjectCreated"
	EventTypeProjectUpdated = "ProjectUpdated"
	EventTypeMemberJoined   = "MemberJoined"
	EventTypeMemberLeft     = "MemberLeft"
)

// ProjectCreatedEvent is published when a new project is created
type ProjectCreatedEvent struct {
	shared.BaseDomainEvent
	ProjectID uuid.UUID `json:"project_id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"owner_id"`
}

// NewProjectCreatedEvent creates a new ProjectCreatedEvent
func NewProjectCreatedEvent(p *Project) *ProjectCreatedEvent {
	return &ProjectCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProjectCreated, AggregateTypeProject, p.ID),
		ProjectID:       p.ID,
		Name:            p.Name,
		OwnerID:         p.OwnerID,
	}
}

// ProjectUpdatedEvent is published when a project changes
type ProjectUpdatedEvent struct {
	shared.BaseDomainEvent
	ProjectID uuid.UUID `json:"project_id"`
	OldStatus string    `json:"old_status,omitempty"`
	NewStatus string    `json:"new_status,omitempty"`
}

// NewProjectUpdatedEvent creates a new ProjectUpdatedEvent
func NewProjectUpdatedEvent(p *Project, oldStatus, newStatus string) *ProjectUpdatedEvent {
	return &ProjectUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProjectUpdated, AggregateTypeProject, p.ID),
		ProjectID:       p.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
