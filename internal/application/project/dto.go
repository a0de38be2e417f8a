package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/backend/internal/domain/project"
)

// CreateProjectInput contains the input for project creation
type CreateProjectInput struct {
	ActorID     uuid.UUID
	Name        string
	Description string
	Color       string
	StartDate   *time.Time
	EndDate     *time.Time
}

// GetProjectInput contains the input for fetching a project
type GetProjectInput struct {
	ActorID   uuid.UUID
	ProjectID uuid.UUID
}

// ListProjectsInput contains the input for listing visible projects
type ListProjectsInput struct {
	ActorID  uuid.UUID
	Status   string
	Keyword  string
	Page     int
	PageSize int
}

// UpdateProjectInput contains the input for project updates. Nil fields
// are left unchanged.
type UpdateProjectInput struct {
	ActorID     uuid.UUID
	ProjectID   uuid.UUID
	Name        *string
	Description *string
	Color       *string
	Status      *string
	StartDate   *time.Time
	EndDate     *time.Time
	SetDates    bool
}

// ArchiveProjectInput contains the input for archiving a project
type ArchiveProjectInput struct {
	ActorID   uuid.UUID
	ProjectID uuid.UUID
}

// AddMemberInput contains the input for adding a project member
type AddMemberInput struct {
	ActorID   uuid.UUID
	ProjectID uuid.UUID
	UserID    uuid.UUID
	Role      string
}

// RemoveMemberInput contains the input for removing a project member
type RemoveMemberInput struct {
	ActorID   uuid.UUID
	ProjectID uuid.UUID
	UserID    uuid.UUID
}

// ListMembersInput contains the input for listing project members
type ListMembersInput struct {
	ActorID   uuid.UUID
	ProjectID uuid.UUID
}

// ProjectInfo is the read model for a project
type ProjectInfo struct {
	ID          uuid.UUID
	Name        string
	Description string
	Status      string
	OwnerID     uuid.UUID
	Color       string
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Version     int
}

// NewProjectInfo builds a ProjectInfo from a domain project
func NewProjectInfo(p *project.Project) ProjectInfo {
	return ProjectInfo{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		OwnerID:     p.OwnerID,
		Color:       p.Color,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Version:     p.Version,
	}
}

// MemberInfo is the read model for a project membership
type MemberInfo struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	UserID    uuid.UUID
	Role      string
	JoinedAt  time.Time
}

// NewMemberInfo builds a MemberInfo from a domain member
func NewMemberInfo(m *project.Member) MemberInfo {
	return MemberInfo{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		UserID:    m.UserID,
		Role:      string(m.Role),
		JoinedAt:  m.JoinedAt,
	}
}
