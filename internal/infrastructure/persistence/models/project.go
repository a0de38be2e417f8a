package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/backend/internal/domain/project"
)

// ProjectModel is the persistence model for the Project aggregate.
type ProjectModel struct {
	AggregateModel
	Name        string         `gorm:"type:varchar(200);not null"`
	Description string         `gorm:"type:text"`
	Status      project.Status `gorm:"type:varchar(20);not null;default:'planning';index"`
	OwnerID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Color       string         `gorm:"type:varchar(20)"`
	StartDate   *time.Time
	EndDate     *time.Time
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the persistence model to a domain Project entity.
func (m *ProjectModel) ToDomain() *project.Project {
	return &project.Project{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Description:       m.Description,
		Status:            m.Status,
		OwnerID:           m.OwnerID,
		Color:             m.Color,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
	}
}

// FromDomain populates the persistence model from a domain Project entity.
func (m *ProjectModel) FromDomain(p *project.Project) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Name = p.Name
	m.Description = p.Description
	m.Status = p.Status
	m.OwnerID = p.OwnerID
	m.Color = p.Color
	m.StartDate = p.StartDate
	m.EndDate = p.EndDate
}

// ProjectModelFromDomain creates a new persistence model from a domain Project entity.
func ProjectModelFromDomain(p *project.Project) *ProjectModel {
	m := &ProjectModel{}
	m.FromDomain(p)
	return m
}

// MemberModel is the persistence model for project memberships.
// At most one active row may exist per (project, user) pair; removed
// rows keep their DeletedAt for audit.
type MemberModel struct {
	BaseModel
	ProjectID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_members_project_user,where:deleted_at IS NULL"`
	UserID    uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_members_project_user,where:deleted_at IS NULL"`
	Role      project.MemberRole `gorm:"type:varchar(20);not null;default:'member'"`
	JoinedAt  time.Time          `gorm:"not null"`
}

// TableName returns the table name for GORM
func (MemberModel) TableName() string {
	return "project_members"
}

// ToDomain converts the persistence model to a domain Member entity.
func (m *MemberModel) ToDomain() *project.Member {
	return &project.Member{
		BaseEntity: m.BaseModel.ToDomain(),
		ProjectID:  m.ProjectID,
		UserID:     m.UserID,
		Role:       m.Role,
		JoinedAt:   m.JoinedAt,
	}
}

// FromDomain populates the persistence model from a domain Member entity.
func (m *MemberModel) FromDomain(member *project.Member) {
	m.FromDomainBaseEntity(member.BaseEntity)
	m.ProjectID = member.ProjectID
	m.UserID = member.UserID
	m.Role = member.Role
	m.JoinedAt = member.JoinedAt
}

// MemberModelFromDomain creates a new persistence model from a domain Member entity.
func MemberModelFromDomain(member *project.Member) *MemberModel {
	m := &MemberModel{}
	m.FromDomain(member)
	return m
}
