package project

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskhub/backend/internal/domain/shared"
)

// Status represents the lifecycle status of a project
type Status string

const (
	StatusPlanning  Status = "planning"
	StatusActive    Status = "active"
	StatusOnHold    Status = "on_hold"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus converts a string to a project Status
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPlanning:
		return StatusPlanning, nil
	case StatusActive:
		return StatusActive, nil
	case StatusOnHold:
		return StatusOnHold, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusCancelled:
		return StatusCancelled, nil
	default:
		return "", shared.NewDomainError("INVALID_STATUS", "Unknown project status: "+s)
	}
}

// Project is the aggregate root for project operations. The owner is set
// at creation and never changes; ownership grants full rights regardless
// of membership rows.
type Project struct {
	shared.BaseAggregateRoot
	Name        string
	Description string
	Status      Status
	OwnerID     uuid.UUID
	Color       string
	StartDate   *time.Time
	EndDate     *time.Time
}

// NewProject creates a new project owned by the given user
func NewProject(ownerID uuid.UUID, name, description, color string, startDate, endDate *time.Time) (*Project, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, shared.NewDomainError("INVALID_DATES", "End date cannot be before start date")
	}

	project := &Project{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Description:       strings.TrimSpace(description),
		Status:            StatusPlanning,
		OwnerID:           ownerID,
		Color:             strings.TrimSpace(color),
		StartDate:         startDate,
		EndDate:           endDate,
	}

	project.AddDomainEvent(NewProjectCreatedEvent(project))

	return project, nil
}

// SetName renames the project
func (p *Project) SetName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.Touch()

	return nil
}

// SetDescription updates the project description
func (p *Project) SetDescription(description string) {
	p.Description = strings.TrimSpace(description)
	p.Touch()
}

// SetColor updates the display color
func (p *Project) SetColor(color string) {
	p.Color = strings.TrimSpace(color)
	p.Touch()
}

// SetDates updates the planned start and end dates
func (p *Project) SetDates(startDate, endDate *time.Time) error {
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return shared.NewDomainError("INVALID_DATES", "End date cannot be before start date")
	}

	p.StartDate = startDate
	p.EndDate = endDate
	p.Touch()

	return nil
}

// ChangeStatus moves the project to a new lifecycle status. All
// transitions between statuses are allowed.
func (p *Project) ChangeStatus(status Status) error {
	if _, err := ParseStatus(string(status)); err != nil {
		return err
	}

	old := p.Status
	p.Status = status
	p.Touch()

	p.AddDomainEvent(NewProjectUpdatedEvent(p, string(old), string(status)))

	return nil
}

// IsOwnedBy reports whether the given user owns the project
func (p *Project) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && p.OwnerID == userID
}

// Archive soft-deletes the project
func (p *Project) Archive() error {
	if p.IsDeleted() {
		return shared.NewDomainError("ALREADY_ARCHIVED", "Project is already archived")
	}

	p.SoftDelete()
	p.IncrementVersion()

	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Project name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Project name cannot exceed 200 characters")
	}
	return nil
}
