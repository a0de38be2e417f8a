package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/backend/internal/application/project"
	"github.com/taskhub/backend/internal/interfaces/http/dto"
)

// =====================
// Project Request DTOs
// =====================

// CreateProjectRequest represents the request body for creating a project
type CreateProjectRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	Color       string     `json:"color" binding:"omitempty,hexcolor"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// UpdateProjectRequest represents the request body for project updates.
// Omitted fields are left unchanged; clear_dates removes both dates.
type UpdateProjectRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Color       *string    `json:"color" binding:"omitempty,hexcolor"`
	Status      *string    `json:"status" binding:"omitempty,oneof=planning active on_hold completed cancelled"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	ClearDates  bool       `json:"clear_dates"`
}

// ListProjectsRequest represents query parameters for listing projects
type ListProjectsRequest struct {
	dto.ListRequest
	Status string `form:"status" binding:"omitempty,oneof=planning active on_hold completed cancelled"`
}

// AddMemberRequest represents the request body for adding a member
type AddMemberRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
	Role   string    `json:"role" binding:"omitempty,oneof=member manager"`
}

// =====================
// Project Response DTOs
// =====================

// ProjectResponse represents a project in responses
type ProjectResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Color       string     `json:"color,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Version     int        `json:"version"`
}

func newProjectResponse(info project.ProjectInfo) ProjectResponse {
	return ProjectResponse{
		ID:          info.ID,
		Name:        info.Name,
		Description: info.Description,
		Status:      info.Status,
		OwnerID:     info.OwnerID,
		Color:       info.Color,
		StartDate:   info.StartDate,
		EndDate:     info.EndDate,
		CreatedAt:   info.CreatedAt,
		UpdatedAt:   info.UpdatedAt,
		Version:     info.Version,
	}
}

// MemberResponse represents a project membership in responses
type MemberResponse struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joined_at"`
}

func newMemberResponse(info project.MemberInfo) MemberResponse {
	return MemberResponse{
		ID:        info.ID,
		ProjectID: info.ProjectID,
		UserID:    info.UserID,
		Role:      info.Role,
		JoinedAt:  info.JoinedAt,
	}
}
