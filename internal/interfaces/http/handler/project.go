package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/taskhub/backend/internal/application/project"
	"github.com/taskhub/backend/internal/interfaces/http/dto"
)

// ProjectHandler handles project and membership HTTP requests
type ProjectHandler struct {
	BaseHandler
	projectService *project.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *project.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// Create creates a new project owned by the caller
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.projectService.CreateProject(c.Request.Context(), project.CreateProjectInput{
		ActorID:     userID,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newProjectResponse(*info))
}

// List returns projects visible to the caller
func (h *ProjectHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	req := ListProjectsRequest{ListRequest: dto.DefaultListRequest()}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	projects, total, err := h.projectService.ListProjects(c.Request.Context(), project.ListProjectsInput{
		ActorID:  userID,
		Status:   req.Status,
		Keyword:  req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		responses[i] = newProjectResponse(p)
	}
	h.SuccessWithMeta(c, responses, total, req.Page, req.PageSize)
}

// GetByID returns a single visible project
func (h *ProjectHandler) GetByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	info, err := h.projectService.GetProject(c.Request.Context(), project.GetProjectInput{
		ActorID:   userID,
		ProjectID: projectID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newProjectResponse(*info))
}

// Update applies partial updates to a project
func (h *ProjectHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	input := project.UpdateProjectInput{
		ActorID:     userID,
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Status:      req.Status,
	}
	if req.ClearDates {
		input.SetDates = true
	} else if req.StartDate != nil || req.EndDate != nil {
		input.SetDates = true
		input.StartDate = req.StartDate
		input.EndDate = req.EndDate
	}

	info, err := h.projectService.UpdateProject(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newProjectResponse(*info))
}

// Archive soft-deletes a project. Owner only.
func (h *ProjectHandler) Archive(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	if err := h.projectService.ArchiveProject(c.Request.Context(), project.ArchiveProjectInput{
		ActorID:   userID,
		ProjectID: projectID,
	}); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListMembers returns the active members of a project
func (h *ProjectHandler) ListMembers(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	members, err := h.projectService.ListMembers(c.Request.Context(), project.ListMembersInput{
		ActorID:   userID,
		ProjectID: projectID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]MemberResponse, len(members))
	for i, m := range members {
		responses[i] = newMemberResponse(m)
	}
	h.Success(c, responses)
}

// AddMember adds a user to a project. Owner or manager only.
func (h *ProjectHandler) AddMember(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.projectService.AddMember(c.Request.Context(), project.AddMemberInput{
		ActorID:   userID,
		ProjectID: projectID,
		UserID:    req.UserID,
		Role:      req.Role,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newMemberResponse(*info))
}

// RemoveMember removes a user from a project. Owner or manager only.
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	memberID, ok := parseIDParam(c, "user_id")
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.projectService.RemoveMember(c.Request.Context(), project.RemoveMemberInput{
		ActorID:   userID,
		ProjectID: projectID,
		UserID:    memberID,
	}); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Activity returns a project's audit trail
func (h *ProjectHandler) Activity(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	entries, err := h.projectService.ProjectActivity(c.Request.Context(), project.GetProjectInput{
		ActorID:   userID,
		ProjectID: projectID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newActivityResponses(entries))
}
