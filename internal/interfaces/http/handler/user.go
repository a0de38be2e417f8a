package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/taskhub/backend/internal/application/identity"
	"github.com/taskhub/backend/internal/interfaces/http/dto"
)

// UserHandler handles user profile and administration requests
type UserHandler struct {
	BaseHandler
	userService *identity.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *identity.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// UpdateProfileRequest represents the request body for profile updates
type UpdateProfileRequest struct {
	DisplayName       *string `json:"display_name" binding:"omitempty,min=1,max=100"`
	PreferredLanguage *string `json:"preferred_language" binding:"omitempty,max=35"`
}

// GrantRoleRequest represents the request body for granting a role
type GrantRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin manager member"`
}

// ListUsersRequest represents query parameters for listing users
type ListUsersRequest struct {
	dto.ListRequest
	Role string `form:"role" binding:"omitempty,oneof=admin manager member"`
}

// Me returns the authenticated user's profile
func (h *UserHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.userService.GetUser(c.Request.Context(), identity.GetUserInput{
		ActorID:      userID,
		ActorIsAdmin: isAdmin(c),
		TargetID:     userID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newUserResponse(*info))
}

// GetByID returns a user's profile. Non-admins may only read their own.
func (h *UserHandler) GetByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	targetID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	info, err := h.userService.GetUser(c.Request.Context(), identity.GetUserInput{
		ActorID:      userID,
		ActorIsAdmin: isAdmin(c),
		TargetID:     targetID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newUserResponse(*info))
}

// UpdateProfile updates the authenticated user's profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.userService.UpdateProfile(c.Request.Context(), identity.UpdateProfileInput{
		UserID:            userID,
		DisplayName:       req.DisplayName,
		PreferredLanguage: req.PreferredLanguage,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newUserResponse(*info))
}

// List returns users matching the filter. Admin only.
func (h *UserHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	req := ListUsersRequest{ListRequest: dto.DefaultListRequest()}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	users, total, err := h.userService.ListUsers(c.Request.Context(), identity.ListUsersInput{
		ActorID:      userID,
		ActorIsAdmin: isAdmin(c),
		Keyword:      req.Search,
		Role:         req.Role,
		Page:         req.Page,
		PageSize:     req.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = newUserResponse(u)
	}
	h.SuccessWithMeta(c, responses, total, req.Page, req.PageSize)
}

// GrantRole grants a role to a user. Admin only.
func (h *UserHandler) GrantRole(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	targetID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req GrantRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.userService.GrantRole(c.Request.Context(), identity.GrantRoleInput{
		ActorID:      userID,
		ActorIsAdmin: isAdmin(c),
		TargetID:     targetID,
		Role:         req.Role,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newUserResponse(*info))
}

// Deactivate soft-deletes a user account. Admin only.
func (h *UserHandler) Deactivate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	targetID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.DeactivateUser(c.Request.Context(), identity.DeactivateUserInput{
		ActorID:      userID,
		ActorIsAdmin: isAdmin(c),
		TargetID:     targetID,
	}); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
