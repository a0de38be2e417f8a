package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/backend/internal/domain/identity"
)

// RegisterInput contains the input for user registration
type RegisterInput struct {
	Email             string
	Password          string
	DisplayName       string
	PreferredLanguage string
}

// LoginInput contains the input for user login
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  UserInfo
}

// UserInfo contains basic user information exposed to callers
type UserInfo struct {
	ID                uuid.UUID
	Email             string
	DisplayName       string
	PreferredLanguage string
	Roles             []string
	CreatedAt         time.Time
	LastLoginAt       *time.Time
}

// NewUserInfo builds a UserInfo from a domain user
func NewUserInfo(user *identity.User) UserInfo {
	roles := make([]string, len(user.Roles))
	for i, r := range user.Roles {
		roles[i] = string(r)
	}
	return UserInfo{
		ID:                user.ID,
		Email:             user.Email,
		DisplayName:       user.DisplayName,
		PreferredLanguage: user.PreferredLanguage,
		Roles:             roles,
		CreatedAt:         user.CreatedAt,
		LastLoginAt:       user.LastLoginAt,
	}
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the input for user logout
type LogoutInput struct {
	UserID          uuid.UUID
	AccessTokenJTI  string
	AccessExpiresAt time.Time
	RefreshToken    string
}

// ChangePasswordInput contains the input for password change
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// UpdateProfileInput contains the input for profile updates
type UpdateProfileInput struct {
	UserID            uuid.UUID
	DisplayName       *string
	PreferredLanguage *string
}

// ListUsersInput contains the input for listing users
type ListUsersInput struct {
	ActorID      uuid.UUID
	ActorIsAdmin bool
	Keyword      string
	Role         string
	Page         int
	PageSize     int
}

// GetUserInput contains the input for fetching a single user
type GetUserInput struct {
	ActorID      uuid.UUID
	ActorIsAdmin bool
	TargetID     uuid.UUID
}

// GrantRoleInput contains the input for granting a role
type GrantRoleInput struct {
	ActorID      uuid.UUID
	ActorIsAdmin bool
	TargetID     uuid.UUID
	Role         string
}

// DeactivateUserInput contains the input for deactivating a user
type DeactivateUserInput struct {
	ActorID      uuid.UUID
	ActorIsAdmin bool
	TargetID     uuid.UUID
}
