package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/backend/internal/application/identity"
)

// =====================
// Auth Request DTOs
// =====================

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Email             string `json:"email" binding:"required,email,max=254"`
	Password          string `json:"password" binding:"required,min=8,max=128"`
	DisplayName       string `json:"display_name" binding:"required,min=1,max=100"`
	PreferredLanguage string `json:"preferred_language" binding:"omitempty,max=35"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request body for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for logout
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ChangePasswordRequest represents the request body for password change
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// =====================
// Auth Response DTOs
// =====================

// TokenResponse represents the token data in auth responses
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// UserResponse represents user data in responses
type UserResponse struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	DisplayName       string     `json:"display_name"`
	PreferredLanguage string     `json:"preferred_language"`
	Roles             []string   `json:"roles"`
	CreatedAt         time.Time  `json:"created_at"`
	LastLoginAt       *time.Time `json:"last_login_at,omitempty"`
}

func newUserResponse(info identity.UserInfo) UserResponse {
	return UserResponse{
		ID:                info.ID,
		Email:             info.Email,
		DisplayName:       info.DisplayName,
		PreferredLanguage: info.PreferredLanguage,
		Roles:             info.Roles,
		CreatedAt:         info.CreatedAt,
		LastLoginAt:       info.LastLoginAt,
	}
}

// LoginResponse represents the response body for successful login
type LoginResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// RefreshTokenResponse represents the response body for token refresh
type RefreshTokenResponse struct {
	Token TokenResponse `json:"token"`
}

// LogoutResponse represents the response body for logout
type LogoutResponse struct {
	Message string `json:"message"`
}
