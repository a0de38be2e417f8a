package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/taskhub/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/language"
)

// Role is a capability label carried by a user. Roles are a closed set,
// not a hierarchy: Admin does not imply Manager.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

// ParseRole converts a string to a Role, failing on unknown values
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleManager:
		return RoleManager, nil
	case RoleMember:
		return RoleMember, nil
	default:
		return "", shared.NewDomainError("INVALID_ROLE", "Unknown role: "+s)
	}
}

// Password cost for bcrypt
const bcryptCost = 12

// DefaultLanguage is used when registration does not specify one
const DefaultLanguage = "en"

// User is the aggregate root for account operations. Users are only ever
// soft-deleted; activity history must keep resolving actor references.
type User struct {
	shared.BaseAggregateRoot
	Email             string
	PasswordHash      string
	DisplayName       string
	PreferredLanguage string
	Roles             []Role
	LastLoginAt       *time.Time
	FailedAttempts    int
	LockedUntil       *time.Time
}

// NewUser creates a new active user from registration input
func NewUser(email, password, displayName string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := validateDisplayName(displayName); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		PasswordHash:      passwordHash,
		DisplayName:       strings.TrimSpace(displayName),
		PreferredLanguage: DefaultLanguage,
		Roles:             []Role{RoleMember},
	}

	user.AddDomainEvent(NewUserRegisteredEvent(user))

	return user, nil
}

// SetDisplayName sets the user's display name
func (u *User) SetDisplayName(displayName string) error {
	if err := validateDisplayName(displayName); err != nil {
		return err
	}

	u.DisplayName = strings.TrimSpace(displayName)
	u.Touch()

	return nil
}

// SetPreferredLanguage sets the user's preferred language as a BCP 47 tag
func (u *User) SetPreferredLanguage(lang string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return shared.NewDomainError("INVALID_LANGUAGE", "Invalid language tag: "+lang)
	}

	u.PreferredLanguage = tag.String()
	u.Touch()

	return nil
}

// ChangePassword changes the user's password after verifying the old one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}
	return u.SetPassword(newPassword)
}

// SetPassword sets a new password without checking the old one
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.Touch()

	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// GrantRole adds a role to the user's role set. Granting an already held
// role is a no-op.
func (u *User) GrantRole(role Role) error {
	if _, err := ParseRole(string(role)); err != nil {
		return err
	}

	for _, r := range u.Roles {
		if r == role {
			return nil
		}
	}

	u.Roles = append(u.Roles, role)
	u.Touch()

	return nil
}

// RevokeRole removes a role from the user's role set
func (u *User) RevokeRole(role Role) error {
	found := false
	roles := make([]Role, 0, len(u.Roles))
	for _, r := range u.Roles {
		if r != role {
			roles = append(roles, r)
		} else {
			found = true
		}
	}

	if !found {
		return shared.NewDomainError("ROLE_NOT_GRANTED", "User does not hold this role")
	}

	u.Roles = roles
	u.Touch()

	return nil
}

// HasRole checks if user holds a specific role
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Deactivate soft-deletes the user account
func (u *User) Deactivate() error {
	if u.IsDeleted() {
		return shared.NewDomainError("ALREADY_DEACTIVATED", "User is already deactivated")
	}

	u.SoftDelete()
	u.IncrementVersion()

	u.AddDomainEvent(NewUserDeactivatedEvent(u))

	return nil
}

// Lock locks the user account for the given duration
func (u *User) Lock(duration time.Duration) {
	if duration > 0 {
		lockedUntil := time.Now().Add(duration)
		u.LockedUntil = &lockedUntil
	}
	u.Touch()
}

// IsLocked returns true while a login lock is in effect
func (u *User) IsLocked() bool {
	return u.LockedUntil != nil && time.Now().Before(*u.LockedUntil)
}

// RecordLoginSuccess records a successful login
func (u *User) RecordLoginSuccess() {
	now := time.Now()
	u.LastLoginAt = &now
	u.FailedAttempts = 0
	u.LockedUntil = nil
	u.Touch()
}

// RecordLoginFailure records a failed login attempt.
// Returns true if the account was locked as a result.
func (u *User) RecordLoginFailure(maxAttempts int, lockDuration time.Duration) bool {
	u.FailedAttempts++
	u.Touch()

	if u.FailedAttempts >= maxAttempts {
		u.Lock(lockDuration)
		return true
	}

	return false
}

// CanLogin returns true if the account accepts logins
func (u *User) CanLogin() bool {
	if u.IsDeleted() || !u.IsActive {
		return false
	}
	return !u.IsLocked()
}

// Validation functions

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasNumber {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}

	return nil
}

func validateDisplayName(displayName string) error {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return shared.NewDomainError("INVALID_DISPLAY_NAME", "Display name cannot be empty")
	}
	if len(displayName) > 200 {
		return shared.NewDomainError("INVALID_DISPLAY_NAME", "Display name cannot exceed 200 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
