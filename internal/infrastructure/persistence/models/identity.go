package models

import (
	"time"

	"github.com/lib/pq"

	"github.com/taskhub/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	Email             string         `gorm:"type:varchar(254);not null;uniqueIndex"`
	PasswordHash      string         `gorm:"type:varchar(255);not null"`
	DisplayName       string         `gorm:"type:varchar(100);not null"`
	PreferredLanguage string         `gorm:"type:varchar(35);not null;default:'en'"`
	Roles             pq.StringArray `gorm:"type:text[];not null"`
	LastLoginAt       *time.Time
	FailedAttempts    int `gorm:"not null;default:0"`
	LockedUntil       *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	roles := make([]identity.Role, len(m.Roles))
	for i, r := range m.Roles {
		roles[i] = identity.Role(r)
	}

	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		DisplayName:       m.DisplayName,
		PreferredLanguage: m.PreferredLanguage,
		Roles:             roles,
		LastLoginAt:       m.LastLoginAt,
		FailedAttempts:    m.FailedAttempts,
		LockedUntil:       m.LockedUntil,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.DisplayName = u.DisplayName
	m.PreferredLanguage = u.PreferredLanguage
	m.Roles = make(pq.StringArray, len(u.Roles))
	for i, r := range u.Roles {
		m.Roles[i] = string(r)
	}
	m.LastLoginAt = u.LastLoginAt
	m.FailedAttempts = u.FailedAttempts
	m.LockedUntil = u.LockedUntil
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
