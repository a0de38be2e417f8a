package project

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskhub/backend/internal/domain/shared"
)

// MemberRole is the role a user holds within a single project
type MemberRole string

const (
	MemberRoleManager MemberRole = "manager"
	MemberRoleMember  MemberRole = "member"
)

// ParseMemberRole converts a string to a MemberRole
func ParseMemberRole(s string) (MemberRole, error) {
	switch MemberRole(strings.ToLower(strings.TrimSpace(s))) {
	case MemberRoleManager:
		return MemberRoleManager, nil
	case MemberRoleMember:
		return MemberRoleMember, nil
	default:
		return "", shared.NewDomainError("INVALID_MEMBER_ROLE", "Unknown member role: "+s)
	}
}

// Member is the join entity granting a user visibility on a project.
// At most one active (non-deleted) row may exist per (project, user)
// pair; removal soft-deletes the row and a later re-add creates a fresh
// row with a new JoinedAt.
type Member struct {
	shared.BaseEntity
	ProjectID uuid.UUID
	UserID    uuid.UUID
	Role      MemberRole
	JoinedAt  time.Time
}

// NewMember creates a new active membership row
func NewMember(projectID, userID uuid.UUID, role MemberRole) (*Member, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT", "Project ID cannot be empty")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if _, err := ParseMemberRole(string(role)); err != nil {
		return nil, err
	}

	return &Member{
		BaseEntity: shared.NewBaseEntity(),
		ProjectID:  projectID,
		UserID:     userID,
		Role:       role,
		JoinedAt:   time.Now(),
	}, nil
}

// Leave soft-deletes the membership row
func (m *Member) Leave() {
	m.SoftDelete()
}
