package identity

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskhub/backend/internal/domain/access"
	"github.com/taskhub/backend/internal/domain/identity"
	"github.com/taskhub/backend/internal/domain/shared"
)

// UserService handles user profile and administration operations
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUser returns a user's profile. Non-admins may only read their own.
func (s *UserService) GetUser(ctx context.Context, input GetUserInput) (*UserInfo, error) {
	if !access.CanAccessUser(input.ActorID, input.TargetID, input.ActorIsAdmin) {
		return nil, shared.ErrAccessDenied
	}

	user, err := s.userRepo.FindByID(ctx, input.TargetID)
	if err != nil {
		return nil, err
	}

	info := NewUserInfo(user)
	return &info, nil
}

// UpdateProfile updates the caller's own profile fields
func (s *UserService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		if err := user.SetDisplayName(*input.DisplayName); err != nil {
			return nil, err
		}
	}
	if input.PreferredLanguage != nil {
		if err := user.SetPreferredLanguage(*input.PreferredLanguage); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User profile updated", zap.String("user_id", user.ID.String()))

	info := NewUserInfo(user)
	return &info, nil
}

// ListUsers returns users matching the filter. Admin only.
func (s *UserService) ListUsers(ctx context.Context, input ListUsersInput) ([]UserInfo, int64, error) {
	if !input.ActorIsAdmin {
		return nil, 0, shared.ErrAccessDenied
	}

	pagination, err := shared.NormalizePagination(input.Page, input.PageSize)
	if err != nil {
		return nil, 0, err
	}

	filter := identity.NewUserFilter()
	filter.Keyword = input.Keyword
	filter.Page = pagination.Page
	filter.PageSize = pagination.PageSize
	if input.Role != "" {
		role, err := identity.ParseRole(input.Role)
		if err != nil {
			return nil, 0, err
		}
		filter.Role = &role
	}

	users, total, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	infos := make([]UserInfo, len(users))
	for i, u := range users {
		infos[i] = NewUserInfo(u)
	}
	return infos, total, nil
}

// GrantRole grants a role to a user. Admin only.
func (s *UserService) GrantRole(ctx context.Context, input GrantRoleInput) (*UserInfo, error) {
	if !input.ActorIsAdmin {
		return nil, shared.ErrAccessDenied
	}

	role, err := identity.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, input.TargetID)
	if err != nil {
		return nil, err
	}

	if err := user.GrantRole(role); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Role granted",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(role)),
		zap.String("granted_by", input.ActorID.String()))

	info := NewUserInfo(user)
	return &info, nil
}

// DeactivateUser soft-deletes a user account. Admin only, and admins
// cannot deactivate themselves.
func (s *UserService) DeactivateUser(ctx context.Context, input DeactivateUserInput) error {
	if !input.ActorIsAdmin {
		return shared.ErrAccessDenied
	}
	if input.ActorID == input.TargetID {
		return shared.NewDomainError("SELF_DEACTIVATION", "Cannot deactivate your own account")
	}

	user, err := s.userRepo.FindByID(ctx, input.TargetID)
	if err != nil {
		return err
	}

	if err := user.Deactivate(); err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("User deactivated",
		zap.String("user_id", user.ID.String()),
		zap.String("deactivated_by", input.ActorID.String()))

	return nil
}
