package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taskhub/backend/internal/domain/identity"
	"github.com/taskhub/backend/internal/domain/shared"
	"github.com/taskhub/backend/internal/infrastructure/auth"
	"github.com/taskhub/backend/internal/infrastructure/config"
)

// =============================================================================
// Mock Repositories
// =============================================================================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter identity.UserFilter) ([]*identity.User, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*identity.User), args.Get(1).(int64), args.Error(2)
}

var _ identity.UserRepository = (*MockUserRepository)(nil)

// =============================================================================
// Test Helpers
// =============================================================================

func newTestAuthService() (*AuthService, *MockUserRepository, *auth.InMemoryTokenBlacklist) {
	userRepo := new(MockUserRepository)
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret",
		RefreshSecret:          "test-refresh-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "taskhub-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	service := NewAuthService(userRepo, jwtService, blacklist, DefaultAuthServiceConfig(), zap.NewNop())
	return service, userRepo, blacklist
}

func createActiveUser(t *testing.T, password string) *identity.User {
	t.Helper()
	user, err := identity.NewUser("alice@example.com", password, "Alice")
	require.NoError(t, err)
	return user
}

// =============================================================================
// Register
// =============================================================================

func TestAuthService_Register_Success(t *testing.T) {
	service, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	userRepo.On("ExistsByEmail", ctx, "new@example.com").Return(false, nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	result, err := service.Register(ctx, RegisterInput{
		Email:       "new@example.com",
		Password:    "str0ng-password",
		DisplayName: "Newcomer",
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", result.Email)
	assert.Equal(t, []string{"member"}, result.Roles)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	service, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	userRepo.On("ExistsByEmail", ctx, "taken@example.com").Return(true, nil)

	_, err := service.Register(ctx, RegisterInput{
		Email:       "taken@example.com",
		Password:    "str0ng-password",
		DisplayName: "Latecomer",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_RaceLostOnInsert(t *testing.T) {
	service, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	userRepo.On("ExistsByEmail", ctx, "race@example.com").Return(false, nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(shared.ErrAlreadyExists)

	_, err := service.Register(ctx, RegisterInput{
		Email:       "race@example.com",
		Password:    "str0ng-password",
		DisplayName: "Racer",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
}

// =============================================================================
// Login
// =============================================================================

func TestAuthService_Login_Success(t *testing.T) {
	service, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	user := createActiveUser(t, "correct-horse9")

	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	result, err := service.Login(ctx, LoginInput{
		Email:    "alice@example.com",
		Password: "correct-horse9",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.NotNil(t, user.LastLoginAt)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	user := createActiveUser(t, "correct-horse9")

	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	_, err := service.Login(ctx, LoginInput{
		Email:    "alice@example.com",
		Password: "battery-staple7",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	assert.Equal(t, 1, user.FailedAttempts)
}

func TestAuthService_Login_UnknownEmailIndistinguishable(t *testing.T) {
	service, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, shared.ErrNotFound)

	_, err := service.Login(ctx, LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestAuthService_Login_LocksAfterMaxAttempts(t *testing.T) {
	service, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	user := createActiveUser(t, "correct-horse9")
	user.FailedAttempts = DefaultAuthServiceConfig().MaxLoginAttempts - 1

	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	_, err := service.Login(ctx, LoginInput{
		Email:    "alice@example.com",
		Password: "battery-staple7",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ACCOUNT_LOCKED", domainErr.Code)
	assert.True(t, user.IsLocked())
}

func TestAuthService_Login_LockedAccountRejected(t *testing.T) {
	service, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	user := createActiveUser(t, "correct-horse9")
	user.Lock(time.Hour)

	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)

	_, err := service.Login(ctx, LoginInput{
		Email:    "alice@example.com",
		Password: "correct-horse9",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ACCOUNT_LOCKED", domainErr.Code)
}

// =============================================================================
// RefreshToken
// =============================================================================

func TestAuthService_RefreshToken_Success(t *testing.T) {
	service, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	user := createActiveUser(t, "correct-horse9")

	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	login, err := service.Login(ctx, LoginInput{Email: "alice@example.com", Password: "correct-horse9"})
	require.NoError(t, err)

	result, err := service.RefreshToken(ctx, RefreshTokenInput{RefreshToken: login.RefreshToken})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
}

func TestAuthService_RefreshToken_RevokedAfterLogout(t *testing.T) {
	service, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	user := createActiveUser(t, "correct-horse9")

	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	login, err := service.Login(ctx, LoginInput{Email: "alice@example.com", Password: "correct-horse9"})
	require.NoError(t, err)

	err = service.Logout(ctx, LogoutInput{UserID: user.ID, RefreshToken: login.RefreshToken})
	require.NoError(t, err)

	_, err = service.RefreshToken(ctx, RefreshTokenInput{RefreshToken: login.RefreshToken})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TOKEN_REVOKED", domainErr.Code)
}

func TestAuthService_RefreshToken_GarbageRejected(t *testing.T) {
	service, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := service.RefreshToken(ctx, RefreshTokenInput{RefreshToken: "not-a-token"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
}

func TestAuthService_RefreshToken_AccessTokenRejected(t *testing.T) {
	service, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	user := createActiveUser(t, "correct-horse9")

	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	login, err := service.Login(ctx, LoginInput{Email: "alice@example.com", Password: "correct-horse9"})
	require.NoError(t, err)

	// An access token must not pass as a refresh token
	_, err = service.RefreshToken(ctx, RefreshTokenInput{RefreshToken: login.AccessToken})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
}

// =============================================================================
// Logout
// =============================================================================

func TestAuthService_Logout_RevokesAccessJTI(t *testing.T) {
	service, _, blacklist := newTestAuthService()
	ctx := context.Background()

	jti := uuid.New().String()

	err := service.Logout(ctx, LogoutInput{
		UserID:          uuid.New(),
		AccessTokenJTI:  jti,
		AccessExpiresAt: time.Now().Add(10 * time.Minute),
	})

	require.NoError(t, err)
	revoked, err := blacklist.IsRevoked(ctx, jti)
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = service.IsAccessTokenRevoked(ctx, jti)
	require.NoError(t, err)
	assert.True(t, revoked)
}

// =============================================================================
// ChangePassword
// =============================================================================

func TestAuthService_ChangePassword_Success(t *testing.T) {
	service, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	user := createActiveUser(t, "old-password1")

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	err := service.ChangePassword(ctx, ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "old-password1",
		NewPassword: "new-password1",
	})

	require.NoError(t, err)
	assert.True(t, user.VerifyPassword("new-password1"))
	assert.False(t, user.VerifyPassword("old-password1"))
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	service, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	user := createActiveUser(t, "old-password1")

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	err := service.ChangePassword(ctx, ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "wrong-password",
		NewPassword: "new-password1",
	})

	require.Error(t, err)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
