package auth_test

import (
	"context"
	"testing"
	"time"

	"storyteller-server/internal/auth"
	"storyteller-server/internal/models"
	"storyteller-server/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "unit-test-secret"

func newService(users *mocks.UserRepository, denylist *mocks.TokenDenylist) auth.AuthService {
	return auth.NewAuthService(users, denylist, testSecret, 7*24*time.Hour, zap.NewNop())
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful registration normalizes the email", func(t *testing.T) {
		users := new(mocks.UserRepository)
		svc := newService(users, new(mocks.TokenDenylist))

		users.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			assert.Equal(t, "user@example.com", u.Email)
			assert.NotEmpty(t, u.PasswordHash)
			assert.NotEqual(t, "password123", u.PasswordHash)
			return true
		})).Return(nil).Once()

		user, err := svc.Register(ctx, "  USER@Example.com ", "password123")

		require.NoError(t, err)
		assert.Equal(t, "user@example.com", user.Email)
		users.AssertExpectations(t)
	})

	t.Run("Invalid email format", func(t *testing.T) {
		users := new(mocks.UserRepository)
		svc := newService(users, new(mocks.TokenDenylist))

		_, err := svc.Register(ctx, "not-an-email", "password123")

		assert.ErrorIs(t, err, models.ErrInvalidInput)
		users.AssertNotCalled(t, "Create")
	})

	t.Run("Short password", func(t *testing.T) {
		users := new(mocks.UserRepository)
		svc := newService(users, new(mocks.TokenDenylist))

		_, err := svc.Register(ctx, "user@example.com", "short")

		assert.ErrorIs(t, err, models.ErrInvalidInput)
		users.AssertNotCalled(t, "Create")
	})

	t.Run("Duplicate email", func(t *testing.T) {
		users := new(mocks.UserRepository)
		svc := newService(users, new(mocks.TokenDenylist))

		users.On("Create", ctx, mock.Anything).Return(models.ErrEmailAlreadyExists).Once()

		_, err := svc.Register(ctx, "user@example.com", "password123")
		assert.ErrorIs(t, err, models.ErrEmailAlreadyExists)
	})
}

func TestLoginAndVerify(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Login issues a verifiable token", func(t *testing.T) {
		users := new(mocks.UserRepository)
		denylist := new(mocks.TokenDenylist)
		svc := newService(users, denylist)

		users.On("GetByEmail", ctx, "user@example.com").Return(&models.User{
			ID:           userID,
			Email:        "user@example.com",
			PasswordHash: hashOf(t, "password123"),
		}, nil).Once()

		user, td, err := svc.Login(ctx, "user@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		require.NotEmpty(t, td.AccessToken)
		require.NotEmpty(t, td.TokenID)

		denylist.On("IsRevoked", ctx, td.TokenID).Return(false, nil).Once()

		claims, err := svc.VerifyToken(ctx, td.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, td.TokenID, claims.ID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		users := new(mocks.UserRepository)
		svc := newService(users, new(mocks.TokenDenylist))

		users.On("GetByEmail", ctx, "user@example.com").Return(&models.User{
			ID:           userID,
			PasswordHash: hashOf(t, "password123"),
		}, nil).Once()

		_, _, err := svc.Login(ctx, "user@example.com", "wrong-password")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("Unknown email reads as invalid credentials", func(t *testing.T) {
		users := new(mocks.UserRepository)
		svc := newService(users, new(mocks.TokenDenylist))

		users.On("GetByEmail", ctx, "ghost@example.com").Return(nil, models.ErrUserNotFound).Once()

		_, _, err := svc.Login(ctx, "ghost@example.com", "password123")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("Garbage token", func(t *testing.T) {
		svc := newService(new(mocks.UserRepository), new(mocks.TokenDenylist))

		_, err := svc.VerifyToken(ctx, "not.a.token")
		assert.ErrorIs(t, err, models.ErrTokenInvalid)
	})

	t.Run("Revoked token is rejected", func(t *testing.T) {
		users := new(mocks.UserRepository)
		denylist := new(mocks.TokenDenylist)
		svc := newService(users, denylist)

		users.On("GetByEmail", ctx, "user@example.com").Return(&models.User{
			ID:           userID,
			PasswordHash: hashOf(t, "password123"),
		}, nil).Once()

		_, td, err := svc.Login(ctx, "user@example.com", "password123")
		require.NoError(t, err)

		denylist.On("IsRevoked", ctx, td.TokenID).Return(true, nil).Once()

		_, err = svc.VerifyToken(ctx, td.AccessToken)
		assert.ErrorIs(t, err, models.ErrTokenRevoked)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	users := new(mocks.UserRepository)
	denylist := new(mocks.TokenDenylist)
	svc := newService(users, denylist)

	users.On("GetByEmail", ctx, "user@example.com").Return(&models.User{
		ID:           userID,
		PasswordHash: hashOf(t, "password123"),
	}, nil).Once()

	_, td, err := svc.Login(ctx, "user@example.com", "password123")
	require.NoError(t, err)

	// TTL должен покрывать остаток жизни токена
	denylist.On("Revoke", ctx, td.TokenID, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 6*24*time.Hour && ttl <= 7*24*time.Hour
	})).Return(nil).Once()

	require.NoError(t, svc.Logout(ctx, td.AccessToken))
	denylist.AssertExpectations(t)
}

func TestUpdatePreferences(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Invalid theme is rejected", func(t *testing.T) {
		users := new(mocks.UserRepository)
		svc := newService(users, new(mocks.TokenDenylist))

		bad := models.Theme("neon")
		_, err := svc.UpdatePreferences(ctx, userID, nil, &bad)

		assert.ErrorIs(t, err, models.ErrInvalidInput)
		users.AssertNotCalled(t, "UpdatePreferences")
	})

	t.Run("Partial update passes through", func(t *testing.T) {
		users := new(mocks.UserRepository)
		svc := newService(users, new(mocks.TokenDenylist))

		theme := models.ThemeBlue
		users.On("UpdatePreferences", ctx, userID, (*string)(nil), &theme).
			Return(&models.User{ID: userID, Theme: theme}, nil).Once()

		user, err := svc.UpdatePreferences(ctx, userID, nil, &theme)

		require.NoError(t, err)
		assert.Equal(t, models.ThemeBlue, user.Theme)
		users.AssertExpectations(t)
	})
}
