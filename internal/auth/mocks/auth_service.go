package mocks

import (
	"context"

	"storyteller-server/internal/auth"
	"storyteller-server/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock AuthService
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}
func (m *AuthService) Login(ctx context.Context, email, password string) (*models.User, *auth.TokenDetails, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(0).(*models.User)
	td, _ := args.Get(1).(*auth.TokenDetails)
	return user, td, args.Error(2)
}
func (m *AuthService) Logout(ctx context.Context, tokenString string) error {
	args := m.Called(ctx, tokenString)
	return args.Error(0)
}
func (m *AuthService) VerifyToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	args := m.Called(ctx, tokenString)
	claims, _ := args.Get(0).(*auth.Claims)
	return claims, args.Error(1)
}
func (m *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}
func (m *AuthService) UpdatePreferences(ctx context.Context, userID uuid.UUID, avatar *string, theme *models.Theme) (*models.User, error) {
	args := m.Called(ctx, userID, avatar, theme)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}
