package auth

import (
	"context"

	"storyteller-server/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried inside an access token.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// TokenDetails is the result of a successful login.
type TokenDetails struct {
	AccessToken string
	TokenID     string
	ExpiresAt   int64
}

// AuthService manages accounts and access tokens.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, *TokenDetails, error)
	// Logout revokes the token for the remainder of its lifetime.
	Logout(ctx context.Context, tokenString string) error
	// VerifyToken validates the signature, expiry and revocation status of an
	// access token and returns its claims.
	VerifyToken(ctx context.Context, tokenString string) (*Claims, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	// UpdatePreferences changes only the fields that are non-nil.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, avatar *string, theme *models.Theme) (*models.User, error)
}
