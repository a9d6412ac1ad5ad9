package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"storyteller-server/internal/models"
	"storyteller-server/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// Compile-time check to ensure authServiceImpl implements AuthService
var _ AuthService = (*authServiceImpl)(nil)

type authServiceImpl struct {
	users    repository.UserRepository
	denylist repository.TokenDenylist
	secret   []byte
	tokenTTL time.Duration
	logger   *zap.Logger
}

// NewAuthService creates a new instance of authServiceImpl.
func NewAuthService(users repository.UserRepository, denylist repository.TokenDenylist, secret string, tokenTTL time.Duration, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		users:    users,
		denylist: denylist,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger.Named("AuthService"),
	}
}

// Register creates a new account.
func (s *authServiceImpl) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := mail.ParseAddress(email); err != nil {
		s.logger.Warn("Registration attempt with invalid email format", zap.String("email", email))
		return nil, fmt.Errorf("%w: invalid email format", models.ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", models.ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password during registration", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Theme:        models.ThemeLight,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrEmailAlreadyExists) {
			s.logger.Warn("Registration attempt for existing email", zap.String("email", email))
			return nil, err
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, err
	}

	s.logger.Info("User registered", zap.String("userID", user.ID.String()))
	return user, nil
}

// Login checks the credentials and issues a signed access token.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*models.User, *TokenDetails, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			// Индистинктная ошибка, чтобы не раскрывать существование аккаунта
			return nil, nil, models.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Warn("Login attempt with wrong password", zap.String("userID", user.ID.String()))
		return nil, nil, models.ErrInvalidCredentials
	}

	td, err := s.createToken(user.ID)
	if err != nil {
		s.logger.Error("Failed to sign access token", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info("User logged in", zap.String("userID", user.ID.String()))
	return user, td, nil
}

// Logout puts the token's id on the denylist until the token would have
// expired anyway.
func (s *authServiceImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}

	ttl := time.Duration(0)
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := s.denylist.Revoke(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("Failed to revoke token", zap.Error(err))
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	s.logger.Info("User logged out", zap.String("userID", claims.UserID.String()))
	return nil
}

func (s *authServiceImpl) VerifyToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, models.ErrTokenRevoked
	}
	return claims, nil
}

func (s *authServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *authServiceImpl) UpdatePreferences(ctx context.Context, userID uuid.UUID, avatar *string, theme *models.Theme) (*models.User, error) {
	if theme != nil && !models.ValidTheme(*theme) {
		return nil, fmt.Errorf("%w: unknown theme %q", models.ErrInvalidInput, *theme)
	}
	return s.users.UpdatePreferences(ctx, userID, avatar, theme)
}

func (s *authServiceImpl) createToken(userID uuid.UUID) (*TokenDetails, error) {
	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)
	tokenID := uuid.NewString()

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &TokenDetails{
		AccessToken: signed,
		TokenID:     tokenID,
		ExpiresAt:   expiresAt.Unix(),
	}, nil
}

func (s *authServiceImpl) parseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, models.ErrTokenExpired
		}
		return nil, models.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, models.ErrTokenInvalid
	}
	return claims, nil
}
