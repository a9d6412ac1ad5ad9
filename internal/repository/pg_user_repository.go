package repository

import (
	"context"
	"errors"
	"fmt"

	"storyteller-server/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	createUserQuery = `
		INSERT INTO users (id, email, password_hash, avatar, theme, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW());
	`
	getUserByEmailQuery = `
		SELECT id, email, password_hash, avatar, theme, created_at, updated_at
		FROM users WHERE email = $1;
	`
	getUserByIDQuery = `
		SELECT id, email, password_hash, avatar, theme, created_at, updated_at
		FROM users WHERE id = $1;
	`
	updateUserPreferencesQuery = `
		UPDATE users
		SET avatar = COALESCE($2, avatar),
		    theme  = COALESCE($3, theme),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, email, password_hash, avatar, theme, created_at, updated_at;
	`
)

var _ UserRepository = (*pgUserRepository)(nil)

type pgUserRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPgUserRepository(pool *pgxpool.Pool, logger *zap.Logger) UserRepository {
	return &pgUserRepository{pool: pool, logger: logger.Named("PgUserRepo")}
}

func (r *pgUserRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.pool.Exec(ctx, createUserQuery,
		user.ID, user.Email, user.PasswordHash, user.Avatar, user.Theme)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return models.ErrEmailAlreadyExists
		}
		r.logger.Error("Failed to create user", zap.String("email", user.Email), zap.Error(err))
		return fmt.Errorf("db error creating user: %w", err)
	}
	return nil
}

func (r *pgUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := pgxscan.Get(ctx, r.pool, &user, getUserByEmailQuery, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		r.logger.Error("Failed to get user by email", zap.Error(err))
		return nil, fmt.Errorf("db error getting user by email: %w", err)
	}
	return &user, nil
}

func (r *pgUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := pgxscan.Get(ctx, r.pool, &user, getUserByIDQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		r.logger.Error("Failed to get user by id", zap.String("userID", id.String()), zap.Error(err))
		return nil, fmt.Errorf("db error getting user by id: %w", err)
	}
	return &user, nil
}

// UpdatePreferences updates only the fields that are non-nil.
func (r *pgUserRepository) UpdatePreferences(ctx context.Context, id uuid.UUID, avatar *string, theme *models.Theme) (*models.User, error) {
	var user models.User
	err := pgxscan.Get(ctx, r.pool, &user, updateUserPreferencesQuery, id, avatar, theme)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		r.logger.Error("Failed to update user preferences", zap.String("userID", id.String()), zap.Error(err))
		return nil, fmt.Errorf("db error updating preferences: %w", err)
	}
	return &user, nil
}
