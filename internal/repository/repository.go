package repository

import (
	"context"
	"time"

	"storyteller-server/internal/models"

	"github.com/google/uuid"
)

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdatePreferences(ctx context.Context, id uuid.UUID, avatar *string, theme *models.Theme) (*models.User, error)
}

// ScenarioRepository reads the seeded scenario catalog.
type ScenarioRepository interface {
	GetByKey(ctx context.Context, key string) (*models.Scenario, error)
	List(ctx context.Context) ([]models.Scenario, error)
	Upsert(ctx context.Context, scenario *models.Scenario) error
}

// SessionRepository persists sessions and their append-only transcripts.
// Every read or write takes the requesting user's id and treats an ownership
// mismatch exactly like a missing row.
type SessionRepository interface {
	// Create inserts the session together with its seed messages in one
	// transaction.
	Create(ctx context.Context, session *models.Session) error
	// GetByID returns the session with its full history (system entries
	// included) in insertion order.
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Session, error)
	// ListByUser returns summaries ordered most-recently-updated first,
	// optionally filtered by kind (empty kind means all).
	ListByUser(ctx context.Context, userID uuid.UUID, kind models.SessionKind) ([]models.SessionSummary, error)
	// AppendTurn appends the user entry and its AI reply atomically. Positions
	// are assigned under a row lock on the session so concurrent submissions
	// interleave as whole turns.
	AppendTurn(ctx context.Context, sessionID, userID uuid.UUID, userMsg, aiMsg *models.Message) error
	Rename(ctx context.Context, id, userID uuid.UUID, title string) (*models.Session, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// TokenDenylist records revoked JWT ids until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
