package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storyteller-server/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	insertSessionQuery = `
		INSERT INTO sessions (id, user_id, kind, title, scenario_key, character_name, character_role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8);
	`
	insertMessageQuery = `
		INSERT INTO messages (id, session_id, position, role, input_type, text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	getSessionQuery = `
		SELECT id, user_id, kind, title, COALESCE(scenario_key, '') AS scenario_key,
		       character_name, character_role, created_at, updated_at
		FROM sessions WHERE id = $1 AND user_id = $2;
	`
	getSessionMessagesQuery = `
		SELECT id, session_id, role, input_type, text, created_at
		FROM messages WHERE session_id = $1 ORDER BY position;
	`
	listSessionsQuery = `
		SELECT id, kind, title, COALESCE(scenario_key, '') AS scenario_key,
		       character_name, character_role, created_at, updated_at
		FROM sessions
		WHERE user_id = $1 AND ($2 = '' OR kind = $2)
		ORDER BY updated_at DESC;
	`
	lockSessionQuery   = `SELECT id FROM sessions WHERE id = $1 AND user_id = $2 FOR UPDATE;`
	nextPositionQuery  = `SELECT COALESCE(MAX(position), 0) + 1 FROM messages WHERE session_id = $1;`
	touchSessionQuery  = `UPDATE sessions SET updated_at = $2 WHERE id = $1;`
	renameSessionQuery = `
		UPDATE sessions SET title = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, kind, title, COALESCE(scenario_key, '') AS scenario_key,
		          character_name, character_role, created_at, updated_at;
	`
	deleteSessionQuery = `DELETE FROM sessions WHERE id = $1 AND user_id = $2;`
)

var _ SessionRepository = (*pgSessionRepository)(nil)

type pgSessionRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPgSessionRepository(pool *pgxpool.Pool, logger *zap.Logger) SessionRepository {
	return &pgSessionRepository{pool: pool, logger: logger.Named("PgSessionRepo")}
}

// Create inserts the session and its seed messages in one transaction, so a
// story is never observable without its opening narration.
func (r *pgSessionRepository) Create(ctx context.Context, session *models.Session) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("db error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var scenarioKey *string
	if session.ScenarioKey != "" {
		scenarioKey = &session.ScenarioKey
	}

	_, err = tx.Exec(ctx, insertSessionQuery,
		session.ID, session.UserID, session.Kind, session.Title, scenarioKey,
		session.Character.Name, session.Character.Role, session.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert session", zap.String("sessionID", session.ID.String()), zap.Error(err))
		return fmt.Errorf("db error inserting session: %w", err)
	}

	for i, msg := range session.History {
		_, err = tx.Exec(ctx, insertMessageQuery,
			msg.ID, session.ID, int64(i+1), msg.Role, msg.InputType, msg.Text, msg.Timestamp)
		if err != nil {
			r.logger.Error("Failed to insert seed message",
				zap.String("sessionID", session.ID.String()), zap.Int("index", i), zap.Error(err))
			return fmt.Errorf("db error inserting seed message: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("db error committing session create: %w", err)
	}
	return nil
}

func (r *pgSessionRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Session, error) {
	session, err := r.scanSession(ctx, r.pool, getSessionQuery, id, userID)
	if err != nil {
		return nil, err
	}

	messages := make([]models.Message, 0)
	if err := pgxscan.Select(ctx, r.pool, &messages, getSessionMessagesQuery, id); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			r.logger.Error("Failed to load session history", zap.String("sessionID", id.String()), zap.Error(err))
			return nil, fmt.Errorf("db error loading session history: %w", err)
		}
	}
	session.History = messages
	return session, nil
}

func (r *pgSessionRepository) ListByUser(ctx context.Context, userID uuid.UUID, kind models.SessionKind) ([]models.SessionSummary, error) {
	rows, err := r.pool.Query(ctx, listSessionsQuery, userID, string(kind))
	if err != nil {
		r.logger.Error("Failed to list sessions", zap.String("userID", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("db error listing sessions: %w", err)
	}
	defer rows.Close()

	summaries := make([]models.SessionSummary, 0)
	for rows.Next() {
		var s models.SessionSummary
		if err := rows.Scan(&s.ID, &s.Kind, &s.Title, &s.ScenarioKey,
			&s.Character.Name, &s.Character.Role, &s.CreatedAt, &s.UpdatedAt); err != nil {
			r.logger.Error("Failed to scan session summary", zap.Error(err))
			return nil, fmt.Errorf("db error scanning session summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error iterating sessions: %w", err)
	}
	return summaries, nil
}

// AppendTurn persists one user entry plus its AI reply. The session row is
// locked for the duration of the transaction and positions are computed under
// that lock, so duplicate submissions append whole turns in some serial order
// instead of interleaving.
func (r *pgSessionRepository) AppendTurn(ctx context.Context, sessionID, userID uuid.UUID, userMsg, aiMsg *models.Message) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("db error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var lockedID uuid.UUID
	if err := tx.QueryRow(ctx, lockSessionQuery, sessionID, userID).Scan(&lockedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrStoryNotFound
		}
		r.logger.Error("Failed to lock session for append", zap.String("sessionID", sessionID.String()), zap.Error(err))
		return fmt.Errorf("db error locking session: %w", err)
	}

	var position int64
	if err := tx.QueryRow(ctx, nextPositionQuery, sessionID).Scan(&position); err != nil {
		return fmt.Errorf("db error computing message position: %w", err)
	}

	_, err = tx.Exec(ctx, insertMessageQuery,
		userMsg.ID, sessionID, position, userMsg.Role, userMsg.InputType, userMsg.Text, userMsg.Timestamp)
	if err != nil {
		return fmt.Errorf("db error appending user message: %w", err)
	}
	_, err = tx.Exec(ctx, insertMessageQuery,
		aiMsg.ID, sessionID, position+1, aiMsg.Role, aiMsg.InputType, aiMsg.Text, aiMsg.Timestamp)
	if err != nil {
		return fmt.Errorf("db error appending ai message: %w", err)
	}

	if _, err := tx.Exec(ctx, touchSessionQuery, sessionID, time.Now().UTC()); err != nil {
		return fmt.Errorf("db error touching session: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("db error committing turn: %w", err)
	}
	return nil
}

func (r *pgSessionRepository) Rename(ctx context.Context, id, userID uuid.UUID, title string) (*models.Session, error) {
	return r.scanSession(ctx, r.pool, renameSessionQuery, id, userID, title)
}

func (r *pgSessionRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, deleteSessionQuery, id, userID)
	if err != nil {
		r.logger.Error("Failed to delete session", zap.String("sessionID", id.String()), zap.Error(err))
		return fmt.Errorf("db error deleting session: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrStoryNotFound
	}
	return nil
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *pgSessionRepository) scanSession(ctx context.Context, q rowQuerier, query string, args ...any) (*models.Session, error) {
	var s models.Session
	err := q.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.UserID, &s.Kind, &s.Title, &s.ScenarioKey,
		&s.Character.Name, &s.Character.Role, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrStoryNotFound
		}
		r.logger.Error("Failed to scan session", zap.Error(err))
		return nil, fmt.Errorf("db error scanning session: %w", err)
	}
	return &s, nil
}
