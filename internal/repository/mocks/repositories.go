package mocks

import (
	"context"
	"time"

	"storyteller-server/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock UserRepository
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}
func (m *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}
func (m *UserRepository) UpdatePreferences(ctx context.Context, id uuid.UUID, avatar *string, theme *models.Theme) (*models.User, error) {
	args := m.Called(ctx, id, avatar, theme)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

// Mock ScenarioRepository
type ScenarioRepository struct {
	mock.Mock
}

func (m *ScenarioRepository) GetByKey(ctx context.Context, key string) (*models.Scenario, error) {
	args := m.Called(ctx, key)
	scenario, _ := args.Get(0).(*models.Scenario)
	return scenario, args.Error(1)
}
func (m *ScenarioRepository) List(ctx context.Context) ([]models.Scenario, error) {
	args := m.Called(ctx)
	scenarios, _ := args.Get(0).([]models.Scenario)
	return scenarios, args.Error(1)
}
func (m *ScenarioRepository) Upsert(ctx context.Context, scenario *models.Scenario) error {
	args := m.Called(ctx, scenario)
	return args.Error(0)
}

// Mock SessionRepository
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}
func (m *SessionRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Session, error) {
	args := m.Called(ctx, id, userID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}
func (m *SessionRepository) ListByUser(ctx context.Context, userID uuid.UUID, kind models.SessionKind) ([]models.SessionSummary, error) {
	args := m.Called(ctx, userID, kind)
	summaries, _ := args.Get(0).([]models.SessionSummary)
	return summaries, args.Error(1)
}
func (m *SessionRepository) AppendTurn(ctx context.Context, sessionID, userID uuid.UUID, userMsg, aiMsg *models.Message) error {
	args := m.Called(ctx, sessionID, userID, userMsg, aiMsg)
	return args.Error(0)
}
func (m *SessionRepository) Rename(ctx context.Context, id, userID uuid.UUID, title string) (*models.Session, error) {
	args := m.Called(ctx, id, userID, title)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}
func (m *SessionRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// Mock TokenDenylist
type TokenDenylist struct {
	mock.Mock
}

func (m *TokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}
func (m *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
