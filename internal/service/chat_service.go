package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storyteller-server/internal/models"
	"storyteller-server/internal/prompt"
	"storyteller-server/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var _ ChatService = (*chatServiceImpl)(nil)

type chatServiceImpl struct {
	sessions  repository.SessionRepository
	assembler *prompt.Assembler
	generator Generator
	logger    *zap.Logger
}

func NewChatService(
	sessions repository.SessionRepository,
	assembler *prompt.Assembler,
	generator Generator,
	logger *zap.Logger,
) ChatService {
	return &chatServiceImpl{
		sessions:  sessions,
		assembler: assembler,
		generator: generator,
		logger:    logger.Named("ChatService"),
	}
}

// CreateChat starts an empty thread. Chats have no scenario binding and no
// seed history.
func (s *chatServiceImpl) CreateChat(ctx context.Context, userID uuid.UUID) (*models.Session, error) {
	now := time.Now().UTC()
	session := &models.Session{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      models.SessionKindChat,
		Title:     "New Chat",
		History:   []models.Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}
	return session, nil
}

func (s *chatServiceImpl) GetChat(ctx context.Context, id, userID uuid.UUID) (*models.Session, error) {
	session, err := s.sessions.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if session.Kind != models.SessionKindChat {
		return nil, models.ErrStoryNotFound
	}
	return session, nil
}

func (s *chatServiceImpl) ListChats(ctx context.Context, userID uuid.UUID) ([]models.SessionSummary, error) {
	return s.sessions.ListByUser(ctx, userID, models.SessionKindChat)
}

func (s *chatServiceImpl) SendMessage(ctx context.Context, id, userID uuid.UUID, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: message text is required", models.ErrInvalidInput)
	}

	session, err := s.sessions.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if session.Kind != models.SessionKindChat {
		return nil, models.ErrStoryNotFound
	}

	promptText := s.assembler.BuildChatPrompt(session.History, text)

	generated, err := s.generator.Generate(ctx, promptText)
	if err != nil {
		s.logger.Error("Chat generation failed, exchange discarded",
			zap.String("sessionID", session.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	now := time.Now().UTC()
	userMsg := &models.Message{
		ID:        uuid.New(),
		SessionID: session.ID,
		Role:      models.RoleUser,
		Text:      text,
		InputType: models.InputTypeNarration,
		Timestamp: now,
	}
	aiMsg := &models.Message{
		ID:        uuid.New(),
		SessionID: session.ID,
		Role:      models.RoleAI,
		Text:      strings.TrimSpace(generated),
		InputType: models.InputTypeNarration,
		Timestamp: time.Now().UTC(),
	}

	if err := s.sessions.AppendTurn(ctx, session.ID, userID, userMsg, aiMsg); err != nil {
		return nil, fmt.Errorf("failed to persist chat exchange: %w", err)
	}

	chatMessagesTotal.Inc()
	return aiMsg, nil
}

func (s *chatServiceImpl) DeleteChat(ctx context.Context, id, userID uuid.UUID) error {
	return s.sessions.Delete(ctx, id, userID)
}
