package mocks

import (
	"context"

	"storyteller-server/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock StoryService
type StoryService struct {
	mock.Mock
}

func (m *StoryService) CreateStory(ctx context.Context, userID uuid.UUID, scenarioKey string, character models.Character) (*models.Session, error) {
	args := m.Called(ctx, userID, scenarioKey, character)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}
func (m *StoryService) GetStory(ctx context.Context, id, userID uuid.UUID) (*models.Session, error) {
	args := m.Called(ctx, id, userID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}
func (m *StoryService) ListStories(ctx context.Context, userID uuid.UUID) ([]models.SessionSummary, error) {
	args := m.Called(ctx, userID)
	summaries, _ := args.Get(0).([]models.SessionSummary)
	return summaries, args.Error(1)
}
func (m *StoryService) SubmitAction(ctx context.Context, id, userID uuid.UUID, text string, actionType models.InputType) (*models.Message, error) {
	args := m.Called(ctx, id, userID, text, actionType)
	msg, _ := args.Get(0).(*models.Message)
	return msg, args.Error(1)
}
func (m *StoryService) RenameStory(ctx context.Context, id, userID uuid.UUID, title string) (*models.Session, error) {
	args := m.Called(ctx, id, userID, title)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}
func (m *StoryService) DeleteStory(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// Mock ChatService
type ChatService struct {
	mock.Mock
}

func (m *ChatService) CreateChat(ctx context.Context, userID uuid.UUID) (*models.Session, error) {
	args := m.Called(ctx, userID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}
func (m *ChatService) GetChat(ctx context.Context, id, userID uuid.UUID) (*models.Session, error) {
	args := m.Called(ctx, id, userID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}
func (m *ChatService) ListChats(ctx context.Context, userID uuid.UUID) ([]models.SessionSummary, error) {
	args := m.Called(ctx, userID)
	summaries, _ := args.Get(0).([]models.SessionSummary)
	return summaries, args.Error(1)
}
func (m *ChatService) SendMessage(ctx context.Context, id, userID uuid.UUID, text string) (*models.Message, error) {
	args := m.Called(ctx, id, userID, text)
	msg, _ := args.Get(0).(*models.Message)
	return msg, args.Error(1)
}
func (m *ChatService) DeleteChat(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
