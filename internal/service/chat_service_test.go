package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"storyteller-server/internal/models"
	"storyteller-server/internal/prompt"
	"storyteller-server/internal/repository/mocks"
	"storyteller-server/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chatFixture(id, userID uuid.UUID) *models.Session {
	return &models.Session{
		ID:     id,
		UserID: userID,
		Kind:   models.SessionKindChat,
		Title:  "New Chat",
	}
}

func TestCreateChat(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	sessions := new(mocks.SessionRepository)
	svc := service.NewChatService(sessions, prompt.NewAssembler(zap.NewNop()), nil, zap.NewNop())

	sessions.On("Create", ctx, mock.MatchedBy(func(s *models.Session) bool {
		return s.Kind == models.SessionKindChat && len(s.History) == 0 && s.UserID == userID
	})).Return(nil).Once()

	chat, err := svc.CreateChat(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "New Chat", chat.Title)
	sessions.AssertExpectations(t)
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	chatID := uuid.New()

	newService := func(sessions *mocks.SessionRepository, gen *generatorMock) service.ChatService {
		return service.NewChatService(sessions, prompt.NewAssembler(zap.NewNop()), gen, zap.NewNop())
	}

	t.Run("Reply is appended together with the user message", func(t *testing.T) {
		sessions := new(mocks.SessionRepository)
		gen := new(generatorMock)
		svc := newService(sessions, gen)

		sessions.On("GetByID", ctx, chatID, userID).Return(chatFixture(chatID, userID), nil).Once()
		gen.On("Generate", ctx, mock.MatchedBy(func(p string) bool {
			return strings.HasPrefix(p, "You are a helpful AI assistant.") &&
				strings.HasSuffix(p, "User: hello\n\nAI: ")
		})).Return("  Hi there!  ", nil).Once()
		sessions.On("AppendTurn", ctx, chatID, userID,
			mock.MatchedBy(func(m *models.Message) bool {
				return m.Role == models.RoleUser && m.Text == "hello"
			}),
			mock.MatchedBy(func(m *models.Message) bool {
				return m.Role == models.RoleAI && m.Text == "Hi there!"
			}),
		).Return(nil).Once()

		reply, err := svc.SendMessage(ctx, chatID, userID, "hello")

		require.NoError(t, err)
		assert.Equal(t, "Hi there!", reply.Text)
		sessions.AssertExpectations(t)
		gen.AssertExpectations(t)
	})

	t.Run("Empty text is rejected", func(t *testing.T) {
		sessions := new(mocks.SessionRepository)
		svc := newService(sessions, new(generatorMock))

		_, err := svc.SendMessage(ctx, chatID, userID, "  ")

		assert.ErrorIs(t, err, models.ErrInvalidInput)
		sessions.AssertNotCalled(t, "GetByID")
	})

	t.Run("Story session is not addressable as a chat", func(t *testing.T) {
		sessions := new(mocks.SessionRepository)
		gen := new(generatorMock)
		svc := newService(sessions, gen)

		story := chatFixture(chatID, userID)
		story.Kind = models.SessionKindStory
		sessions.On("GetByID", ctx, chatID, userID).Return(story, nil).Once()

		_, err := svc.SendMessage(ctx, chatID, userID, "hello")

		assert.ErrorIs(t, err, models.ErrStoryNotFound)
		gen.AssertNotCalled(t, "Generate")
	})

	t.Run("Generation failure persists nothing", func(t *testing.T) {
		sessions := new(mocks.SessionRepository)
		gen := new(generatorMock)
		svc := newService(sessions, gen)

		sessions.On("GetByID", ctx, chatID, userID).Return(chatFixture(chatID, userID), nil).Once()
		gen.On("Generate", ctx, mock.Anything).Return("", errors.New("all paths failed")).Once()

		_, err := svc.SendMessage(ctx, chatID, userID, "hello")

		require.Error(t, err)
		sessions.AssertNotCalled(t, "AppendTurn")
	})
}
