package service_test

import (
	"context"
	"errors"
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

// Mock Generator
type generatorMock struct {
	mock.Mock
}

func (m *generatorMock) Generate(ctx context.Context, p string) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func spaceColonyScenario() *models.Scenario {
	return &models.Scenario{
		Key:                "space-colony",
		Name:               "Space Colony",
		InitialPrompt:      "Year 2157. The colony ship Meridian has just landed.",
		SystemInstructions: "You narrate a space colony survival story.",
	}
}

func storyFixture(id, userID uuid.UUID) *models.Session {
	return &models.Session{
		ID:          id,
		UserID:      userID,
		Kind:        models.SessionKindStory,
		Title:       "Commander's Space Colony Adventure",
		ScenarioKey: "space-colony",
		Character:   models.Character{Name: "Commander", Role: "Colony Leader"},
		History: []models.Message{
			{ID: uuid.New(), Role: models.RoleSystem, Text: "You narrate a space colony survival story.", InputType: models.InputTypeNarration},
			{ID: uuid.New(), Role: models.RoleAI, Text: "Year 2157. The colony ship Meridian has just landed.", InputType: models.InputTypeNarration},
		},
	}
}

func TestCreateStory(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Explicit scenario and character", func(t *testing.T) {
		sessions := new(mocks.SessionRepository)
		scenarios := new(mocks.ScenarioRepository)
		svc := service.NewStoryService(sessions, scenarios, prompt.NewAssembler(zap.NewNop()), nil, zap.NewNop())

		scenarios.On("GetByKey", ctx, "space-colony").Return(spaceColonyScenario(), nil).Once()
		sessions.On("Create", ctx, mock.MatchedBy(func(s *models.Session) bool {
			assert.Equal(t, userID, s.UserID)
			assert.Equal(t, models.SessionKindStory, s.Kind)
			assert.Equal(t, "Ripley's Space Colony Adventure", s.Title)
			// Ровно две затравочные записи: системная и вступительная
			require.Len(t, s.History, 2)
			assert.Equal(t, models.RoleSystem, s.History[0].Role)
			assert.Equal(t, "You narrate a space colony survival story.", s.History[0].Text)
			assert.Equal(t, models.RoleAI, s.History[1].Role)
			assert.Equal(t, "Year 2157. The colony ship Meridian has just landed.", s.History[1].Text)
			return true
		})).Return(nil).Once()

		created, err := svc.CreateStory(ctx, userID, "space-colony", models.Character{Name: "Ripley", Role: "Officer"})

		require.NoError(t, err)
		assert.Equal(t, "Ripley's Space Colony Adventure", created.Title)
		sessions.AssertExpectations(t)
		scenarios.AssertExpectations(t)
	})

	t.Run("Empty parameters fall back to defaults", func(t *testing.T) {
		sessions := new(mocks.SessionRepository)
		scenarios := new(mocks.ScenarioRepository)
		svc := service.NewStoryService(sessions, scenarios, prompt.NewAssembler(zap.NewNop()), nil, zap.NewNop())

		scenarios.On("GetByKey", ctx, "space-colony").Return(spaceColonyScenario(), nil).Once()
		sessions.On("Create", ctx, mock.MatchedBy(func(s *models.Session) bool {
			assert.Equal(t, models.Character{Name: "Commander", Role: "Colony Leader"}, s.Character)
			assert.Equal(t, "Commander's Space Colony Adventure", s.Title)
			return true
		})).Return(nil).Once()

		_, err := svc.CreateStory(ctx, userID, "", models.Character{})
		require.NoError(t, err)
		sessions.AssertExpectations(t)
	})

	t.Run("Unknown scenario key", func(t *testing.T) {
		sessions := new(mocks.SessionRepository)
		scenarios := new(mocks.ScenarioRepository)
		svc := service.NewStoryService(sessions, scenarios, prompt.NewAssembler(zap.NewNop()), nil, zap.NewNop())

		scenarios.On("GetByKey", ctx, "atlantis").Return(nil, models.ErrScenarioNotFound).Once()

		_, err := svc.CreateStory(ctx, userID, "atlantis", models.Character{})
		assert.ErrorIs(t, err, models.ErrScenarioNotFound)
		sessions.AssertNotCalled(t, "Create")
	})
}

func TestGetStory(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	storyID := uuid.New()

	t.Run("System entries are filtered from the returned history", func(t *testing.T) {
		sessions := new(mocks.SessionRepository)
		svc := service.NewStoryService(sessions, new(mocks.ScenarioRepository), prompt.NewAssembler(zap.NewNop()), nil, zap.NewNop())

		sessions.On("GetByID", ctx, storyID, userID).Return(storyFixture(storyID, userID), nil).Once()

		story, err := svc.GetStory(ctx, storyID, userID)

		require.NoError(t, err)
		require.Len(t, story.History, 1)
		assert.Equal(t, models.RoleAI, story.History[0].Role)
	})

	t.Run("Foreign story reads as not found", func(t *testing.T) {
		sessions := new(mocks.SessionRepository)
		svc := service.NewStoryService(sessions, new(mocks.ScenarioRepository), prompt.NewAssembler(zap.NewNop()), nil, zap.NewNop())

		sessions.On("GetByID", ctx, storyID, userID).Return(nil, models.ErrStoryNotFound).Once()

		_, err := svc.GetStory(ctx, storyID, userID)
		assert.ErrorIs(t, err, models.ErrStoryNotFound)
	})
}

func TestSubmitAction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	storyID := uuid.New()

	newService := func(sessions *mocks.SessionRepository, scenarios *mocks.ScenarioRepository, gen *generatorMock) service.StoryService {
		return service.NewStoryService(sessions, scenarios, prompt.NewAssembler(zap.NewNop()), gen, zap.NewNop())
	}

	t.Run("Action turn appends user entry and cleaned reply", func(t *testing.T) {
		sessions := new(mocks.SessionRepository)
		scenarios := new(mocks.ScenarioRepository)
		gen := new(generatorMock)
		svc := newService(sessions, scenarios, gen)

		sessions.On("GetByID", ctx, storyID, userID).Return(storyFixture(storyID, userID), nil).Once()
		scenarios.On("GetByKey", ctx, "space-colony").Return(spaceColonyScenario(), nil).Once()
		gen.On("Generate", ctx, mock.MatchedBy(func(p string) bool {
			return assert.Contains(t, p, "[User Action]: inspect the reactor")
		})).Return("[Story]: The reactor hums steadily.", nil).Once()
		sessions.On("AppendTurn", ctx, storyID, userID,
			mock.MatchedBy(func(m *models.Message) bool {
				return m.Role == models.RoleUser &&
					m.Text == "inspect the reactor" &&
					m.InputType == models.InputTypeAction
			}),
			mock.MatchedBy(func(m *models.Message) bool {
				return m.Role == models.RoleAI &&
					m.Text == "The reactor hums steadily." &&
					m.InputType == models.InputTypeNarration
			}),
		).Return(nil).Once()

		update, err := svc.SubmitAction(ctx, storyID, userID, "inspect the reactor", models.InputTypeAction)

		require.NoError(t, err)
		assert.Equal(t, "The reactor hums steadily.", update.Text)
		sessions.AssertExpectations(t)
		gen.AssertExpectations(t)
	})

	t.Run("Continue turn stores the placeholder text", func(t *testing.T) {
		sessions := new(mocks.SessionRepository)
		scenarios := new(mocks.ScenarioRepository)
		gen := new(generatorMock)
		svc := newService(sessions, scenarios, gen)

		sessions.On("GetByID", ctx, storyID, userID).Return(storyFixture(storyID, userID), nil).Once()
		scenarios.On("GetByKey", ctx, "space-colony").Return(spaceColonyScenario(), nil).Once()
		gen.On("Generate", ctx, mock.Anything).Return("The story goes on.", nil).Once()
		sessions.On("AppendTurn", ctx, storyID, userID,
			mock.MatchedBy(func(m *models.Message) bool {
				return m.Text == prompt.ContinuePlaceholder && m.InputType == models.InputTypeContinue
			}),
			mock.Anything,
		).Return(nil).Once()

		_, err := svc.SubmitAction(ctx, storyID, userID, "", models.InputTypeContinue)
		require.NoError(t, err)
		sessions.AssertExpectations(t)
	})

	t.Run("Empty action text is rejected", func(t *testing.T) {
		sessions := new(mocks.SessionRepository)
		svc := newService(sessions, new(mocks.ScenarioRepository), new(generatorMock))

		_, err := svc.SubmitAction(ctx, storyID, userID, "   ", models.InputTypeAction)

		assert.ErrorIs(t, err, models.ErrInvalidInput)
		sessions.AssertNotCalled(t, "GetByID")
	})

	t.Run("Unknown action type is rejected", func(t *testing.T) {
		svc := newService(new(mocks.SessionRepository), new(mocks.ScenarioRepository), new(generatorMock))

		_, err := svc.SubmitAction(ctx, storyID, userID, "text", models.InputType("teleport"))
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("Generation failure persists nothing", func(t *testing.T) {
		sessions := new(mocks.SessionRepository)
		scenarios := new(mocks.ScenarioRepository)
		gen := new(generatorMock)
		svc := newService(sessions, scenarios, gen)

		genErr := errors.New("all paths failed")
		sessions.On("GetByID", ctx, storyID, userID).Return(storyFixture(storyID, userID), nil).Once()
		scenarios.On("GetByKey", ctx, "space-colony").Return(spaceColonyScenario(), nil).Once()
		gen.On("Generate", ctx, mock.Anything).Return("", genErr).Once()

		_, err := svc.SubmitAction(ctx, storyID, userID, "open the hatch", models.InputTypeAction)

		assert.ErrorIs(t, err, genErr)
		sessions.AssertNotCalled(t, "AppendTurn")
	})

	t.Run("Foreign story behaves as missing", func(t *testing.T) {
		sessions := new(mocks.SessionRepository)
		gen := new(generatorMock)
		svc := newService(sessions, new(mocks.ScenarioRepository), gen)

		sessions.On("GetByID", ctx, storyID, userID).Return(nil, models.ErrStoryNotFound).Once()

		_, err := svc.SubmitAction(ctx, storyID, userID, "peek", models.InputTypeAction)

		assert.ErrorIs(t, err, models.ErrStoryNotFound)
		gen.AssertNotCalled(t, "Generate")
	})
}

func TestRenameStory(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	storyID := uuid.New()

	t.Run("Title is trimmed before saving", func(t *testing.T) {
		sessions := new(mocks.SessionRepository)
		svc := service.NewStoryService(sessions, new(mocks.ScenarioRepository), prompt.NewAssembler(zap.NewNop()), nil, zap.NewNop())

		renamed := storyFixture(storyID, userID)
		renamed.Title = "New Title"
		sessions.On("Rename", ctx, storyID, userID, "New Title").Return(renamed, nil).Once()

		story, err := svc.RenameStory(ctx, storyID, userID, "  New Title  ")

		require.NoError(t, err)
		assert.Equal(t, "New Title", story.Title)
		sessions.AssertExpectations(t)
	})

	t.Run("Blank title is rejected", func(t *testing.T) {
		sessions := new(mocks.SessionRepository)
		svc := service.NewStoryService(sessions, new(mocks.ScenarioRepository), prompt.NewAssembler(zap.NewNop()), nil, zap.NewNop())

		_, err := svc.RenameStory(ctx, storyID, userID, "   ")

		assert.ErrorIs(t, err, models.ErrInvalidInput)
		sessions.AssertNotCalled(t, "Rename")
	})
}
