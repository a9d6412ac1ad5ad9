package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storyteller-server/internal/models"
	"storyteller-server/internal/prompt"
	"storyteller-server/internal/repository"
	"storyteller-server/internal/transcript"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Defaults applied when a story is created without explicit parameters.
const (
	defaultScenarioKey   = models.ScenarioSpaceColony
	defaultCharacterName = "Commander"
	defaultCharacterRole = "Colony Leader"
)

var _ StoryService = (*storyServiceImpl)(nil)

type storyServiceImpl struct {
	sessions  repository.SessionRepository
	scenarios repository.ScenarioRepository
	assembler *prompt.Assembler
	generator Generator
	logger    *zap.Logger
}

func NewStoryService(
	sessions repository.SessionRepository,
	scenarios repository.ScenarioRepository,
	assembler *prompt.Assembler,
	generator Generator,
	logger *zap.Logger,
) StoryService {
	return &storyServiceImpl{
		sessions:  sessions,
		scenarios: scenarios,
		assembler: assembler,
		generator: generator,
		logger:    logger.Named("StoryService"),
	}
}

// CreateStory binds a scenario template to a new session. The history is
// seeded with exactly two entries: the scenario's system instructions and its
// opening narration.
func (s *storyServiceImpl) CreateStory(ctx context.Context, userID uuid.UUID, scenarioKey string, character models.Character) (*models.Session, error) {
	if scenarioKey == "" {
		scenarioKey = defaultScenarioKey
	}
	if character.Name == "" {
		character = models.Character{Name: defaultCharacterName, Role: defaultCharacterRole}
	}

	scenario, err := s.scenarios.GetByKey(ctx, scenarioKey)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &models.Session{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        models.SessionKindStory,
		Title:       fmt.Sprintf("%s's %s Adventure", character.Name, scenario.Name),
		ScenarioKey: scenario.Key,
		Character:   character,
		History: []models.Message{
			{
				ID:        uuid.New(),
				Role:      models.RoleSystem,
				Text:      scenario.SystemInstructions,
				InputType: models.InputTypeNarration,
				Timestamp: now,
			},
			{
				ID:        uuid.New(),
				Role:      models.RoleAI,
				Text:      scenario.InitialPrompt,
				InputType: models.InputTypeNarration,
				Timestamp: now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create story: %w", err)
	}

	storiesCreatedTotal.WithLabelValues(scenario.Key).Inc()
	s.logger.Info("Story created",
		zap.String("sessionID", session.ID.String()),
		zap.String("scenario", scenario.Key),
	)
	return session, nil
}

func (s *storyServiceImpl) GetStory(ctx context.Context, id, userID uuid.UUID) (*models.Session, error) {
	session, err := s.sessions.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	session.History = transcript.WithoutSystem(session.History)
	return session, nil
}

func (s *storyServiceImpl) ListStories(ctx context.Context, userID uuid.UUID) ([]models.SessionSummary, error) {
	return s.sessions.ListByUser(ctx, userID, models.SessionKindStory)
}

// SubmitAction runs one story turn. The candidate user entry participates in
// prompt assembly in memory and is only persisted, together with the AI
// reply, after generation succeeds; a failed turn leaves the transcript
// untouched.
func (s *storyServiceImpl) SubmitAction(ctx context.Context, id, userID uuid.UUID, text string, actionType models.InputType) (*models.Message, error) {
	if !models.ValidActionType(actionType) {
		return nil, fmt.Errorf("%w: unknown action type %q", models.ErrInvalidInput, actionType)
	}

	isContinue := actionType == models.InputTypeContinue
	text = strings.TrimSpace(text)
	if !isContinue && text == "" {
		return nil, fmt.Errorf("%w: action text is required", models.ErrInvalidInput)
	}

	session, err := s.sessions.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if session.Kind != models.SessionKindStory {
		return nil, models.ErrStoryNotFound
	}

	scenario, err := s.scenarios.GetByKey(ctx, session.ScenarioKey)
	if err != nil {
		return nil, err
	}

	userText := text
	if isContinue {
		userText = prompt.ContinuePlaceholder
	}

	promptText := s.assembler.BuildStoryPrompt(scenario, session.History, text, isContinue)

	generated, err := s.generator.Generate(ctx, promptText)
	if err != nil {
		s.logger.Error("Story generation failed, turn discarded",
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
		Text:      userText,
		InputType: actionType,
		Timestamp: now,
	}
	aiMsg := &models.Message{
		ID:        uuid.New(),
		SessionID: session.ID,
		Role:      models.RoleAI,
		Text:      prompt.CleanNarration(generated),
		InputType: models.InputTypeNarration,
		Timestamp: time.Now().UTC(),
	}

	if err := s.sessions.AppendTurn(ctx, session.ID, userID, userMsg, aiMsg); err != nil {
		return nil, fmt.Errorf("failed to persist story turn: %w", err)
	}

	storyTurnsTotal.WithLabelValues(string(actionType)).Inc()
	return aiMsg, nil
}

func (s *storyServiceImpl) RenameStory(ctx context.Context, id, userID uuid.UUID, title string) (*models.Session, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", models.ErrInvalidInput)
	}
	return s.sessions.Rename(ctx, id, userID, title)
}

func (s *storyServiceImpl) DeleteStory(ctx context.Context, id, userID uuid.UUID) error {
	return s.sessions.Delete(ctx, id, userID)
}
