package service

import (
	"context"

	"storyteller-server/internal/models"

	"github.com/google/uuid"
)

// Generator produces continuation text for a fully-formed prompt. Satisfied
// by the ai.Orchestrator.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// StoryService is the business logic of interactive stories.
type StoryService interface {
	// CreateStory starts a new story from a scenario template. Empty
	// scenarioKey and character fall back to the defaults.
	CreateStory(ctx context.Context, userID uuid.UUID, scenarioKey string, character models.Character) (*models.Session, error)
	// GetStory returns the story with system entries filtered out of the
	// history.
	GetStory(ctx context.Context, id, userID uuid.UUID) (*models.Session, error)
	ListStories(ctx context.Context, userID uuid.UUID) ([]models.SessionSummary, error)
	// SubmitAction appends the user's turn and the generated reply, returning
	// only the new AI message. Nothing is persisted if generation fails.
	SubmitAction(ctx context.Context, id, userID uuid.UUID, text string, actionType models.InputType) (*models.Message, error)
	RenameStory(ctx context.Context, id, userID uuid.UUID, title string) (*models.Session, error)
	DeleteStory(ctx context.Context, id, userID uuid.UUID) error
}

// ChatService is the business logic of plain chat threads.
type ChatService interface {
	CreateChat(ctx context.Context, userID uuid.UUID) (*models.Session, error)
	GetChat(ctx context.Context, id, userID uuid.UUID) (*models.Session, error)
	ListChats(ctx context.Context, userID uuid.UUID) ([]models.SessionSummary, error)
	// SendMessage appends the user message and the generated reply, returning
	// only the new AI message.
	SendMessage(ctx context.Context, id, userID uuid.UUID, text string) (*models.Message, error)
	DeleteChat(ctx context.Context, id, userID uuid.UUID) error
}
