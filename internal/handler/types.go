package handler

import (
	"time"

	"storyteller-server/internal/models"
)

type errorResponse struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token,omitempty"`
}

type updatePreferencesRequest struct {
	Avatar *string       `json:"avatar,omitempty"`
	Theme  *models.Theme `json:"theme,omitempty"`
}

type createStoryRequest struct {
	ScenarioKey string           `json:"scenario"`
	Character   models.Character `json:"character"`
}

type createStoryResponse struct {
	SessionID    string           `json:"sessionId"`
	Title        string           `json:"title"`
	Scenario     string           `json:"scenario"`
	Character    models.Character `json:"character"`
	InitialStory string           `json:"initialStory"`
	CreatedAt    time.Time        `json:"createdAt"`
}

type sessionResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Scenario  string            `json:"scenario,omitempty"`
	Character *models.Character `json:"character,omitempty"`
	History   []models.Message  `json:"history"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type submitActionRequest struct {
	Action     string           `json:"action"`
	ActionType models.InputType `json:"actionType"`
}

type storyUpdateResponse struct {
	StoryUpdate *models.Message `json:"storyUpdate"`
}

type renameStoryRequest struct {
	Title string `json:"title" binding:"required"`
}

type renameStoryResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type sendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

type chatReplyResponse struct {
	Reply *models.Message `json:"reply"`
}

type scenarioResponse struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
