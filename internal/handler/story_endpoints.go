package handler

import (
	"errors"
	"net/http"

	"storyteller-server/internal/ai"
	"storyteller-server/internal/models"
	"storyteller-server/internal/transcript"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) createStory(c *gin.Context) {
	var req createStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
		return
	}

	session, err := h.stories.CreateStory(c.Request.Context(), currentUserID(c), req.ScenarioKey, req.Character)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// History[1] is the opening narration seeded from the scenario.
	c.JSON(http.StatusCreated, createStoryResponse{
		SessionID:    session.ID.String(),
		Title:        session.Title,
		Scenario:     session.ScenarioKey,
		Character:    session.Character,
		InitialStory: session.History[1].Text,
		CreatedAt:    session.CreatedAt,
	})
}

func (h *Handler) getStory(c *gin.Context) {
	id, err := parseSessionID(c)
	if err != nil {
		return
	}

	session, err := h.stories.GetStory(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	history := session.History
	switch c.Query("view") {
	case "merged":
		history = transcript.MergeNarration(history)
	case "narration":
		history = transcript.MergeNarration(transcript.NarrationOnly(history))
	case "":
	default:
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Unknown view, expected merged or narration"})
		return
	}

	c.JSON(http.StatusOK, sessionResponse{
		ID:        session.ID.String(),
		Title:     session.Title,
		Scenario:  session.ScenarioKey,
		Character: &session.Character,
		History:   history,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	})
}

func (h *Handler) listStories(c *gin.Context) {
	stories, err := h.stories.ListStories(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stories)
}

func (h *Handler) submitAction(c *gin.Context) {
	id, err := parseSessionID(c)
	if err != nil {
		return
	}

	var req submitActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Action text is required"})
		return
	}

	update, err := h.stories.SubmitAction(c.Request.Context(), id, currentUserID(c), req.Action, req.ActionType)
	if err != nil {
		if errors.Is(err, ai.ErrGenerationFailed) {
			c.AbortWithStatusJSON(http.StatusBadGateway, errorResponse{Message: ai.StoryApology})
			return
		}
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, storyUpdateResponse{StoryUpdate: update})
}

func (h *Handler) renameStory(c *gin.Context) {
	id, err := parseSessionID(c)
	if err != nil {
		return
	}

	var req renameStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Title is required"})
		return
	}

	session, err := h.stories.RenameStory(c.Request.Context(), id, currentUserID(c), req.Title)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, renameStoryResponse{
		ID:    session.ID.String(),
		Title: session.Title,
	})
}

func (h *Handler) deleteStory(c *gin.Context) {
	id, err := parseSessionID(c)
	if err != nil {
		return
	}

	if err := h.stories.DeleteStory(c.Request.Context(), id, currentUserID(c)); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Story deleted successfully"})
}

// parseSessionID reads the :id path param. A malformed id behaves like a
// missing session so ids are not probeable.
func parseSessionID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		handleServiceError(c, models.ErrStoryNotFound)
		return uuid.Nil, err
	}
	return id, nil
}
