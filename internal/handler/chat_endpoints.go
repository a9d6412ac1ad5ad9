package handler

import (
	"errors"
	"net/http"

	"storyteller-server/internal/ai"

	"github.com/gin-gonic/gin"
)

func (h *Handler) createChat(c *gin.Context) {
	session, err := h.chats.CreateChat(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sessionResponse{
		ID:        session.ID.String(),
		Title:     session.Title,
		History:   session.History,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	})
}

func (h *Handler) getChat(c *gin.Context) {
	id, err := parseSessionID(c)
	if err != nil {
		return
	}

	session, err := h.chats.GetChat(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse{
		ID:        session.ID.String(),
		Title:     session.Title,
		History:   session.History,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	})
}

func (h *Handler) listChats(c *gin.Context) {
	chats, err := h.chats.ListChats(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, chats)
}

func (h *Handler) sendChatMessage(c *gin.Context) {
	id, err := parseSessionID(c)
	if err != nil {
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Message text is required"})
		return
	}

	reply, err := h.chats.SendMessage(c.Request.Context(), id, currentUserID(c), req.Text)
	if err != nil {
		if errors.Is(err, ai.ErrGenerationFailed) {
			c.AbortWithStatusJSON(http.StatusBadGateway, errorResponse{Message: ai.ChatApology})
			return
		}
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, chatReplyResponse{Reply: reply})
}

func (h *Handler) deleteChat(c *gin.Context) {
	id, err := parseSessionID(c)
	if err != nil {
		return
	}

	if err := h.chats.DeleteChat(c.Request.Context(), id, currentUserID(c)); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Chat deleted successfully"})
}
