package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) getMe(c *gin.Context) {
	user, err := h.authService.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) updatePreferences(c *gin.Context) {
	var req updatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
		return
	}

	user, err := h.authService.UpdatePreferences(c.Request.Context(), currentUserID(c), req.Avatar, req.Theme)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
