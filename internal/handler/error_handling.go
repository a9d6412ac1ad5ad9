package handler

import (
	"errors"
	"net/http"

	"storyteller-server/internal/ai"
	"storyteller-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func handleServiceError(c *gin.Context, err error) {
	var statusCode int
	var resp errorResponse

	switch {
	case errors.Is(err, models.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		resp = errorResponse{Message: err.Error()}
	case errors.Is(err, models.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		resp = errorResponse{Message: "Invalid credentials"}
	case errors.Is(err, models.ErrEmailAlreadyExists):
		statusCode = http.StatusConflict
		resp = errorResponse{Message: "User with this email already exists"}
	case errors.Is(err, models.ErrTokenInvalid), errors.Is(err, models.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		resp = errorResponse{Message: "Token is invalid or malformed"}
	case errors.Is(err, models.ErrTokenExpired):
		statusCode = http.StatusUnauthorized
		resp = errorResponse{Message: "Token has expired"}
	case errors.Is(err, models.ErrTokenRevoked):
		statusCode = http.StatusUnauthorized
		resp = errorResponse{Message: "Token has been revoked"}
	case errors.Is(err, models.ErrUserNotFound):
		statusCode = http.StatusNotFound
		resp = errorResponse{Message: "User not found"}
	case errors.Is(err, models.ErrStoryNotFound):
		statusCode = http.StatusNotFound
		resp = errorResponse{Message: "Story not found"}
	case errors.Is(err, models.ErrScenarioNotFound):
		statusCode = http.StatusNotFound
		resp = errorResponse{Message: "Scenario not found"}
	case errors.Is(err, ai.ErrGenerationFailed):
		statusCode = http.StatusBadGateway
		resp = errorResponse{Message: "Story generation is temporarily unavailable"}
	default:
		zap.L().Error("Unhandled internal error in handleServiceError", zap.Error(err))
		statusCode = http.StatusInternalServerError
		resp = errorResponse{Message: "An unexpected internal error occurred"}
	}

	c.AbortWithStatusJSON(statusCode, resp)
}
