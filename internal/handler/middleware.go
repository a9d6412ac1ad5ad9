package handler

import (
	"strings"
	"time"

	"storyteller-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const userIDKey = "user_id"

// AuthMiddleware accepts the access token either as a bearer header or as the
// "token" cookie set at login.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			handleServiceError(c, models.ErrTokenInvalid)
			return
		}

		claims, err := h.authService.VerifyToken(c.Request.Context(), tokenString)
		if err != nil {
			h.logger.Warn("Access token verification failed", zap.Error(err))
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			handleServiceError(c, err)
			return
		}

		tokenVerificationsTotal.WithLabelValues("success").Inc()
		c.Set(userIDKey, claims.UserID)
		c.Set("token", tokenString)
		c.Next()
	}
}

// RequestLogger logs every request except the health and metrics probes.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" || c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		logger.Info("Request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

func currentUserID(c *gin.Context) uuid.UUID {
	return c.MustGet(userIDKey).(uuid.UUID)
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}
