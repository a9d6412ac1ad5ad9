package handler

import (
	"storyteller-server/internal/auth"
	"storyteller-server/internal/repository"
	"storyteller-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler wires the HTTP surface to the services.
type Handler struct {
	authService auth.AuthService
	stories     service.StoryService
	chats       service.ChatService
	scenarios   repository.ScenarioRepository
	logger      *zap.Logger
}

func NewHandler(
	authService auth.AuthService,
	stories service.StoryService,
	chats service.ChatService,
	scenarios repository.ScenarioRepository,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		authService: authService,
		stories:     stories,
		chats:       chats,
		scenarios:   scenarios,
		logger:      logger.Named("Handler"),
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
		authGroup.POST("/logout", h.AuthMiddleware(), h.logout)
	}

	api := router.Group("/api")
	api.Use(h.AuthMiddleware())
	{
		api.GET("/users/me", h.getMe)
		api.PUT("/users/preferences", h.updatePreferences)

		api.GET("/scenarios", h.listScenarios)

		api.GET("/stories", h.listStories)
		api.POST("/stories", h.createStory)
		api.GET("/stories/:id", h.getStory)
		api.POST("/stories/:id/action", h.submitAction)
		api.PUT("/stories/:id/title", h.renameStory)
		api.DELETE("/stories/:id", h.deleteStory)

		api.GET("/chat", h.listChats)
		api.POST("/chat", h.createChat)
		api.GET("/chat/:id", h.getChat)
		api.POST("/chat/:id/message", h.sendChatMessage)
		api.DELETE("/chat/:id", h.deleteChat)
	}
}
