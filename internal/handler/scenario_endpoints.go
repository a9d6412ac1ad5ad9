package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listScenarios returns only the display fields; prompts stay server-side.
func (h *Handler) listScenarios(c *gin.Context) {
	scenarios, err := h.scenarios.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	resp := make([]scenarioResponse, 0, len(scenarios))
	for _, s := range scenarios {
		resp = append(resp, scenarioResponse{
			Key:         s.Key,
			Name:        s.Name,
			Description: s.Description,
			Image:       s.Image,
		})
	}
	c.JSON(http.StatusOK, resp)
}
