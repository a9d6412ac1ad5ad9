package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 7 days, matches the token TTL.
const tokenCookieMaxAge = 7 * 24 * 60 * 60

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Email and password are required"})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Email and password are required"})
		return
	}

	user, td, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// Возвращаем токен и в куке, и в теле: SPA использует куку, мобильные
	// клиенты берут его из ответа.
	c.SetCookie("token", td.AccessToken, tokenCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, authResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Token: td.AccessToken,
	})
}

func (h *Handler) logout(c *gin.Context) {
	tokenString := c.GetString("token")
	if err := h.authService.Logout(c.Request.Context(), tokenString); err != nil {
		handleServiceError(c, err)
		return
	}

	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully"})
}
