package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stayhub-dev/stayhub/internal/server/models"
)

func (h *Handler) register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		h.abortError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user.Response())
}

func (h *Handler) login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	token, _, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *Handler) me(c *gin.Context) {
	principal := principalFrom(c)
	user, err := h.users.GetByEmail(c.Request.Context(), principal.Email)
	if err != nil {
		h.abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Response())
}

func (h *Handler) verifyToken(c *gin.Context) {
	principal := principalFrom(c)
	c.JSON(http.StatusOK, gin.H{
		"valid":   true,
		"email":   principal.Email,
		"message": "token is valid",
	})
}
