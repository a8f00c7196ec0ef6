package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stayhub-dev/stayhub/internal/server/auth"
)

const principalKey = "httpapi.principal"

// bearerToken pulls the raw token out of the Authorization header. An
// absent or malformed header yields the empty string, which the guard
// rejects as unauthenticated.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := h.guard.RequireAuthenticated(bearerToken(c))
		if err != nil {
			h.abortError(c, err)
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

func (h *Handler) adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := h.guard.RequireRole(bearerToken(c), auth.RoleAdmin)
		if err != nil {
			h.abortError(c, err)
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// principalFrom returns the authenticated principal stored by the auth
// middleware. Calling it on an unguarded route is a programming error.
func principalFrom(c *gin.Context) auth.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "not authenticated"})
		return auth.Principal{}
	}
	return *v.(*auth.Principal)
}

// corsMiddleware keeps the API reachable from browser frontends during
// development. Credentialed requests are not needed, so a wildcard is fine.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
