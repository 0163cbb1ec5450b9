package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/elaibiton11/colman-web-development-assignments/pkg/logger"
	"github.com/gin-gonic/gin"
)

const UserIDCtx = "user_id"

type AccessVerifier interface {
	VerifyAccess(ctx context.Context, token string) (string, error)
}

type AuthMiddlewareProvider struct {
	log     logger.Log
	service AccessVerifier
}

func NewAuthMiddlewareProvider(log logger.Log, s AccessVerifier) *AuthMiddlewareProvider {
	return &AuthMiddlewareProvider{
		log:     log,
		service: s,
	}
}

// AuthMiddleware gates every protected route: a missing bearer token aborts
// with 401, a present but unverifiable one with 403, and the handler never
// runs in either case. On success the caller's user id is attached to the
// request context.
func (h *AuthMiddlewareProvider) AuthMiddleware(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	var token string
	if parts := strings.Split(authHeader, "Bearer "); len(parts) == 2 {
		token = parts[1]
	}
	if token == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	userID, err := h.service.VerifyAccess(c.Request.Context(), token)
	if err != nil {
		h.log.Debug("rejected access token", "path", c.Request.URL.Path, logger.Err(err))
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid access token"})
		return
	}

	c.Set(UserIDCtx, userID)
	c.Next()
}

// CallerID reads the authenticated user id attached by AuthMiddleware.
func CallerID(c *gin.Context) (string, bool) {
	raw, exists := c.Get(UserIDCtx)
	if !exists {
		return "", false
	}
	id, ok := raw.(string)
	return id, ok && id != ""
}
