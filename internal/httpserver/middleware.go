package httpserver

import (
	"context"
	"net/http"
	"strings"

	"orderahead/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ctxKey string

const userCtxKey ctxKey = "authenticated-user"

const requestIDHeader = "X-Request-Id"

// requestIDMiddleware tags every request with an id, honoring one supplied
// by the caller so ids survive proxies.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// authMiddleware validates the Bearer token and places the user on the
// request context. Any failure is a uniform 401.
func authMiddleware(users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		parts := strings.SplitN(authz, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			respondFail(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}

		u, err := users.LookupByToken(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			respondFail(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), userCtxKey, u)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// currentUser pulls the authenticated user placed by authMiddleware.
func currentUser(c *gin.Context) (*domain.User, bool) {
	u, ok := c.Request.Context().Value(userCtxKey).(*domain.User)
	return u, ok
}
