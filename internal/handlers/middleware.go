package handlers

import (
	"net/http"
	"strings"
	"time"

	"artcurator/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const identityKey = "identity"

// identityMiddleware guards protected routes: it requires a Bearer token,
// verifies it, and stores the embedded identity in the request context.
func (h *Handler) identityMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			errorBody(codeUnauthorized, "missing Authorization header"))
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			errorBody(codeUnauthorized, "invalid Authorization header format"))
		return
	}

	ident, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			errorBody(codeUnauthorized, "invalid or expired token"))
		return
	}

	c.Set(identityKey, ident)
	c.Next()
}

// identityFromContext returns the authenticated identity, or nil on
// unprotected routes.
func identityFromContext(c *gin.Context) *service.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	ident, _ := v.(*service.Identity)
	return ident
}

// requestLogger stamps each request with an id and logs the outcome.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	requestID := uuid.NewString()
	c.Header("X-Request-Id", requestID)

	c.Next()

	if h.log != nil {
		h.log.Infow("http_request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
