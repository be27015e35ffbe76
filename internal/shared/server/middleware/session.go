package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobjotter/internal/shared/server/respond"
)

const (
	// SessionHeader carries the anonymous session identifier.
	SessionHeader = "X-Session-Id"

	sessionIDKey     = "sessionId"
	maxSessionIDSize = 128
)

// Session scopes every request to an anonymous session. A missing header
// starts a new session; the id is echoed back so clients can reuse it.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		id := strings.TrimSpace(c.GetHeader(SessionHeader))
		if id == "" {
			id = uuid.NewString()
		} else if !validSessionID(id) {
			respond.Error(c, http.StatusBadRequest, "invalid_session", "X-Session-Id must be 1-128 letters, digits, '-' or '_'", nil)
			return
		}

		c.Set(sessionIDKey, id)
		c.Writer.Header().Set(SessionHeader, id)
		c.Next()
	}
}

// SessionIDFromContext fetches the session ID set by the Session middleware.
func SessionIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(sessionIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

func validSessionID(id string) bool {
	if len(id) > maxSessionIDSize {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
