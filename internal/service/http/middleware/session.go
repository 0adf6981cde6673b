package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reusedev/imagen-studio/internal/consts"
)

const (
	sessionKey       = "session_id"
	sessionCookieAge = 30 * 24 * 3600
)

// Session resolves the caller's session from the X-Session-Id header or the
// session cookie, minting a new one when neither is present.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(consts.SessionHeader)
		if id == "" {
			id, _ = c.Cookie(consts.SessionCookie)
		}
		if id == "" {
			id = uuid.NewString()
			c.SetCookie(consts.SessionCookie, id, sessionCookieAge, "/", "", false, true)
		}
		c.Set(sessionKey, id)
		c.Header(consts.SessionHeader, id)
		c.Next()
	}
}

func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
