package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/imagen-studio/internal/modules/logs"
)

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logs.Logger.Info().Str("method", method).
			Str("path", path).
			Str("client_ip", c.ClientIP()).
			Str("session_id", c.GetString(sessionKey)).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request log")
	}
}
