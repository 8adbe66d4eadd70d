// Package middleware provides the HTTP middleware chain for the editor API.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"skuforge/internal/core/apperror"
	"skuforge/pkg/logger"
)

// Recovery converts a handler panic into a 500 AppError response. The
// stack trace goes to the log only; the client sees the generic internal
// error with its request id.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			logger.Error(c.Request.Context(), "request handler panicked",
				"panic", r,
				"path", c.FullPath(),
				"stack", string(debug.Stack()),
			)
			_ = c.Error(
				apperror.NewInternal(fmt.Errorf("panic: %v", r)).
					WithDetail("request_id", c.GetString("request_id")),
			)
			c.Abort()
		}()
		c.Next()
	}
}
