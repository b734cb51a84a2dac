package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/hogpulse/internal/domain/dto"
	"github.com/guttosm/hogpulse/internal/logger"
)

// RecoveryMiddleware returns a Gin middleware that recovers from panics in handlers.
//
// Behavior:
//   - Logs the panic value, the request id and the stack trace at error level.
//   - Responds 500 with a generic dto.ErrorResponse; the panic value is not exposed.
//
// Example:
//
//	router := gin.New()
//	router.Use(middleware.RecoveryMiddleware())
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				rid, _ := c.Get(RequestIDKey)
				logger.Ctx(c.Request.Context()).Error().
					Str("panic", fmt.Sprintf("%v", r)).
					Str("request_id", toString(rid)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", nil))
			}
		}()

		c.Next()
	}
}
