package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/hogpulse/internal/domain/dto"
	"github.com/guttosm/hogpulse/internal/domain/errs"
	"github.com/guttosm/hogpulse/internal/logger"
)

// ErrorHandler renders the last error pushed with c.Error as a dto.ErrorResponse.
//
// Behavior:
//   - Runs after the handler chain; does nothing when no error was recorded or a body was already written.
//   - Maps the error taxonomy to a status: ValidationError 400, ErrUnauthorized 401,
//     ErrNotFound 404, ErrConflict 409, anything else 500.
//   - 500 responses carry a generic message; the cause is logged, not returned.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	err := c.Errors.Last().Err
	status, body := Render(err)
	if status >= http.StatusInternalServerError {
		rid, _ := c.Get(RequestIDKey)
		logger.L().Error().Err(err).Str("request_id", toString(rid)).Str("path", c.FullPath()).Msg("request failed")
	}
	c.AbortWithStatusJSON(status, body)
}

// Render maps err to its HTTP status and response body.
func Render(err error) (int, dto.ErrorResponse) {
	var v *errs.ValidationError
	switch {
	case errors.As(err, &v):
		return http.StatusBadRequest, dto.NewValidationResponse(v)
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized", err)
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, dto.NewErrorResponse("Not found", err)
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, dto.NewErrorResponse("Conflict", err)
	default:
		return http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", nil)
	}
}

// AbortWithError stops the chain and writes a JSON error with the given status.
//
// Parameters:
//   - c: the request context.
//   - status: HTTP status code to return.
//   - message: summary shown to the client.
//   - err: optional cause; its text goes into the "error" field.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
