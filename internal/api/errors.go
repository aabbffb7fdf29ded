package api

import (
	"errors"
	"net/http"

	"fitlife/internal/logger"

	"github.com/gin-gonic/gin"
)

// Error is a failure that is safe to show to the client as-is.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Message: msg}
}

// Fail writes err as a JSON error body. Errors outside the taxonomy are
// logged and reported as a generic server error.
func Fail(c *gin.Context, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, ErrorResponse{Message: apiErr.Message})
		return
	}

	l := logger.WithError(err)
	l.Error().
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Msg("request failed")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Server error"})
}

// Abort is Fail for middleware: the remaining handlers are skipped.
func Abort(c *gin.Context, err error) {
	Fail(c, err)
	c.Abort()
}
