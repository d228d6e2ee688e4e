package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is an application error carrying the HTTP status it should be
// surfaced with.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error { return New(http.StatusBadRequest, message) }
func NotFound(message string) *Error   { return New(http.StatusNotFound, message) }
func Forbidden(message string) *Error  { return New(http.StatusForbidden, message) }
func Conflict(message string) *Error   { return New(http.StatusConflict, message) }

func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Internal server error", Err: err}
}

// Respond writes err as a JSON body with its HTTP status. Errors that are
// not *Error become a 500 without leaking the underlying message.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Internal(err)
	}
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
