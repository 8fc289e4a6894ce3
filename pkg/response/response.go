package response

import (
	"net/http"

	"mis/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// Response represents the standard API envelope.
// Callers must treat Success=false as authoritative regardless of the HTTP status.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Message returns a success envelope carrying only a message
func Message(msg string) Response {
	return Response{Success: true, Message: msg}
}

// Error returns a failure envelope
func Error(msg string) Response {
	return Response{Success: false, Error: msg, Message: msg}
}

// With returns a success envelope with the payload under key, e.g. {success, projects: [...]}
func With(key string, data interface{}) gin.H {
	return gin.H{"success": true, key: data}
}

// OK writes a 200 success envelope with a message.
func OK(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Message(msg))
}

// Fail converts err into the envelope and the status of its kind.
// Anything that is not an *apperror.Error is reported as Internal with its best-effort message.
func Fail(c *gin.Context, err error) {
	c.JSON(apperror.Status(err), Error(err.Error()))
}

// Abort is Fail for middleware.
func Abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperror.Status(err), Error(err.Error()))
}
