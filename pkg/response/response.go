package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the single error shape returned by every endpoint.
type ErrorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// Error writes {error: message} with the given status.
func Error(c *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, ErrorBody{Error: message})
}

// Invalid writes a 400 carrying per-field reasons.
func Invalid(c *gin.Context, message string, details map[string]string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message, Details: details})
}

// Abort writes the error body and stops the handler chain.
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: message})
}

// Message writes {message, <key>: data}. An empty key writes the message alone.
func Message(c *gin.Context, status int, message, key string, data any) {
	body := gin.H{"message": message}
	if key != "" {
		body[key] = data
	}
	c.JSON(status, body)
}
