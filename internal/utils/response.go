package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"requestId"`
}

// JSON writes data as the response body. Success bodies are unwrapped so the
// admin console can consume them directly.
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Error writes an error response with provided API error code and message.
func Error(c *gin.Context, code int, errCode, message string) {
	c.JSON(code, ErrorBody{
		Error:     message,
		Code:      errCode,
		RequestID: getRequestID(c),
	})
}

func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return uuid.New().String()[:8]
}
