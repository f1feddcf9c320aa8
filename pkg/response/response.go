// Package response centralizes the JSON shapes the HTTP API answers with.
package response

import "github.com/gin-gonic/gin"

// ErrorBody is the common error payload.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error writes a JSON error body with the given status code.
func Error(c *gin.Context, status int, message, details string) {
	c.JSON(status, ErrorBody{
		Code:    status,
		Message: message,
		Details: details,
	})
}

// AbortError writes a JSON error body and aborts the handler chain.
func AbortError(c *gin.Context, status int, message, details string) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Code:    status,
		Message: message,
		Details: details,
	})
}
