package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the uniform JSON wrapper returned by every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessList includes the record count alongside the data set. count is a
// pointer on the envelope so single-record responses omit it entirely.
func SuccessList(c *gin.Context, status int, data any, count int) {
	c.JSON(status, Envelope{
		Success: true,
		Data:    data,
		Count:   &count,
	})
}

func Error(c *gin.Context, status int, message string, errors any) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Errors:  errors,
	})
}
