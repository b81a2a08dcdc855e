package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the error envelope: {success: false, message}.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// envelope builds a success body with payload keys spread next to
// success/message rather than nested under a wrapper key.
func envelope(message string, payload gin.H) gin.H {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for key, value := range payload {
		body[key] = value
	}
	return body
}

// Success responses
func Success(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusOK, envelope(message, payload))
}

func Created(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusCreated, envelope(message, payload))
}

// Error responses
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, &Response{
		Success: false,
		Message: message,
	})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, &Response{
		Success: false,
		Message: message,
	})
}

func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, &Response{
		Success: false,
		Message: message,
	})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, &Response{
		Success: false,
		Message: message,
	})
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, &Response{
		Success: false,
		Message: message,
	})
}

func PayloadTooLarge(c *gin.Context, message string) {
	c.JSON(http.StatusRequestEntityTooLarge, &Response{
		Success: false,
		Message: message,
	})
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, &Response{
		Success: false,
		Message: message,
	})
}
