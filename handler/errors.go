package handler

import (
	"errors"
	"log"

	"studyhub/repository"
	"studyhub/usecase"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service errors onto the wire taxonomy. Anything
// unrecognized is logged in full and surfaced as a generic 500.
func respondServiceError(c *gin.Context, err error) {
	var validationErr usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, usecase.ErrPayloadTooLarge):
		utils.PayloadTooLarge(c, "Content exceeds the 100000 byte limit")
	case errors.Is(err, repository.ErrNotFound):
		utils.NotFound(c, "Record not found")
	case errors.Is(err, usecase.ErrForbidden):
		utils.Forbidden(c, "You do not own this record")
	case errors.Is(err, usecase.ErrEmailTaken), errors.Is(err, usecase.ErrUsernameTaken):
		utils.Conflict(c, err.Error())
	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrTwoFactorRequired),
		errors.Is(err, usecase.ErrTwoFactorInvalid):
		utils.Unauthorized(c, err.Error())
	default:
		log.Printf("unhandled service error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		utils.TrackError("handler", c.FullPath())
		utils.InternalError(c, "Something went wrong")
	}
}
