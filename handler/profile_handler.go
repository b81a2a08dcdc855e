package handler

import (
	"studyhub/dto"
	"studyhub/middleware"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

// ProfileHandler returns the authenticated caller's profile. A token-only
// identity (verified credential, no backing record) reports just the id.
func ProfileHandler(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		utils.Unauthorized(c, "Not authenticated")
		return
	}

	if identity.User == nil {
		utils.Success(c, "", gin.H{"user_id": identity.UserID})
		return
	}

	utils.Success(c, "", gin.H{"user": dto.ToUserProfileResponse(identity.User)})
}
