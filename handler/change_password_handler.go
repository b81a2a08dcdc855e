package handler

import (
	"studyhub/middleware"
	"studyhub/usecase"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

func ChangePasswordHandler(c *gin.Context, userService *usecase.UsersService) {
	var req struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Both old and new passwords are required")
		return
	}

	userID := c.GetString(middleware.ContextUserIDKey)
	if err := userService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "Password changed successfully", nil)
}
