package handler

import (
	"studyhub/dto"
	"studyhub/model"
	"studyhub/services"
	"studyhub/usecase"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

func RegistrationHandler(c *gin.Context, userService *usecase.UsersService) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "register")
		utils.BadRequest(c, "Invalid registration request")
		return
	}

	user, err := userService.Register(c.Request.Context(), &req)
	if err != nil {
		utils.TrackAuthAttempt("failure", "register")
		respondServiceError(c, err)
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}
	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	utils.TrackAuthAttempt("success", "register")
	utils.Created(c, "Account created successfully", gin.H{
		"user":    dto.ToUserProfileResponse(user),
		"token":   token,
		"refresh": refreshToken,
	})
}
