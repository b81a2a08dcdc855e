package handler

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"log"

	"studyhub/middleware"
	"studyhub/repository"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

// Setup2FAHandler generates a TOTP secret and QR code. Nothing is persisted
// until the user proves possession via Enable2FAHandler.
func Setup2FAHandler(c *gin.Context, usersRepo *repository.UsersRepo) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		utils.Unauthorized(c, "Not authenticated")
		return
	}

	accountName := identity.UserID
	if identity.User != nil {
		accountName = identity.User.Email
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "StudyHub",
		AccountName: accountName,
	})
	if err != nil {
		log.Printf("failed to generate TOTP key: %v", err)
		utils.InternalError(c, "Failed to generate 2FA secret")
		return
	}

	img, err := key.Image(200, 200)
	if err != nil {
		utils.InternalError(c, "Failed to render QR code")
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		utils.InternalError(c, "Failed to render QR code")
		return
	}

	utils.Success(c, "Scan the QR code, then confirm with a code to enable 2FA", gin.H{
		"secret":      key.Secret(),
		"otpauth_url": key.URL(),
		"qr_code":     "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
}

// Enable2FAHandler verifies the first code against the pending secret and
// turns 2FA on, returning single-use recovery codes exactly once.
func Enable2FAHandler(c *gin.Context, usersRepo *repository.UsersRepo) {
	var req struct {
		Secret string `json:"secret" binding:"required"`
		Code   string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Secret and code are required")
		return
	}

	userID := c.GetString(middleware.ContextUserIDKey)
	user, err := usersRepo.FindUser(c.Request.Context(), userID)
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}
	if user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is already enabled")
		return
	}

	if !totp.Validate(req.Code, req.Secret) {
		utils.TrackAuthAttempt("failure", "2fa")
		utils.BadRequest(c, "Invalid 2FA code")
		return
	}

	recoveryCodes, err := utils.GenerateRecoveryCodes()
	if err != nil {
		utils.InternalError(c, "Failed to generate recovery codes")
		return
	}

	if err := usersRepo.Enable2FA(c.Request.Context(), userID, req.Secret, utils.HashRecoveryCodes(recoveryCodes)); err != nil {
		utils.InternalError(c, "Failed to enable 2FA")
		return
	}

	utils.TrackAuthAttempt("success", "2fa")
	utils.Success(c, "2FA enabled successfully", gin.H{
		"recovery_codes": recoveryCodes,
		"warning":        "Save these recovery codes securely. They will not be shown again.",
	})
}

// Disable2FAHandler turns 2FA off after verifying a current code.
func Disable2FAHandler(c *gin.Context, usersRepo *repository.UsersRepo) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "A current 2FA code is required")
		return
	}

	userID := c.GetString(middleware.ContextUserIDKey)
	user, err := usersRepo.FindUser(c.Request.Context(), userID)
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}
	if !user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is not enabled")
		return
	}

	if !totp.Validate(req.Code, user.TwoFactorSecret) {
		utils.TrackAuthAttempt("failure", "2fa")
		utils.BadRequest(c, "Invalid 2FA code")
		return
	}

	if err := usersRepo.Disable2FA(c.Request.Context(), userID); err != nil {
		utils.InternalError(c, "Failed to disable 2FA")
		return
	}

	utils.Success(c, "2FA disabled successfully", nil)
}
