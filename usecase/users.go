package usecase

import (
	"context"
	"time"

	"studyhub/model"
	"studyhub/repository"
	"studyhub/services"
	"studyhub/utils"

	"github.com/pquerna/otp/totp"
)

type UsersService struct {
	UsersRepo *repository.UsersRepo
}

// Register creates a user after uniqueness checks and password hashing.
func (svc *UsersService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	existing, err := svc.UsersRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	existing, err = svc.UsersRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:    utils.NewID(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		Role:      "student",
		CreatedAt: time.Now(),
	}

	if err := svc.UsersRepo.AddUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials and, when the account has 2FA enabled,
// a TOTP code or a one-time recovery code.
func (svc *UsersService) Authenticate(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	user, err := svc.UsersRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := services.VerifyPassword(user.Password, req.Password)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	if user.TwoFactorEnabled {
		if err := svc.checkSecondFactor(ctx, user, req); err != nil {
			return nil, err
		}
	}

	return user, nil
}

func (svc *UsersService) checkSecondFactor(ctx context.Context, user *model.User, req *model.LoginRequest) error {
	if req.TwoFactorCode == "" && req.RecoveryCode == "" {
		return ErrTwoFactorRequired
	}

	if req.TwoFactorCode != "" {
		if totp.Validate(req.TwoFactorCode, user.TwoFactorSecret) {
			return nil
		}
		return ErrTwoFactorInvalid
	}

	used, remaining := utils.VerifyRecoveryCode(req.RecoveryCode, user.RecoveryCodes)
	if !used {
		return ErrTwoFactorInvalid
	}
	// Recovery codes are single-use
	return svc.UsersRepo.UpdateRecoveryCodes(ctx, user.UserID, remaining)
}

// ChangePassword verifies the current password before writing the new hash.
func (svc *UsersService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := svc.UsersRepo.FindUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidCredentials
	}

	ok, err := services.VerifyPassword(user.Password, oldPassword)
	if err != nil || !ok {
		return ErrInvalidCredentials
	}

	if !utils.ValidatePassword(newPassword) {
		return ValidationError("password must be at least 8 characters with upper, lower and digit")
	}

	hashed, err := services.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return svc.UsersRepo.UpdatePassword(ctx, userID, hashed)
}
