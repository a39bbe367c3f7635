package service

import (
	"errors"

	"github.com/bkaraca/taskhive/internal/models"
	"github.com/bkaraca/taskhive/internal/repository"
	"github.com/bkaraca/taskhive/internal/utils"
	"github.com/bkaraca/taskhive/pkg/logger"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrWrongOldPassword = errors.New("old password is incorrect")
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile returns the caller's own record. The hash never serializes
// (json:"-" on the model), so handlers can respond with it directly.
func (s *UserService) GetProfile(principal models.Principal) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(principal.ID)
	if err != nil {
		logger.Log.Error("Failed to fetch user profile",
			zap.Uint("user_id", principal.ID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ChangePassword verifies the old password before replacing the hash.
func (s *UserService) ChangePassword(principal models.Principal, oldPassword, newPassword string) error {
	if len(newPassword) < 6 || len(newPassword) > 100 {
		return errors.New("new password must be between 6 and 100 characters")
	}

	user, err := s.userRepo.GetUserByID(principal.ID)
	if err != nil {
		logger.Log.Error("Failed to fetch user for password change",
			zap.Uint("user_id", principal.ID),
			zap.Error(err),
		)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if !utils.VerifyPassword(oldPassword, user.PasswordHash) {
		logger.Log.Warn("Password change failed: wrong old password",
			zap.Uint("user_id", principal.ID),
		)
		return ErrWrongOldPassword
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		logger.Log.Error("Failed to hash new password",
			zap.Uint("user_id", principal.ID),
			zap.Error(err),
		)
		return err
	}

	if err := s.userRepo.UpdatePasswordHash(user.ID, newHash); err != nil {
		logger.Log.Error("Failed to store new password hash",
			zap.Uint("user_id", principal.ID),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Password changed", zap.Uint("user_id", user.ID))
	return nil
}

// UpdatePhoneNumber replaces the caller's phone number.
func (s *UserService) UpdatePhoneNumber(principal models.Principal, phoneNumber string) error {
	if len(phoneNumber) < 10 || len(phoneNumber) > 15 {
		return errors.New("phone number must be between 10 and 15 characters")
	}

	user, err := s.userRepo.GetUserByID(principal.ID)
	if err != nil {
		logger.Log.Error("Failed to fetch user for phone update",
			zap.Uint("user_id", principal.ID),
			zap.Error(err),
		)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.userRepo.UpdatePhoneNumber(user.ID, phoneNumber); err != nil {
		logger.Log.Error("Failed to update phone number",
			zap.Uint("user_id", principal.ID),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Phone number updated", zap.Uint("user_id", user.ID))
	return nil
}
