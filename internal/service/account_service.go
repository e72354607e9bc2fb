// Package service implements the application's business operations on top of
// the repository layer.
package service

import (
	"context"
	"strings"

	"newsline/internal/auth"
	"newsline/internal/models"
	"newsline/internal/repository"
	"newsline/internal/validation"
)

// AccountService handles registration, login, password change and profile
// updates.
type AccountService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries a partial profile update. Nil fields are left
// untouched.
type UpdateProfileInput struct {
	UserID       uint
	DarkTheme    *bool
	SoundEnabled *bool
	Bio          *string
}

func NewAccountService(userRepo repository.UserRepository) *AccountService {
	return &AccountService{userRepo: userRepo}
}

// Register creates a new account. The username must be unused (exact,
// case-sensitive match).
func (s *AccountService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username, err := validation.Username(username)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.Password(password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("user already exists")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		SoundEnabled: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates by username and password. An unknown username and a
// wrong password produce the same error so callers cannot tell which was
// wrong. Only emptiness is checked here; the username length bounds apply
// to registration, not to lookups.
func (s *AccountService) Login(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, models.NewValidationError("username and password are required")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, models.NewUnauthorizedError("invalid username or password")
	}
	return user, nil
}

// ChangePassword replaces the stored credential after verifying the current
// one.
func (s *AccountService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	if userID == 0 || oldPassword == "" || newPassword == "" {
		return models.NewValidationError("all fields are required")
	}
	if err := validation.Password(newPassword); err != nil {
		return models.NewValidationError("new " + err.Error())
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || !auth.VerifyPassword(oldPassword, user.PasswordHash) {
		return models.NewUnauthorizedError("current password is incorrect")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, userID, hash)
}

// UpdateProfile applies the supplied fields and returns the full public
// record. At least one field must be present.
func (s *AccountService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	if in.UserID == 0 {
		return nil, models.NewValidationError("user id is required")
	}

	fields := map[string]interface{}{}
	if in.DarkTheme != nil {
		fields["dark_theme"] = *in.DarkTheme
	}
	if in.SoundEnabled != nil {
		fields["sound_enabled"] = *in.SoundEnabled
	}
	if in.Bio != nil {
		fields["bio"] = *in.Bio
	}
	if len(fields) == 0 {
		return nil, models.NewValidationError("no fields to update")
	}

	user, err := s.userRepo.UpdateFields(ctx, in.UserID, fields)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("user", in.UserID)
	}
	return user, nil
}
