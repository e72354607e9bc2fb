package server

import (
	"newsline/internal/models"
	"newsline/internal/service"

	"github.com/gofiber/fiber/v2"
)

// HandleAccountAction handles POST /api/auth. The request body selects the
// operation through its action field: register, login or change_password.
func (s *Server) HandleAccountAction(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Action      string `json:"action"`
		Username    string `json:"username"`
		Password    string `json:"password"`
		UserID      uint   `json:"user_id"`
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	switch req.Action {
	case "register":
		user, err := s.accounts.Register(ctx, req.Username, req.Password)
		if err != nil {
			return models.RespondWithError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})

	case "login":
		user, err := s.accounts.Login(ctx, req.Username, req.Password)
		if err != nil {
			return models.RespondWithError(c, err)
		}
		return c.JSON(fiber.Map{"user": user})

	case "change_password":
		if err := s.accounts.ChangePassword(ctx, req.UserID, req.OldPassword, req.NewPassword); err != nil {
			return models.RespondWithError(c, err)
		}
		return c.JSON(fiber.Map{"message": "password changed"})

	default:
		return models.RespondWithError(c, models.NewMethodNotAllowedError())
	}
}

// UpdateProfile handles PUT /api/auth. Only the supplied fields are updated;
// at least one updatable field is required.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		UserID       uint    `json:"user_id"`
		DarkTheme    *bool   `json:"dark_theme"`
		SoundEnabled *bool   `json:"sound_enabled"`
		Bio          *string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.accounts.UpdateProfile(ctx, service.UpdateProfileInput{
		UserID:       req.UserID,
		DarkTheme:    req.DarkTheme,
		SoundEnabled: req.SoundEnabled,
		Bio:          req.Bio,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}
