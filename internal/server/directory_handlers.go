package server

import (
	"newsline/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListUsers handles GET /api/users. Query parameters: current_user_id (viewer
// for the is_subscribed flags), search.
func (s *Server) ListUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	users, err := s.directory.ListUsers(ctx, c.Query("search"), uint(c.QueryInt("current_user_id", 0)))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// HandleDirectoryAction handles POST /api/users. The only supported action is
// subscribe, which toggles the subscription state.
func (s *Server) HandleDirectoryAction(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Action       string `json:"action"`
		SubscriberID uint   `json:"subscriber_id"`
		AuthorID     uint   `json:"author_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	switch req.Action {
	case "subscribe":
		result, err := s.directory.ToggleSubscription(ctx, req.SubscriberID, req.AuthorID)
		if err != nil {
			return models.RespondWithError(c, err)
		}
		return c.JSON(result)

	default:
		return models.RespondWithError(c, models.NewMethodNotAllowedError())
	}
}
