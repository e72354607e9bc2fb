package server

import (
	"newsline/internal/models"
	"newsline/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListArticles handles GET /api/news. Query parameters: user_id (viewer for
// the is_liked flags), category, search, author_id.
func (s *Server) ListArticles(c *fiber.Ctx) error {
	ctx := c.UserContext()

	articles, err := s.feed.ListArticles(ctx, service.ListArticlesInput{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		AuthorID: uint(c.QueryInt("author_id", 0)),
		ViewerID: uint(c.QueryInt("user_id", 0)),
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"articles": articles})
}

// HandleFeedAction handles POST /api/news. The request body selects the
// operation through its action field: create, like or comment.
func (s *Server) HandleFeedAction(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Action    string `json:"action"`
		Title     string `json:"title"`
		Content   string `json:"content"`
		Category  string `json:"category"`
		AuthorID  uint   `json:"author_id"`
		ArticleID uint   `json:"article_id"`
		UserID    uint   `json:"user_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	switch req.Action {
	case "create":
		article, err := s.feed.CreateArticle(ctx, service.CreateArticleInput{
			Title:    req.Title,
			Content:  req.Content,
			Category: req.Category,
			AuthorID: req.AuthorID,
		})
		if err != nil {
			return models.RespondWithError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"article": article})

	case "like":
		result, err := s.feed.ToggleLike(ctx, req.ArticleID, req.UserID)
		if err != nil {
			return models.RespondWithError(c, err)
		}
		return c.JSON(result)

	case "comment":
		comment, err := s.feed.AddComment(ctx, req.ArticleID, req.AuthorID, req.Content)
		if err != nil {
			return models.RespondWithError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})

	default:
		return models.RespondWithError(c, models.NewMethodNotAllowedError())
	}
}
