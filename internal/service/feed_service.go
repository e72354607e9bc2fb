package service

import (
	"context"
	"strings"
	"time"

	"newsline/internal/models"
	"newsline/internal/repository"
	"newsline/internal/timeago"
)

// excerptLimit is the maximum excerpt length in characters before the
// ellipsis marker is appended.
const excerptLimit = 200

// FeedService handles article listing, creation, like toggling and comments.
type FeedService struct {
	articleRepo repository.ArticleRepository
	userRepo    repository.UserRepository
	labels      timeago.Labels
	now         func() time.Time
}

// ListArticlesInput narrows a feed listing. ViewerID controls the is_liked
// flags; zero means anonymous.
type ListArticlesInput struct {
	Category string
	Search   string
	AuthorID uint
	ViewerID uint
}

// CreateArticleInput carries a new publication.
type CreateArticleInput struct {
	Title    string
	Content  string
	Category string
	AuthorID uint
}

// ToggleLikeResult is the post-commit outcome of a like toggle.
type ToggleLikeResult struct {
	IsLiked    bool `json:"is_liked"`
	LikesCount int  `json:"likes_count"`
}

func NewFeedService(articleRepo repository.ArticleRepository, userRepo repository.UserRepository, labels timeago.Labels) *FeedService {
	return &FeedService{
		articleRepo: articleRepo,
		userRepo:    userRepo,
		labels:      labels,
		now:         time.Now,
	}
}

// ListArticles returns the newest articles first with relative-time labels,
// per-viewer liked flags and nested comments attached.
func (s *FeedService) ListArticles(ctx context.Context, in ListArticlesInput) ([]*models.Article, error) {
	articles, err := s.articleRepo.List(ctx, repository.ArticleFilter{
		Category: in.Category,
		Search:   in.Search,
		AuthorID: in.AuthorID,
	})
	if err != nil {
		return nil, err
	}

	if in.ViewerID != 0 && len(articles) > 0 {
		ids := make([]uint, 0, len(articles))
		for _, a := range articles {
			ids = append(ids, a.ID)
		}
		likedIDs, err := s.articleRepo.GetLikedArticleIDs(ctx, in.ViewerID, ids)
		if err != nil {
			return nil, err
		}
		liked := make(map[uint]bool, len(likedIDs))
		for _, id := range likedIDs {
			liked[id] = true
		}
		for _, a := range articles {
			a.IsLiked = liked[a.ID]
		}
	}

	now := s.now()
	for _, a := range articles {
		a.TimeAgo = s.labels.Format(now, a.CreatedAt)
		if a.Comments == nil {
			a.Comments = []models.Comment{}
		}
		for i := range a.Comments {
			a.Comments[i].TimeAgo = s.labels.Format(now, a.Comments[i].CreatedAt)
		}
	}

	return articles, nil
}

// CreateArticle inserts a publication and bumps the author's publications
// counter atomically. The excerpt is the first 200 characters of the content
// plus an ellipsis marker when the content is longer.
func (s *FeedService) CreateArticle(ctx context.Context, in CreateArticleInput) (*models.Article, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	category := strings.TrimSpace(in.Category)
	if title == "" || content == "" || category == "" || in.AuthorID == 0 {
		return nil, models.NewValidationError("all fields are required")
	}

	article := &models.Article{
		Title:    title,
		Content:  content,
		Excerpt:  Excerpt(content),
		Category: category,
		AuthorID: in.AuthorID,
	}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	article.TimeAgo = s.labels.Format(s.now(), article.CreatedAt)
	article.Comments = []models.Comment{}
	return article, nil
}

// ToggleLike flips the liked state for (articleID, userID). The returned
// counter is re-read after the transaction commits, so a concurrent toggle
// may make it one step stale.
func (s *FeedService) ToggleLike(ctx context.Context, articleID, userID uint) (*ToggleLikeResult, error) {
	if articleID == 0 || userID == 0 {
		return nil, models.NewValidationError("article id and user id are required")
	}

	liked, err := s.articleRepo.ToggleLike(ctx, articleID, userID)
	if err != nil {
		return nil, err
	}

	count, err := s.articleRepo.LikesCount(ctx, articleID)
	if err != nil {
		return nil, err
	}
	return &ToggleLikeResult{IsLiked: liked, LikesCount: count}, nil
}

// AddComment inserts a comment and composes the returned payload with the
// author's display fields and a relative-time label.
func (s *FeedService) AddComment(ctx context.Context, articleID, authorID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if articleID == 0 || authorID == 0 || content == "" {
		return nil, models.NewValidationError("all fields are required")
	}

	// Resolve the author before inserting so a bad author id leaves no row.
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, models.NewNotFoundError("user", authorID)
	}

	comment := &models.Comment{
		ArticleID: articleID,
		AuthorID:  authorID,
		Content:   content,
	}
	if err := s.articleRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	comment.Author = *author
	comment.TimeAgo = s.labels.Format(s.now(), comment.CreatedAt)
	return comment, nil
}

// Excerpt returns the first 200 characters of content, with an ellipsis
// marker appended when the content is longer. Lengths count characters, not
// bytes.
func Excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLimit {
		return content
	}
	return string(runes[:excerptLimit]) + "..."
}
