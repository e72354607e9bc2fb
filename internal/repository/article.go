package repository

import (
	"context"
	"errors"
	"strings"

	"newsline/internal/models"

	"gorm.io/gorm"
)

// feedLimit caps feed listings.
const feedLimit = 50

// ArticleFilter narrows a feed listing. Zero values mean "no filter".
type ArticleFilter struct {
	Category string
	Search   string
	AuthorID uint
}

// ArticleRepository defines the interface for article data operations.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	List(ctx context.Context, filter ArticleFilter) ([]*models.Article, error)
	LikesCount(ctx context.Context, articleID uint) (int, error)
	GetLikedArticleIDs(ctx context.Context, userID uint, articleIDs []uint) ([]uint, error)
	ToggleLike(ctx context.Context, articleID, userID uint) (bool, error)
	CreateComment(ctx context.Context, comment *models.Comment) error
}

// articleRepository implements ArticleRepository.
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Create inserts the article and bumps the author's publications counter in
// the same transaction.
func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(article).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", article.AuthorID).
			UpdateColumn("publications_count", gorm.Expr("publications_count + 1")).Error
	})
}

func (r *articleRepository) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).
		Preload("Author").
		First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// List returns the newest articles first with author and ordered comments
// preloaded, capped at feedLimit rows.
func (r *articleRepository) List(ctx context.Context, filter ArticleFilter) ([]*models.Article, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Select("news_articles.*").
		Joins("JOIN users ON users.id = news_articles.author_id").
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Comments.Author")

	if filter.Category != "" {
		q = q.Where("news_articles.category = ?", filter.Category)
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(news_articles.title) LIKE ? OR LOWER(news_articles.content) LIKE ? OR LOWER(users.username) LIKE ?",
			like, like, like,
		)
	}
	if filter.AuthorID != 0 {
		q = q.Where("news_articles.author_id = ?", filter.AuthorID)
	}

	var articles []*models.Article
	err := q.Order("news_articles.created_at DESC").
		Limit(feedLimit).
		Find(&articles).Error
	return articles, err
}

// LikesCount reads the denormalized counter; a missing article reads as 0.
func (r *articleRepository) LikesCount(ctx context.Context, articleID uint) (int, error) {
	var article models.Article
	err := r.db.WithContext(ctx).
		Select("likes_count").
		First(&article, articleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return article.LikesCount, nil
}

// GetLikedArticleIDs returns the subset of articleIDs the user has liked,
// resolved in a single query.
func (r *articleRepository) GetLikedArticleIDs(ctx context.Context, userID uint, articleIDs []uint) ([]uint, error) {
	if len(articleIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND article_id IN ?", userID, articleIDs).
		Pluck("article_id", &ids).Error
	return ids, err
}

// ToggleLike flips the like row for (articleID, userID) and adjusts both the
// article's and the article-author's like counters. All three statements run
// in one transaction: existence check, row mutation, counter mutations.
// Returns the resulting liked state.
func (r *articleRepository) ToggleLike(ctx context.Context, articleID, userID uint) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		err := tx.Where("article_id = ? AND user_id = ?", articleID, userID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Where("article_id = ? AND user_id = ?", articleID, userID).
				Delete(&models.Like{}).Error; err != nil {
				return err
			}
			if err := adjustLikeCounters(tx, articleID, -1); err != nil {
				return err
			}
			liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.Like{ArticleID: articleID, UserID: userID}).Error; err != nil {
				return err
			}
			if err := adjustLikeCounters(tx, articleID, +1); err != nil {
				return err
			}
			liked = true
		default:
			return err
		}
		return nil
	})
	return liked, err
}

// adjustLikeCounters moves the article counter and the article-author's user
// counter by delta within the caller's transaction.
func adjustLikeCounters(tx *gorm.DB, articleID uint, delta int) error {
	if err := tx.Model(&models.Article{}).
		Where("id = ?", articleID).
		UpdateColumn("likes_count", gorm.Expr("likes_count + ?", delta)).Error; err != nil {
		return err
	}
	return tx.Exec(
		"UPDATE users SET likes_count = likes_count + ? WHERE id = (SELECT author_id FROM news_articles WHERE id = ?)",
		delta, articleID,
	).Error
}

func (r *articleRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}
