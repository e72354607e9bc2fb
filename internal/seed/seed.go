// Package seed populates the database with demo data whose denormalized
// counters match the underlying rows.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"newsline/internal/auth"
	"newsline/internal/models"
	"newsline/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultPassword is the login password for every seeded account.
const DefaultPassword = "password123"

var categories = []string{"tech", "science", "sports", "culture", "economy"}

// Options controls the amount of generated data.
type Options struct {
	Users    int
	Articles int
}

// Run generates users, articles, comments, likes and subscriptions, then
// recomputes every counter from the rows so the aggregates start consistent.
func Run(db *gorm.DB, opts Options) error {
	if opts.Users <= 0 {
		opts.Users = 15
	}
	if opts.Articles <= 0 {
		opts.Articles = 40
	}

	hash, err := auth.HashPassword(DefaultPassword)
	if err != nil {
		return err
	}

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user := &models.User{
			Username:     fmt.Sprintf("%s_%s", gofakeit.Username(), uuid.NewString()[:8]),
			PasswordHash: hash,
			AvatarURL:    gofakeit.ImageURL(128, 128),
			Bio:          gofakeit.Sentence(8),
			SoundEnabled: true,
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("seeding user: %w", err)
		}
		users = append(users, user)
	}

	articles := make([]*models.Article, 0, opts.Articles)
	for i := 0; i < opts.Articles; i++ {
		author := users[rand.Intn(len(users))]
		content := gofakeit.Paragraph(2, 4, 12, " ")
		article := &models.Article{
			Title:     gofakeit.Sentence(6),
			Content:   content,
			Excerpt:   service.Excerpt(content),
			Category:  categories[rand.Intn(len(categories))],
			AuthorID:  author.ID,
			CreatedAt: time.Now().Add(-time.Duration(rand.Intn(14*24)) * time.Hour),
		}
		if err := db.Create(article).Error; err != nil {
			return fmt.Errorf("seeding article: %w", err)
		}
		articles = append(articles, article)
	}

	for _, article := range articles {
		for _, user := range users {
			if rand.Intn(4) == 0 {
				like := &models.Like{ArticleID: article.ID, UserID: user.ID}
				if err := db.Create(like).Error; err != nil {
					return fmt.Errorf("seeding like: %w", err)
				}
			}
			if rand.Intn(6) == 0 {
				comment := &models.Comment{
					ArticleID: article.ID,
					AuthorID:  user.ID,
					Content:   gofakeit.Sentence(10),
				}
				if err := db.Create(comment).Error; err != nil {
					return fmt.Errorf("seeding comment: %w", err)
				}
			}
		}
	}

	for _, subscriber := range users {
		for _, author := range users {
			if subscriber.ID == author.ID {
				continue
			}
			if rand.Intn(5) == 0 {
				sub := &models.Subscription{SubscriberID: subscriber.ID, AuthorID: author.ID}
				if err := db.Create(sub).Error; err != nil {
					return fmt.Errorf("seeding subscription: %w", err)
				}
			}
		}
	}

	return SyncCounters(db)
}

// SyncCounters rewrites every denormalized counter from the source rows.
func SyncCounters(db *gorm.DB) error {
	statements := []string{
		`UPDATE news_articles SET likes_count = (SELECT COUNT(*) FROM likes WHERE likes.article_id = news_articles.id)`,
		`UPDATE users SET likes_count = (SELECT COUNT(*) FROM likes JOIN news_articles ON news_articles.id = likes.article_id WHERE news_articles.author_id = users.id)`,
		`UPDATE users SET subscribers_count = (SELECT COUNT(*) FROM subscriptions WHERE subscriptions.author_id = users.id)`,
		`UPDATE users SET publications_count = (SELECT COUNT(*) FROM news_articles WHERE news_articles.author_id = users.id)`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("syncing counters: %w", err)
		}
	}
	return nil
}
