package models

import "time"

// Like represents a user's like on an article.
// The combination of ArticleID and UserID must be unique; the row's
// existence is the liked state, so untoggling hard-deletes it.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ArticleID uint      `gorm:"not null;uniqueIndex:idx_article_user" json:"article_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_article_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
