package models

import "time"

// Article is a news feed publication owned by its author.
type Article struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"not null" json:"content"`
	Excerpt    string    `json:"excerpt"`
	Category   string    `gorm:"index" json:"category"`
	AuthorID   uint      `gorm:"not null;index" json:"author_id"`
	Author     User      `gorm:"foreignKey:AuthorID" json:"author"`
	LikesCount int       `gorm:"not null;default:0" json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`

	Comments []Comment `gorm:"foreignKey:ArticleID" json:"comments"`

	// IsLiked indicates whether the current requesting user liked this
	// article (computed).
	IsLiked bool `gorm:"-" json:"is_liked"`
	// TimeAgo is the human-relative creation time label (computed).
	TimeAgo string `gorm:"-" json:"date"`
}

// TableName keeps the historical table name.
func (Article) TableName() string { return "news_articles" }
