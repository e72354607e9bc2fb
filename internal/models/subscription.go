package models

import "time"

// Subscription represents one user following another.
// The (SubscriberID, AuthorID) pair must be unique and the two sides may
// never be the same user.
type Subscription struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubscriberID uint      `gorm:"not null;uniqueIndex:idx_subscriber_author" json:"subscriber_id"`
	AuthorID     uint      `gorm:"not null;uniqueIndex:idx_subscriber_author" json:"author_id"`
	CreatedAt    time.Time `json:"created_at"`
}
