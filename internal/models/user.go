// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a platform account.
//
// SubscribersCount, LikesCount and PublicationsCount are denormalized caches:
// they must always equal the true count of the corresponding subscription,
// like and news_articles rows. Every mutation of those rows adjusts the
// counter in the same transaction.
type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Username          string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash      string    `gorm:"not null" json:"-"`
	AvatarURL         string    `json:"avatar_url"`
	Bio               string    `json:"bio"`
	SubscribersCount  int       `gorm:"not null;default:0" json:"subscribers_count"`
	LikesCount        int       `gorm:"not null;default:0" json:"likes_count"`
	PublicationsCount int       `gorm:"not null;default:0" json:"publications_count"`
	DarkTheme         bool      `gorm:"not null;default:false" json:"dark_theme"`
	SoundEnabled      bool      `gorm:"not null;default:true" json:"sound_enabled"`
	CreatedAt         time.Time `json:"created_at"`

	// IsSubscribed indicates whether the current requesting user subscribes
	// to this user (computed, never persisted).
	IsSubscribed bool `gorm:"-" json:"is_subscribed"`
}
