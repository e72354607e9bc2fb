package repository

import (
	"context"
	"errors"

	"newsline/internal/models"

	"gorm.io/gorm"
)

// SubscriptionRepository defines the interface for subscription data operations.
type SubscriptionRepository interface {
	Toggle(ctx context.Context, subscriberID, authorID uint) (bool, error)
	SubscribersCount(ctx context.Context, authorID uint) (int, error)
}

// subscriptionRepository implements SubscriptionRepository.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository.
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Toggle flips the subscription row for (subscriberID, authorID) and adjusts
// the author's subscriber counter in the same transaction. Returns the
// resulting subscribed state.
func (r *subscriptionRepository) Toggle(ctx context.Context, subscriberID, authorID uint) (bool, error) {
	var subscribed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Subscription
		err := tx.Where("subscriber_id = ? AND author_id = ?", subscriberID, authorID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Where("subscriber_id = ? AND author_id = ?", subscriberID, authorID).
				Delete(&models.Subscription{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.User{}).
				Where("id = ?", authorID).
				UpdateColumn("subscribers_count", gorm.Expr("subscribers_count - 1")).Error; err != nil {
				return err
			}
			subscribed = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.Subscription{SubscriberID: subscriberID, AuthorID: authorID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.User{}).
				Where("id = ?", authorID).
				UpdateColumn("subscribers_count", gorm.Expr("subscribers_count + 1")).Error; err != nil {
				return err
			}
			subscribed = true
		default:
			return err
		}
		return nil
	})
	return subscribed, err
}

// SubscribersCount reads the denormalized counter; a missing author reads as 0.
func (r *subscriptionRepository) SubscribersCount(ctx context.Context, authorID uint) (int, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Select("subscribers_count").
		First(&user, authorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return user.SubscribersCount, nil
}
