// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"newsline/internal/models"

	"gorm.io/gorm"
)

// directoryLimit caps directory listings.
const directoryLimit = 50

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*models.User, error)
	List(ctx context.Context, search string) ([]*models.User, error)
	GetSubscribedAuthorIDs(ctx context.Context, subscriberID uint, authorIDs []uint) ([]uint, error)
}

// userRepository implements UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID returns (nil, nil) when the user does not exist.
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByUsername matches the username exactly (case-sensitive) and returns
// (nil, nil) when absent.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

// UpdateFields applies a partial update and returns the refreshed record.
func (r *userRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*models.User, error) {
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// List returns users ordered by subscriber count, optionally filtered by a
// case-insensitive substring match on username or bio.
func (r *userRepository) List(ctx context.Context, search string) ([]*models.User, error) {
	q := r.db.WithContext(ctx).Model(&models.User{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(username) LIKE ? OR LOWER(bio) LIKE ?", like, like)
	}

	var users []*models.User
	err := q.Order("subscribers_count DESC").
		Limit(directoryLimit).
		Find(&users).Error
	return users, err
}

// GetSubscribedAuthorIDs returns the subset of authorIDs the subscriber
// follows, resolved in a single query.
func (r *userRepository) GetSubscribedAuthorIDs(ctx context.Context, subscriberID uint, authorIDs []uint) ([]uint, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("subscriber_id = ? AND author_id IN ?", subscriberID, authorIDs).
		Pluck("author_id", &ids).Error
	return ids, err
}
