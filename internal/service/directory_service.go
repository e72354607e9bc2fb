package service

import (
	"context"

	"newsline/internal/models"
	"newsline/internal/repository"
)

// DirectoryService handles user listing and subscription toggling.
type DirectoryService struct {
	userRepo repository.UserRepository
	subRepo  repository.SubscriptionRepository
}

// ToggleSubscriptionResult is the post-commit outcome of a subscription
// toggle.
type ToggleSubscriptionResult struct {
	IsSubscribed     bool `json:"is_subscribed"`
	SubscribersCount int  `json:"subscribers_count"`
}

func NewDirectoryService(userRepo repository.UserRepository, subRepo repository.SubscriptionRepository) *DirectoryService {
	return &DirectoryService{userRepo: userRepo, subRepo: subRepo}
}

// ListUsers returns users ordered by subscriber count with per-viewer
// subscribed flags. Without a viewer every flag stays false.
func (s *DirectoryService) ListUsers(ctx context.Context, search string, viewerID uint) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx, search)
	if err != nil {
		return nil, err
	}

	if viewerID != 0 && len(users) > 0 {
		ids := make([]uint, 0, len(users))
		for _, u := range users {
			ids = append(ids, u.ID)
		}
		subscribedIDs, err := s.userRepo.GetSubscribedAuthorIDs(ctx, viewerID, ids)
		if err != nil {
			return nil, err
		}
		subscribed := make(map[uint]bool, len(subscribedIDs))
		for _, id := range subscribedIDs {
			subscribed[id] = true
		}
		for _, u := range users {
			u.IsSubscribed = subscribed[u.ID]
		}
	}

	return users, nil
}

// ToggleSubscription flips the subscription state for (subscriberID,
// authorID). Self-subscription is rejected. The returned counter is re-read
// after the transaction commits.
func (s *DirectoryService) ToggleSubscription(ctx context.Context, subscriberID, authorID uint) (*ToggleSubscriptionResult, error) {
	if subscriberID == 0 || authorID == 0 {
		return nil, models.NewValidationError("subscriber id and author id are required")
	}
	if subscriberID == authorID {
		return nil, models.NewValidationError("cannot subscribe to yourself")
	}

	subscribed, err := s.subRepo.Toggle(ctx, subscriberID, authorID)
	if err != nil {
		return nil, err
	}

	count, err := s.subRepo.SubscribersCount(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return &ToggleSubscriptionResult{IsSubscribed: subscribed, SubscribersCount: count}, nil
}
