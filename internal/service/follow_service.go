// Package service implements the application's business rules on top of the
// repository layer.
package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
)

// FollowService manages the follow graph: directed, unique edges between
// users. All operations are idempotent; repeating a follow or unfollow is
// never an error.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates the edge from follower to followed. Re-following is a
// no-op. Following yourself is rejected: the storage schema would accept
// the edge, so the rule lives here, in front of every caller.
func (s *FollowService) Follow(ctx context.Context, followerID, followedID uint) error {
	if followerID == followedID {
		return models.NewInvalidOperationError("cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, followedID); err != nil {
		return err
	}

	return s.followRepo.Upsert(ctx, followerID, followedID)
}

// Unfollow removes the edge from follower to followed. Unfollowing someone
// you do not follow is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followedID uint) error {
	if _, err := s.userRepo.GetByID(ctx, followedID); err != nil {
		return err
	}

	return s.followRepo.Delete(ctx, followerID, followedID)
}

// IsFollowing reports whether the edge from follower to followed exists.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, followedID)
}

// FollowerCount returns how many users follow userID.
func (s *FollowService) FollowerCount(ctx context.Context, userID uint) (int, error) {
	return s.followRepo.CountFollowers(ctx, userID)
}

// FollowingCount returns how many users userID follows.
func (s *FollowService) FollowingCount(ctx context.Context, userID uint) (int, error) {
	return s.followRepo.CountFollowing(ctx, userID)
}

// FollowedAuthorIDs returns the IDs of every author the user follows.
func (s *FollowService) FollowedAuthorIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followRepo.FollowedIDs(ctx, userID)
}
