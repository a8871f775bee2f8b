package service

import (
	"context"
	"fmt"
	"strings"

	"artcurator/internal/common"
	"artcurator/internal/models"
	"artcurator/internal/repository"
)

// minSearchLen mirrors what the client used to enforce alone; the server now
// rejects short or multi-word queries itself.
const minSearchLen = 3

type FollowersService struct {
	followers repository.Followers
	users     repository.Users
}

func NewFollowersService(followers repository.Followers, users repository.Users) *FollowersService {
	return &FollowersService{followers: followers, users: users}
}

// Follow adds a follow edge. Self-follows are rejected.
func (s *FollowersService) Follow(ctx context.Context, userID, targetID int) error {
	if userID == targetID {
		return fmt.Errorf("cannot follow yourself: %w", common.ErrInvalidInput)
	}
	return s.followers.Insert(ctx, userID, targetID)
}

// Unfollow removes the edge.
func (s *FollowersService) Unfollow(ctx context.Context, userID, targetID int) error {
	return s.followers.Delete(ctx, userID, targetID)
}

// ListFollowing returns the public identity of every followed user.
func (s *FollowersService) ListFollowing(ctx context.Context, userID int) ([]models.PublicUser, error) {
	return s.followers.ListFollowing(ctx, userID)
}

// SearchUsers substring-matches usernames, excluding the searcher.
func (s *FollowersService) SearchUsers(ctx context.Context, excludingUserID int, query string) ([]models.PublicUser, error) {
	q := strings.TrimSpace(query)
	if len(q) < minSearchLen {
		return nil, fmt.Errorf("search query must be at least %d characters: %w", minSearchLen, common.ErrInvalidInput)
	}
	if strings.ContainsAny(q, " \t") {
		return nil, fmt.Errorf("search query must be a single word: %w", common.ErrInvalidInput)
	}
	return s.users.Search(ctx, excludingUserID, "%"+q+"%")
}
