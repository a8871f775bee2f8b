package service

import (
	"context"
	"time"

	"artcurator/internal/models"
	"artcurator/internal/museum"
	"artcurator/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (*models.PublicUser, error)
	SignIn(ctx context.Context, username, password string) (string, *models.PublicUser, error)
	ParseToken(accessToken string) (*Identity, error)
	DeleteUser(ctx context.Context, userID int) error
	GetUsername(ctx context.Context, userID int) (string, error)
}

// Favorites covers likes and the curated Gallery subset.
type Favorites interface {
	Add(ctx context.Context, userID, artID int) error
	Remove(ctx context.Context, userID, artID int) error
	ListIDs(ctx context.Context, userID int) ([]int, error)
	Page(ctx context.Context, userID, page int) (*FavoritesPage, error)
	SubmitToGallery(ctx context.Context, userID, artID int, text string) error
	RemoveFromGallery(ctx context.Context, userID, artID int) error
	ListGallery(ctx context.Context, userID int) ([]models.Favorite, error)
}

// Followers is the directed follow graph plus user search.
type Followers interface {
	Follow(ctx context.Context, userID, targetID int) error
	Unfollow(ctx context.Context, userID, targetID int) error
	ListFollowing(ctx context.Context, userID int) ([]models.PublicUser, error)
	SearchUsers(ctx context.Context, excludingUserID int, query string) ([]models.PublicUser, error)
}

// Museum shapes catalog data into paged and sampled responses.
type Museum interface {
	DepartmentPage(ctx context.Context, departmentID, page int) (*ArtworkPage, error)
	Object(ctx context.Context, objectID int) (*museum.Artwork, error)
	RandomSample(ctx context.Context) ([]RandomArtwork, error)
}

type Service struct {
	Authorization
	Favorites
	Followers
	Museum
}

// AuthConfig carries the token parameters previously hardcoded as consts.
type AuthConfig struct {
	SigningKey []byte
	TokenTTL   time.Duration
}

func NewService(repos *repository.Repository, catalog museum.Catalog, auth AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, auth),
		Favorites:     NewFavoritesService(repos.Favorites, catalog),
		Followers:     NewFollowersService(repos.Followers, repos.Users),
		Museum:        NewMuseumService(catalog),
	}
}
