package repository

import (
	"context"
	"database/sql"

	"artcurator/internal/models"
)

type Users interface {
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, userID int) (*models.User, error)
	Delete(ctx context.Context, userID int) error
	Search(ctx context.Context, excludingUserID int, pattern string) ([]models.PublicUser, error)
}

type Favorites interface {
	Insert(ctx context.Context, userID, artID int) error
	Delete(ctx context.Context, userID, artID int) error
	ListIDs(ctx context.Context, userID int) ([]int, error)
	ListOrdered(ctx context.Context, userID int) ([]models.Favorite, error)
	SetDescription(ctx context.Context, userID, artID int, text string) error
	ClearDescription(ctx context.Context, userID, artID int) error
	ListGallery(ctx context.Context, userID int) ([]models.Favorite, error)
	CountGallery(ctx context.Context, userID int) (int, error)
	CountGalleryExcluding(ctx context.Context, userID, artID int) (int, error)
}

type Followers interface {
	Insert(ctx context.Context, userID, followedUserID int) error
	Delete(ctx context.Context, userID, followedUserID int) error
	ListFollowing(ctx context.Context, userID int) ([]models.PublicUser, error)
}

type Repository struct {
	Users     Users
	Favorites Favorites
	Followers Followers
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Users:     NewUserRepository(conn),
		Favorites: NewFavoriteRepository(conn),
		Followers: NewFollowerRepository(conn),
	}
}
