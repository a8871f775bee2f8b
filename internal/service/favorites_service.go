package service

import (
	"context"
	"fmt"
	"strings"

	"artcurator/internal/common"
	"artcurator/internal/models"
	"artcurator/internal/museum"
	"artcurator/internal/pagination"
	"artcurator/internal/repository"
)

const (
	// galleryCap is the maximum number of described favorites per user,
	// enforced here rather than trusted to the client.
	galleryCap = 5

	maxDescriptionLen = 400
)

// FavoriteArtwork is one favorites-page item: the catalog record plus the
// Gallery flag.
type FavoriteArtwork struct {
	museum.Artwork
	IsGallery bool `json:"isGallery"`
}

// FavoritesPage is the shape of GET /api/favorites/:userId/:page.
type FavoritesPage struct {
	Data        []FavoriteArtwork `json:"data"`
	More        bool              `json:"more"`
	GalleryFull bool              `json:"galleryFull"`
}

type FavoritesService struct {
	favorites repository.Favorites
	catalog   museum.Catalog
}

func NewFavoritesService(favorites repository.Favorites, catalog museum.Catalog) *FavoritesService {
	return &FavoritesService{favorites: favorites, catalog: catalog}
}

// Add records a like for the artwork.
func (s *FavoritesService) Add(ctx context.Context, userID, artID int) error {
	return s.favorites.Insert(ctx, userID, artID)
}

// Remove deletes the like, Gallery description included.
func (s *FavoritesService) Remove(ctx context.Context, userID, artID int) error {
	return s.favorites.Delete(ctx, userID, artID)
}

// ListIDs returns the bare liked art IDs for client-side membership checks.
func (s *FavoritesService) ListIDs(ctx context.Context, userID int) ([]int, error) {
	return s.favorites.ListIDs(ctx, userID)
}

// Page resolves one favorites page against the catalog: favorites ordered
// newest-first, sliced to the page, each ID fetched from the museum API and
// stamped with its Gallery flag. Empty pages are valid responses.
func (s *FavoritesService) Page(ctx context.Context, userID, page int) (*FavoritesPage, error) {
	favs, err := s.favorites.ListOrdered(ctx, userID)
	if err != nil {
		return nil, err
	}
	pageFavs, more := pagination.Page(favs, page)

	data := []FavoriteArtwork{}
	for _, f := range pageFavs {
		art, err := s.catalog.GetObject(ctx, f.ArtID)
		if err != nil {
			return nil, fmt.Errorf("resolve favorite %d: %w", f.ArtID, err)
		}
		data = append(data, FavoriteArtwork{Artwork: *art, IsGallery: f.IsGallery()})
	}

	count, err := s.favorites.CountGallery(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &FavoritesPage{
		Data:        data,
		More:        more,
		GalleryFull: count >= galleryCap,
	}, nil
}

// SubmitToGallery sets the curator description on a favorite. The cap is
// checked here so a racing or hand-crafted client cannot exceed it; an
// artwork already in the Gallery may always have its text overwritten.
func (s *FavoritesService) SubmitToGallery(ctx context.Context, userID, artID int, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("description is required: %w", common.ErrInvalidInput)
	}
	if len(text) > maxDescriptionLen {
		return fmt.Errorf("description exceeds %d characters: %w", maxDescriptionLen, common.ErrInvalidInput)
	}

	others, err := s.favorites.CountGalleryExcluding(ctx, userID, artID)
	if err != nil {
		return err
	}
	if others >= galleryCap {
		return fmt.Errorf("user %d already has %d gallery entries: %w", userID, others, common.ErrGalleryFull)
	}

	return s.favorites.SetDescription(ctx, userID, artID, text)
}

// RemoveFromGallery clears the description but keeps the favorite.
func (s *FavoritesService) RemoveFromGallery(ctx context.Context, userID, artID int) error {
	return s.favorites.ClearDescription(ctx, userID, artID)
}

// ListGallery returns the user's described favorites.
func (s *FavoritesService) ListGallery(ctx context.Context, userID int) ([]models.Favorite, error) {
	return s.favorites.ListGallery(ctx, userID)
}
