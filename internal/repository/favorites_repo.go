package repository

import (
	"context"
	"database/sql"
	"fmt"

	"artcurator/internal/common"
	"artcurator/internal/models"
)

type FavoriteRepository struct {
	db *sql.DB
}

func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

var _ Favorites = (*FavoriteRepository)(nil)

const (
	insertFavoriteSQL = `INSERT INTO favorites (user_id, art_id) VALUES ($1, $2)`
	deleteFavoriteSQL = `DELETE FROM favorites WHERE user_id = $1 AND art_id = $2`
	selectFavIDsSQL   = `SELECT art_id FROM favorites WHERE user_id = $1`
	selectFavsSQL     = `SELECT user_id, art_id, time_added, description FROM favorites WHERE user_id = $1 ORDER BY time_added DESC`
	setDescriptionSQL = `UPDATE favorites SET description = $3 WHERE user_id = $1 AND art_id = $2`
	clearDescSQL      = `UPDATE favorites SET description = NULL WHERE user_id = $1 AND art_id = $2`
	selectGallerySQL  = `SELECT user_id, art_id, time_added, description FROM favorites WHERE user_id = $1 AND description IS NOT NULL ORDER BY time_added DESC`
	countGallerySQL   = `SELECT count(*) FROM favorites WHERE user_id = $1 AND description IS NOT NULL`
	countGalleryExSQL = `SELECT count(*) FROM favorites WHERE user_id = $1 AND description IS NOT NULL AND art_id <> $2`
)

// Insert records a like. Duplicate likes surface as ErrConflict, an unknown
// user as ErrNotFound.
func (r *FavoriteRepository) Insert(ctx context.Context, userID, artID int) error {
	_, err := r.db.ExecContext(ctx, insertFavoriteSQL, userID, artID)
	if err != nil {
		switch pgErrCode(err) {
		case uniqueViolation:
			return fmt.Errorf("favorite (%d, %d): %w", userID, artID, common.ErrConflict)
		case fkViolation:
			return fmt.Errorf("user %d: %w", userID, common.ErrNotFound)
		}
		return fmt.Errorf("insert favorite (%d, %d): %w", userID, artID, err)
	}
	return nil
}

// Delete removes a like. ErrNotFound if no row matched.
func (r *FavoriteRepository) Delete(ctx context.Context, userID, artID int) error {
	res, err := r.db.ExecContext(ctx, deleteFavoriteSQL, userID, artID)
	if err != nil {
		return fmt.Errorf("delete favorite (%d, %d): %w", userID, artID, err)
	}
	return requireRow(res, userID, artID)
}

// ListIDs returns the bare art IDs the user has liked, in no significant order.
func (r *FavoriteRepository) ListIDs(ctx context.Context, userID int) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, selectFavIDsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorite ids for user %d: %w", userID, err)
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan favorite id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListOrdered returns the user's favorites newest-first.
func (r *FavoriteRepository) ListOrdered(ctx context.Context, userID int) ([]models.Favorite, error) {
	return r.queryFavorites(ctx, selectFavsSQL, userID)
}

// SetDescription promotes a favorite into the Gallery (or overwrites the
// existing text). ErrNotFound if the favorite does not exist.
func (r *FavoriteRepository) SetDescription(ctx context.Context, userID, artID int, text string) error {
	res, err := r.db.ExecContext(ctx, setDescriptionSQL, userID, artID, text)
	if err != nil {
		return fmt.Errorf("set description (%d, %d): %w", userID, artID, err)
	}
	return requireRow(res, userID, artID)
}

// ClearDescription demotes a Gallery entry back to a plain favorite.
func (r *FavoriteRepository) ClearDescription(ctx context.Context, userID, artID int) error {
	res, err := r.db.ExecContext(ctx, clearDescSQL, userID, artID)
	if err != nil {
		return fmt.Errorf("clear description (%d, %d): %w", userID, artID, err)
	}
	return requireRow(res, userID, artID)
}

// ListGallery returns the favorites curated into the Gallery, newest-first.
func (r *FavoriteRepository) ListGallery(ctx context.Context, userID int) ([]models.Favorite, error) {
	return r.queryFavorites(ctx, selectGallerySQL, userID)
}

// CountGallery counts the user's Gallery entries.
func (r *FavoriteRepository) CountGallery(ctx context.Context, userID int) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countGallerySQL, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count gallery for user %d: %w", userID, err)
	}
	return n, nil
}

// CountGalleryExcluding counts Gallery entries other than artID, so the cap
// check does not reject overwriting an existing entry's description.
func (r *FavoriteRepository) CountGalleryExcluding(ctx context.Context, userID, artID int) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countGalleryExSQL, userID, artID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count gallery excluding %d for user %d: %w", artID, userID, err)
	}
	return n, nil
}

func (r *FavoriteRepository) queryFavorites(ctx context.Context, query string, userID int) ([]models.Favorite, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites for user %d: %w", userID, err)
	}
	defer rows.Close()

	favs := []models.Favorite{}
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.UserID, &f.ArtID, &f.TimeAdded, &f.Description); err != nil {
			return nil, fmt.Errorf("scan favorite row: %w", err)
		}
		favs = append(favs, f)
	}
	return favs, rows.Err()
}

func requireRow(res sql.Result, userID, artID int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("favorite (%d, %d) rows affected: %w", userID, artID, err)
	}
	if n == 0 {
		return fmt.Errorf("favorite (%d, %d): %w", userID, artID, common.ErrNotFound)
	}
	return nil
}
