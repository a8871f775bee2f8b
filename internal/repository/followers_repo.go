package repository

import (
	"context"
	"database/sql"
	"fmt"

	"artcurator/internal/common"
	"artcurator/internal/models"
)

type FollowerRepository struct {
	db *sql.DB
}

func NewFollowerRepository(db *sql.DB) *FollowerRepository {
	return &FollowerRepository{db: db}
}

var _ Followers = (*FollowerRepository)(nil)

const (
	insertFollowerSQL = `INSERT INTO followers (user_id, followed_user_id) VALUES ($1, $2)`
	deleteFollowerSQL = `DELETE FROM followers WHERE user_id = $1 AND followed_user_id = $2`
	// Single join instead of per-row username lookups.
	selectFollowingSQL = `SELECT f.followed_user_id, u.username FROM followers f JOIN users u ON u.user_id = f.followed_user_id WHERE f.user_id = $1 ORDER BY u.username`
)

// Insert adds a follow edge. Duplicate edges surface as ErrConflict, unknown
// users as ErrNotFound.
func (r *FollowerRepository) Insert(ctx context.Context, userID, followedUserID int) error {
	_, err := r.db.ExecContext(ctx, insertFollowerSQL, userID, followedUserID)
	if err != nil {
		switch pgErrCode(err) {
		case uniqueViolation:
			return fmt.Errorf("follow (%d -> %d): %w", userID, followedUserID, common.ErrConflict)
		case fkViolation:
			return fmt.Errorf("follow (%d -> %d): %w", userID, followedUserID, common.ErrNotFound)
		}
		return fmt.Errorf("insert follow (%d -> %d): %w", userID, followedUserID, err)
	}
	return nil
}

// Delete removes a follow edge. ErrNotFound if the edge was absent.
func (r *FollowerRepository) Delete(ctx context.Context, userID, followedUserID int) error {
	res, err := r.db.ExecContext(ctx, deleteFollowerSQL, userID, followedUserID)
	if err != nil {
		return fmt.Errorf("delete follow (%d -> %d): %w", userID, followedUserID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete follow (%d -> %d) rows affected: %w", userID, followedUserID, err)
	}
	if n == 0 {
		return fmt.Errorf("follow (%d -> %d): %w", userID, followedUserID, common.ErrNotFound)
	}
	return nil
}

// ListFollowing returns the public identity of every user userID follows.
func (r *FollowerRepository) ListFollowing(ctx context.Context, userID int) ([]models.PublicUser, error) {
	rows, err := r.db.QueryContext(ctx, selectFollowingSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list following for user %d: %w", userID, err)
	}
	defer rows.Close()

	users := []models.PublicUser{}
	for rows.Next() {
		var u models.PublicUser
		if err := rows.Scan(&u.UserID, &u.Username); err != nil {
			return nil, fmt.Errorf("scan following row: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
