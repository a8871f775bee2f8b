package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"artcurator/internal/common"
	"artcurator/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL       = `INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING user_id`
	selectUserByNameSQL = `SELECT user_id, username, password_hash FROM users WHERE username = $1`
	selectUserByIDSQL   = `SELECT user_id, username, password_hash FROM users WHERE user_id = $1`
	deleteUserSQL       = `DELETE FROM users WHERE user_id = $1`
	searchUsersSQL      = `SELECT user_id, username FROM users WHERE username ILIKE $2 AND user_id <> $1 ORDER BY username`
)

// uniqueViolation and fkViolation are the PostgreSQL error codes the repos
// translate into domain errors.
const (
	uniqueViolation = "23505"
	fkViolation     = "23503"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// Create inserts a new user and returns the stored row.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (*models.User, error) {
	u := models.User{Username: username, PasswordHash: passwordHash}
	err := r.db.QueryRowContext(ctx, insertUserSQL, username, passwordHash).Scan(&u.ID)
	if err != nil {
		if pgErrCode(err) == uniqueViolation {
			return nil, fmt.Errorf("username %q: %w", username, common.ErrConflict)
		}
		return nil, fmt.Errorf("insert user %q: %w", username, err)
	}
	return &u, nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByNameSQL, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByIDSQL, userID).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %d: %w", userID, err)
	}
	return &u, nil
}

// Delete removes a user row. ErrNotFound if no row matched.
func (r *UserRepository) Delete(ctx context.Context, userID int) error {
	res, err := r.db.ExecContext(ctx, deleteUserSQL, userID)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user %d rows affected: %w", userID, err)
	}
	if n == 0 {
		return fmt.Errorf("user %d: %w", userID, common.ErrNotFound)
	}
	return nil
}

// Search returns public identities whose username matches the LIKE pattern,
// excluding the searcher.
func (r *UserRepository) Search(ctx context.Context, excludingUserID int, pattern string) ([]models.PublicUser, error) {
	rows, err := r.db.QueryContext(ctx, searchUsersSQL, excludingUserID, pattern)
	if err != nil {
		return nil, fmt.Errorf("search users %q: %w", pattern, err)
	}
	defer rows.Close()

	users := []models.PublicUser{}
	for rows.Next() {
		var u models.PublicUser
		if err := rows.Scan(&u.UserID, &u.Username); err != nil {
			return nil, fmt.Errorf("scan user search row: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
