package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"artcurator/internal/common"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func newMockFavoriteRepo(t *testing.T) (*FavoriteRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewFavoriteRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestFavoriteRepository_Insert(t *testing.T) {
	tests := []struct {
		name       string
		mockExpect func(sqlmock.Sqlmock)
		wantErr    error
	}{
		{
			name: "success",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertFavoriteSQL)).
					WithArgs(1, 42).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate like",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertFavoriteSQL)).
					WithArgs(1, 42).
					WillReturnError(&pgconn.PgError{Code: uniqueViolation})
			},
			wantErr: common.ErrConflict,
		},
		{
			name: "unknown user",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertFavoriteSQL)).
					WithArgs(1, 42).
					WillReturnError(&pgconn.PgError{Code: fkViolation})
			},
			wantErr: common.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockFavoriteRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			err := repo.Insert(context.Background(), 1, 42)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestFavoriteRepository_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := newMockFavoriteRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteFavoriteSQL)).
			WithArgs(1, 42).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.Delete(context.Background(), 1, 42); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("absent row is not found", func(t *testing.T) {
		repo, mock, cleanup := newMockFavoriteRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteFavoriteSQL)).
			WithArgs(1, 42).
			WillReturnResult(sqlmock.NewResult(0, 0))

		if err := repo.Delete(context.Background(), 1, 42); !errors.Is(err, common.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestFavoriteRepository_ListOrdered(t *testing.T) {
	repo, mock, cleanup := newMockFavoriteRepo(t)
	defer cleanup()

	now := time.Now()
	desc := "a luminous field"
	rows := sqlmock.NewRows([]string{"user_id", "art_id", "time_added", "description"}).
		AddRow(1, 42, now, desc).
		AddRow(1, 17, now.Add(-time.Hour), nil)
	mock.ExpectQuery(regexp.QuoteMeta(selectFavsSQL)).
		WithArgs(1).
		WillReturnRows(rows)

	favs, err := repo.ListOrdered(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(favs) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(favs))
	}
	if !favs[0].IsGallery() {
		t.Errorf("first favorite should be a gallery entry")
	}
	if *favs[0].Description != desc {
		t.Errorf("description: got %q, want %q", *favs[0].Description, desc)
	}
	if favs[1].IsGallery() {
		t.Errorf("second favorite should not be a gallery entry")
	}
}

func TestFavoriteRepository_ListIDs(t *testing.T) {
	repo, mock, cleanup := newMockFavoriteRepo(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"art_id"}).AddRow(42).AddRow(17)
	mock.ExpectQuery(regexp.QuoteMeta(selectFavIDsSQL)).
		WithArgs(1).
		WillReturnRows(rows)

	ids, err := repo.ListIDs(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != 42 || ids[1] != 17 {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestFavoriteRepository_SetAndClearDescription(t *testing.T) {
	t.Run("set success", func(t *testing.T) {
		repo, mock, cleanup := newMockFavoriteRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(setDescriptionSQL)).
			WithArgs(1, 42, "nice").
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.SetDescription(context.Background(), 1, 42, "nice"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("set on non-favorite is not found", func(t *testing.T) {
		repo, mock, cleanup := newMockFavoriteRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(setDescriptionSQL)).
			WithArgs(1, 42, "nice").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetDescription(context.Background(), 1, 42, "nice")
		if !errors.Is(err, common.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("clear success", func(t *testing.T) {
		repo, mock, cleanup := newMockFavoriteRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(clearDescSQL)).
			WithArgs(1, 42).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.ClearDescription(context.Background(), 1, 42); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestFavoriteRepository_GalleryCounts(t *testing.T) {
	repo, mock, cleanup := newMockFavoriteRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(countGallerySQL)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(regexp.QuoteMeta(countGalleryExSQL)).
		WithArgs(1, 42).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.CountGallery(context.Background(), 1)
	if err != nil || n != 5 {
		t.Fatalf("CountGallery: got (%d, %v), want (5, nil)", n, err)
	}

	n, err = repo.CountGalleryExcluding(context.Background(), 1, 42)
	if err != nil || n != 4 {
		t.Fatalf("CountGalleryExcluding: got (%d, %v), want (4, nil)", n, err)
	}
}
