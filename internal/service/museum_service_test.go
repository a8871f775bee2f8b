package service

import (
	"context"
	"errors"
	"testing"

	"artcurator/internal/common"
)

func stubRandIntN(t *testing.T, fn func(n int) int) {
	t.Helper()
	orig := randIntN
	randIntN = fn
	t.Cleanup(func() { randIntN = orig })
}

func TestMuseumService_DepartmentPage(t *testing.T) {
	ids := make([]int, 15)
	for i := range ids {
		ids[i] = 100 + i
	}
	catalog := &fakeCatalog{ids: ids}
	svc := NewMuseumService(catalog)
	ctx := context.Background()

	page, err := svc.DepartmentPage(ctx, 11, 1)
	if err != nil {
		t.Fatalf("DepartmentPage: %v", err)
	}
	if len(page.Data) != 10 || !page.More {
		t.Fatalf("page 1: len=%d more=%v", len(page.Data), page.More)
	}
	if page.Data[0].ObjectID != 100 || page.Data[9].ObjectID != 109 {
		t.Fatalf("page 1 slice wrong: first=%d last=%d", page.Data[0].ObjectID, page.Data[9].ObjectID)
	}

	page2, err := svc.DepartmentPage(ctx, 11, 2)
	if err != nil {
		t.Fatalf("DepartmentPage page 2: %v", err)
	}
	if len(page2.Data) != 5 || page2.More {
		t.Fatalf("page 2: len=%d more=%v", len(page2.Data), page2.More)
	}

	empty, err := svc.DepartmentPage(ctx, 11, 3)
	if err != nil {
		t.Fatalf("DepartmentPage page 3: %v", err)
	}
	if empty.Data == nil || len(empty.Data) != 0 || empty.More {
		t.Fatalf("out-of-range page should be empty, got %+v", empty)
	}
}

func TestMuseumService_RandomSample_DistinctWithImages(t *testing.T) {
	// Object 101 has no usable image and must be skipped without
	// consuming a slot.
	catalog := &fakeCatalog{
		ids:     []int{100, 101, 102, 103, 104, 105, 106},
		noImage: map[int]bool{101: true},
	}
	svc := NewMuseumService(catalog)

	next := 0
	stubRandIntN(t, func(n int) int {
		i := next % n
		next++
		return i
	})

	sample, err := svc.RandomSample(context.Background())
	if err != nil {
		t.Fatalf("RandomSample: %v", err)
	}
	if len(sample) != randomSampleSize {
		t.Fatalf("expected %d artworks, got %d", randomSampleSize, len(sample))
	}

	seen := map[int]bool{}
	for _, art := range sample {
		if seen[art.ID] {
			t.Fatalf("duplicate artwork %d in sample", art.ID)
		}
		seen[art.ID] = true
		if art.ID == 101 {
			t.Fatalf("imageless artwork made it into the sample")
		}
		if art.ImageURL == "" {
			t.Fatalf("artwork %d has no image URL", art.ID)
		}
	}
}

func TestMuseumService_RandomSample_RepeatedPicksStayBounded(t *testing.T) {
	// Only 3 usable objects for a sample of 6: the attempt budget must end
	// the loop with an upstream error instead of spinning.
	catalog := &fakeCatalog{ids: []int{1, 2, 3}}
	svc := NewMuseumService(catalog)

	stubRandIntN(t, func(n int) int { return 0 })

	_, err := svc.RandomSample(context.Background())
	if !errors.Is(err, common.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
	// Each object is fetched at most once; retries of a seen ID are free.
	if catalog.getCalls > len(catalog.ids) {
		t.Fatalf("expected at most %d fetches, got %d", len(catalog.ids), catalog.getCalls)
	}
}

func TestMuseumService_RandomSample_EmptyDepartment(t *testing.T) {
	svc := NewMuseumService(&fakeCatalog{ids: []int{}})

	_, err := svc.RandomSample(context.Background())
	if !errors.Is(err, common.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}
