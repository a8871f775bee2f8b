package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"artcurator/internal/common"
	"artcurator/internal/museum"
	"artcurator/internal/pagination"
)

const (
	// randomDepartmentID is the Met's European Paintings department, the
	// curated pool behind the splash page.
	randomDepartmentID = 11
	randomSampleSize   = 6

	// sampleAttemptsPerItem bounds the rejection loop so a department with
	// too few usable images fails instead of spinning forever.
	sampleAttemptsPerItem = 8
)

// randIntN is a seam so tests can make sampling deterministic.
var randIntN = rand.IntN

// RandomArtwork is one splash-page tile.
type RandomArtwork struct {
	ID       int    `json:"id"`
	ImageURL string `json:"imageUrl"`
}

// ArtworkPage is the shape of GET /api/museum/department/:departmentId/:page.
type ArtworkPage struct {
	Data []museum.Artwork `json:"data"`
	More bool             `json:"more"`
}

type MuseumService struct {
	catalog museum.Catalog
}

func NewMuseumService(catalog museum.Catalog) *MuseumService {
	return &MuseumService{catalog: catalog}
}

// DepartmentPage lists one page of a department's paintings, resolving each
// ID on the page against the catalog. An out-of-range page is an empty page,
// not an error.
func (s *MuseumService) DepartmentPage(ctx context.Context, departmentID, page int) (*ArtworkPage, error) {
	ids, err := s.catalog.SearchObjectIDs(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	pageIDs, more := pagination.Page(ids, page)

	data := []museum.Artwork{}
	for _, id := range pageIDs {
		art, err := s.catalog.GetObject(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve object %d: %w", id, err)
		}
		data = append(data, *art)
	}
	return &ArtworkPage{Data: data, More: more}, nil
}

// Object fetches a single artwork's metadata.
func (s *MuseumService) Object(ctx context.Context, objectID int) (*museum.Artwork, error) {
	return s.catalog.GetObject(ctx, objectID)
}

// RandomSample picks distinct artworks with a small image from the curated
// department until the sample is full. The attempt budget keeps the loop
// bounded when usable items are scarce.
func (s *MuseumService) RandomSample(ctx context.Context) ([]RandomArtwork, error) {
	ids, err := s.catalog.SearchObjectIDs(ctx, randomDepartmentID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("department %d has no objects: %w", randomDepartmentID, common.ErrUpstreamUnavailable)
	}

	sample := []RandomArtwork{}
	seen := map[int]bool{}
	maxAttempts := sampleAttemptsPerItem * randomSampleSize

	for attempts := 0; len(sample) < randomSampleSize && attempts < maxAttempts; attempts++ {
		id := ids[randIntN(len(ids))]
		if seen[id] {
			continue
		}
		seen[id] = true

		art, err := s.catalog.GetObject(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve object %d: %w", id, err)
		}
		if art.PrimaryImageSmall == "" {
			continue
		}
		sample = append(sample, RandomArtwork{ID: id, ImageURL: art.PrimaryImageSmall})
	}

	if len(sample) < randomSampleSize {
		return nil, fmt.Errorf("collected %d of %d artworks with images: %w",
			len(sample), randomSampleSize, common.ErrUpstreamUnavailable)
	}
	return sample, nil
}
