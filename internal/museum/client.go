// Package museum is a thin client for the Metropolitan Museum collection API.
// Nothing is persisted or cached; every call hits the upstream catalog.
package museum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"artcurator/internal/common"
)

// DefaultBaseURL is the public Met collection API v1 endpoint.
const DefaultBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"

// searchQuery restricts department listings to paintings with images.
const searchQuery = "q=painting&hasImage=true"

// Artwork is the subset of the Met object payload the client renders.
type Artwork struct {
	ObjectID          int    `json:"objectID"`
	Title             string `json:"title"`
	PrimaryImage      string `json:"primaryImage"`
	PrimaryImageSmall string `json:"primaryImageSmall"`
	ArtistAlphaSort   string `json:"artistAlphaSort"`
	ObjectDate        string `json:"objectDate"`
	Department        string `json:"department"`
	Medium            string `json:"medium"`
	Dimensions        string `json:"dimensions"`
	ObjectURL         string `json:"objectURL"`
}

// Catalog is the read-only gateway the services depend on.
type Catalog interface {
	SearchObjectIDs(ctx context.Context, departmentID int) ([]int, error)
	GetObject(ctx context.Context, objectID int) (*Artwork, error)
}

// Client implements Catalog over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Ensure implementation of Catalog interface at compile time.
var _ Catalog = (*Client)(nil)

// NewClient builds a Client for the given base URL. An empty baseURL falls
// back to DefaultBaseURL; a zero timeout defaults to 15s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SearchObjectIDs returns every object ID in the department matching the
// fixed painting search.
func (c *Client) SearchObjectIDs(ctx context.Context, departmentID int) ([]int, error) {
	url := fmt.Sprintf("%s/search?departmentId=%d&%s", c.baseURL, departmentID, searchQuery)

	var out struct {
		Total     int   `json:"total"`
		ObjectIDs []int `json:"objectIDs"`
	}
	if err := c.getJSON(ctx, url, &out); err != nil {
		return nil, err
	}
	return out.ObjectIDs, nil
}

// GetObject fetches one artwork's full metadata.
func (c *Client) GetObject(ctx context.Context, objectID int) (*Artwork, error) {
	url := fmt.Sprintf("%s/objects/%d", c.baseURL, objectID)

	var art Artwork
	if err := c.getJSON(ctx, url, &art); err != nil {
		return nil, err
	}
	return &art, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned %s", common.ErrUpstreamUnavailable, url, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode response from %s: %v", common.ErrUpstreamUnavailable, url, err)
	}
	return nil
}
