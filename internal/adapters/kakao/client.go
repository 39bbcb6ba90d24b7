// Package kakao implements the PlaceResolver and RegionCoder ports on the
// Kakao Local REST API.
package kakao

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"station-search-service/internal/adapters/cache"
)

const (
	addressSearchPath = "/v2/local/search/address.json"
	keywordSearchPath = "/v2/local/search/keyword.json"
	regionCodePath    = "/v2/local/geo/coord2regioncode.json"
)

// Client calls the Kakao Local REST API. It coordinates:
//   - Query normalization
//   - Redis place/region caching
//   - External API calls (one attempt each; no automatic retries)
//
// The client is safe for concurrent use.
type Client struct {
	session     *http.Client
	apiKey      string
	baseURL     string
	placeCache  *cache.PlaceCache
	regionCache *cache.RegionCache
}

// NewClient builds a Client for the public Kakao endpoint. Either cache
// may be nil, which disables that cache.
func NewClient(apiKey string, placeCache *cache.PlaceCache, regionCache *cache.RegionCache) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("kakao api key is empty")
	}

	return &Client{
		session:     &http.Client{Timeout: 10 * time.Second},
		apiKey:      apiKey,
		baseURL:     "https://dapi.kakao.com",
		placeCache:  placeCache,
		regionCache: regionCache,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (c *Client) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (c *Client) newRequest(ctx context.Context, path string, query url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.URL.RawQuery = query.Encode()

	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}
