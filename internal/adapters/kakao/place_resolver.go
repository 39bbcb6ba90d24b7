package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"station-search-service/internal/domain"
	"station-search-service/internal/platform/obs"
)

// Kakao returns x/y as strings in WGS84 order: x = longitude, y = latitude.
type addressDetail struct {
	AddressName string `json:"address_name"`
	X           string `json:"x"`
	Y           string `json:"y"`
}

type addressSearchResponse struct {
	Documents []struct {
		Address     *addressDetail `json:"address"`
		RoadAddress *addressDetail `json:"road_address"`
	} `json:"documents"`
}

type keywordSearchResponse struct {
	Documents []struct {
		PlaceName string `json:"place_name"`
		X         string `json:"x"`
		Y         string `json:"y"`
	} `json:"documents"`
}

// Resolve turns a free-text query into a single best-guess place: a
// structured address lookup first, then a keyword/POI lookup. The
// provider's first-ranked candidate wins; both coming up empty is
// domain.ErrPlaceNotFound.
func (c *Client) Resolve(ctx context.Context, query string) (_ domain.ResolvedPlace, err error) {
	defer obs.Time(ctx, "kakao.Resolve")(&err)

	norm := c.normalize(query)
	if norm == "" {
		return domain.ResolvedPlace{}, domain.ErrPlaceNotFound
	}

	if c.placeCache != nil {
		place, ok, err := c.placeCache.Get(ctx, norm)
		if err != nil {
			log.Printf("place cache read failed: %v", err)
		} else if ok {
			return place, nil
		}
	}

	place, ok, err := c.searchAddress(ctx, norm)
	if err != nil {
		return domain.ResolvedPlace{}, &domain.ProviderError{Provider: "kakao", Err: err}
	}

	if !ok {
		place, ok, err = c.searchKeyword(ctx, norm)
		if err != nil {
			return domain.ResolvedPlace{}, &domain.ProviderError{Provider: "kakao", Err: err}
		}
	}

	if !ok {
		return domain.ResolvedPlace{}, domain.ErrPlaceNotFound
	}

	if c.placeCache != nil {
		if err := c.placeCache.Put(ctx, norm, place); err != nil {
			log.Printf("place cache write failed: %v", err)
		}
	}

	return place, nil
}

func (c *Client) searchAddress(ctx context.Context, query string) (domain.ResolvedPlace, bool, error) {
	q := url.Values{}
	q.Set("query", query)

	req, err := c.newRequest(ctx, addressSearchPath, q)
	if err != nil {
		return domain.ResolvedPlace{}, false, fmt.Errorf("address search: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return domain.ResolvedPlace{}, false, fmt.Errorf("address search: %w", err)
	}
	defer resp.Body.Close()

	var decoded addressSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.ResolvedPlace{}, false, fmt.Errorf("address search: decode response: %w", err)
	}

	if len(decoded.Documents) == 0 {
		return domain.ResolvedPlace{}, false, nil
	}

	// A document carries the canonical coordinate under either its lot
	// address or its road address.
	first := decoded.Documents[0]
	detail := first.Address
	if detail == nil {
		detail = first.RoadAddress
	}
	if detail == nil {
		return domain.ResolvedPlace{}, false, nil
	}

	coord, ok := parseCoordinate(detail.Y, detail.X)
	if !ok {
		return domain.ResolvedPlace{}, false, nil
	}

	return domain.ResolvedPlace{Coordinate: coord, Name: detail.AddressName}, true, nil
}

func (c *Client) searchKeyword(ctx context.Context, query string) (domain.ResolvedPlace, bool, error) {
	q := url.Values{}
	q.Set("query", query)

	req, err := c.newRequest(ctx, keywordSearchPath, q)
	if err != nil {
		return domain.ResolvedPlace{}, false, fmt.Errorf("keyword search: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return domain.ResolvedPlace{}, false, fmt.Errorf("keyword search: %w", err)
	}
	defer resp.Body.Close()

	var decoded keywordSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.ResolvedPlace{}, false, fmt.Errorf("keyword search: decode response: %w", err)
	}

	if len(decoded.Documents) == 0 {
		return domain.ResolvedPlace{}, false, nil
	}

	first := decoded.Documents[0]
	coord, ok := parseCoordinate(first.Y, first.X)
	if !ok {
		return domain.ResolvedPlace{}, false, nil
	}

	return domain.ResolvedPlace{Coordinate: coord, Name: first.PlaceName}, true, nil
}

func parseCoordinate(latStr, lngStr string) (domain.Coordinate, bool) {
	lat, err1 := strconv.ParseFloat(latStr, 64)
	lng, err2 := strconv.ParseFloat(lngStr, 64)
	if err1 != nil || err2 != nil {
		return domain.Coordinate{}, false
	}

	coord := domain.Coordinate{Lat: lat, Lng: lng}
	return coord, coord.Valid()
}
