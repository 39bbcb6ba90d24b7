package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"station-search-service/internal/domain"
	"station-search-service/internal/platform/obs"
)

type cachedPlace struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name"`
}

// PlaceCache is a Redis-backed cache mapping normalized free-text queries
// to resolved places, so repeated searches skip the geocoding provider.
type PlaceCache struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewPlaceCache(rdb *redis.Client, ttl time.Duration) *PlaceCache {
	return &PlaceCache{RDB: rdb, TTL: ttl}
}

func placeKey(query string) string {
	return "place:" + strings.Join(strings.Fields(query), " ")
}

// Get fetches the cached place for a query. The second return value is
// false on a cache miss.
func (c *PlaceCache) Get(ctx context.Context, query string) (_ domain.ResolvedPlace, _ bool, err error) {
	defer obs.Time(ctx, "place.cache.Get")(&err)

	if c.RDB == nil {
		return domain.ResolvedPlace{}, false, errors.New("place cache: redis client is nil")
	}

	raw, err := c.RDB.Get(ctx, placeKey(query)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.ResolvedPlace{}, false, nil
	}
	if err != nil {
		return domain.ResolvedPlace{}, false, fmt.Errorf("get place cache: %w", err)
	}

	var v cachedPlace
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return domain.ResolvedPlace{}, false, fmt.Errorf("get place cache: decode entry: %w", err)
	}

	return domain.ResolvedPlace{
		Coordinate: domain.Coordinate{Lat: v.Lat, Lng: v.Lng},
		Name:       v.Name,
	}, true, nil
}

// Put stores a resolved place under the normalized query.
func (c *PlaceCache) Put(ctx context.Context, query string, place domain.ResolvedPlace) error {
	if c.RDB == nil {
		return errors.New("place cache: redis client is nil")
	}

	payload, err := json.Marshal(cachedPlace{
		Lat:  place.Coordinate.Lat,
		Lng:  place.Coordinate.Lng,
		Name: place.Name,
	})
	if err != nil {
		return fmt.Errorf("insert place cache: encode entry: %w", err)
	}

	if err := c.RDB.Set(ctx, placeKey(query), payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert place cache: %w", err)
	}

	return nil
}
