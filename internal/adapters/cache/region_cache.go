package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mmcloughlin/geohash"
	"github.com/redis/go-redis/v9"

	"station-search-service/internal/domain"
	"station-search-service/internal/platform/obs"
)

// Geohash precision 7 gives ~150 m cells, so nearby anchors share one
// reverse-geocode lookup. A cell straddling a 시군구 border can still pin
// anchors on the far side to the cached neighbor's code until the entry
// expires; the cell size keeps that strip to ~150 m.
const regionKeyPrecision = 7

// RegionCache is a Redis-backed cache mapping coordinate cells to legal
// district codes.
type RegionCache struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewRegionCache(rdb *redis.Client, ttl time.Duration) *RegionCache {
	return &RegionCache{RDB: rdb, TTL: ttl}
}

func regionKey(c domain.Coordinate) string {
	return "region:" + geohash.EncodeWithPrecision(c.Lat, c.Lng, regionKeyPrecision)
}

// Get fetches the cached district codes for the coordinate's cell.
func (c *RegionCache) Get(ctx context.Context, coord domain.Coordinate) (_ domain.RegionCode, _ bool, err error) {
	defer obs.Time(ctx, "region.cache.Get")(&err)

	if c.RDB == nil {
		return domain.RegionCode{}, false, errors.New("region cache: redis client is nil")
	}

	raw, err := c.RDB.Get(ctx, regionKey(coord)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.RegionCode{}, false, nil
	}
	if err != nil {
		return domain.RegionCode{}, false, fmt.Errorf("get region cache: %w", err)
	}

	province, district, ok := strings.Cut(raw, "|")
	if !ok {
		return domain.RegionCode{}, false, fmt.Errorf("get region cache: malformed entry %q", raw)
	}

	return domain.RegionCode{Province: province, District: district}, true, nil
}

// Put stores district codes under the coordinate's cell.
func (c *RegionCache) Put(ctx context.Context, coord domain.Coordinate, region domain.RegionCode) error {
	if c.RDB == nil {
		return errors.New("region cache: redis client is nil")
	}

	payload := region.Province + "|" + region.District
	if err := c.RDB.Set(ctx, regionKey(coord), payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert region cache: %w", err)
	}

	return nil
}
