package ports

import (
	"context"

	"station-search-service/internal/domain"
)

// Port: a boundary for persisting the user's bookmarked stations.
type FavoriteRepository interface {
	// Add stores a favorite; adding the same station twice is a no-op.
	Add(ctx context.Context, fav domain.Favorite) error
	Remove(ctx context.Context, stationID string) error
	List(ctx context.Context) ([]domain.Favorite, error)
}
