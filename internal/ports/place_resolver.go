package ports

import (
	"context"

	"station-search-service/internal/domain"
)

// Contract for resolving a free-text query to a single best-guess place.
// Implementations trust the provider's relevance ranking and return its
// first candidate; no local re-ranking.
type PlaceResolver interface {
	// Resolve returns domain.ErrPlaceNotFound when no candidate matches.
	Resolve(ctx context.Context, query string) (domain.ResolvedPlace, error)
}
