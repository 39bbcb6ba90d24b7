package ports

import (
	"context"

	"station-search-service/internal/domain"
)

// Contract for obtaining the caller's current position. The actual GPS
// read happens on the client device; the server-side implementation
// carries the reported fix through the pipeline.
type Locator interface {
	CurrentPosition(ctx context.Context) (domain.Coordinate, error)
}
