package ports

import (
	"context"

	"station-search-service/internal/domain"
)

// Port: a boundary for persisting station reviews.
type ReviewRepository interface {
	Add(ctx context.Context, review domain.Review) (domain.Review, error)
	ListByStation(ctx context.Context, stationID string) ([]domain.Review, error)
}
