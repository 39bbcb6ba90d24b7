package ports

import (
	"context"

	"station-search-service/internal/domain"
)

// Contract for fetching raw charger records for a legal district.
type StationSource interface {
	// FetchChargers returns an empty slice (not an error) when the
	// provider reports a non-success status or zero items.
	FetchChargers(ctx context.Context, region domain.RegionCode, page, pageSize int) ([]domain.ChargerRecord, error)
}
