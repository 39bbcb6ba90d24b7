package ports

import (
	"context"

	"station-search-service/internal/domain"
)

// Contract for resolving the legal district enclosing a coordinate.
type RegionCoder interface {
	// RegionCode returns domain.ErrDistrictNotFound when the provider
	// yields no usable district record for the coordinate.
	RegionCode(ctx context.Context, c domain.Coordinate) (domain.RegionCode, error)
}
