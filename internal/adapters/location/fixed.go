// Package location provides Locator implementations. The GPS read itself
// happens on the client device; the server receives the fix over the wire.
package location

import (
	"context"

	"station-search-service/internal/domain"
)

// Fixed is a Locator carrying a client-reported position.
type Fixed struct {
	Position domain.Coordinate
}

func (f Fixed) CurrentPosition(ctx context.Context) (domain.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return domain.Coordinate{}, err
	}
	if !f.Position.Valid() {
		return domain.Coordinate{}, domain.ErrLocationUnavailable
	}
	return f.Position, nil
}
