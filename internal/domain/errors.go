package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrLocationUnavailable device position denied, timed out or missing
	ErrLocationUnavailable = errors.New("current location unavailable")

	// ErrPlaceNotFound geocoding returned no candidate for the query
	ErrPlaceNotFound = errors.New("place not found")

	// ErrDistrictNotFound no usable legal-district record for the coordinate
	ErrDistrictNotFound = errors.New("administrative district not found")

	// ErrNoStationsInDistrict provider returned no charger records
	ErrNoStationsInDistrict = errors.New("no charging stations in district")

	// ErrNoStationsInRadius records existed but none survived the filters
	ErrNoStationsInRadius = errors.New("no charging stations within radius")

	// ErrSuperseded a newer search was dispatched before this one finished
	ErrSuperseded = errors.New("search superseded by a newer request")
)

// ProviderError marks a transport-level failure (network error, non-2xx)
// from an external provider. The pipeline collapses it into the matching
// not-found outcome for the caller but logs the two conditions apart.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s unreachable: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
