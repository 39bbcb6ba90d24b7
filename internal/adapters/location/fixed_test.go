package location

import (
	"context"
	"errors"
	"testing"

	"station-search-service/internal/domain"
)

func TestFixedCurrentPosition(t *testing.T) {
	pos := domain.Coordinate{Lat: 37.4979, Lng: 127.0276}

	got, err := Fixed{Position: pos}.CurrentPosition(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != pos {
		t.Fatalf("position = %v, want %v", got, pos)
	}
}

func TestFixedInvalidPosition(t *testing.T) {
	_, err := Fixed{Position: domain.Coordinate{Lat: 999, Lng: 0}}.CurrentPosition(context.Background())
	if !errors.Is(err, domain.ErrLocationUnavailable) {
		t.Fatalf("expected ErrLocationUnavailable, got %v", err)
	}
}

func TestFixedCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Fixed{Position: domain.Coordinate{Lat: 37.5, Lng: 127.0}}.CurrentPosition(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
