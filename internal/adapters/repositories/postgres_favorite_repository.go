package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"station-search-service/internal/domain"
)

// Postgres-backed implementation of the FavoriteRepository port.
type PostgresFavoriteRepository struct{ DB *sql.DB }

func NewPostgresFavoriteRepository(db *sql.DB) *PostgresFavoriteRepository {
	return &PostgresFavoriteRepository{DB: db}
}

// Add stores a favorite. Re-adding an already bookmarked station is a
// no-op rather than an error.
func (r *PostgresFavoriteRepository) Add(ctx context.Context, fav domain.Favorite) error {
	if r.DB == nil {
		return errors.New("favorite repository: DB is nil")
	}

	if strings.TrimSpace(fav.StationID) == "" {
		return errors.New("add favorite: station id must not be empty")
	}

	query := `
	INSERT INTO favorites (station_id, name, address)
	VALUES ($1, $2, $3)
	ON CONFLICT (station_id) DO NOTHING;
	`

	if _, err := r.DB.ExecContext(ctx, query, fav.StationID, fav.Name, fav.Address); err != nil {
		return fmt.Errorf("add favorite station_id=%q: %w", fav.StationID, err)
	}

	return nil
}

func (r *PostgresFavoriteRepository) Remove(ctx context.Context, stationID string) error {
	if r.DB == nil {
		return errors.New("favorite repository: DB is nil")
	}

	if strings.TrimSpace(stationID) == "" {
		return errors.New("remove favorite: station id must not be empty")
	}

	query := `DELETE FROM favorites WHERE station_id = $1;`

	if _, err := r.DB.ExecContext(ctx, query, stationID); err != nil {
		return fmt.Errorf("remove favorite station_id=%q: %w", stationID, err)
	}

	return nil
}

// List returns all bookmarked stations, most recent first.
func (r *PostgresFavoriteRepository) List(ctx context.Context) ([]domain.Favorite, error) {
	if r.DB == nil {
		return nil, errors.New("favorite repository: DB is nil")
	}

	query := `
	SELECT station_id, name, address, created_at
	FROM favorites
	ORDER BY created_at DESC;
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list favorites: query favorites table: %w", err)
	}
	defer rows.Close()

	favorites := make([]domain.Favorite, 0, 16)
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.StationID, &f.Name, &f.Address, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("list favorites: scan row: %w", err)
		}
		favorites = append(favorites, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list favorites: row iteration: %w", err)
	}

	return favorites, nil
}
