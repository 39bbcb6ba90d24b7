package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createFavoritesQuery := `
	CREATE TABLE IF NOT EXISTS favorites (
		station_id TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		address    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createReviewsQuery := `
	CREATE TABLE IF NOT EXISTS reviews (
		review_id   BIGSERIAL PRIMARY KEY,
		station_id  TEXT NOT NULL,
		rating      INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment     TEXT NOT NULL DEFAULT '',
		author_name TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createReviewIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_reviews_station_created
	ON reviews(station_id, created_at DESC);
	`

	statements := []string{
		createFavoritesQuery,
		createReviewsQuery,
		createReviewIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
