package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open connects to the station bookmark store. Postgres only backs
// favorites and reviews; search traffic never touches it, so the pool
// stays small.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open station store: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("openDB: verify station store connection: %w", err)
	}

	return db, nil
}
