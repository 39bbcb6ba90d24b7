package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"station-search-service/internal/domain"
)

// Postgres-backed implementation of the ReviewRepository port.
type PostgresReviewRepository struct{ DB *sql.DB }

func NewPostgresReviewRepository(db *sql.DB) *PostgresReviewRepository {
	return &PostgresReviewRepository{DB: db}
}

// Add stores a review and returns it with the generated id and timestamp.
func (r *PostgresReviewRepository) Add(ctx context.Context, review domain.Review) (domain.Review, error) {
	if r.DB == nil {
		return domain.Review{}, errors.New("review repository: DB is nil")
	}

	if strings.TrimSpace(review.StationID) == "" {
		return domain.Review{}, errors.New("add review: station id must not be empty")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return domain.Review{}, fmt.Errorf("add review: rating must be between 1 and 5, got %d", review.Rating)
	}

	query := `
	INSERT INTO reviews (station_id, rating, comment, author_name)
	VALUES ($1, $2, $3, $4)
	RETURNING review_id, created_at;
	`

	row := r.DB.QueryRowContext(ctx, query, review.StationID, review.Rating, review.Comment, review.AuthorName)
	if err := row.Scan(&review.ID, &review.CreatedAt); err != nil {
		return domain.Review{}, fmt.Errorf("add review station_id=%q: %w", review.StationID, err)
	}

	return review, nil
}

// ListByStation returns a station's reviews, most recent first.
func (r *PostgresReviewRepository) ListByStation(ctx context.Context, stationID string) ([]domain.Review, error) {
	if r.DB == nil {
		return nil, errors.New("review repository: DB is nil")
	}

	query := `
	SELECT review_id, station_id, rating, comment, author_name, created_at
	FROM reviews
	WHERE station_id = $1
	ORDER BY created_at DESC;
	`

	rows, err := r.DB.QueryContext(ctx, query, stationID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: query reviews table: %w", err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0, 16)
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.StationID, &rv.Rating, &rv.Comment, &rv.AuthorName, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("list reviews: scan row: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reviews: row iteration: %w", err)
	}

	return reviews, nil
}
