package dto

import "time"

type AddReviewRequest struct {
	StationID  string `json:"station_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	AuthorName string `json:"author_name"`
}

type ReviewResponse struct {
	ID         int64     `json:"id"`
	StationID  string    `json:"station_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type ListReviewsResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}
