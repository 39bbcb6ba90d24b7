package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"station-search-service/internal/api/dto"
	"station-search-service/internal/domain"
	"station-search-service/internal/ports"
)

// ReviewHandler exposes per-station user reviews.
type ReviewHandler struct {
	Repo ports.ReviewRepository
}

func (h *ReviewHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.add(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *ReviewHandler) list(w http.ResponseWriter, r *http.Request) {
	stationID := strings.TrimSpace(r.URL.Query().Get("station_id"))
	if stationID == "" {
		writeError(w, r, http.StatusBadRequest, "station_id query parameter is required")
		return
	}

	reviews, err := h.Repo.ListByStation(r.Context(), stationID)
	if err != nil {
		log.Printf("list reviews failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListReviewsResponse{
		Reviews: make([]dto.ReviewResponse, 0, len(reviews)),
	}
	for _, rv := range reviews {
		res.Reviews = append(res.Reviews, toReviewResponse(rv))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ReviewHandler) add(w http.ResponseWriter, r *http.Request) {
	var body dto.AddReviewRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(body.StationID) == "" {
		writeError(w, r, http.StatusBadRequest, "station_id is required")
		return
	}
	if body.Rating < 1 || body.Rating > 5 {
		writeError(w, r, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	review := domain.Review{
		StationID:  body.StationID,
		Rating:     body.Rating,
		Comment:    body.Comment,
		AuthorName: body.AuthorName,
	}

	saved, err := h.Repo.Add(r.Context(), review)
	if err != nil {
		log.Printf("add review failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, toReviewResponse(saved))
}

func toReviewResponse(rv domain.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:         rv.ID,
		StationID:  rv.StationID,
		Rating:     rv.Rating,
		Comment:    rv.Comment,
		AuthorName: rv.AuthorName,
		CreatedAt:  rv.CreatedAt,
	}
}
