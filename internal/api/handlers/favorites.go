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

// FavoriteHandler exposes the user's bookmarked stations.
type FavoriteHandler struct {
	Repo ports.FavoriteRepository
}

func (h *FavoriteHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.add(w, r)
	case http.MethodDelete:
		h.remove(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *FavoriteHandler) list(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.Repo.List(r.Context())
	if err != nil {
		log.Printf("list favorites failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListFavoritesResponse{
		Favorites: make([]dto.FavoriteResponse, 0, len(favorites)),
	}
	for _, f := range favorites {
		res.Favorites = append(res.Favorites, dto.FavoriteResponse{
			StationID: f.StationID,
			Name:      f.Name,
			Address:   f.Address,
			CreatedAt: f.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *FavoriteHandler) add(w http.ResponseWriter, r *http.Request) {
	var body dto.AddFavoriteRequest

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

	fav := domain.Favorite{
		StationID: body.StationID,
		Name:      body.Name,
		Address:   body.Address,
	}
	if err := h.Repo.Add(r.Context(), fav); err != nil {
		log.Printf("add favorite failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, map[string]string{"station_id": body.StationID})
}

func (h *FavoriteHandler) remove(w http.ResponseWriter, r *http.Request) {
	stationID := strings.TrimSpace(r.URL.Query().Get("station_id"))
	if stationID == "" {
		writeError(w, r, http.StatusBadRequest, "station_id query parameter is required")
		return
	}

	if err := h.Repo.Remove(r.Context(), stationID); err != nil {
		log.Printf("remove favorite failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
