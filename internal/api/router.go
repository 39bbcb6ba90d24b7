package api

import (
	"net/http"

	"station-search-service/internal/api/handlers"
	"station-search-service/internal/ports"
	"station-search-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	searcher *services.Searcher,
	favorites ports.FavoriteRepository,
	reviews ports.ReviewRepository,
) http.Handler {
	mux := http.NewServeMux()

	searchHandler := &handlers.SearchHandler{Searcher: searcher}
	exportHandler := &handlers.ExportHandler{Searcher: searcher}
	favoriteHandler := &handlers.FavoriteHandler{Repo: favorites}
	reviewHandler := &handlers.ReviewHandler{Repo: reviews}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/stations/search", searchHandler.Search)
	mux.HandleFunc("/stations/export", exportHandler.Export)
	mux.HandleFunc("/favorites", favoriteHandler.Handle)
	mux.HandleFunc("/reviews", reviewHandler.Handle)

	return requestIDMiddleware(loggingMiddleware(mux))
}
