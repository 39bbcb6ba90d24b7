package handlers

import (
	"log"
	"net/http"

	"station-search-service/internal/adapters/export"
)

// ExportHandler runs a search and streams the ranked list as an xlsx
// attachment. It takes the same request body as the search endpoint.
type ExportHandler struct {
	Searcher StationSearcher
}

func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, ok := decodeSearchRequest(w, r)
	if !ok {
		return
	}

	stations, err := h.Searcher.Search(r.Context(), req)
	if err != nil {
		status, code, msg := searchErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("export search failed: %v", err)
		}
		writeSearchError(w, r, status, code, msg)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="stations.xlsx"`)

	if err := export.WriteStations(w, stations); err != nil {
		// Headers are already sent; the truncated body is all we can do.
		log.Printf("export write failed: %v", err)
	}
}
