package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"station-search-service/internal/adapters/location"
	"station-search-service/internal/api/dto"
	"station-search-service/internal/domain"
	"station-search-service/internal/services"
)

// StationSearcher is the slice of services.Searcher the handlers need.
type StationSearcher interface {
	Search(ctx context.Context, req services.SearchRequest) ([]domain.Station, error)
}

// SearchHandler exposes the station search pipeline over HTTP.
type SearchHandler struct {
	Searcher StationSearcher
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
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
			log.Printf("search failed: %v", err)
		}
		writeSearchError(w, r, status, code, msg)
		return
	}

	writeJSON(w, r, http.StatusOK, toSearchResponse(stations))
}

// decodeSearchRequest parses and validates the shared search request body
// used by the search and export endpoints.
func decodeSearchRequest(w http.ResponseWriter, r *http.Request) (services.SearchRequest, bool) {
	var body dto.SearchRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return services.SearchRequest{}, false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return services.SearchRequest{}, false
	}

	// client_id scopes the newer-search-wins behavior to one caller;
	// requests without it never cancel each other.
	req := services.SearchRequest{
		LocationQuery: body.Location,
		UseGPS:        body.UseGPS,
		ChargerType:   body.ChargerType,
		ClientID:      body.ClientID,
	}

	if body.UseGPS {
		if body.Latitude == nil || body.Longitude == nil {
			writeError(w, r, http.StatusBadRequest, "latitude and longitude are required when use_gps is set")
			return services.SearchRequest{}, false
		}
		req.Locator = location.Fixed{
			Position: domain.Coordinate{Lat: *body.Latitude, Lng: *body.Longitude},
		}
	} else if body.Location == "" {
		writeError(w, r, http.StatusBadRequest, "location is required unless use_gps is set")
		return services.SearchRequest{}, false
	}

	return req, true
}

func toSearchResponse(stations []domain.Station) dto.SearchResponse {
	res := dto.SearchResponse{
		Stations: make([]dto.StationResponse, 0, len(stations)),
	}
	for _, s := range stations {
		res.Stations = append(res.Stations, dto.StationResponse{
			ID:             s.ID,
			Name:           s.Name,
			Address:        s.Address,
			ChargerTypes:   s.ChargerTypes,
			OperatingHours: s.OperatingHours,
			Latitude:       s.Lat,
			Longitude:      s.Lng,
			DistanceKm:     s.DistanceKm,
			Status:         s.Status,
			OperatorName:   s.OperatorName,
		})
	}
	return res
}

// searchErrorStatus maps pipeline error kinds to HTTP status, a stable
// machine code and the user-facing message shown near the search control.
func searchErrorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrLocationUnavailable):
		return http.StatusBadRequest, "location_unavailable",
			"현재 위치를 가져올 수 없습니다. 위치 권한을 확인해주세요."
	case errors.Is(err, domain.ErrPlaceNotFound):
		return http.StatusNotFound, "place_not_found",
			"입력하신 위치를 찾을 수 없습니다. 다른 키워드로 검색해보세요."
	case errors.Is(err, domain.ErrDistrictNotFound):
		return http.StatusNotFound, "district_not_found",
			"행정구역 정보를 가져올 수 없습니다."
	case errors.Is(err, domain.ErrNoStationsInDistrict):
		return http.StatusNotFound, "no_stations_in_district",
			"해당 지역에서 충전소를 찾을 수 없습니다. 다른 지역으로 검색해보세요."
	case errors.Is(err, domain.ErrNoStationsInRadius):
		return http.StatusNotFound, "no_stations_in_radius",
			"10km 이내에 충전소가 없습니다. 검색 범위를 넓혀보세요."
	case errors.Is(err, domain.ErrSuperseded):
		return http.StatusConflict, "superseded",
			"새로운 검색이 시작되어 이전 검색이 취소되었습니다."
	default:
		return http.StatusInternalServerError, "internal_error",
			"검색 중 오류가 발생했습니다. 다시 시도해주세요."
	}
}
