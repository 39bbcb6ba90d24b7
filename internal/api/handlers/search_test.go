package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"station-search-service/internal/domain"
	"station-search-service/internal/services"
)

type stubSearcher struct {
	gotReq   services.SearchRequest
	stations []domain.Station
	err      error
}

func (s *stubSearcher) Search(ctx context.Context, req services.SearchRequest) ([]domain.Station, error) {
	s.gotReq = req
	return s.stations, s.err
}

func postSearch(t *testing.T, h *SearchHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/stations/search", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Search(rec, req)
	return rec
}

func TestSearchHandlerSuccess(t *testing.T) {
	searcher := &stubSearcher{stations: []domain.Station{
		{
			ID:             "ME000001",
			Name:           "강남구청 충전소",
			Address:        "서울특별시 강남구 학동로 426",
			ChargerTypes:   []string{"DC콤보"},
			OperatingHours: "24시간 이용가능",
			Lat:            37.517236,
			Lng:            127.047325,
			DistanceKm:     1.2,
			Status:         "충전가능",
			OperatorName:   "환경부",
		},
	}}
	h := &SearchHandler{Searcher: searcher}

	rec := postSearch(t, h, `{"location":"강남구","charger_type":"DC","client_id":"tab-7"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	if searcher.gotReq.LocationQuery != "강남구" || searcher.gotReq.ChargerType != "DC" {
		t.Errorf("unexpected request passed to searcher: %+v", searcher.gotReq)
	}
	if searcher.gotReq.ClientID != "tab-7" {
		t.Errorf("ClientID = %q, want tab-7", searcher.gotReq.ClientID)
	}

	var body struct {
		Stations []struct {
			ID         string  `json:"id"`
			DistanceKm float64 `json:"distance_km"`
		} `json:"stations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Stations) != 1 || body.Stations[0].ID != "ME000001" {
		t.Fatalf("unexpected response body: %s", rec.Body.String())
	}
}

func TestSearchHandlerGPSRequest(t *testing.T) {
	searcher := &stubSearcher{stations: []domain.Station{}}
	h := &SearchHandler{Searcher: searcher}

	rec := postSearch(t, h, `{"use_gps":true,"latitude":37.4979,"longitude":127.0276}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	if !searcher.gotReq.UseGPS {
		t.Error("expected UseGPS to be set")
	}
	if searcher.gotReq.Locator == nil {
		t.Fatal("expected a locator for a GPS request")
	}

	pos, err := searcher.gotReq.Locator.CurrentPosition(context.Background())
	if err != nil {
		t.Fatalf("locator failed: %v", err)
	}
	if pos.Lat != 37.4979 || pos.Lng != 127.0276 {
		t.Errorf("locator position = %v, want the submitted fix", pos)
	}
}

func TestSearchHandlerGPSWithoutCoordinates(t *testing.T) {
	h := &SearchHandler{Searcher: &stubSearcher{}}

	rec := postSearch(t, h, `{"use_gps":true}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSearchHandlerMissingLocation(t *testing.T) {
	h := &SearchHandler{Searcher: &stubSearcher{}}

	rec := postSearch(t, h, `{"charger_type":"DC"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSearchHandlerInvalidJSON(t *testing.T) {
	h := &SearchHandler{Searcher: &stubSearcher{}}

	for _, body := range []string{
		`not json`,
		`{"location":"강남구"} {"location":"서초구"}`,
		`{"location":"강남구","unknown_field":1}`,
	} {
		rec := postSearch(t, h, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestSearchHandlerMethodNotAllowed(t *testing.T) {
	h := &SearchHandler{Searcher: &stubSearcher{}}

	req := httptest.NewRequest(http.MethodGet, "/stations/search", nil)
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Errorf("Allow = %q, want POST", allow)
	}
}

func TestSearchHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{domain.ErrLocationUnavailable, http.StatusBadRequest, "location_unavailable"},
		{domain.ErrPlaceNotFound, http.StatusNotFound, "place_not_found"},
		{domain.ErrDistrictNotFound, http.StatusNotFound, "district_not_found"},
		{domain.ErrNoStationsInDistrict, http.StatusNotFound, "no_stations_in_district"},
		{domain.ErrNoStationsInRadius, http.StatusNotFound, "no_stations_in_radius"},
		{domain.ErrSuperseded, http.StatusConflict, "superseded"},
		{context.DeadlineExceeded, http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		h := &SearchHandler{Searcher: &stubSearcher{err: tc.err}}

		rec := postSearch(t, h, `{"location":"강남구"}`)

		if rec.Code != tc.wantStatus {
			t.Errorf("%v: status = %d, want %d", tc.err, rec.Code, tc.wantStatus)
			continue
		}

		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Errorf("%v: decode response: %v", tc.err, err)
			continue
		}
		if body["code"] != tc.wantCode {
			t.Errorf("%v: code = %q, want %q", tc.err, body["code"], tc.wantCode)
		}
		if body["error"] == "" {
			t.Errorf("%v: expected a user-facing message", tc.err)
		}
	}
}

func TestSearchHandlerEmptyResultEncodesArray(t *testing.T) {
	h := &SearchHandler{Searcher: &stubSearcher{stations: []domain.Station{}}}

	rec := postSearch(t, h, `{"location":"강남구"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"stations":[]`) {
		t.Errorf("expected an empty array, got %s", rec.Body.String())
	}
}
