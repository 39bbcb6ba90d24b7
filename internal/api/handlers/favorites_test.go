package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"station-search-service/internal/domain"
)

type stubFavoriteRepo struct {
	favorites []domain.Favorite
	added     []domain.Favorite
	removed   []string
	err       error
}

func (s *stubFavoriteRepo) Add(ctx context.Context, fav domain.Favorite) error {
	if s.err != nil {
		return s.err
	}
	s.added = append(s.added, fav)
	return nil
}

func (s *stubFavoriteRepo) Remove(ctx context.Context, stationID string) error {
	if s.err != nil {
		return s.err
	}
	s.removed = append(s.removed, stationID)
	return nil
}

func (s *stubFavoriteRepo) List(ctx context.Context) ([]domain.Favorite, error) {
	return s.favorites, s.err
}

func TestFavoriteHandlerList(t *testing.T) {
	repo := &stubFavoriteRepo{favorites: []domain.Favorite{
		{
			StationID: "ME000001",
			Name:      "강남구청 충전소",
			Address:   "서울특별시 강남구 학동로 426",
			CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
	}}
	h := &FavoriteHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Favorites []struct {
			StationID string `json:"station_id"`
			Name      string `json:"name"`
		} `json:"favorites"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Favorites) != 1 || body.Favorites[0].StationID != "ME000001" {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
}

func TestFavoriteHandlerAdd(t *testing.T) {
	repo := &stubFavoriteRepo{}
	h := &FavoriteHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodPost, "/favorites",
		strings.NewReader(`{"station_id":"ME000001","name":"강남구청 충전소","address":"서울특별시 강남구"}`))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}
	if len(repo.added) != 1 || repo.added[0].StationID != "ME000001" {
		t.Fatalf("unexpected favorites added: %+v", repo.added)
	}
}

func TestFavoriteHandlerAddValidation(t *testing.T) {
	h := &FavoriteHandler{Repo: &stubFavoriteRepo{}}

	for _, body := range []string{
		`{"name":"이름만"}`,
		`{"station_id":"   "}`,
		`not json`,
		`{"station_id":"A","unknown":true}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/favorites", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Handle(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestFavoriteHandlerRemove(t *testing.T) {
	repo := &stubFavoriteRepo{}
	h := &FavoriteHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodDelete, "/favorites?station_id=ME000001", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if len(repo.removed) != 1 || repo.removed[0] != "ME000001" {
		t.Fatalf("unexpected removals: %v", repo.removed)
	}
}

func TestFavoriteHandlerRemoveWithoutID(t *testing.T) {
	h := &FavoriteHandler{Repo: &stubFavoriteRepo{}}

	req := httptest.NewRequest(http.MethodDelete, "/favorites", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestFavoriteHandlerRepositoryFailure(t *testing.T) {
	h := &FavoriteHandler{Repo: &stubFavoriteRepo{err: errors.New("connection refused")}}

	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestFavoriteHandlerMethodNotAllowed(t *testing.T) {
	h := &FavoriteHandler{Repo: &stubFavoriteRepo{}}

	req := httptest.NewRequest(http.MethodPut, "/favorites", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
