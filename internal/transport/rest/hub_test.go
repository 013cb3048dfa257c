package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wordlens/wordlens-backend/internal/domain"
	"github.com/wordlens/wordlens-backend/internal/service/hub"
)

type mockHubService struct {
	addFavoriteFn    func(ctx context.Context, term string) (*domain.Favorite, error)
	removeFavoriteFn func(ctx context.Context, term string) error
	listFavoritesFn  func(ctx context.Context) ([]domain.Favorite, error)
	recentFn         func(ctx context.Context, limit int) ([]domain.RecentSearch, error)
	clearRecentFn    func(ctx context.Context) error
	wordOfDayFn      func(ctx context.Context) (*hub.WordOfDayResult, error)
}

func (m *mockHubService) AddFavorite(ctx context.Context, term string) (*domain.Favorite, error) {
	return m.addFavoriteFn(ctx, term)
}
func (m *mockHubService) RemoveFavorite(ctx context.Context, term string) error {
	return m.removeFavoriteFn(ctx, term)
}
func (m *mockHubService) ListFavorites(ctx context.Context) ([]domain.Favorite, error) {
	return m.listFavoritesFn(ctx)
}
func (m *mockHubService) RecentSearches(ctx context.Context, limit int) ([]domain.RecentSearch, error) {
	return m.recentFn(ctx, limit)
}
func (m *mockHubService) ClearRecent(ctx context.Context) error {
	return m.clearRecentFn(ctx)
}
func (m *mockHubService) WordOfDay(ctx context.Context) (*hub.WordOfDayResult, error) {
	return m.wordOfDayFn(ctx)
}

func newHubRouter(svc *mockHubService) http.Handler {
	h := NewHubHandler(svc, newTestLogger())
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/favorites", h.AddFavorite)
	mux.HandleFunc("DELETE /api/favorites/{word}", h.RemoveFavorite)
	mux.HandleFunc("GET /api/favorites", h.ListFavorites)
	mux.HandleFunc("GET /api/recent", h.RecentSearches)
	mux.HandleFunc("DELETE /api/recent", h.ClearRecent)
	mux.HandleFunc("GET /api/word-of-day", h.WordOfDay)
	return mux
}

func TestHubHandler_AddFavorite(t *testing.T) {
	t.Parallel()

	svc := &mockHubService{addFavoriteFn: func(_ context.Context, term string) (*domain.Favorite, error) {
		return &domain.Favorite{Term: term, CreatedAt: time.Now()}, nil
	}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{"word":"ephemeral"}`))

	newHubRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	var fav domain.Favorite
	if err := json.NewDecoder(w.Body).Decode(&fav); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fav.Term != "ephemeral" {
		t.Errorf("Term = %q", fav.Term)
	}
}

func TestHubHandler_AddFavorite_Duplicate(t *testing.T) {
	t.Parallel()

	svc := &mockHubService{addFavoriteFn: func(context.Context, string) (*domain.Favorite, error) {
		return nil, domain.ErrAlreadyExists
	}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{"word":"cache"}`))

	newHubRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestHubHandler_RemoveFavorite(t *testing.T) {
	t.Parallel()

	var gotTerm string
	svc := &mockHubService{removeFavoriteFn: func(_ context.Context, term string) error {
		gotTerm = term
		return nil
	}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/favorites/ephemeral", nil)

	newHubRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if gotTerm != "ephemeral" {
		t.Errorf("term = %q", gotTerm)
	}
}

func TestHubHandler_RemoveFavorite_NotFound(t *testing.T) {
	t.Parallel()

	svc := &mockHubService{removeFavoriteFn: func(context.Context, string) error {
		return domain.ErrNotFound
	}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/favorites/missing", nil)

	newHubRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestHubHandler_RecentSearches_Limit(t *testing.T) {
	t.Parallel()

	var gotLimit int
	svc := &mockHubService{recentFn: func(_ context.Context, limit int) ([]domain.RecentSearch, error) {
		gotLimit = limit
		return []domain.RecentSearch{{Term: "cache"}}, nil
	}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/recent?limit=10", nil)

	newHubRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotLimit != 10 {
		t.Errorf("limit = %d, want 10", gotLimit)
	}
}

func TestHubHandler_RecentSearches_BadLimit(t *testing.T) {
	t.Parallel()

	svc := &mockHubService{recentFn: func(context.Context, int) ([]domain.RecentSearch, error) {
		t.Error("service must not be called for a bad limit")
		return nil, nil
	}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/recent?limit=lots", nil)

	newHubRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHubHandler_WordOfDay(t *testing.T) {
	t.Parallel()

	svc := &mockHubService{wordOfDayFn: func(context.Context) (*hub.WordOfDayResult, error) {
		return &hub.WordOfDayResult{
			Word:    domain.WordOfDay{Word: "serendipity"},
			Details: domain.ExplanationResult{Explanation: "Serendipity: a happy accident.", Synonyms: []string{}},
		}, nil
	}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/word-of-day", nil)

	newHubRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Word    domain.WordOfDay         `json:"wordOfDay"`
		Details domain.ExplanationResult `json:"details"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Word.Word != "serendipity" || body.Details.Explanation == "" {
		t.Errorf("body = %+v", body)
	}
}
