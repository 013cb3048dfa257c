package rest

import (
	"net/http"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Explain  *ExplainHandler
	Hub      *HubHandler
	Settings *SettingsHandler
}

// NewRouter builds the HTTP route table.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/explain", h.Explain.Explain)

	mux.HandleFunc("GET /api/favorites", h.Hub.ListFavorites)
	mux.HandleFunc("POST /api/favorites", h.Hub.AddFavorite)
	mux.HandleFunc("DELETE /api/favorites/{word}", h.Hub.RemoveFavorite)

	mux.HandleFunc("GET /api/recent", h.Hub.RecentSearches)
	mux.HandleFunc("DELETE /api/recent", h.Hub.ClearRecent)

	mux.HandleFunc("GET /api/word-of-day", h.Hub.WordOfDay)

	mux.HandleFunc("GET /api/settings", h.Settings.Get)
	mux.HandleFunc("PUT /api/settings", h.Settings.Update)

	return mux
}
