package handler

import (
	"net/http"

	"digital-menu/internal/service"
	"digital-menu/internal/settings"

	"github.com/rs/zerolog"
)

// MenuHandler handles the customer-facing menu and settings endpoints.
type MenuHandler struct {
	menu   service.MenuService
	feed   *settings.Feed
	logger zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menu service.MenuService, feed *settings.Feed, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		menu:   menu,
		feed:   feed,
		logger: logger.With().Str("handler", "menu").Logger(),
	}
}

// GetMenu handles GET /api/menu. The optional "q" parameter filters by
// search term; the response is grouped into category sections.
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	sections, err := h.menu.GetSections(r.Context(), term)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve menu", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, sections)
}

// GetCategories handles GET /api/categories.
func (h *MenuHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.menu.GetCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve categories", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// GetSettings handles GET /api/settings, serving the latest snapshot
// from the live feed.
func (h *MenuHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.feed.Current())
}
