package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"digital-menu/internal/model"
	"digital-menu/internal/repository"
	"digital-menu/internal/service"
	"digital-menu/internal/settings"

	"github.com/rs/zerolog"
)

// AdminHandler handles the protected dashboard endpoints: menu CRUD,
// categories, the image gallery and business settings.
type AdminHandler struct {
	menu    service.MenuService
	gallery repository.GalleryRepository
	feed    *settings.Feed
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	menu service.MenuService,
	gallery repository.GalleryRepository,
	feed *settings.Feed,
	logger zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		menu:    menu,
		gallery: gallery,
		feed:    feed,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// createItemRequest is the payload for creating a menu item.
type createItemRequest struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Available   bool     `json:"available"`
	Visible     bool     `json:"visible"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"imageUrls"`
	Type        string   `json:"type"`
}

// CreateMenuItem handles POST /api/admin/menu.
func (h *AdminHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload", h.logger)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required", h.logger)
		return
	}
	if req.Price < 0 {
		writeError(w, http.StatusBadRequest, "price cannot be negative", h.logger)
		return
	}

	item, err := h.menu.CreateItem(r.Context(), model.MenuItem{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Available:   req.Available,
		Visible:     req.Visible,
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
		Type:        req.Type,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create menu item", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// GetMenuItem handles GET /api/admin/menu/{id}. A missing item is a
// distinct not-found state, not a transport error.
func (h *AdminHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.menu.GetItem(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// UpdateMenuItem handles PUT /api/admin/menu/{id}.
func (h *AdminHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req model.MenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload", h.logger)
		return
	}

	if req.Price != nil && *req.Price < 0 {
		writeError(w, http.StatusBadRequest, "price cannot be negative", h.logger)
		return
	}

	if err := h.menu.UpdateItem(r.Context(), r.PathValue("id"), req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteMenuItem handles DELETE /api/admin/menu/{id}.
func (h *AdminHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.menu.DeleteItem(r.Context(), r.PathValue("id")); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// createCategoryRequest is the payload for creating a category.
type createCategoryRequest struct {
	Name string `json:"name"`
}

// CreateCategory handles POST /api/admin/categories.
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload", h.logger)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required", h.logger)
		return
	}

	id, err := h.menu.CreateCategory(r.Context(), req.Name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create category", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// DeleteCategory handles DELETE /api/admin/categories/{id}.
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.menu.DeleteCategory(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete category", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetGallery handles GET /api/admin/gallery.
func (h *AdminHandler) GetGallery(w http.ResponseWriter, r *http.Request) {
	images, err := h.gallery.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve gallery", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, images)
}

// addImageRequest is the payload for adding a gallery image.
type addImageRequest struct {
	URL string `json:"url"`
}

// AddGalleryImage handles POST /api/admin/gallery.
func (h *AdminHandler) AddGalleryImage(w http.ResponseWriter, r *http.Request) {
	var req addImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload", h.logger)
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeError(w, http.StatusBadRequest, "url is required", h.logger)
		return
	}

	id, err := h.gallery.Add(r.Context(), req.URL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to add gallery image", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// DeleteGalleryImage handles DELETE /api/admin/gallery/{id}.
func (h *AdminHandler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	if err := h.gallery.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete gallery image", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateSettings handles PUT /api/admin/settings. The update is a
// partial merge and is republished to all settings subscribers.
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req model.BusinessSettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload", h.logger)
		return
	}

	if err := h.feed.Update(r.Context(), req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.feed.Current())
}
