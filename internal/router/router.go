package router

import (
	"net/http"

	"digital-menu/internal/handler"
	"digital-menu/internal/metrics"
	"digital-menu/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	menuHandler *handler.MenuHandler,
	cartHandler *handler.CartHandler,
	adminHandler *handler.AdminHandler,
	reg *metrics.Registry,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.Handle("GET /metrics", reg.Handler())

	// Public menu and settings
	mux.HandleFunc("GET /api/menu", menuHandler.GetMenu)
	mux.HandleFunc("GET /api/categories", menuHandler.GetCategories)
	mux.HandleFunc("GET /api/settings", menuHandler.GetSettings)

	// Customer carts
	mux.HandleFunc("POST /api/carts", cartHandler.Create)
	mux.HandleFunc("GET /api/carts/{id}", cartHandler.Get)
	mux.HandleFunc("PATCH /api/carts/{id}", cartHandler.UpdateMeta)
	mux.HandleFunc("DELETE /api/carts/{id}", cartHandler.Clear)
	mux.HandleFunc("POST /api/carts/{id}/items", cartHandler.AddItem)
	mux.HandleFunc("PUT /api/carts/{id}/items/{itemID}", cartHandler.UpdateQuantity)
	mux.HandleFunc("DELETE /api/carts/{id}/items/{itemID}", cartHandler.RemoveItem)
	mux.HandleFunc("POST /api/carts/{id}/order", cartHandler.BuildOrder)

	// Admin dashboard (API key enforced by middleware)
	mux.HandleFunc("POST /api/admin/menu", adminHandler.CreateMenuItem)
	mux.HandleFunc("GET /api/admin/menu/{id}", adminHandler.GetMenuItem)
	mux.HandleFunc("PUT /api/admin/menu/{id}", adminHandler.UpdateMenuItem)
	mux.HandleFunc("DELETE /api/admin/menu/{id}", adminHandler.DeleteMenuItem)
	mux.HandleFunc("POST /api/admin/categories", adminHandler.CreateCategory)
	mux.HandleFunc("DELETE /api/admin/categories/{id}", adminHandler.DeleteCategory)
	mux.HandleFunc("GET /api/admin/gallery", adminHandler.GetGallery)
	mux.HandleFunc("POST /api/admin/gallery", adminHandler.AddGalleryImage)
	mux.HandleFunc("DELETE /api/admin/gallery/{id}", adminHandler.DeleteGalleryImage)
	mux.HandleFunc("PUT /api/admin/settings", adminHandler.UpdateSettings)

	// Apply middleware in order: Recovery -> Logging -> Metrics -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Metrics(reg)(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
