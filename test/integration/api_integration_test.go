package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"digital-menu/internal/cart"
	"digital-menu/internal/handler"
	"digital-menu/internal/metrics"
	"digital-menu/internal/model"
	"digital-menu/internal/order"
	"digital-menu/internal/repository"
	"digital-menu/internal/router"
	"digital-menu/internal/service"
	"digital-menu/internal/settings"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()
	ctx := context.Background()

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(testDB.Pool, logger)
	categoryRepo := repository.NewCategoryRepository(testDB.Pool, logger)
	galleryRepo := repository.NewGalleryRepository(testDB.Pool, logger)
	settingsRepo := repository.NewSettingsRepository(testDB.Pool, logger)

	// Cart snapshots live in memory for tests
	store := cart.NewMemoryStore()

	// Start the settings feed without a background refresh
	feed := settings.NewFeed(settingsRepo, logger)
	require.NoError(t, feed.Start(ctx, 0))
	t.Cleanup(feed.Close)

	reg := metrics.NewRegistry()

	// Initialize services
	menuService := service.NewMenuService(menuRepo, categoryRepo, logger)
	cartService := service.NewCartService(menuRepo, store, reg, logger)
	orderService := service.NewOrderService(cartService, feed, reg, nil, logger)

	// Initialize handlers
	menuHandler := handler.NewMenuHandler(menuService, feed, logger)
	cartHandler := handler.NewCartHandler(cartService, orderService, logger)
	adminHandler := handler.NewAdminHandler(menuService, galleryRepo, feed, logger)

	// Create router
	return router.New(menuHandler, cartHandler, adminHandler, reg, "test-api-key", logger)
}

func doJSON(t *testing.T, server http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if strings.HasPrefix(path, "/api/admin") {
		req.Header.Set("X-API-Key", "test-api-key")
	}
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func TestMenuAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)

	t.Run("GET /api/menu returns visible items grouped by category", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedMenu(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		w := doJSON(t, server, http.MethodGet, "/api/menu", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var sections []model.MenuSection
		require.NoError(t, json.NewDecoder(w.Body).Decode(&sections))

		// Hidden Gulab Jamun leaves only Starters and Mains
		require.Len(t, sections, 2)
		assert.Equal(t, "Mains", sections[0].Category)
		assert.Equal(t, "Starters", sections[1].Category)
		assert.Len(t, sections[1].Items, 2)
	})

	t.Run("GET /api/menu?q= filters by search term", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedMenu(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		w := doJSON(t, server, http.MethodGet, "/api/menu?q=paneer", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var sections []model.MenuSection
		require.NoError(t, json.NewDecoder(w.Body).Decode(&sections))
		require.Len(t, sections, 1)
		require.Len(t, sections[0].Items, 1)
		assert.Equal(t, "Paneer Tikka", sections[0].Items[0].Name)
	})

	t.Run("GET /api/settings serves defaults before configuration", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		w := doJSON(t, server, http.MethodGet, "/api/settings", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var got model.BusinessSettings
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, "My Restaurant", got.BusinessName)
		assert.True(t, got.AcceptingOrders)
	})

	t.Run("GET /health returns 200 without API key", func(t *testing.T) {
		server := setupTestServer(t, testDB)

		w := doJSON(t, server, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCartAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)

	t.Run("full cart and order flow", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedMenu(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		// Configure the WhatsApp number used for the handoff
		phone := "911234567890"
		w := doJSON(t, server, http.MethodPut, "/api/admin/settings",
			model.BusinessSettingsUpdate{WhatsAppNumber: &phone})
		require.Equal(t, http.StatusOK, w.Code)

		// Create a cart
		w = doJSON(t, server, http.MethodPost, "/api/carts", nil)
		require.Equal(t, http.StatusCreated, w.Code)

		var view model.CartView
		require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
		require.NotEmpty(t, view.ID)
		cartPath := "/api/carts/" + view.ID

		// Add two dishes
		w = doJSON(t, server, http.MethodPost, cartPath+"/items", addItemBody("M001"))
		require.Equal(t, http.StatusOK, w.Code)
		w = doJSON(t, server, http.MethodPost, cartPath+"/items", addItemBody("M003"))
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
		assert.Equal(t, 2, view.Count)
		assert.Equal(t, 400.00, view.Total)

		// Bump the first dish to two plates
		w = doJSON(t, server, http.MethodPut, cartPath+"/items/M001", map[string]int{"quantity": 2})
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
		assert.Equal(t, 3, view.Count)
		assert.Equal(t, 620.00, view.Total)

		// Attach the customer name and instructions
		name := "Asha"
		instructions := "Less spicy please"
		w = doJSON(t, server, http.MethodPatch, cartPath, model.CartUpdate{
			CustomerName:        &name,
			SpecialInstructions: &instructions,
		})
		require.Equal(t, http.StatusOK, w.Code)

		// Build the order handoff
		w = doJSON(t, server, http.MethodPost, cartPath+"/order", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var msg order.Message
		require.NoError(t, json.NewDecoder(w.Body).Decode(&msg))
		assert.Equal(t, "911234567890", msg.Phone)
		assert.Contains(t, msg.Text, "Paneer Tikka x2")
		assert.Contains(t, msg.Text, "Dal Makhani x1")
		assert.Contains(t, msg.Text, "Less spicy please")

		link, err := url.Parse(msg.Link)
		require.NoError(t, err)
		assert.Equal(t, "wa.me", link.Host)
		assert.Equal(t, msg.Text, link.Query().Get("text"))
	})

	t.Run("adding an unknown menu item returns 404", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		w := doJSON(t, server, http.MethodPost, "/api/carts", nil)
		require.Equal(t, http.StatusCreated, w.Code)
		var view model.CartView
		require.NoError(t, json.NewDecoder(w.Body).Decode(&view))

		w = doJSON(t, server, http.MethodPost, "/api/carts/"+view.ID+"/items", addItemBody("M999"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ordering an empty cart returns 422", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		w := doJSON(t, server, http.MethodPost, "/api/carts", nil)
		require.Equal(t, http.StatusCreated, w.Code)
		var view model.CartView
		require.NoError(t, json.NewDecoder(w.Body).Decode(&view))

		w = doJSON(t, server, http.MethodPost, "/api/carts/"+view.ID+"/order", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("PATCH with an unknown order type returns 400", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		w := doJSON(t, server, http.MethodPost, "/api/carts", nil)
		require.Equal(t, http.StatusCreated, w.Code)
		var view model.CartView
		require.NoError(t, json.NewDecoder(w.Body).Decode(&view))

		bad := "drone-drop"
		w = doJSON(t, server, http.MethodPatch, "/api/carts/"+view.ID, model.CartUpdate{OrderType: &bad})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)

	t.Run("admin endpoints require the API key", func(t *testing.T) {
		server := setupTestServer(t, testDB)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/gallery", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("menu item lifecycle", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		// Create
		w := doJSON(t, server, http.MethodPost, "/api/admin/menu", map[string]any{
			"name":      "Veg Thali",
			"price":     250.0,
			"category":  "Mains",
			"available": true,
			"visible":   true,
			"type":      "veg",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var item model.MenuItem
		require.NoError(t, json.NewDecoder(w.Body).Decode(&item))
		require.NotEmpty(t, item.ID)

		// Update the price only
		w = doJSON(t, server, http.MethodPut, "/api/admin/menu/"+item.ID,
			map[string]any{"price": 275.0})
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, server, http.MethodGet, "/api/admin/menu/"+item.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.NewDecoder(w.Body).Decode(&item))
		assert.Equal(t, 275.0, item.Price)
		assert.Equal(t, "Veg Thali", item.Name)

		// Delete
		w = doJSON(t, server, http.MethodDelete, "/api/admin/menu/"+item.ID, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, server, http.MethodGet, "/api/admin/menu/"+item.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("creating an item without a name returns 400", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		w := doJSON(t, server, http.MethodPost, "/api/admin/menu",
			map[string]any{"price": 100.0})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("settings update is reflected on the public endpoint", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		name := "Spice Route"
		closed := false
		w := doJSON(t, server, http.MethodPut, "/api/admin/settings",
			model.BusinessSettingsUpdate{BusinessName: &name, AcceptingOrders: &closed})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, server, http.MethodGet, "/api/settings", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got model.BusinessSettings
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, "Spice Route", got.BusinessName)
		assert.False(t, got.AcceptingOrders)
	})

	t.Run("blank business name is rejected", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		blank := "  "
		w := doJSON(t, server, http.MethodPut, "/api/admin/settings",
			model.BusinessSettingsUpdate{BusinessName: &blank})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("gallery lifecycle", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		server := setupTestServer(t, testDB)

		w := doJSON(t, server, http.MethodPost, "/api/admin/gallery",
			map[string]string{"url": "https://example.com/front.jpg"})
		require.Equal(t, http.StatusCreated, w.Code)

		var image model.GalleryImage
		require.NoError(t, json.NewDecoder(w.Body).Decode(&image))
		require.NotEmpty(t, image.ID)

		w = doJSON(t, server, http.MethodGet, "/api/admin/gallery", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var images []model.GalleryImage
		require.NoError(t, json.NewDecoder(w.Body).Decode(&images))
		assert.Len(t, images, 1)

		w = doJSON(t, server, http.MethodDelete, "/api/admin/gallery/"+image.ID, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestCORS_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("OPTIONS request returns CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/menu", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
	})
}

func addItemBody(menuItemID string) map[string]string {
	return map[string]string{"menuItemId": menuItemID}
}
