package handler

import (
	"encoding/json"
	"net/http"

	"digital-menu/internal/model"
	"digital-menu/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles the customer cart endpoints.
type CartHandler struct {
	carts  service.CartService
	orders service.OrderService
	logger zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(carts service.CartService, orders service.OrderService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		carts:  carts,
		orders: orders,
		logger: logger.With().Str("handler", "cart").Logger(),
	}
}

// addItemRequest is the payload for adding a menu item to a cart.
type addItemRequest struct {
	MenuItemID string `json:"menuItemId"`
}

// quantityRequest is the payload for setting a line's quantity.
type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// Create handles POST /api/carts.
func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	id := h.carts.CreateCart()
	writeJSON(w, http.StatusCreated, h.carts.GetCart(id))
}

// Get handles GET /api/carts/{id}.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.carts.GetCart(r.PathValue("id")))
}

// AddItem handles POST /api/carts/{id}/items.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload", h.logger)
		return
	}
	if req.MenuItemID == "" {
		writeError(w, http.StatusBadRequest, "menuItemId is required", h.logger)
		return
	}

	view, err := h.carts.AddItem(r.Context(), r.PathValue("id"), req.MenuItemID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// UpdateQuantity handles PUT /api/carts/{id}/items/{itemID}. The
// quantity is absolute; anything below 1 removes the line.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload", h.logger)
		return
	}

	view := h.carts.UpdateQuantity(r.PathValue("id"), r.PathValue("itemID"), req.Quantity)
	writeJSON(w, http.StatusOK, view)
}

// RemoveItem handles DELETE /api/carts/{id}/items/{itemID}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	view := h.carts.RemoveItem(r.PathValue("id"), r.PathValue("itemID"))
	writeJSON(w, http.StatusOK, view)
}

// Clear handles DELETE /api/carts/{id}.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	view := h.carts.ClearCart(r.PathValue("id"))
	writeJSON(w, http.StatusOK, view)
}

// UpdateMeta handles PATCH /api/carts/{id}: order type, instructions,
// delivery address and customer name.
func (h *CartHandler) UpdateMeta(w http.ResponseWriter, r *http.Request) {
	var req model.CartUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload", h.logger)
		return
	}

	if req.OrderType != nil &&
		*req.OrderType != model.OrderTypePickup && *req.OrderType != model.OrderTypeDelivery {
		writeDomainError(w, model.ErrInvalidOrderType, h.logger)
		return
	}

	view := h.carts.UpdateMeta(r.PathValue("id"), req)
	writeJSON(w, http.StatusOK, view)
}

// BuildOrder handles POST /api/carts/{id}/order. It builds the order
// summary and WhatsApp link; the client performs the navigation and can
// show the same text and number as a manual fallback.
func (h *CartHandler) BuildOrder(w http.ResponseWriter, r *http.Request) {
	msg, err := h.orders.BuildOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, msg)
}
