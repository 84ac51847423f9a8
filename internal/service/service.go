package service

import (
	"context"
	"time"

	"digital-menu/internal/model"
	"digital-menu/internal/order"
)

// MenuService defines operations for the customer-facing menu and the
// admin's menu management.
type MenuService interface {
	// GetSections retrieves visible menu items filtered by the search
	// term and grouped by category for display.
	GetSections(ctx context.Context, term string) ([]model.MenuSection, error)

	// GetCategories retrieves all categories.
	GetCategories(ctx context.Context) ([]model.Category, error)

	// CreateCategory adds a new category and returns its ID.
	CreateCategory(ctx context.Context, name string) (string, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, id string) error

	// GetItem retrieves a single menu item, visible or not. Returns
	// model.ErrItemNotFound when the ID does not resolve.
	GetItem(ctx context.Context, id string) (*model.MenuItem, error)

	// CreateItem adds a new menu item.
	CreateItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error)

	// UpdateItem applies a partial update to a menu item.
	UpdateItem(ctx context.Context, id string, updates model.MenuItemInput) error

	// DeleteItem removes a menu item.
	DeleteItem(ctx context.Context, id string) error
}

// CartService defines operations on customer carts. Each cart is owned
// by one browsing session and identified by an opaque ID; operations on
// a cart are serialised.
type CartService interface {
	// CreateCart allocates a new cart ID.
	CreateCart() string

	// GetCart returns the cart's current state with derived totals.
	GetCart(id string) model.CartView

	// AddItem adds one unit of a menu item to the cart, snapshotting the
	// item as it exists right now.
	AddItem(ctx context.Context, cartID, menuItemID string) (model.CartView, error)

	// UpdateQuantity sets a line's quantity; below 1 removes the line.
	UpdateQuantity(cartID, menuItemID string, quantity int) model.CartView

	// RemoveItem removes a line from the cart.
	RemoveItem(cartID, menuItemID string) model.CartView

	// ClearCart empties the cart's lines and instruction fields.
	ClearCart(cartID string) model.CartView

	// UpdateMeta applies order metadata changes (order type,
	// instructions, address, customer name).
	UpdateMeta(cartID string, update model.CartUpdate) model.CartView

	// Snapshot returns the raw cart state.
	Snapshot(cartID string) model.CartSnapshot
}

// OrderService builds the order handoff message for a cart.
type OrderService interface {
	// BuildOrder validates the cart against current business settings
	// and produces the summary text plus WhatsApp deep link.
	BuildOrder(ctx context.Context, cartID string) (*order.Message, error)
}

// Clock supplies the timestamp stamped into order messages.
type Clock func() time.Time
