package repository

import (
	"context"

	"digital-menu/internal/model"
)

// MenuRepository defines the interface for menu item data access operations.
type MenuRepository interface {
	// GetAll retrieves menu items, optionally restricted to visible ones.
	GetAll(ctx context.Context, onlyVisible bool) ([]model.MenuItem, error)

	// GetByID retrieves a single menu item by its ID. Returns (nil, nil)
	// when the item does not exist.
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)

	// Create inserts a new menu item and returns it with its assigned ID.
	Create(ctx context.Context, item model.MenuItem) (*model.MenuItem, error)

	// Update applies the provided fields to an existing menu item.
	Update(ctx context.Context, id string, updates model.MenuItemInput) error

	// Delete removes a menu item.
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	// GetAll retrieves all categories in display order.
	GetAll(ctx context.Context) ([]model.Category, error)

	// Create inserts a new category and returns its ID.
	Create(ctx context.Context, name string) (string, error)

	// Delete removes a category.
	Delete(ctx context.Context, id string) error
}

// GalleryRepository defines the interface for image library operations.
type GalleryRepository interface {
	// GetAll retrieves all gallery images, newest first.
	GetAll(ctx context.Context) ([]model.GalleryImage, error)

	// Add stores a new image URL and returns its ID.
	Add(ctx context.Context, url string) (string, error)

	// Delete removes a gallery image.
	Delete(ctx context.Context, id string) error
}

// SettingsRepository defines the interface for the business-settings
// document. The document is single-row; updates merge only the fields
// present in the partial update.
type SettingsRepository interface {
	// Get retrieves the settings document, or the documented defaults
	// when it has not been created yet.
	Get(ctx context.Context) (model.BusinessSettings, error)

	// Update merges the provided fields into the settings document,
	// creating it if necessary. A business name that is empty after
	// trimming is rejected with model.ErrEmptyBusinessName.
	Update(ctx context.Context, update model.BusinessSettingsUpdate) error
}
