package model

import "time"

// Dietary type markers for menu items.
const (
	DietVeg    = "veg"
	DietNonVeg = "non-veg"
)

// MenuItem represents a single dish on the menu.
type MenuItem struct {
	ID          string   `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Price       float64  `json:"price" db:"price"`
	Category    string   `json:"category" db:"category"`
	Available   bool     `json:"available" db:"available"`
	Visible     bool     `json:"visible" db:"visible"`
	Description string   `json:"description,omitempty" db:"description"`
	ImageURLs   []string `json:"imageUrls" db:"image_urls"`
	Type        string   `json:"type,omitempty" db:"diet_type"`
}

// MenuItemInput is the payload for creating or updating a menu item.
// Pointer fields distinguish "not provided" from zero values on update.
type MenuItemInput struct {
	Name        *string   `json:"name,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Available   *bool     `json:"available,omitempty"`
	Visible     *bool     `json:"visible,omitempty"`
	Description *string   `json:"description,omitempty"`
	ImageURLs   *[]string `json:"imageUrls,omitempty"`
	Type        *string   `json:"type,omitempty"`
}

// Category groups menu items for display ordering.
type Category struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Order int    `json:"order" db:"sort_order"`
}

// GalleryImage is one entry in the admin image library.
type GalleryImage struct {
	ID        string    `json:"id" db:"id"`
	URL       string    `json:"url" db:"url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// MenuSection is one displayed group of menu items under a category label.
type MenuSection struct {
	Category string     `json:"category"`
	Items    []MenuItem `json:"items"`
}
