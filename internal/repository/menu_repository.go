package repository

import (
	"context"
	"fmt"
	"strings"

	"digital-menu/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// menuRepository implements the MenuRepository interface using PostgreSQL.
type menuRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

// GetAll retrieves menu items, optionally restricted to visible ones.
func (r *menuRepository) GetAll(ctx context.Context, onlyVisible bool) ([]model.MenuItem, error) {
	query := `
		SELECT id, name, price, category, available, visible, description, image_urls, image_url, diet_type
		FROM menu_items
	`
	if onlyVisible {
		query += ` WHERE visible = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Bool("only_visible", onlyVisible).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// GetByID retrieves a single menu item by its ID.
func (r *menuRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	query := `
		SELECT id, name, price, category, available, visible, description, image_urls, image_url, diet_type
		FROM menu_items
		WHERE id = $1
	`

	item, err := scanMenuItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("item_id", id).Msg("menu item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("item_id", id).Msg("failed to query menu item")
		return nil, fmt.Errorf("failed to query menu item: %w", err)
	}

	return &item, nil
}

// Create inserts a new menu item and returns it with its assigned ID.
func (r *menuRepository) Create(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.ImageURLs == nil {
		item.ImageURLs = []string{}
	}

	query := `
		INSERT INTO menu_items (id, name, price, category, available, visible, description, image_urls, diet_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID, item.Name, item.Price, item.Category,
		item.Available, item.Visible, item.Description, item.ImageURLs, item.Type)
	if err != nil {
		r.logger.Error().Err(err).Str("name", item.Name).Msg("failed to insert menu item")
		return nil, fmt.Errorf("failed to insert menu item: %w", err)
	}

	r.logger.Info().Str("item_id", item.ID).Str("name", item.Name).Msg("menu item created")
	return &item, nil
}

// Update applies the provided fields to an existing menu item.
func (r *menuRepository) Update(ctx context.Context, id string, updates model.MenuItemInput) error {
	// Build the SET clause from the fields that were actually provided.
	set := make([]string, 0, 8)
	args := make([]any, 0, 9)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if updates.Name != nil {
		add("name", *updates.Name)
	}
	if updates.Price != nil {
		add("price", *updates.Price)
	}
	if updates.Category != nil {
		add("category", *updates.Category)
	}
	if updates.Available != nil {
		add("available", *updates.Available)
	}
	if updates.Visible != nil {
		add("visible", *updates.Visible)
	}
	if updates.Description != nil {
		add("description", *updates.Description)
	}
	if updates.ImageURLs != nil {
		add("image_urls", *updates.ImageURLs)
	}
	if updates.Type != nil {
		add("diet_type", *updates.Type)
	}

	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE menu_items SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("item_id", id).Msg("failed to update menu item")
		return fmt.Errorf("failed to update menu item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("item_id", id).Msg("menu item not found for update")
		return model.ErrItemNotFound
	}

	return nil
}

// Delete removes a menu item.
func (r *menuRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("item_id", id).Msg("failed to delete menu item")
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrItemNotFound
	}

	r.logger.Info().Str("item_id", id).Msg("menu item deleted")
	return nil
}

// scanMenuItem scans one menu item row, folding the legacy single-image
// column into the image URL list when the list is empty.
func scanMenuItem(row pgx.Row) (model.MenuItem, error) {
	var (
		item        model.MenuItem
		description *string
		imageURLs   []string
		legacyURL   *string
		dietType    *string
	)

	err := row.Scan(&item.ID, &item.Name, &item.Price, &item.Category,
		&item.Available, &item.Visible, &description, &imageURLs, &legacyURL, &dietType)
	if err != nil {
		return model.MenuItem{}, err
	}

	if description != nil {
		item.Description = *description
	}
	if dietType != nil {
		item.Type = *dietType
	}

	if imageURLs == nil {
		imageURLs = []string{}
	}
	if len(imageURLs) == 0 && legacyURL != nil && *legacyURL != "" {
		imageURLs = []string{*legacyURL}
	}
	item.ImageURLs = imageURLs

	return item, nil
}
