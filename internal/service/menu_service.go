package service

import (
	"context"
	"fmt"

	"digital-menu/internal/menu"
	"digital-menu/internal/model"
	"digital-menu/internal/repository"

	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	menuRepo     repository.MenuRepository
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(
	menuRepo repository.MenuRepository,
	categoryRepo repository.CategoryRepository,
	logger zerolog.Logger,
) MenuService {
	return &menuService{
		menuRepo:     menuRepo,
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "menu").Logger(),
	}
}

// GetSections retrieves visible menu items filtered by the search term
// and grouped by category.
func (s *menuService) GetSections(ctx context.Context, term string) ([]model.MenuSection, error) {
	items, err := s.menuRepo.GetAll(ctx, true)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch menu items")
		return nil, fmt.Errorf("failed to fetch menu items: %w", err)
	}

	return menu.Sections(items, term), nil
}

// GetCategories retrieves all categories.
func (s *menuService) GetCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch categories")
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// CreateCategory adds a new category and returns its ID.
func (s *menuService) CreateCategory(ctx context.Context, name string) (string, error) {
	return s.categoryRepo.Create(ctx, name)
}

// DeleteCategory removes a category.
func (s *menuService) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepo.Delete(ctx, id)
}

// GetItem retrieves a single menu item by ID.
func (s *menuService) GetItem(ctx context.Context, id string) (*model.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu item: %w", err)
	}
	if item == nil {
		return nil, model.ErrItemNotFound
	}
	return item, nil
}

// CreateItem adds a new menu item.
func (s *menuService) CreateItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	created, err := s.menuRepo.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("item_id", created.ID).Str("name", created.Name).Msg("menu item created")
	return created, nil
}

// UpdateItem applies a partial update to a menu item.
func (s *menuService) UpdateItem(ctx context.Context, id string, updates model.MenuItemInput) error {
	return s.menuRepo.Update(ctx, id, updates)
}

// DeleteItem removes a menu item.
func (s *menuService) DeleteItem(ctx context.Context, id string) error {
	return s.menuRepo.Delete(ctx, id)
}
