package service

import (
	"context"
	"sync"

	"digital-menu/internal/cart"
	"digital-menu/internal/metrics"
	"digital-menu/internal/model"
	"digital-menu/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService. Engines are created lazily per
// cart ID and rehydrate themselves from the shared snapshot store, so a
// cart survives process restarts the way a browser cart survives page
// reloads. The mutex serialises all engine access; each individual
// engine is single-threaded by contract.
type cartService struct {
	menuRepo repository.MenuRepository
	store    cart.Store
	metrics  *metrics.Registry
	logger   zerolog.Logger

	mu      sync.Mutex
	engines map[string]*cart.Engine
}

// NewCartService creates a new cart service over the given snapshot store.
func NewCartService(
	menuRepo repository.MenuRepository,
	store cart.Store,
	reg *metrics.Registry,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		menuRepo: menuRepo,
		store:    store,
		metrics:  reg,
		logger:   logger.With().Str("service", "cart").Logger(),
		engines:  make(map[string]*cart.Engine),
	}
}

// CreateCart allocates a new cart ID.
func (s *cartService) CreateCart() string {
	return uuid.New().String()
}

// engine returns the cart's engine, creating it (and rehydrating from the
// store) on first use. Caller must hold s.mu.
func (s *cartService) engine(cartID string) *cart.Engine {
	if e, ok := s.engines[cartID]; ok {
		return e
	}
	e := cart.NewEngine(cartID, s.store, s.logger)
	s.engines[cartID] = e
	return e
}

func view(cartID string, e *cart.Engine) model.CartView {
	return model.CartView{
		ID:       cartID,
		Snapshot: e.Snapshot(),
		Total:    e.Total(),
		Count:    e.Count(),
	}
}

// GetCart returns the cart's current state with derived totals.
func (s *cartService) GetCart(cartID string) model.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view(cartID, s.engine(cartID))
}

// AddItem adds one unit of a menu item to the cart.
func (s *cartService) AddItem(ctx context.Context, cartID, menuItemID string) (model.CartView, error) {
	item, err := s.menuRepo.GetByID(ctx, menuItemID)
	if err != nil {
		return model.CartView{}, err
	}
	if item == nil {
		return model.CartView{}, model.ErrItemNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.engine(cartID)
	e.AddItem(*item)
	s.metrics.CartMutations.Inc()

	s.logger.Debug().Str("cart_id", cartID).Str("item_id", menuItemID).Msg("item added to cart")
	return view(cartID, e), nil
}

// UpdateQuantity sets a line's quantity; below 1 removes the line.
func (s *cartService) UpdateQuantity(cartID, menuItemID string, quantity int) model.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.engine(cartID)
	e.UpdateQuantity(menuItemID, quantity)
	s.metrics.CartMutations.Inc()
	return view(cartID, e)
}

// RemoveItem removes a line from the cart.
func (s *cartService) RemoveItem(cartID, menuItemID string) model.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.engine(cartID)
	e.RemoveItem(menuItemID)
	s.metrics.CartMutations.Inc()
	return view(cartID, e)
}

// ClearCart empties the cart's lines and instruction fields.
func (s *cartService) ClearCart(cartID string) model.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.engine(cartID)
	e.ClearCart()
	s.metrics.CartMutations.Inc()
	return view(cartID, e)
}

// UpdateMeta applies order metadata changes.
func (s *cartService) UpdateMeta(cartID string, update model.CartUpdate) model.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.engine(cartID)
	if update.OrderType != nil {
		e.SetOrderType(*update.OrderType)
	}
	if update.SpecialInstructions != nil {
		e.SetSpecialInstructions(*update.SpecialInstructions)
	}
	if update.CookingInstructions != nil {
		e.SetCookingInstructions(*update.CookingInstructions)
	}
	if update.DeliveryAddress != nil {
		e.SetDeliveryAddress(*update.DeliveryAddress)
	}
	if update.CustomerName != nil {
		e.SetCustomerName(*update.CustomerName)
	}
	s.metrics.CartMutations.Inc()
	return view(cartID, e)
}

// Snapshot returns the raw cart state.
func (s *cartService) Snapshot(cartID string) model.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine(cartID).Snapshot()
}
