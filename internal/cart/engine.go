package cart

import (
	"digital-menu/internal/model"

	"github.com/rs/zerolog"
)

// Engine owns the cart state for one customer session. It is the single
// source of truth for the in-progress order: all mutations go through it,
// derived values are recomputed on every read, and every mutation is
// followed by a snapshot write to the Store.
//
// The engine is event-driven and not safe for concurrent use; callers
// serialise access (the cart service holds one lock per cart).
type Engine struct {
	id     string
	state  model.CartSnapshot
	store  Store
	logger zerolog.Logger
}

// NewEngine creates an engine for the given cart, rehydrating its state
// from the store. A missing or unparseable snapshot is treated as an
// empty cart, never as a fatal error, and the just-loaded state is not
// written back.
func NewEngine(id string, store Store, logger zerolog.Logger) *Engine {
	e := &Engine{
		id:     id,
		state:  emptyState(),
		store:  store,
		logger: logger.With().Str("component", "cart-engine").Str("cart_id", id).Logger(),
	}

	snapshot, ok, err := store.Load(id)
	if err != nil {
		e.logger.Warn().Err(err).Msg("failed to load cart snapshot, starting empty")
		return e
	}
	if ok {
		e.state = *snapshot
		if e.state.OrderType == "" {
			e.state.OrderType = model.OrderTypePickup
		}
	}

	return e
}

func emptyState() model.CartSnapshot {
	return model.CartSnapshot{
		Lines:     []model.CartLine{},
		OrderType: model.OrderTypePickup,
	}
}

// AddItem appends a line with quantity 1, or increments the existing
// line's quantity when the item is already in the cart. Add order is
// preserved; quantities have no upper bound.
func (e *Engine) AddItem(item model.MenuItem) {
	for i := range e.state.Lines {
		if e.state.Lines[i].Item.ID == item.ID {
			e.state.Lines[i].Quantity++
			e.persist()
			return
		}
	}

	e.state.Lines = append(e.state.Lines, model.CartLine{Item: item, Quantity: 1})
	e.persist()
}

// UpdateQuantity sets a line's quantity to exactly quantity. A quantity
// below 1 removes the line. Unknown item IDs are ignored.
func (e *Engine) UpdateQuantity(itemID string, quantity int) {
	if quantity < 1 {
		e.RemoveItem(itemID)
		return
	}

	for i := range e.state.Lines {
		if e.state.Lines[i].Item.ID == itemID {
			e.state.Lines[i].Quantity = quantity
			e.persist()
			return
		}
	}
}

// RemoveItem deletes the line for itemID if present; no-op otherwise.
func (e *Engine) RemoveItem(itemID string) {
	for i := range e.state.Lines {
		if e.state.Lines[i].Item.ID == itemID {
			e.state.Lines = append(e.state.Lines[:i], e.state.Lines[i+1:]...)
			e.clearInstructionsIfEmpty()
			e.persist()
			return
		}
	}
}

// ClearCart empties the line collection and resets both instruction
// fields. Order type, delivery address and customer name keep their
// values so the session can start a fresh order without re-entering them.
func (e *Engine) ClearCart() {
	e.state.Lines = []model.CartLine{}
	e.state.SpecialInstructions = ""
	e.state.CookingInstructions = ""
	e.persist()
}

// SetOrderType sets the fulfillment mode. Validation of the mode string
// happens at the HTTP layer.
func (e *Engine) SetOrderType(orderType string) {
	e.state.OrderType = orderType
	e.persist()
}

// SetSpecialInstructions sets the free-text special instructions.
func (e *Engine) SetSpecialInstructions(val string) {
	e.state.SpecialInstructions = val
	e.persist()
}

// SetCookingInstructions sets the free-text cooking instructions.
func (e *Engine) SetCookingInstructions(val string) {
	e.state.CookingInstructions = val
	e.persist()
}

// SetDeliveryAddress sets the free-text delivery address.
func (e *Engine) SetDeliveryAddress(val string) {
	e.state.DeliveryAddress = val
	e.persist()
}

// SetCustomerName sets the free-text customer name.
func (e *Engine) SetCustomerName(val string) {
	e.state.CustomerName = val
	e.persist()
}

// Total is the sum of price times quantity across all lines.
func (e *Engine) Total() float64 { return e.state.Total() }

// Count is the sum of quantities across all lines.
func (e *Engine) Count() int { return e.state.Count() }

// Snapshot returns a copy of the current cart state.
func (e *Engine) Snapshot() model.CartSnapshot {
	snapshot := e.state
	snapshot.Lines = make([]model.CartLine, len(e.state.Lines))
	copy(snapshot.Lines, e.state.Lines)
	return snapshot
}

// Instructions only make sense while there is something to order.
func (e *Engine) clearInstructionsIfEmpty() {
	if len(e.state.Lines) == 0 {
		e.state.SpecialInstructions = ""
		e.state.CookingInstructions = ""
	}
}

// persist writes the current state to the store. Failures are logged and
// ignored: the in-memory state stays authoritative for the session.
func (e *Engine) persist() {
	if err := e.store.Save(e.id, &e.state); err != nil {
		e.logger.Warn().Err(err).Msg("failed to persist cart snapshot")
	}
}
