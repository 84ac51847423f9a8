package model

// Order fulfillment modes.
const (
	OrderTypePickup   = "pickup"
	OrderTypeDelivery = "delivery"
)

// CartLine is one menu item in the cart together with its selected
// quantity. The menu item fields are a snapshot taken when the item was
// added; later edits to the menu do not rewrite existing cart lines.
type CartLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// CartSnapshot is the serialized form of a cart: the line collection plus
// all order metadata. It is what gets persisted after every mutation and
// rehydrated on startup.
type CartSnapshot struct {
	Lines               []CartLine `json:"lines"`
	OrderType           string     `json:"orderType"`
	SpecialInstructions string     `json:"specialInstructions"`
	CookingInstructions string     `json:"cookingInstructions"`
	DeliveryAddress     string     `json:"deliveryAddress"`
	CustomerName        string     `json:"customerName"`
}

// CartUpdate is a partial update to the cart's order metadata. Only
// non-nil fields are applied. None of these fields are validated here;
// validation happens when the order message is built.
type CartUpdate struct {
	OrderType           *string `json:"orderType,omitempty"`
	SpecialInstructions *string `json:"specialInstructions,omitempty"`
	CookingInstructions *string `json:"cookingInstructions,omitempty"`
	DeliveryAddress     *string `json:"deliveryAddress,omitempty"`
	CustomerName        *string `json:"customerName,omitempty"`
}

// CartView is the response shape for cart reads: the snapshot plus its
// derived values, which are recomputed on every read and never stored.
type CartView struct {
	ID       string       `json:"id"`
	Snapshot CartSnapshot `json:"cart"`
	Total    float64      `json:"total"`
	Count    int          `json:"count"`
}

// Total is the sum of price times quantity across all lines. Shown in-app
// for the customer's own estimation only; it never appears in the
// outbound order message.
func (s CartSnapshot) Total() float64 {
	var total float64
	for _, l := range s.Lines {
		total += l.Item.Price * float64(l.Quantity)
	}
	return total
}

// Count is the sum of quantities across all lines.
func (s CartSnapshot) Count() int {
	var count int
	for _, l := range s.Lines {
		count += l.Quantity
	}
	return count
}
