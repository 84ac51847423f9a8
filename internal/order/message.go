// Package order builds the outbound order summary and its WhatsApp deep
// link. Everything here is a pure transformation of cart state plus
// business settings; navigation and user notification are the caller's
// problem.
package order

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"digital-menu/internal/model"
)

// timestampLayout renders the order time the way the menu shows it.
const timestampLayout = "02/01/2006, 3:04:05 pm"

// Message is a built order request: the summary text, the normalized
// contact number, and the WhatsApp deep link carrying both. The manual
// fallback path (show number + copyable text) must use these same fields
// so primary and fallback content never diverge.
type Message struct {
	Text  string `json:"text"`
	Phone string `json:"phone"`
	Link  string `json:"link"`
}

// Build produces the order message for the given cart and settings.
//
// Prices never appear in the text: in-app pricing is for the customer's
// own estimation and the final price is agreed out of band.
func Build(cart model.CartSnapshot, settings model.BusinessSettings, now time.Time) (*Message, error) {
	if len(cart.Lines) == 0 {
		return nil, model.ErrEmptyCart
	}

	phone := NormalizePhone(settings.WhatsAppNumber)
	if phone == "" {
		return nil, model.ErrMissingContact
	}

	if cart.OrderType == model.OrderTypeDelivery && strings.TrimSpace(cart.DeliveryAddress) == "" {
		return nil, model.ErrMissingDeliveryAddress
	}

	var b strings.Builder
	b.WriteString("*NEW ORDER REQUEST*\n")
	fmt.Fprintf(&b, "Type: %s\n", strings.ToUpper(cart.OrderType))
	fmt.Fprintf(&b, "Date: %s\n\n", now.Format(timestampLayout))

	b.WriteString("*ITEMS*\n")
	for _, line := range cart.Lines {
		fmt.Fprintf(&b, "• %s x%d\n", line.Item.Name, line.Quantity)
	}

	if s := strings.TrimSpace(cart.CookingInstructions); s != "" {
		fmt.Fprintf(&b, "\n*COOKING INSTRUCTIONS*\n%s\n", cart.CookingInstructions)
	}

	if s := strings.TrimSpace(cart.SpecialInstructions); s != "" {
		fmt.Fprintf(&b, "\n*SPECIAL INSTRUCTIONS*\n%s\n", cart.SpecialInstructions)
	}

	if cart.OrderType == model.OrderTypeDelivery {
		fmt.Fprintf(&b, "\n*DELIVERY ADDRESS*\n%s\n", cart.DeliveryAddress)
	}

	b.WriteString("\n_This is a request formulated via the digital menu._")

	text := b.String()

	// The host and the "text" parameter name are an external contract
	// with the messaging provider.
	link := fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(text))

	return &Message{
		Text:  text,
		Phone: phone,
		Link:  link,
	}, nil
}

// NormalizePhone strips every non-digit character from a contact number.
func NormalizePhone(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
