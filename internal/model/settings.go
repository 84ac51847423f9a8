package model

// BusinessSettings holds the operational flags and branding controlled by
// the administrator and consumed by the customer-facing menu.
type BusinessSettings struct {
	WhatsAppNumber  string `json:"whatsappNumber" db:"whatsapp_number"`
	BusinessOpen    bool   `json:"businessOpen" db:"business_open"`
	AcceptingOrders bool   `json:"acceptingOrders" db:"accepting_orders"`
	CurrencySymbol  string `json:"currencySymbol,omitempty" db:"currency_symbol"`
	Location        string `json:"location,omitempty" db:"location"`
	OpeningHours    string `json:"openingHours,omitempty" db:"opening_hours"`
	BusinessName    string `json:"businessName,omitempty" db:"business_name"`
	BusinessIcon    string `json:"businessIcon,omitempty" db:"business_icon"`
}

// BusinessSettingsUpdate is a partial settings update. Only non-nil fields
// are applied; unspecified fields keep their stored values.
type BusinessSettingsUpdate struct {
	WhatsAppNumber  *string `json:"whatsappNumber,omitempty"`
	BusinessOpen    *bool   `json:"businessOpen,omitempty"`
	AcceptingOrders *bool   `json:"acceptingOrders,omitempty"`
	CurrencySymbol  *string `json:"currencySymbol,omitempty"`
	Location        *string `json:"location,omitempty"`
	OpeningHours    *string `json:"openingHours,omitempty"`
	BusinessName    *string `json:"businessName,omitempty"`
	BusinessIcon    *string `json:"businessIcon,omitempty"`
}

// DefaultOpeningHours is the placeholder schedule shown before the
// administrator configures real hours.
const DefaultOpeningHours = "Monday - Friday: 10:00 AM - 10:00 PM\nSaturday - Sunday: 10:00 AM - 11:00 PM"

// DefaultBusinessSettings returns the settings served when no settings
// document has been created yet.
func DefaultBusinessSettings() BusinessSettings {
	return BusinessSettings{
		WhatsAppNumber:  "",
		BusinessOpen:    true,
		AcceptingOrders: true,
		CurrencySymbol:  "₹",
		Location:        "",
		OpeningHours:    DefaultOpeningHours,
		BusinessName:    "My Restaurant",
		BusinessIcon:    "",
	}
}
