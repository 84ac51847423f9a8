package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON            = "INVALID_JSON"
	ErrCodeMissingField           = "MISSING_FIELD"
	ErrCodeItemNotFound           = "ITEM_NOT_FOUND"
	ErrCodeEmptyCart              = "EMPTY_CART"
	ErrCodeMissingContact         = "MISSING_CONTACT_CONFIGURATION"
	ErrCodeMissingDeliveryAddress = "MISSING_DELIVERY_ADDRESS"
	ErrCodeEmptyBusinessName      = "EMPTY_BUSINESS_NAME"
	ErrCodeInvalidOrderType       = "INVALID_ORDER_TYPE"
	ErrCodeUnauthorised           = "UNAUTHORIZED"
	ErrCodeInternalError          = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrItemNotFound           = NewDomainError(ErrCodeItemNotFound, "Menu item not found")
	ErrEmptyCart              = NewDomainError(ErrCodeEmptyCart, "Cart has no items")
	ErrMissingContact         = NewDomainError(ErrCodeMissingContact, "Business WhatsApp number not configured")
	ErrMissingDeliveryAddress = NewDomainError(ErrCodeMissingDeliveryAddress, "Please provide a delivery address")
	ErrEmptyBusinessName      = NewDomainError(ErrCodeEmptyBusinessName, "Business name cannot be empty")
	ErrInvalidOrderType       = NewDomainError(ErrCodeInvalidOrderType, "Order type must be pickup or delivery")
)
