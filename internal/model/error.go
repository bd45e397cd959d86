package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidQuantity  = "INVALID_QUANTITY"
	ErrCodeInvalidOption    = "INVALID_OPTION"
	ErrCodeOpenDated        = "OPEN_DATED_PRODUCT"
	ErrCodeBundleTooSmall   = "BUNDLE_TOO_SMALL"
	ErrCodeNotSelected      = "PRODUCT_NOT_SELECTED"
	ErrCodeSessionNotFound  = "SESSION_NOT_FOUND"
	ErrCodeThemeNotFound    = "THEME_NOT_FOUND"
	ErrCodeBookingNotFound  = "BOOKING_NOT_FOUND"
	ErrCodeSessionConsumed  = "SESSION_CONSUMED"
	ErrCodeNoSnapshot       = "NO_SNAPSHOT"
	ErrCodeGenerationFailed = "GENERATION_FAILED"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
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
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found in the candidate list")
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be between 1 and 20")
	ErrInvalidOption   = NewDomainError(ErrCodeInvalidOption, "Option does not belong to this product")
	ErrOpenDated       = NewDomainError(ErrCodeOpenDated, "Open-dated products do not take a visit date")
	ErrBundleTooSmall  = NewDomainError(ErrCodeBundleTooSmall, "At least two items are required to check out")
	ErrNotSelected     = NewDomainError(ErrCodeNotSelected, "Product is not part of the current selection")
	ErrSessionNotFound = NewDomainError(ErrCodeSessionNotFound, "Session not found")
	ErrThemeNotFound   = NewDomainError(ErrCodeThemeNotFound, "Theme not found")
	ErrBookingNotFound = NewDomainError(ErrCodeBookingNotFound, "Booking not found")
	ErrNoSnapshot      = NewDomainError(ErrCodeNoSnapshot, "Session has no captured checkout snapshot")
)
