package usecase

import "errors"

// ErrInvalidPurchase matches every *InvalidPurchaseError through errors.Is.
var ErrInvalidPurchase = errors.New("invalid purchase")

const (
	reasonInvalidAccount = "Invalid account ID. Only numbers greater than zero are valid accounts."
	reasonTooManyTickets = "Too many tickets. Max purchase size is 25."
	reasonAdultRequired  = "Adult ticket is required when purchase child or infant ticket."
	reasonNoTickets      = "At least one ticket must be purchased."
)

// InvalidPurchaseError is returned when a purchase breaks a business rule.
// It is always returned before any payment or reservation is attempted.
type InvalidPurchaseError struct {
	Reason string
}

func (e *InvalidPurchaseError) Error() string {
	return e.Reason
}

func (e *InvalidPurchaseError) Is(target error) bool {
	return target == ErrInvalidPurchase
}

func invalidPurchase(reason string) error {
	return &InvalidPurchaseError{Reason: reason}
}
