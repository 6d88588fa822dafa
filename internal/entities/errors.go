package entities

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrSellerNotFound  = errors.New("seller not found")
	ErrDishNotFound    = errors.New("dish not found")
	ErrDishUnavailable = errors.New("dish is not available")

	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidPickup   = errors.New("pickup time is outside the allowed window")
	ErrMultiSellerCart = errors.New("cart contains items from more than one seller")
	ErrSelfOrder       = errors.New("sellers cannot order their own dishes")

	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrConflict          = errors.New("order was modified concurrently")
	ErrForbidden         = errors.New("action is not allowed for this user")
	ErrAlreadyCaptured   = errors.New("payment already captured for this order")
	ErrPayoutsNotEnabled = errors.New("seller payout account is not enabled")

	ErrPaymentAuthorization = errors.New("payment authorization failed")
	ErrPaymentCapture       = errors.New("payment capture failed")
	ErrPaymentCancel        = errors.New("payment cancellation failed")
)

// InvalidTransitionError matches ErrInvalidTransition with errors.Is.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
