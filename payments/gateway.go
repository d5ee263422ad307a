package payments

import (
	"errors"

	"webepex/models"
)

// ErrNotConfigured is returned when a payment operation runs without
// gateway credentials. Credentials are checked at first use, not per
// request field validation.
var ErrNotConfigured = errors.New("Razorpay credentials are not configured")

// Gateway creates orders against the external payment provider. The real
// implementation talks to Razorpay; tests substitute a stub.
type Gateway interface {
	CreateOrder(amount int64, currency, receipt string) (*models.Order, error)
}
