package payment

import (
	"context"

	"doctorchamber/models"
)

// PaymentService bridges bookings to the external card processor.
type PaymentService interface {
	// CreateIntent opens a payment intent for the given price (major currency
	// units) and returns the processor's client secret.
	CreateIntent(price float64) (string, error)
	// Confirm appends the payment record and marks the referenced booking
	// paid. A booking's payment status moves one way, unpaid to paid.
	Confirm(ctx context.Context, payment models.Payment) (string, error)
}
