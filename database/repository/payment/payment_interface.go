package paymentRepo

import (
	"context"

	"doctorchamber/models"
)

// PaymentRepository settles confirmed payments: it appends the payment
// record and marks the referenced booking paid in one operation.
type PaymentRepository interface {
	Settle(ctx context.Context, payment *models.Payment) (string, error)
}
