package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	paymentRepo "doctorchamber/database/repository/payment"
	"doctorchamber/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// Charges are fixed to card payments in USD.
const (
	currency          = string(stripe.CurrencyUSD)
	paymentMethodCard = "card"
)

// DefaultPaymentService implements PaymentService over Stripe payment
// intents. The Stripe API key is set process-wide at startup.
type DefaultPaymentService struct {
	Repo   paymentRepo.PaymentRepository
	Logger *zap.Logger
}

// MinorUnits converts a price in major currency units to the processor's
// integer minor-unit amount.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// buildIntentParams assembles the payment-intent request for a price.
func buildIntentParams(price float64) *stripe.PaymentIntentParams {
	return &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(MinorUnits(price)),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{paymentMethodCard}),
	}
}

// CreateIntent opens a payment intent and returns its client secret.
func (s *DefaultPaymentService) CreateIntent(price float64) (string, error) {
	if price <= 0 {
		return "", errors.New("invalid payment amount")
	}

	intent, err := paymentintent.New(buildIntentParams(price))
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	if s.Logger != nil {
		s.Logger.Info("payment intent created",
			zap.String("intent", intent.ID),
			zap.Int64("amount", intent.Amount))
	}
	return intent.ClientSecret, nil
}

// Confirm settles the payment against the store and returns the payment
// record id.
func (s *DefaultPaymentService) Confirm(ctx context.Context, payment models.Payment) (string, error) {
	if payment.BookingID == "" {
		return "", errors.New("missing booking id")
	}
	if payment.TransactionID == "" {
		return "", errors.New("missing transaction id")
	}

	id, err := s.Repo.Settle(ctx, &payment)
	if err != nil {
		return "", err
	}

	if s.Logger != nil {
		s.Logger.Info("payment settled",
			zap.String("payment", id),
			zap.String("booking", payment.BookingID),
			zap.String("transaction", payment.TransactionID))
	}
	return id, nil
}
