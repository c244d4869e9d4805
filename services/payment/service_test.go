package payment

import (
	"context"
	"testing"

	"doctorchamber/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(5000), MinorUnits(50))
	assert.Equal(t, int64(9950), MinorUnits(99.5))
	assert.Equal(t, int64(1), MinorUnits(0.01))
	// Float representation of 19.99*100 is 1998.9999...; rounding must not
	// shave a cent off.
	assert.Equal(t, int64(1999), MinorUnits(19.99))
}

func TestBuildIntentParams(t *testing.T) {
	params := buildIntentParams(50)

	require.NotNil(t, params.Amount)
	assert.Equal(t, int64(5000), *params.Amount)
	require.NotNil(t, params.Currency)
	assert.Equal(t, "usd", *params.Currency)
	require.Len(t, params.PaymentMethodTypes, 1)
	assert.Equal(t, "card", *params.PaymentMethodTypes[0])
}

func TestCreateIntentRejectsNonPositivePrice(t *testing.T) {
	svc := &DefaultPaymentService{}

	_, err := svc.CreateIntent(0)
	assert.Error(t, err)

	_, err = svc.CreateIntent(-5)
	assert.Error(t, err)
}

// fakePaymentRepo records the settle call.
type fakePaymentRepo struct {
	settled *models.Payment
}

func (f *fakePaymentRepo) Settle(ctx context.Context, p *models.Payment) (string, error) {
	f.settled = p
	return "pay123", nil
}

func TestConfirmSettlesPayment(t *testing.T) {
	repo := &fakePaymentRepo{}
	svc := &DefaultPaymentService{Repo: repo}

	id, err := svc.Confirm(context.Background(), models.Payment{
		BookingID:     "bk1",
		Email:         "a@x.com",
		Price:         50,
		TransactionID: "txn_1",
	})

	require.NoError(t, err)
	assert.Equal(t, "pay123", id)
	require.NotNil(t, repo.settled)
	assert.Equal(t, "bk1", repo.settled.BookingID)
	assert.Equal(t, "txn_1", repo.settled.TransactionID)
}

func TestConfirmValidatesInput(t *testing.T) {
	svc := &DefaultPaymentService{Repo: &fakePaymentRepo{}}

	_, err := svc.Confirm(context.Background(), models.Payment{TransactionID: "txn_1"})
	assert.Error(t, err)

	_, err = svc.Confirm(context.Background(), models.Payment{BookingID: "bk1"})
	assert.Error(t, err)
}
