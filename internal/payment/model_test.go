package payment

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentDefaults(t *testing.T) {
	orderID := uuid.New()
	userID := uuid.New()
	amount := decimal.RequireFromString("100.00")

	p := NewPayment(orderID, userID, amount, "DKK")

	assert.NotEqual(t, uuid.Nil, p.PaymentID)
	assert.Equal(t, orderID, p.OrderID)
	assert.Equal(t, userID, p.UserID)
	assert.True(t, amount.Equal(p.Amount))
	assert.Equal(t, "DKK", p.Currency)
	assert.Equal(t, Status_Pending, p.Status)
	assert.Equal(t, Provider, p.Provider)
	assert.Nil(t, p.FailureReason)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestStatusTerminality(t *testing.T) {
	assert.False(t, Status_Pending.IsTerminal())
	assert.True(t, Status_Succeeded.IsTerminal())
	assert.True(t, Status_Failed.IsTerminal())
}

func TestFailureReasonCoupling(t *testing.T) {
	p := NewPayment(uuid.New(), uuid.New(), decimal.RequireFromString("10"), "EUR")

	p.MarkFailed(ReasonNonPositiveAmount)
	assert.Equal(t, Status_Failed, p.Status)
	require.NotNil(t, p.FailureReason)
	assert.Equal(t, ReasonNonPositiveAmount, *p.FailureReason)

	q := NewPayment(uuid.New(), uuid.New(), decimal.RequireFromString("10"), "EUR")
	q.MarkSucceeded()
	assert.Equal(t, Status_Succeeded, q.Status)
	assert.Nil(t, q.FailureReason)
}
