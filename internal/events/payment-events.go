package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/k-code-yt/payment-service/internal/payment"
)

const (
	PaymentSucceededEventName = "PaymentSucceeded"
	PaymentFailedEventName    = "PaymentFailed"
	paymentEventVersion       = 1
)

type PaymentSucceeded struct {
	OrderID   uuid.UUID       `json:"orderId"`
	PaymentID uuid.UUID       `json:"paymentId"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Provider  string          `json:"provider"`
}

type PaymentFailed struct {
	OrderID   uuid.UUID `json:"orderId"`
	PaymentID uuid.UUID `json:"paymentId"`
	Reason    string    `json:"reason"`
}

// BuildPaymentSucceededEnvelope builds the terminal event for an authorized
// payment, carrying the correlationId of the triggering OrderCreated.
func BuildPaymentSucceededEnvelope(p *payment.Payment, correlationID string) Envelope[PaymentSucceeded] {
	return Envelope[PaymentSucceeded]{
		EventName:     PaymentSucceededEventName,
		EventVersion:  paymentEventVersion,
		EventID:       uuid.NewString(),
		CorrelationID: correlationID,
		Producer:      ProducerName,
		PartitionKey:  p.OrderID.String(),
		OccurredAt:    time.Now().UTC(),
		Payload: PaymentSucceeded{
			OrderID:   p.OrderID,
			PaymentID: p.PaymentID,
			Amount:    p.Amount,
			Currency:  p.Currency,
			Provider:  p.Provider,
		},
	}
}

// BuildPaymentFailedEnvelope builds the terminal event for a declined payment.
func BuildPaymentFailedEnvelope(p *payment.Payment, reason, correlationID string) Envelope[PaymentFailed] {
	return Envelope[PaymentFailed]{
		EventName:     PaymentFailedEventName,
		EventVersion:  paymentEventVersion,
		EventID:       uuid.NewString(),
		CorrelationID: correlationID,
		Producer:      ProducerName,
		PartitionKey:  p.OrderID.String(),
		OccurredAt:    time.Now().UTC(),
		Payload: PaymentFailed{
			OrderID:   p.OrderID,
			PaymentID: p.PaymentID,
			Reason:    reason,
		},
	}
}
