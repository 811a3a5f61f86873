package events

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	pkgerrors "github.com/k-code-yt/payment-service/pkg/errors"
)

const (
	OrderCreatedEventName    = "OrderCreated"
	OrderCreatedEventVersion = 1
)

// OrderCreated is the v1 payload consumed from the order service.
type OrderCreated struct {
	OrderID     uuid.UUID       `json:"orderId"`
	UserID      uuid.UUID       `json:"userId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Currency    string          `json:"currency"`
}

type OrderCreatedEnvelope = Envelope[OrderCreated]

var errMissingIdentity = fmt.Errorf("missing orderId or userId in payload")

func DecodeOrderCreated(body []byte) (*OrderCreatedEnvelope, error) {
	env, err := Decode[OrderCreated](body)
	if err != nil {
		return nil, err
	}
	if err := env.Validate(OrderCreatedEventName, OrderCreatedEventVersion); err != nil {
		return nil, pkgerrors.NewBadEnvelopeError(err)
	}
	if env.Payload.OrderID == uuid.Nil || env.Payload.UserID == uuid.Nil {
		return nil, pkgerrors.NewBadEnvelopeError(errMissingIdentity)
	}
	return env, nil
}
