package events

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/k-code-yt/payment-service/pkg/errors"
)

func validOrderCreatedEnvelope() Envelope[OrderCreated] {
	return Envelope[OrderCreated]{
		EventName:     OrderCreatedEventName,
		EventVersion:  OrderCreatedEventVersion,
		EventID:       uuid.NewString(),
		CorrelationID: uuid.NewString(),
		Producer:      "order-service",
		PartitionKey:  "11111111-1111-1111-1111-111111111111",
		OccurredAt:    time.Now().UTC().Truncate(time.Millisecond),
		Payload: OrderCreated{
			OrderID:     uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			UserID:      uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			TotalAmount: decimal.RequireFromString("100.00"),
			Currency:    "DKK",
		},
	}
}

func TestEnvelopeRoundTrip(t *testing.T) {
	env := validOrderCreatedEnvelope()

	body, err := Encode(env)
	require.NoError(t, err)

	decoded, err := Decode[OrderCreated](body)
	require.NoError(t, err)

	assert.Equal(t, env.EventName, decoded.EventName)
	assert.Equal(t, env.EventVersion, decoded.EventVersion)
	assert.Equal(t, env.EventID, decoded.EventID)
	assert.Equal(t, env.CorrelationID, decoded.CorrelationID)
	assert.Equal(t, env.Producer, decoded.Producer)
	assert.Equal(t, env.PartitionKey, decoded.PartitionKey)
	assert.True(t, env.OccurredAt.Equal(decoded.OccurredAt))
	assert.Equal(t, env.Payload.OrderID, decoded.Payload.OrderID)
	assert.Equal(t, env.Payload.UserID, decoded.Payload.UserID)
	assert.True(t, env.Payload.TotalAmount.Equal(decoded.Payload.TotalAmount))
	assert.Equal(t, env.Payload.Currency, decoded.Payload.Currency)
}

func TestEnvelopeDecimalPrecision(t *testing.T) {
	amounts := []string{"100.00", "5000.01", "0.01", "999999999999.99"}

	for _, a := range amounts {
		env := validOrderCreatedEnvelope()
		env.Payload.TotalAmount = decimal.RequireFromString(a)

		body, err := Encode(env)
		require.NoError(t, err)

		// amounts are JSON numbers on the wire, not strings
		assert.Contains(t, string(body), fmt.Sprintf(`"totalAmount":%s`, decimal.RequireFromString(a).String()))
		assert.NotContains(t, string(body), `"totalAmount":"`)

		decoded, err := Decode[OrderCreated](body)
		require.NoError(t, err)
		assert.True(t, decoded.Payload.TotalAmount.Equal(env.Payload.TotalAmount),
			"amount %s changed during round-trip: %s", a, decoded.Payload.TotalAmount)
	}
}

func TestEnvelopeMissingRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Envelope[OrderCreated])
	}{
		{"eventName", func(e *Envelope[OrderCreated]) { e.EventName = "" }},
		{"eventVersion", func(e *Envelope[OrderCreated]) { e.EventVersion = 0 }},
		{"eventId", func(e *Envelope[OrderCreated]) { e.EventID = "" }},
		{"producer", func(e *Envelope[OrderCreated]) { e.Producer = "" }},
		{"occurredAt", func(e *Envelope[OrderCreated]) { e.OccurredAt = time.Time{} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := validOrderCreatedEnvelope()
			tc.mutate(&env)

			body, err := Encode(env)
			require.NoError(t, err)

			_, err = Decode[OrderCreated](body)
			require.Error(t, err)
			assert.True(t, pkgerrors.IsBadEnvelopeError(err))
		})
	}
}

func TestEnvelopeMissingPayload(t *testing.T) {
	body := []byte(`{"eventName":"OrderCreated","eventVersion":1,"eventId":"x","producer":"order-service","occurredAt":"2025-01-01T00:00:00Z"}`)

	_, err := Decode[OrderCreated](body)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsBadEnvelopeError(err))
}

func TestEnvelopeUnknownFieldsIgnored(t *testing.T) {
	body := []byte(`{
		"eventName": "OrderCreated",
		"eventVersion": 1,
		"eventId": "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa",
		"producer": "order-service",
		"occurredAt": "2025-01-01T12:00:00+01:00",
		"somethingNew": "ignored",
		"payload": {
			"orderId": "11111111-1111-1111-1111-111111111111",
			"userId": "22222222-2222-2222-2222-222222222222",
			"totalAmount": 100.00,
			"currency": "DKK",
			"futureField": true
		}
	}`)

	env, err := Decode[OrderCreated](body)
	require.NoError(t, err)
	assert.Equal(t, "OrderCreated", env.EventName)
	assert.True(t, env.Payload.TotalAmount.Equal(decimal.RequireFromString("100.00")))
}

func TestEnvelopeMalformedJSON(t *testing.T) {
	_, err := Decode[OrderCreated]([]byte("this is not json"))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsBadEnvelopeError(err))
}

func TestDecodeOrderCreatedRejectsWrongIdentity(t *testing.T) {
	env := validOrderCreatedEnvelope()
	env.EventName = "PaymentSucceeded"

	body, err := Encode(env)
	require.NoError(t, err)

	_, err = DecodeOrderCreated(body)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsBadEnvelopeError(err))
}
