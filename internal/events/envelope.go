package events

import (
	"encoding/json"
	"fmt"
	"time"

	pkgerrors "github.com/k-code-yt/payment-service/pkg/errors"
)

// Envelope is the common outer record for all events. It is generic to
// allow strongly typed payloads per event.
type Envelope[T any] struct {
	EventName     string    `json:"eventName"`
	EventVersion  int       `json:"eventVersion"`
	EventID       string    `json:"eventId"`
	CorrelationID string    `json:"correlationId,omitempty"`
	Producer      string    `json:"producer"`
	PartitionKey  string    `json:"partitionKey,omitempty"`
	Sequence      *int64    `json:"sequence,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
	Schema        string    `json:"schema,omitempty"`
	Payload       T         `json:"payload"`
}

// Encode serializes the envelope to its UTF-8 JSON wire form.
func Encode[T any](env Envelope[T]) ([]byte, error) {
	body, err := json.Marshal(env)
	if err != nil {
		return nil, pkgerrors.NewBadEnvelopeError(err)
	}
	return body, nil
}

// Decode parses an envelope from the wire. Unknown fields are ignored;
// missing required fields fail with a BadEnvelope error.
func Decode[T any](body []byte) (*Envelope[T], error) {
	var probe struct {
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, pkgerrors.NewBadEnvelopeError(err)
	}

	env := &Envelope[T]{}
	if err := json.Unmarshal(body, env); err != nil {
		return nil, pkgerrors.NewBadEnvelopeError(err)
	}

	hasPayload := len(probe.Payload) > 0 && string(probe.Payload) != "null"
	if err := env.validateRequired(hasPayload); err != nil {
		return nil, pkgerrors.NewBadEnvelopeError(err)
	}
	return env, nil
}

func (e *Envelope[T]) validateRequired(hasPayload bool) error {
	if e.EventName == "" {
		return fmt.Errorf("missing eventName")
	}
	if e.EventVersion <= 0 {
		return fmt.Errorf("missing eventVersion")
	}
	if e.EventID == "" {
		return fmt.Errorf("missing eventId")
	}
	if e.Producer == "" {
		return fmt.Errorf("missing producer")
	}
	if e.OccurredAt.IsZero() {
		return fmt.Errorf("missing occurredAt")
	}
	if !hasPayload {
		return fmt.Errorf("missing payload")
	}
	return nil
}

// Validate ensures the envelope carries the expected event identity.
func (e *Envelope[T]) Validate(expectedName string, expectedVersion int) error {
	if e.EventName != expectedName {
		return fmt.Errorf("unexpected eventName: %s", e.EventName)
	}
	if e.EventVersion != expectedVersion {
		return fmt.Errorf("unexpected eventVersion: %d", e.EventVersion)
	}
	return nil
}
