package events

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	pkgerrors "github.com/k-code-yt/payment-service/pkg/errors"
)

// Publisher publishes envelopes to the durable topic exchange. It shares the
// process-wide connection; channels are opened per publish and never shared
// across goroutines.
type Publisher struct {
	conn     *amqp.Connection
	exchange string
}

func NewPublisher(conn *amqp.Connection, exchange string) *Publisher {
	return &Publisher{
		conn:     conn,
		exchange: exchange,
	}
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, envelope any) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return pkgerrors.NewPublishFailedError(err)
	}
	defer ch.Close()

	if err := declareTopicExchange(ch, p.exchange); err != nil {
		return pkgerrors.NewPublishFailedError(err)
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return pkgerrors.NewPublishFailedError(err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err = ch.PublishWithContext(
		pubCtx,
		p.exchange,
		routingKey,
		false, // mandatory: unroutable messages are dropped by the broker
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return pkgerrors.NewPublishFailedError(err)
	}
	return nil
}
