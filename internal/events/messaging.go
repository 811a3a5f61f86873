package events

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	PaymentSucceededRoutingKey = "PaymentSucceeded.v1"
	PaymentFailedRoutingKey    = "PaymentFailed.v1"

	ProducerName = "payment-service"
)

// declareTopicExchange is idempotent; both publisher and consumer call it so
// neither depends on boot order.
func declareTopicExchange(ch *amqp.Channel, exchange string) error {
	return ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	)
}
