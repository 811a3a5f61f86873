package events

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/k-code-yt/payment-service/internal/config"
)

// Consumer subscribes the service-owned queue to OrderCreated.v1 and
// dispatches deliveries to the registered handler. Acknowledgement is
// manual; the broker bounds in-flight work through the prefetch limit.
type Consumer struct {
	conn    *amqp.Connection
	cfg     *config.RabbitMQConfig
	handler HandlerFunc
}

func NewConsumer(conn *amqp.Connection, cfg *config.RabbitMQConfig, handler HandlerFunc) *Consumer {
	return &Consumer{
		conn:    conn,
		cfg:     cfg,
		handler: handler,
	}
}

// Start declares the topology and begins consuming. It returns after the
// consumer goroutine is running; cancel the context to stop.
func (c *Consumer) Start(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopicExchange(ch, c.cfg.Exchange); err != nil {
		_ = ch.Close()
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = ch.QueueDeclare(
		c.cfg.Queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return fmt.Errorf("declare queue %s: %w", c.cfg.Queue, err)
	}

	if err := ch.QueueBind(c.cfg.Queue, c.cfg.RoutingKeyOrderCreated, c.cfg.Exchange, false, nil); err != nil {
		_ = ch.Close()
		return fmt.Errorf("bind queue %s: %w", c.cfg.Queue, err)
	}

	if err := ch.Qos(c.cfg.PrefetchCount, 0, false); err != nil {
		_ = ch.Close()
		return fmt.Errorf("set prefetch: %w", err)
	}

	msgs, err := ch.Consume(
		c.cfg.Queue,
		ProducerName, // consumer tag
		false,        // autoAck
		false,        // exclusive
		false,        // noLocal
		false,        // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return fmt.Errorf("consume %s: %w", c.cfg.Queue, err)
	}

	go c.consumeLoop(ctx, ch, msgs)

	logrus.WithFields(logrus.Fields{
		"queue":      c.cfg.Queue,
		"routingKey": c.cfg.RoutingKeyOrderCreated,
		"prefetch":   c.cfg.PrefetchCount,
	}).Info("consumer started")
	return nil
}

func (c *Consumer) consumeLoop(ctx context.Context, ch *amqp.Channel, msgs <-chan amqp.Delivery) {
	defer func() {
		_ = ch.Close()
		logrus.WithField("queue", c.cfg.Queue).Info("consumer stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-msgs:
			if !ok {
				logrus.WithField("queue", c.cfg.Queue).Warn("delivery channel closed")
				return
			}
			// Handlers run concurrently up to the prefetch limit; every
			// handler owns its delivery and nothing else is shared.
			go c.handleDelivery(ctx, d)
		}
	}
}

func (c *Consumer) handleDelivery(ctx context.Context, d amqp.Delivery) {
	if err := c.handler(ctx, d.Body); err != nil {
		logrus.WithError(err).Error("handler failed, nacking without requeue")
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}
