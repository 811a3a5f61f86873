package events

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/k-code-yt/payment-service/internal/metrics"
	"github.com/k-code-yt/payment-service/internal/payment"
	pkgerrors "github.com/k-code-yt/payment-service/pkg/errors"
)

// HandlerFunc processes a single delivery body.
// Return nil to ack, return an error to nack without requeue.
type HandlerFunc func(ctx context.Context, body []byte) error

// EventPublisher is the subset of publisher methods used by handlers.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, envelope any) error
}

// OrderCreatedHandler returns the handler for OrderCreated.v1 deliveries.
//
// Idempotency under redelivery rests on the store's unique order_id index:
// the lookup is an optimization, the insert is the arbiter. Losing a
// concurrent insert race is the same as observing a redelivery.
func OrderCreatedHandler(repo payment.Repository, pub EventPublisher) HandlerFunc {
	return func(ctx context.Context, body []byte) error {
		metrics.DeliveriesConsumed.Inc()

		env, err := DecodeOrderCreated(body)
		if err != nil {
			metrics.PoisonDropped.Inc()
			logrus.WithError(err).Warn("dropping unparseable OrderCreated delivery")
			return nil
		}

		existing, err := repo.FindByOrder(ctx, env.Payload.OrderID)
		if err != nil {
			metrics.HandlerFailures.Inc()
			return err
		}
		if existing != nil {
			metrics.DuplicatesDropped.Inc()
			logrus.WithFields(logrus.Fields{
				"orderID":   env.Payload.OrderID,
				"paymentID": existing.PaymentID,
			}).Info("redelivery for processed order, acking")
			return nil
		}

		p := payment.NewPayment(env.Payload.OrderID, env.Payload.UserID, env.Payload.TotalAmount, env.Payload.Currency)
		if err := repo.Insert(ctx, p); err != nil {
			if pkgerrors.IsDuplicateOrderError(err) {
				metrics.DuplicatesDropped.Inc()
				logrus.WithField("orderID", env.Payload.OrderID).Info("lost insert race, acking")
				return nil
			}
			metrics.HandlerFailures.Inc()
			return err
		}

		ok, reason := payment.Simulate(p.Amount)
		if ok {
			p.MarkSucceeded()
		} else {
			p.MarkFailed(reason)
		}

		if err := repo.UpdateStatus(ctx, p); err != nil {
			metrics.HandlerFailures.Inc()
			return err
		}

		// The terminal state is durable before the follow-up event goes out,
		// so downstream consumers never observe an event ahead of the store.
		if ok {
			succeeded := BuildPaymentSucceededEnvelope(p, env.CorrelationID)
			if err := pub.Publish(ctx, PaymentSucceededRoutingKey, succeeded); err != nil {
				metrics.HandlerFailures.Inc()
				return err
			}
			metrics.PaymentsSucceeded.Inc()
		} else {
			failed := BuildPaymentFailedEnvelope(p, reason, env.CorrelationID)
			if err := pub.Publish(ctx, PaymentFailedRoutingKey, failed); err != nil {
				metrics.HandlerFailures.Inc()
				return err
			}
			metrics.PaymentsFailed.Inc()
		}

		logrus.WithFields(logrus.Fields{
			"orderID":   p.OrderID,
			"paymentID": p.PaymentID,
			"status":    p.Status,
		}).Info("payment processed")
		return nil
	}
}
