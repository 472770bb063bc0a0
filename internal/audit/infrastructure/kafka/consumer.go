package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmehra2102/ecommerce-store/internal/audit/application"
	"github.com/dmehra2102/ecommerce-store/internal/audit/domain"
	"github.com/dmehra2102/ecommerce-store/pkg/enumeration"
	"github.com/dmehra2102/ecommerce-store/pkg/metrics"
	"github.com/dmehra2102/ecommerce-store/pkg/outbox"
	"github.com/dmehra2102/ecommerce-store/pkg/tracing"
)

type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Deduper interface {
	Key(topic string, partition int, offset int64) string
	Seen(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

type Consumer struct {
	log     *slog.Logger
	reader  Reader
	svc     *application.Service
	idem    Deduper
	metrics *metrics.Metrics
	tracer  trace.Tracer

	newBackOff func() backoff.BackOff
}

func NewReader(brokers []string, topic, group string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: group,
	})
}

func NewConsumer(log *slog.Logger, reader Reader, svc *application.Service, idem Deduper, m *metrics.Metrics) *Consumer {
	return &Consumer{
		log:     log,
		reader:  reader,
		svc:     svc,
		idem:    idem,
		metrics: m,
		tracer:  otel.Tracer("audit-consumer"),

		newBackOff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)
		},
	}
}

// Run consumes until ctx ends or storage fails. Undecodable events are
// logged and committed; a storage or idempotency failure leaves the message
// uncommitted and stops the loop, so no later commit can acknowledge it.
func (c *Consumer) Run(ctx context.Context) error {
	defer c.reader.Close()

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		if err := c.handle(ctx, msg); err != nil {
			return err
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg kafka.Message) error {
	key := c.idem.Key(msg.Topic, msg.Partition, msg.Offset)
	var seen bool
	check := func() error {
		var err error
		seen, err = c.idem.Seen(ctx, key)
		return err
	}
	if err := backoff.Retry(check, backoff.WithContext(c.newBackOff(), ctx)); err != nil {
		c.log.Error("idempotency check failed", "key", key, "err", err)
		return fmt.Errorf("idempotency check %s: %w", key, err)
	}
	if seen {
		c.log.Info("duplicate message skipped", "key", key)
		return c.reader.CommitMessages(ctx, msg)
	}

	msgCtx := tracing.ExtractKafkaHeaders(ctx, msg.Headers)
	msgCtx, span := c.tracer.Start(msgCtx, "ConsumeOrderEvent")
	defer span.End()

	eventType := tracing.HeaderValue(msg.Headers, outbox.EventTypeHeader)
	entry, err := c.svc.Record(msgCtx, eventType, msg.Value)
	switch {
	case err == nil:
		c.log.Info("order status recorded", "order_id", entry.OrderID, "status", entry.To)
	case errors.Is(err, enumeration.ErrInvalidValue):
		c.metrics.ObserveRejection(err, "kafka")
		c.log.Warn("order event with invalid status dropped", "key", key, "err", err)
	case errors.Is(err, domain.ErrMalformedEvent):
		c.log.Warn("malformed order event dropped", "key", key, "err", err)
	case errors.Is(err, domain.ErrUnknownEvent):
		c.log.Debug("event ignored", "type", eventType)
	default:
		span.RecordError(err)
		if rErr := c.idem.Release(ctx, key); rErr != nil {
			c.log.Error("idempotency release failed", "key", key, "err", rErr)
		}
		return err
	}
	return c.reader.CommitMessages(ctx, msg)
}
