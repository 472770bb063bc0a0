package outbox

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
)

// ErrPermanent marks producer failures that must not be retried.
var ErrPermanent = errors.New("permanent")

const EventTypeHeader = "event_type"

type Producer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Dispatcher struct {
	log        *slog.Logger
	producer   Producer
	topic      string
	newBackOff func() backoff.BackOff
	maxRetries uint64
}

type DispatcherOption func(*Dispatcher)

func WithBackOff(newBackOff func() backoff.BackOff, maxRetries uint64) DispatcherOption {
	return func(d *Dispatcher) {
		d.newBackOff = newBackOff
		d.maxRetries = maxRetries
	}
}

func NewDispatcher(log *slog.Logger, producer Producer, topic string, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		log:      log,
		producer: producer,
		topic:    topic,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
		maxRetries: 3,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) Dispatch(ctx context.Context, event Event) error {
	msg := event.Message(d.topic)

	attempt := func() error {
		err := d.producer.WriteMessages(ctx, msg)
		if errors.Is(err, ErrPermanent) {
			return backoff.Permanent(err)
		}
		return err
	}
	b := backoff.WithContext(backoff.WithMaxRetries(d.newBackOff(), d.maxRetries), ctx)
	if err := backoff.Retry(attempt, b); err != nil {
		d.log.Error("outbox dispatch failed", "event_id", event.ID, "type", event.Type, "err", err)
		return err
	}
	d.log.Info("outbox dispatched", "event_id", event.ID, "type", event.Type)
	return nil
}
