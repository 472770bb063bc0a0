package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// Writer publishes order events. Topic is left unset; the outbox dispatcher
// names it per message.
type Writer struct {
	*kafka.Writer
}

// NewWriter hashes on the message key so the events of one order keep their
// relative order on a single partition.
func NewWriter(log *slog.Logger, brokers []string) *Writer {
	return &Writer{
		Writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
			ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
				log.Error("kafka writer", "detail", fmt.Sprintf(msg, args...))
			}),
		},
	}
}

func (w *Writer) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if err := w.Writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish %d order events: %w", len(msgs), err)
	}
	return nil
}
