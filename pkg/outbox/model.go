package outbox

import (
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/dmehra2102/ecommerce-store/pkg/tracing"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusSent       Status = "sent"
	StatusFailed     Status = "failed"
)

// Event is one row of the outbox table, written in the same transaction as
// the aggregate change it announces.
type Event struct {
	ID            int64
	AggregateType string
	AggregateID   string
	Type          string
	Payload       []byte
	Headers       map[string]string
	Traceparent   string
	CreatedAt     time.Time
	Status        Status
	RelayID       string
	RetryCount    int
}

// Message renders the event for topic, keyed by aggregate so all events of
// one order land on the same partition.
func (e Event) Message(topic string) kafka.Message {
	headers := make([]kafka.Header, 0, len(e.Headers)+2)
	carrier := tracing.NewKafkaCarrier(&headers)
	for k, v := range e.Headers {
		carrier.Set(k, v)
	}
	carrier.Set(EventTypeHeader, e.Type)
	if e.Traceparent != "" {
		carrier.Set(tracing.TraceparentHeader, e.Traceparent)
	}
	return kafka.Message{
		Topic:   topic,
		Key:     []byte(e.AggregateID),
		Value:   e.Payload,
		Headers: headers,
	}
}
