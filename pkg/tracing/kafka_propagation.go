package tracing

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
)

const TraceparentHeader = "traceparent"

// KafkaCarrier reads and writes propagation fields on a message's headers.
// Set overwrites an existing key so a message never carries two traceparents.
type KafkaCarrier struct {
	headers *[]kafka.Header
}

func NewKafkaCarrier(headers *[]kafka.Header) KafkaCarrier {
	return KafkaCarrier{headers: headers}
}

func (c KafkaCarrier) Get(key string) string { return HeaderValue(*c.headers, key) }

func (c KafkaCarrier) Set(key, value string) {
	for i, h := range *c.headers {
		if h.Key == key {
			(*c.headers)[i].Value = []byte(value)
			return
		}
	}
	*c.headers = append(*c.headers, kafka.Header{Key: key, Value: []byte(value)})
}

func (c KafkaCarrier) Keys() []string {
	keys := make([]string, 0, len(*c.headers))
	for _, h := range *c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}

// InjectKafkaHeaders returns a copy of headers carrying the span context of ctx.
func InjectKafkaHeaders(ctx context.Context, headers []kafka.Header) []kafka.Header {
	out := append([]kafka.Header(nil), headers...)
	otel.GetTextMapPropagator().Inject(ctx, NewKafkaCarrier(&out))
	return out
}

func ExtractKafkaHeaders(ctx context.Context, headers []kafka.Header) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, NewKafkaCarrier(&headers))
}

func HeaderValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
