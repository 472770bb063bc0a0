package application

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmehra2102/ecommerce-store/internal/audit/domain"
	order "github.com/dmehra2102/ecommerce-store/internal/order/domain"
)

type Service struct {
	repo HistoryRepository
	now  func() time.Time
}

func NewService(repo HistoryRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Record decodes an order event and appends it to the history. Statuses are
// decoded strictly; an unknown status text fails with the enumeration error.
func (s *Service) Record(ctx context.Context, eventType string, payload []byte) (domain.StatusEntry, error) {
	entry, err := decode(eventType, payload)
	if err != nil {
		return domain.StatusEntry{}, err
	}
	entry.RecordedAt = s.now().UTC()
	if err := s.repo.Append(ctx, entry); err != nil {
		return domain.StatusEntry{}, err
	}
	return entry, nil
}

func decode(eventType string, payload []byte) (domain.StatusEntry, error) {
	switch eventType {
	case order.EventOrderCreated:
		var ev struct {
			OrderID   string            `json:"order_id"`
			Status    order.OrderStatus `json:"status"`
			CreatedAt time.Time         `json:"created_at"`
		}
		if err := json.Unmarshal(payload, &ev); err != nil {
			return domain.StatusEntry{}, fmt.Errorf("decode %s: %w: %w", eventType, domain.ErrMalformedEvent, err)
		}
		if _, err := order.ParseOrderStatus(string(ev.Status)); err != nil {
			return domain.StatusEntry{}, fmt.Errorf("decode %s: %w", eventType, err)
		}
		return domain.StatusEntry{OrderID: ev.OrderID, EventType: eventType, To: ev.Status, OccurredAt: ev.CreatedAt}, nil

	case order.EventOrderStatusChanged:
		var ev order.OrderStatusChanged
		if err := json.Unmarshal(payload, &ev); err != nil {
			return domain.StatusEntry{}, fmt.Errorf("decode %s: %w: %w", eventType, domain.ErrMalformedEvent, err)
		}
		for _, st := range []order.OrderStatus{ev.From, ev.To} {
			if _, err := order.ParseOrderStatus(string(st)); err != nil {
				return domain.StatusEntry{}, fmt.Errorf("decode %s: %w", eventType, err)
			}
		}
		from := ev.From
		return domain.StatusEntry{OrderID: ev.OrderID, EventType: eventType, From: &from, To: ev.To, OccurredAt: ev.ChangedAt}, nil

	default:
		return domain.StatusEntry{}, fmt.Errorf("%w: %q", domain.ErrUnknownEvent, eventType)
	}
}
