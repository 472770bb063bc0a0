package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmehra2102/ecommerce-store/internal/order/domain"
	"github.com/dmehra2102/ecommerce-store/pkg/outbox"
)

var ErrVariantUnavailable = errors.New("product variant unavailable")

const aggregateType = "order"

type Service struct {
	repo    OrderRepository
	catalog CatalogClient
	now     func() time.Time
}

func NewService(repo OrderRepository, catalog CatalogClient) *Service {
	return &Service{repo: repo, catalog: catalog, now: time.Now}
}

func (s *Service) CreateOrder(ctx context.Context, o domain.Order, headers map[string]string, traceparent string) error {
	for _, item := range o.Items {
		ok, err := s.catalog.CheckVariant(ctx, item.ProductID, item.Size)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s/%s", ErrVariantUnavailable, item.ProductID, item.Size)
		}
	}

	payload, err := json.Marshal(domain.OrderCreated{
		OrderID:    o.ID,
		Customer:   o.Customer,
		TotalCents: o.TotalCents,
		Items:      o.Items,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
	})
	if err != nil {
		return err
	}
	return s.repo.SaveWithOutbox(ctx, o, newEvent(o.ID, domain.EventOrderCreated, payload, headers, traceparent))
}

func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	return s.repo.Get(ctx, id)
}

// UpdateStatus relabels an order. Any legal status is accepted from any
// current status, including the same one.
func (s *Service) UpdateStatus(ctx context.Context, id string, st domain.OrderStatus, headers map[string]string, traceparent string) (domain.Order, error) {
	if _, err := domain.ParseOrderStatus(string(st)); err != nil {
		return domain.Order{}, err
	}
	return s.repo.UpdateStatusWithOutbox(ctx, id, func(cur domain.Order) (domain.Order, outbox.Event, error) {
		next, err := cur.WithStatus(st, s.now())
		if err != nil {
			return domain.Order{}, outbox.Event{}, err
		}
		payload, err := json.Marshal(domain.OrderStatusChanged{
			OrderID:   cur.ID,
			From:      cur.Status,
			To:        next.Status,
			ChangedAt: next.UpdatedAt,
		})
		if err != nil {
			return domain.Order{}, outbox.Event{}, err
		}
		return next, newEvent(cur.ID, domain.EventOrderStatusChanged, payload, headers, traceparent), nil
	})
}

func newEvent(orderID, eventType string, payload []byte, headers map[string]string, traceparent string) outbox.Event {
	return outbox.Event{
		AggregateType: aggregateType,
		AggregateID:   orderID,
		Type:          eventType,
		Payload:       payload,
		Headers:       headers,
		Traceparent:   traceparent,
		Status:        outbox.StatusPending,
	}
}
