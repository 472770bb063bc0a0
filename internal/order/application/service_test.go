package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/dmehra2102/ecommerce-store/internal/catalog/domain"
	"github.com/dmehra2102/ecommerce-store/internal/order/domain"
	"github.com/dmehra2102/ecommerce-store/pkg/enumeration"
	"github.com/dmehra2102/ecommerce-store/pkg/outbox"
)

type memRepo struct {
	orders map[string]domain.Order
	events []outbox.Event
}

func newMemRepo() *memRepo { return &memRepo{orders: map[string]domain.Order{}} }

func (r *memRepo) SaveWithOutbox(_ context.Context, o domain.Order, ev outbox.Event) error {
	r.orders[o.ID] = o
	r.events = append(r.events, ev)
	return nil
}

func (r *memRepo) UpdateStatusWithOutbox(_ context.Context, id string, apply func(domain.Order) (domain.Order, outbox.Event, error)) (domain.Order, error) {
	cur, ok := r.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	next, ev, err := apply(cur)
	if err != nil {
		return domain.Order{}, err
	}
	r.orders[id] = next
	r.events = append(r.events, ev)
	return next, nil
}

func (r *memRepo) Get(_ context.Context, id string) (domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return o, nil
}

type stubCatalog struct {
	available map[string]catalog.Size
	err       error
}

func (c stubCatalog) CheckVariant(_ context.Context, productID string, size catalog.Size) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	return c.available[productID] == size, nil
}

func newOrder(t *testing.T) domain.Order {
	t.Helper()
	o, err := domain.NewOrder("o-1", "alice", []domain.OrderItem{
		{ProductID: "p-1", Size: catalog.SizeM, Quantity: 1, PriceCents: 900},
	})
	require.NoError(t, err)
	return o
}

func TestCreateOrder(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, stubCatalog{available: map[string]catalog.Size{"p-1": catalog.SizeM}})

	require.NoError(t, svc.CreateOrder(context.Background(), newOrder(t), map[string]string{"source": "test"}, "tp"))

	got, err := svc.GetOrder(context.Background(), "o-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)

	require.Len(t, repo.events, 1)
	ev := repo.events[0]
	assert.Equal(t, domain.EventOrderCreated, ev.Type)
	assert.Equal(t, "o-1", ev.AggregateID)
	assert.Equal(t, "tp", ev.Traceparent)
	assert.Contains(t, string(ev.Payload), `"status":"PENDING"`)
	assert.Contains(t, string(ev.Payload), `"size":"M"`)
}

func TestCreateOrderUnavailableVariant(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, stubCatalog{available: map[string]catalog.Size{"p-1": catalog.SizeXL}})

	err := svc.CreateOrder(context.Background(), newOrder(t), nil, "")
	assert.ErrorIs(t, err, ErrVariantUnavailable)
	assert.Empty(t, repo.orders)
}

func TestCreateOrderCatalogError(t *testing.T) {
	boom := errors.New("catalog down")
	svc := NewService(newMemRepo(), stubCatalog{err: boom})

	assert.ErrorIs(t, svc.CreateOrder(context.Background(), newOrder(t), nil, ""), boom)
}

func TestUpdateStatusWithoutTransitionRules(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, stubCatalog{available: map[string]catalog.Size{"p-1": catalog.SizeM}})
	fixed := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()
	require.NoError(t, svc.CreateOrder(ctx, newOrder(t), nil, ""))

	for _, st := range []domain.OrderStatus{domain.StatusCompleted, domain.StatusPending, domain.StatusCancelled, domain.StatusCancelled} {
		o, err := svc.UpdateStatus(ctx, "o-1", st, nil, "")
		require.NoError(t, err)
		assert.Equal(t, st, o.Status)
		assert.Equal(t, fixed, o.UpdatedAt)
	}

	require.Len(t, repo.events, 5)
	var changed domain.OrderStatusChanged
	require.NoError(t, json.Unmarshal(repo.events[2].Payload, &changed))
	assert.Equal(t, domain.StatusCompleted, changed.From)
	assert.Equal(t, domain.StatusPending, changed.To)
}

func TestUpdateStatusRejectsInvalid(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, stubCatalog{})

	_, err := svc.UpdateStatus(context.Background(), "o-1", domain.OrderStatus("SHIPPED"), nil, "")
	assert.ErrorIs(t, err, enumeration.ErrInvalidValue)
	assert.Empty(t, repo.events)
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc := NewService(newMemRepo(), stubCatalog{})

	_, err := svc.UpdateStatus(context.Background(), "missing", domain.StatusCompleted, nil, "")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}
