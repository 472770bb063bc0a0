package application

import (
	"context"

	catalog "github.com/dmehra2102/ecommerce-store/internal/catalog/domain"
	"github.com/dmehra2102/ecommerce-store/internal/order/domain"
	"github.com/dmehra2102/ecommerce-store/pkg/outbox"
)

// OrderRepository persists orders together with the outbox event that
// announces the change.
type OrderRepository interface {
	SaveWithOutbox(ctx context.Context, o domain.Order, ev outbox.Event) error
	UpdateStatusWithOutbox(ctx context.Context, id string, apply func(domain.Order) (domain.Order, outbox.Event, error)) (domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
}

type CatalogClient interface {
	CheckVariant(ctx context.Context, productID string, size catalog.Size) (bool, error)
}
