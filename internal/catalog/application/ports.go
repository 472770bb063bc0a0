package application

import (
	"context"

	"github.com/dmehra2102/ecommerce-store/internal/catalog/domain"
)

type ProductRepository interface {
	Save(ctx context.Context, p domain.Product) error
	Get(ctx context.Context, id string) (domain.Product, error)
}
