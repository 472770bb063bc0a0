package application

import (
	"context"

	"github.com/dmehra2102/ecommerce-store/internal/audit/domain"
)

type HistoryRepository interface {
	Append(ctx context.Context, e domain.StatusEntry) error
}
