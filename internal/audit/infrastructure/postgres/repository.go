package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmehra2102/ecommerce-store/internal/audit/domain"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) Append(ctx context.Context, e domain.StatusEntry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO order_status_history (order_id, event_type, from_status, to_status, occurred_at, recorded_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		e.OrderID, e.EventType, e.From, e.To, e.OccurredAt, e.RecordedAt)
	if err != nil {
		return fmt.Errorf("append status history %s: %w", e.OrderID, err)
	}
	return nil
}

// History returns the entries for orderID, oldest first.
func (r *Repository) History(ctx context.Context, orderID string) ([]domain.StatusEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT order_id, event_type, from_status, to_status, occurred_at, recorded_at
		FROM order_status_history
		WHERE order_id=$1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.StatusEntry
	for rows.Next() {
		var e domain.StatusEntry
		if err := rows.Scan(&e.OrderID, &e.EventType, &e.From, &e.To, &e.OccurredAt, &e.RecordedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
