package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmehra2102/ecommerce-store/internal/order/domain"
	"github.com/dmehra2102/ecommerce-store/pkg/outbox"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

const uniqueViolation = "23505"

// SaveWithOutbox inserts a new order with its items and creation event. An
// existing id fails with domain.ErrOrderExists and leaves the stored order
// untouched.
func (r *Repository) SaveWithOutbox(ctx context.Context, o domain.Order, ev outbox.Event) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx, `INSERT INTO orders (id, customer, total_cents, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		o.ID, o.Customer, o.TotalCents, o.Status, o.CreatedAt, o.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrOrderExists, o.ID)
	}
	if err != nil {
		return fmt.Errorf("insert order %s: %w", o.ID, err)
	}

	batch := &pgx.Batch{}
	for _, item := range o.Items {
		batch.Queue(`INSERT INTO order_items (order_id, product_id, size, quantity, price_cents)
			VALUES ($1,$2,$3,$4,$5)`,
			o.ID, item.ProductID, item.Size, item.Quantity, item.PriceCents)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert order items %s: %w", o.ID, err)
	}

	if err := outbox.Insert(ctx, tx, ev); err != nil {
		return fmt.Errorf("insert outbox %s: %w", o.ID, err)
	}
	return tx.Commit(ctx)
}

// UpdateStatusWithOutbox locks the order row, lets apply compute the new
// order and its event, and stores both atomically.
func (r *Repository) UpdateStatusWithOutbox(ctx context.Context, id string, apply func(domain.Order) (domain.Order, outbox.Event, error)) (domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Order{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	cur, err := getOrder(ctx, tx, id, true)
	if err != nil {
		return domain.Order{}, err
	}
	next, ev, err := apply(cur)
	if err != nil {
		return domain.Order{}, err
	}

	_, err = tx.Exec(ctx, `UPDATE orders SET status=$2, updated_at=$3 WHERE id=$1`, id, next.Status, next.UpdatedAt)
	if err != nil {
		return domain.Order{}, fmt.Errorf("update order status %s: %w", id, err)
	}
	if err := outbox.Insert(ctx, tx, ev); err != nil {
		return domain.Order{}, fmt.Errorf("insert outbox %s: %w", id, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Order{}, err
	}
	r.log.Info("order status updated", "order_id", id, "from", cur.Status, "to", next.Status)
	return next, nil
}

func (r *Repository) Get(ctx context.Context, id string) (domain.Order, error) {
	return getOrder(ctx, r.pool, id, false)
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func getOrder(ctx context.Context, q querier, id string, forUpdate bool) (domain.Order, error) {
	query := `SELECT id, customer, total_cents, status, created_at, updated_at FROM orders WHERE id=$1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var o domain.Order
	err := q.QueryRow(ctx, query, id).
		Scan(&o.ID, &o.Customer, &o.TotalCents, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order %s: %w", id, err)
	}

	rows, err := q.Query(ctx, `SELECT product_id, size, quantity, price_cents FROM order_items WHERE order_id=$1 ORDER BY product_id, size`, id)
	if err != nil {
		return domain.Order{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Size, &item.Quantity, &item.PriceCents); err != nil {
			return domain.Order{}, err
		}
		o.Items = append(o.Items, item)
	}
	return o, rows.Err()
}
