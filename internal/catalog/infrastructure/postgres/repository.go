package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmehra2102/ecommerce-store/internal/catalog/domain"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{
		log:  log,
		pool: pool,
	}
}

const uniqueViolation = "23505"

// Save inserts p. Products are immutable once stored; a taken id fails with
// domain.ErrProductExists.
func (r *Repository) Save(ctx context.Context, p domain.Product) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO products (id, name, size, price_cents, created_at)
		VALUES ($1,$2,$3,$4,$5)`,
		p.ID, p.Name, p.Size, p.PriceCents, p.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrProductExists, p.ID)
	}
	if err != nil {
		return fmt.Errorf("save product %s: %w", p.ID, err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id string) (domain.Product, error) {
	var p domain.Product
	err := r.pool.QueryRow(ctx, `SELECT id, name, size, price_cents, created_at FROM products WHERE id=$1`, id).
		Scan(&p.ID, &p.Name, &p.Size, &p.PriceCents, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, domain.ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return p, nil
}
