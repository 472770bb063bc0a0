// Package migrations applies the embedded Postgres schema with goose.
package migrations

import (
	"context"
	"embed"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql
var Postgres embed.FS

const dir = "postgres"

func setup() error {
	goose.SetBaseFS(Postgres)
	return goose.SetDialect("postgres")
}

// Up migrates the schema behind pool to the latest version.
func Up(ctx context.Context, pool *pgxpool.Pool) error {
	if err := setup(); err != nil {
		return err
	}
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return goose.UpContext(ctx, db, dir)
}

// Down rolls back a single migration.
func Down(ctx context.Context, pool *pgxpool.Pool) error {
	if err := setup(); err != nil {
		return err
	}
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return goose.DownContext(ctx, db, dir)
}
