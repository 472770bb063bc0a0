package outbox

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Insert writes ev as pending. Call it inside the transaction that changes
// the aggregate.
func Insert(ctx context.Context, tx execer, ev Event) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO outbox (aggregate_type, aggregate_id, type, payload, headers, traceparent, status)
		VALUES ($1,$2,$3,$4,$5,$6,'pending')`,
		ev.AggregateType, ev.AggregateID, ev.Type, ev.Payload, ev.Headers, ev.Traceparent)
	return err
}

// PostgresStore implements Store on the outbox table. Rows whose lease ran
// out are picked up again.
type PostgresStore struct {
	log           *slog.Logger
	pool          *pgxpool.Pool
	aggregateType string
}

func NewPostgresStore(log *slog.Logger, pool *pgxpool.Pool, aggregateType string) *PostgresStore {
	return &PostgresStore{log: log, pool: pool, aggregateType: aggregateType}
}

func (s *PostgresStore) LockBatch(ctx context.Context, relayID string, batchSize int, lease time.Duration) ([]Event, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	rows, err := tx.Query(ctx, `
		SELECT id, aggregate_type, aggregate_id, type, payload, headers, traceparent, created_at, retry_count
		FROM outbox
		WHERE aggregate_type = $1
		  AND (status = 'pending' OR (status = 'in_progress' AND lease_until < now()))
		ORDER BY id
		FOR UPDATE SKIP LOCKED
		LIMIT $2
	`, s.aggregateType, batchSize)
	if err != nil {
		return nil, err
	}

	var events []Event
	for rows.Next() {
		var ev Event
		var headers map[string]string
		if err := rows.Scan(&ev.ID, &ev.AggregateType, &ev.AggregateID, &ev.Type, &ev.Payload, &headers, &ev.Traceparent, &ev.CreatedAt, &ev.RetryCount); err != nil {
			rows.Close()
			return nil, err
		}
		ev.Headers = headers
		ev.Status = StatusInProgress
		ev.RelayID = relayID
		events = append(events, ev)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, tx.Commit(ctx)
	}

	ids := make([]int64, 0, len(events))
	for _, ev := range events {
		ids = append(ids, ev.ID)
	}
	_, err = tx.Exec(ctx, `
		UPDATE outbox
		SET status='in_progress', relay_id=$1, lease_until=now() + make_interval(secs => $2)
		WHERE id = ANY($3)`, relayID, lease.Seconds(), ids)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *PostgresStore) MarkSent(ctx context.Context, ids []int64) error {
	ct, err := s.pool.Exec(ctx, `UPDATE outbox SET status='sent' WHERE id = ANY($1)`, ids)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return errors.New("no rows updated")
	}
	return nil
}

func (s *PostgresStore) MarkFailed(ctx context.Context, id int64, errMsg string) error {
	_, err := s.pool.Exec(ctx, `UPDATE outbox SET status='failed', last_error=$2, retry_count=retry_count+1 WHERE id=$1`, id, errMsg)
	return err
}

func (s *PostgresStore) ExtendLease(ctx context.Context, relayID string, ids []int64, lease time.Duration) error {
	_, err := s.pool.Exec(ctx, `UPDATE outbox SET lease_until=now() + make_interval(secs => $1) WHERE id = ANY($2) AND relay_id=$3`, lease.Seconds(), ids, relayID)
	return err
}
