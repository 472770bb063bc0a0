package outbox

import (
	"context"
	"log/slog"
	"time"
)

type Store interface {
	LockBatch(ctx context.Context, relayID string, batchSize int, lease time.Duration) ([]Event, error)
	MarkSent(ctx context.Context, ids []int64) error
	MarkFailed(ctx context.Context, id int64, errMsg string) error
	ExtendLease(ctx context.Context, relayID string, ids []int64, lease time.Duration) error
}

type Observer interface {
	OutboxSent(n int)
	OutboxFailed()
}

type Relay struct {
	log       *slog.Logger
	store     Store
	dispatch  *Dispatcher
	observer  Observer
	relayID   string
	batchSize int
	interval  time.Duration
	lease     time.Duration
	now       func() time.Time
}

func NewRelay(log *slog.Logger, store Store, dispatch *Dispatcher, relayID string, observer Observer) *Relay {
	return &Relay{
		log:       log,
		store:     store,
		dispatch:  dispatch,
		observer:  observer,
		relayID:   relayID,
		batchSize: 100,
		interval:  500 * time.Millisecond,
		lease:     5 * time.Second,
		now:       time.Now,
	}
}

func (r *Relay) Run(ctx context.Context) error {
	t := time.NewTicker(r.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info("relay stopping", "relay_id", r.relayID)
			return nil
		case <-t.C:
			if err := r.Tick(ctx); err != nil {
				r.log.Error("relay tick error", "relay_id", r.relayID, "err", err)
			}
		}
	}
}

// Tick leases one batch and dispatches it. Events are marked sent together
// at the end; failures are marked one by one.
func (r *Relay) Tick(ctx context.Context) error {
	events, err := r.store.LockBatch(ctx, r.relayID, r.batchSize, r.lease)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	leasedAt := r.now()
	ids := make([]int64, 0, len(events))
	for i, e := range events {
		if r.now().Sub(leasedAt) > r.lease/2 {
			if err := r.store.ExtendLease(ctx, r.relayID, remainingIDs(events[i:]), r.lease); err != nil {
				r.log.Error("relay extend lease error", "err", err)
			}
			leasedAt = r.now()
		}
		if err := r.dispatch.Dispatch(ctx, e); err != nil {
			if r.observer != nil {
				r.observer.OutboxFailed()
			}
			if mErr := r.store.MarkFailed(ctx, e.ID, err.Error()); mErr != nil {
				r.log.Error("relay mark failed error", "event_id", e.ID, "err", mErr)
			}
			continue
		}
		ids = append(ids, e.ID)
	}
	if len(ids) == 0 {
		return nil
	}
	if err := r.store.MarkSent(ctx, ids); err != nil {
		return err
	}
	if r.observer != nil {
		r.observer.OutboxSent(len(ids))
	}
	return nil
}

func remainingIDs(events []Event) []int64 {
	ids := make([]int64, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}
