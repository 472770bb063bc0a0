package idempotency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store remembers handled message keys in Redis for ttl.
type Store struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewStore(rdb redis.Cmdable, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) Key(topic string, partition int, offset int64) string {
	return fmt.Sprintf("idem:%s:%d:%d", topic, partition, offset)
}

// Seen claims key and reports whether an earlier call already claimed it.
func (s *Store) Seen(ctx context.Context, key string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, key, "1", s.ttl).Result()
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// Release drops a claim so a redelivered message is handled again.
func (s *Store) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
