package pending

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "pending:"

// redisStore backs the pending store with redis for multi-process
// deployments. Expiry is enforced by redis key TTLs and the atomic take is a
// GETDEL, preserving the exactly-once-claim contract of the memory store.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	clock  time2.Clock
}

// NewRedisStore 创建 redis pending store
//
//nolint:ireturn
func NewRedisStore(client *redis.Client, ttl time.Duration, clock time2.Clock) Store {
	return &redisStore{
		client: client,
		ttl:    ttl,
		clock:  clock,
	}
}

func (s *redisStore) Put(ctx context.Context, entry *Entry) error {
	entry.CreatedAt = s.clock.Now()

	payload, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "failed to marshal pending entry")
	}

	if err := s.client.Set(ctx, redisKeyPrefix+entry.RootHash, payload, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store pending entry")
	}

	return nil
}

func (s *redisStore) Take(ctx context.Context, rootHash string) (*Entry, error) {
	raw, err := s.client.GetDel(ctx, redisKeyPrefix+rootHash).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to take pending entry")
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal pending entry")
	}

	return &entry, nil
}

func (s *redisStore) Len(ctx context.Context) (int, error) {
	// redis drops expired keys itself, counting the prefix is exact
	n := 0
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		n++
	}

	if err := iter.Err(); err != nil {
		return 0, errors.Wrap(err, "failed to scan pending entries")
	}

	return n, nil
}
