package pending

import (
	"context"
	"sync"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/rs/zerolog/log"
)

// memoryStore keeps pending transactions in process memory guarded by a
// single mutex. Expired entries are swept on every Put (amortized cleanup)
// and additionally checked lazily in Take, so a stale entry can never be
// claimed even before the next sweep.
type memoryStore struct {
	mu      sync.Mutex
	entries map[string]*Entry
	ttl     time.Duration
	clock   time2.Clock
}

// NewMemoryStore 创建内存 pending store
//
//nolint:ireturn
func NewMemoryStore(ttl time.Duration, clock time2.Clock) Store {
	return &memoryStore{
		entries: make(map[string]*Entry),
		ttl:     ttl,
		clock:   clock,
	}
}

func (s *memoryStore) Put(_ context.Context, entry *Entry) error {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry.CreatedAt = now
	s.entries[entry.RootHash] = entry

	// sweep piggybacks on inserts, keeping abandoned entries bounded by TTL
	swept := 0
	for hash, e := range s.entries {
		if now.Sub(e.CreatedAt) > s.ttl {
			delete(s.entries, hash)
			swept++
		}
	}

	if swept > 0 {
		log.Debug().Int("swept", swept).Int("remaining", len(s.entries)).Msg("Swept expired pending transactions")
	}

	return nil
}

func (s *memoryStore) Take(_ context.Context, rootHash string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[rootHash]
	if !ok {
		return nil, ErrNotFound
	}

	delete(s.entries, rootHash)

	if s.clock.Now().Sub(entry.CreatedAt) > s.ttl {
		return nil, ErrNotFound
	}

	return entry, nil
}

func (s *memoryStore) Len(_ context.Context) (int, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	// entries past their TTL may still sit in the map until the next sweep,
	// they no longer count as pending
	n := 0
	for _, e := range s.entries {
		if now.Sub(e.CreatedAt) <= s.ttl {
			n++
		}
	}

	return n, nil
}
