package pending

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github/uniagent/go-broker/internal/broker/engine"
)

// ErrNotFound is returned by Take for a root hash that is absent or expired.
// The two cases are intentionally not distinguishable.
var ErrNotFound = errors.New("pending transaction not found")

// Entry is one unsigned transaction awaiting its signature. Entries are
// immutable once stored: submission removes them, it never mutates them.
type Entry struct {
	RootHash    string                      `json:"rootHash"`
	Transaction *engine.UnsignedTransaction `json:"transaction"`
	CreatedAt   time.Time                   `json:"createdAt"`
}

// Store owns the rootHash -> Entry mapping for the TTL window.
//
// Take is the double-submission guard: it atomically removes and returns the
// entry, so for any root hash exactly one caller can ever obtain it, every
// other (and every later) caller gets ErrNotFound. Put is unconditional and
// last-write-wins; root hashes are assumed unique per intent, collisions are
// considered cryptographically negligible and not handled.
type Store interface {
	Put(ctx context.Context, entry *Entry) error
	Take(ctx context.Context, rootHash string) (*Entry, error)
	// Len reports the number of live (non-expired) entries.
	Len(ctx context.Context) (int, error)
}
