package pending_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/stretchr/testify/require"

	"github/uniagent/go-broker/internal/broker/engine"
	"github/uniagent/go-broker/internal/broker/pending"
)

const testTTL = 5 * time.Minute

func newEntry(rootHash string) *pending.Entry {
	return &pending.Entry{
		RootHash: rootHash,
		Transaction: &engine.UnsignedTransaction{
			RootHash: rootHash,
			Steps:    1,
		},
	}
}

func TestMemoryStoreTakeRemoves(t *testing.T) {
	ctx := context.Background()
	clock := time2.NewMockClock(time.Now())
	store := pending.NewMemoryStore(testTTL, clock)

	require.NoError(t, store.Put(ctx, newEntry("0xabc")))

	entry, err := store.Take(ctx, "0xabc")
	require.NoError(t, err)
	require.Equal(t, "0xabc", entry.RootHash)
	require.Equal(t, 1, entry.Transaction.Steps)

	// a second take must not succeed, the claim is exactly-once
	_, err = store.Take(ctx, "0xabc")
	require.ErrorIs(t, err, pending.ErrNotFound)
}

func TestMemoryStoreTakeUnknown(t *testing.T) {
	ctx := context.Background()
	store := pending.NewMemoryStore(testTTL, time2.NewMockClock(time.Now()))

	_, err := store.Take(ctx, "0xdoesnotexist")
	require.ErrorIs(t, err, pending.ErrNotFound)
}

func TestMemoryStoreTTLBoundary(t *testing.T) {
	ctx := context.Background()
	clock := time2.NewMockClock(time.Now())
	store := pending.NewMemoryStore(testTTL, clock)

	require.NoError(t, store.Put(ctx, newEntry("0xfresh")))

	// exactly at the TTL the entry is still claimable
	clock.Advance(testTTL)

	entry, err := store.Take(ctx, "0xfresh")
	require.NoError(t, err)
	require.Equal(t, "0xfresh", entry.RootHash)

	require.NoError(t, store.Put(ctx, newEntry("0xstale")))

	clock.Advance(testTTL + time.Second)

	_, err = store.Take(ctx, "0xstale")
	require.ErrorIs(t, err, pending.ErrNotFound)
}

func TestMemoryStoreSweepOnPut(t *testing.T) {
	ctx := context.Background()
	clock := time2.NewMockClock(time.Now())
	store := pending.NewMemoryStore(testTTL, clock)

	require.NoError(t, store.Put(ctx, newEntry("0xold")))

	clock.Advance(testTTL + time.Second)

	// the insert sweeps the expired entry, the fresh one stays claimable
	require.NoError(t, store.Put(ctx, newEntry("0xnew")))

	_, err := store.Take(ctx, "0xold")
	require.ErrorIs(t, err, pending.ErrNotFound)

	entry, err := store.Take(ctx, "0xnew")
	require.NoError(t, err)
	require.Equal(t, "0xnew", entry.RootHash)
}

func TestMemoryStorePutOverwrites(t *testing.T) {
	ctx := context.Background()
	clock := time2.NewMockClock(time.Now())
	store := pending.NewMemoryStore(testTTL, clock)

	first := newEntry("0xsame")
	first.Transaction.Steps = 1
	require.NoError(t, store.Put(ctx, first))

	second := newEntry("0xsame")
	second.Transaction.Steps = 2
	require.NoError(t, store.Put(ctx, second))

	entry, err := store.Take(ctx, "0xsame")
	require.NoError(t, err)
	require.Equal(t, 2, entry.Transaction.Steps)
}

func TestMemoryStoreLen(t *testing.T) {
	ctx := context.Background()
	clock := time2.NewMockClock(time.Now())
	store := pending.NewMemoryStore(testTTL, clock)

	n, err := store.Len(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	require.NoError(t, store.Put(ctx, newEntry("0xone")))
	require.NoError(t, store.Put(ctx, newEntry("0xtwo")))

	n, err = store.Len(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// expired entries still sitting in the map do not count
	clock.Advance(testTTL + time.Second)

	n, err = store.Len(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestMemoryStoreConcurrentTake(t *testing.T) {
	ctx := context.Background()
	clock := time2.NewMockClock(time.Now())
	store := pending.NewMemoryStore(testTTL, clock)

	require.NoError(t, store.Put(ctx, newEntry("0xrace")))

	const workers = 16

	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Take(ctx, "0xrace")
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	won := 0
	for err := range results {
		if err == nil {
			won++
		} else {
			require.ErrorIs(t, err, pending.ErrNotFound)
		}
	}

	require.Equal(t, 1, won, "exactly one concurrent taker must win")
}

func TestMemoryStoreIndependentEntries(t *testing.T) {
	ctx := context.Background()
	clock := time2.NewMockClock(time.Now())
	store := pending.NewMemoryStore(testTTL, clock)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Put(ctx, newEntry(fmt.Sprintf("0x%02d", i))))
	}

	entry, err := store.Take(ctx, "0x03")
	require.NoError(t, err)
	require.Equal(t, "0x03", entry.RootHash)

	// the others are untouched
	for _, hash := range []string{"0x00", "0x01", "0x02", "0x04"} {
		entry, err := store.Take(ctx, hash)
		require.NoError(t, err)
		require.Equal(t, hash, entry.RootHash)
	}
}
