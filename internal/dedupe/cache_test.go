package dedupe_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DeafMist/award-seat-radar/backend/internal/dedupe"
)

func TestCacheSeenAfterMark(t *testing.T) {
	cache := dedupe.NewCache(10, time.Minute)

	require.False(t, cache.IsSeen("batch-1"))

	cache.MarkSeen("batch-1")
	require.True(t, cache.IsSeen("batch-1"))
	require.False(t, cache.IsSeen("batch-2"))
}

func TestCacheTTLExpiry(t *testing.T) {
	cache := dedupe.NewCache(10, 30*time.Millisecond)

	cache.MarkSeen("batch-1")
	require.True(t, cache.IsSeen("batch-1"))

	time.Sleep(50 * time.Millisecond)
	require.False(t, cache.IsSeen("batch-1"))
}

func TestCacheCapacityEvictsOldest(t *testing.T) {
	cache := dedupe.NewCache(3, time.Minute)

	for i := 1; i <= 4; i++ {
		cache.MarkSeen(fmt.Sprintf("batch-%d", i))
	}

	require.False(t, cache.IsSeen("batch-1"))
	require.True(t, cache.IsSeen("batch-2"))
	require.True(t, cache.IsSeen("batch-3"))
	require.True(t, cache.IsSeen("batch-4"))
}

func TestCacheMarkRefreshesEntry(t *testing.T) {
	cache := dedupe.NewCache(3, time.Minute)

	cache.MarkSeen("batch-1")
	cache.MarkSeen("batch-2")
	cache.MarkSeen("batch-3")

	// Re-marking batch-1 makes it the newest; the next insert evicts
	// batch-2 instead.
	cache.MarkSeen("batch-1")
	cache.MarkSeen("batch-4")

	require.True(t, cache.IsSeen("batch-1"))
	require.False(t, cache.IsSeen("batch-2"))
	require.True(t, cache.IsSeen("batch-3"))
	require.True(t, cache.IsSeen("batch-4"))
}
