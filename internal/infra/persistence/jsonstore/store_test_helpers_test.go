package jsonstore

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestBucket(t *testing.T) *blob.Bucket {
	t.Helper()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return bucket
}

// stubClock returns a fixed start time advanced by step on every call.
type stubClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newStubClock(step time.Duration) *stubClock {
	return &stubClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), step: step}
}

func (c *stubClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now
	c.now = c.now.Add(c.step)

	return now
}

func readRaw(t *testing.T, bucket *blob.Bucket, key string) []byte {
	t.Helper()
	data, err := bucket.ReadAll(context.Background(), key)
	require.NoError(t, err)

	return data
}
