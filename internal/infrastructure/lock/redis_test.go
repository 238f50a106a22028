//go:build integration

package lock

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DanielPopoola/laybuy-gateway/internal/application"
	"github.com/DanielPopoola/laybuy-gateway/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLocker(t *testing.T) {
	tr := testhelpers.SetupTestRedis(t)
	defer tr.Cleanup(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("second caller waits until release", func(t *testing.T) {
		locker := NewRedisLocker(tr.Client, 10*time.Second, logger)

		unlock, err := locker.Lock(ctx, "laybuy:confirm:1")
		require.NoError(t, err)

		acquired := make(chan struct{})
		go func() {
			unlock2, err := locker.Lock(ctx, "laybuy:confirm:1")
			if assert.NoError(t, err) {
				unlock2()
			}
			close(acquired)
		}()

		select {
		case <-acquired:
			t.Fatal("lock acquired while held")
		case <-time.After(200 * time.Millisecond):
		}

		unlock()

		select {
		case <-acquired:
		case <-time.After(2 * time.Second):
			t.Fatal("lock not acquired after release")
		}
	})

	t.Run("gives up after max wait", func(t *testing.T) {
		locker := NewRedisLocker(tr.Client, 10*time.Second, logger)
		locker.maxWait = 150 * time.Millisecond

		unlock, err := locker.Lock(ctx, "laybuy:confirm:2")
		require.NoError(t, err)
		defer unlock()

		_, err = locker.Lock(ctx, "laybuy:confirm:2")
		assert.ErrorIs(t, err, application.ErrLockNotAcquired)
	})

	t.Run("expired lock is not released by stale owner", func(t *testing.T) {
		locker := NewRedisLocker(tr.Client, 100*time.Millisecond, logger)

		staleUnlock, err := locker.Lock(ctx, "laybuy:confirm:3")
		require.NoError(t, err)

		time.Sleep(200 * time.Millisecond)

		unlock, err := locker.Lock(ctx, "laybuy:confirm:3")
		require.NoError(t, err)
		defer unlock()

		staleUnlock()

		exists, err := tr.Client.Exists(ctx, redisKeyNamespace+"laybuy:confirm:3").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), exists)
	})
}
