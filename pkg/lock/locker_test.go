package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLocker(t *testing.T, opts Options) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisLocker(rdb, "lock:", opts), mr
}

func lockers(t *testing.T, opts Options) map[string]Locker {
	rl, _ := newRedisLocker(t, opts)
	return map[string]Locker{
		"memory": NewMemoryLocker(opts),
		"redis":  rl,
	}
}

func TestLockerMutualExclusion(t *testing.T) {
	for name, l := range lockers(t, Options{RetryInterval: time.Millisecond}) {
		t.Run(name, func(t *testing.T) {
			var inside int32
			var maxInside int32
			var wg sync.WaitGroup

			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					release, err := l.Acquire(context.Background(), "chat:telegram:42")
					if !assert.NoError(t, err) {
						return
					}
					n := atomic.AddInt32(&inside, 1)
					for {
						m := atomic.LoadInt32(&maxInside)
						if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
							break
						}
					}
					time.Sleep(2 * time.Millisecond)
					atomic.AddInt32(&inside, -1)
					release()
				}()
			}
			wg.Wait()

			assert.Equal(t, int32(1), maxInside)
		})
	}
}

func TestLockerIndependentKeys(t *testing.T) {
	for name, l := range lockers(t, Options{Wait: 100 * time.Millisecond}) {
		t.Run(name, func(t *testing.T) {
			releaseA, err := l.Acquire(context.Background(), "a")
			require.NoError(t, err)
			defer releaseA()

			releaseB, err := l.Acquire(context.Background(), "b")
			require.NoError(t, err)
			releaseB()
		})
	}
}

func TestLockerTimesOut(t *testing.T) {
	for name, l := range lockers(t, Options{Wait: 30 * time.Millisecond, RetryInterval: 5 * time.Millisecond}) {
		t.Run(name, func(t *testing.T) {
			release, err := l.Acquire(context.Background(), "k")
			require.NoError(t, err)
			defer release()

			_, err = l.Acquire(context.Background(), "k")
			assert.ErrorIs(t, err, ErrNotAcquired)
		})
	}
}

func TestLockerHonoursContext(t *testing.T) {
	for name, l := range lockers(t, Options{Wait: time.Second}) {
		t.Run(name, func(t *testing.T) {
			release, err := l.Acquire(context.Background(), "k")
			require.NoError(t, err)
			defer release()

			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()
			_, err = l.Acquire(ctx, "k")
			assert.ErrorIs(t, err, context.DeadlineExceeded)
		})
	}
}

func TestMemoryLockerDropsIdleEntries(t *testing.T) {
	l := NewMemoryLocker(Options{})

	release, err := l.Acquire(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, 1, l.size())

	release()
	release()
	assert.Equal(t, 0, l.size())
}

func TestRedisLockerReleaseKeepsForeignLease(t *testing.T) {
	l, mr := newRedisLocker(t, Options{TTL: time.Second})

	release, err := l.Acquire(context.Background(), "k")
	require.NoError(t, err)

	// Simulate the lease expiring and another holder taking it.
	mr.FastForward(2 * time.Second)
	require.NoError(t, mr.Set("lock:k", "someone-else"))

	release()

	got, err := mr.Get("lock:k")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}
