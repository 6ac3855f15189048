// Package lock serializes work on a key, either across processes through
// Redis or inside one process.
package lock

import (
	"context"
	"errors"
	"time"
)

var ErrNotAcquired = errors.New("lock: not acquired")

type Locker interface {
	// Acquire blocks until the key is held, ctx is done or the wait budget
	// runs out. The returned func releases the key and is safe to call twice.
	Acquire(ctx context.Context, key string) (release func(), err error)
}

type Options struct {
	// TTL bounds how long a crashed holder can keep a Redis key.
	TTL time.Duration
	// Wait is the longest Acquire blocks before ErrNotAcquired.
	Wait time.Duration
	// RetryInterval is the pause between Redis attempts.
	RetryInterval time.Duration
}

var DefaultOptions = Options{
	TTL:           15 * time.Second,
	Wait:          10 * time.Second,
	RetryInterval: 50 * time.Millisecond,
}

func (o Options) withDefaults() Options {
	if o.TTL <= 0 {
		o.TTL = DefaultOptions.TTL
	}
	if o.Wait <= 0 {
		o.Wait = DefaultOptions.Wait
	}
	if o.RetryInterval <= 0 {
		o.RetryInterval = DefaultOptions.RetryInterval
	}
	return o
}
