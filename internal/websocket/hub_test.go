package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/goodwellmafunga/skills-assessment/internal/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(h *Hub, buffer int) *Client {
	return &Client{Hub: h, UserID: uuid.New(), Send: make(chan []byte, buffer)}
}

func TestHubCapacity(t *testing.T) {
	h := NewHub(nil, "", 2, logger.NewNopLogger())

	a, b, c := testClient(h, 1), testClient(h, 1), testClient(h, 1)
	require.NoError(t, h.Register(a))
	require.NoError(t, h.Register(b))
	assert.ErrorIs(t, h.Register(c), ErrHubFull)
	assert.Equal(t, 2, h.Count())

	h.Unregister(a)
	h.Unregister(a)
	assert.Equal(t, 1, h.Count())
	require.NoError(t, h.Register(c))

	_, open := <-a.Send
	assert.False(t, open)
}

func TestHubBroadcastDropsSlowClients(t *testing.T) {
	h := NewHub(nil, "", 0, logger.NewNopLogger())

	fast := testClient(h, 4)
	slow := testClient(h, 1)
	require.NoError(t, h.Register(fast))
	require.NoError(t, h.Register(slow))

	h.Broadcast([]byte("one"))
	h.Broadcast([]byte("two"))

	assert.Equal(t, 1, h.Count())
	assert.Equal(t, "one", string(<-fast.Send))
	assert.Equal(t, "two", string(<-fast.Send))

	assert.Equal(t, "one", string(<-slow.Send))
	_, open := <-slow.Send
	assert.False(t, open)
}

func TestHubClusterFanOut(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	newRedisHub := func() *Hub {
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { rdb.Close() })
		h := NewHub(rdb, "dashboard_events", 0, logger.NewNopLogger())
		require.NoError(t, h.Start(ctx))
		return h
	}
	first, second := newRedisHub(), newRedisHub()

	local := testClient(first, 4)
	remote := testClient(second, 4)
	require.NoError(t, first.Register(local))
	require.NoError(t, second.Register(remote))

	first.Broadcast([]byte(`{"type":"assessment_submitted"}`))

	select {
	case msg := <-remote.Send:
		assert.JSONEq(t, `{"type":"assessment_submitted"}`, string(msg))
	case <-time.After(2 * time.Second):
		t.Fatal("remote client did not receive the event")
	}

	assert.Equal(t, `{"type":"assessment_submitted"}`, string(<-local.Send))
	select {
	case msg := <-local.Send:
		t.Fatalf("origin instance received its own event twice: %s", msg)
	case <-time.After(200 * time.Millisecond):
	}
}
