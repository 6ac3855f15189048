package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/model"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/logger"
	"github.com/goodwellmafunga/skills-assessment/internal/testutil"
	"github.com/goodwellmafunga/skills-assessment/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	fail   bool
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.events = append(p.events, e)
	return nil
}

func seedOutbox(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&model.OutboxEvent{
			EventType: entity.EventTypeAssessmentSubmitted,
			Payload:   datatypes.JSON(`{"overall_score": 3.5}`),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}).Error)
	}
}

func pendingCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.OutboxEvent{}).Where("processed = ?", false).Count(&n).Error)
	return n
}

func TestOutboxRelayOnce(t *testing.T) {
	factory, db := testutil.NewFactory(t)
	seedOutbox(t, db, 3)

	first, second := &recordingPublisher{}, &recordingPublisher{}
	relay := NewOutboxRelayService(factory, []events.Publisher{first, second}, logger.NewNopLogger(), time.Second, 2)

	n, err := relay.RelayOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.EqualValues(t, 1, pendingCount(t, db))

	n, err = relay.RelayOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Zero(t, pendingCount(t, db))

	require.Len(t, first.events, 3)
	assert.Len(t, second.events, 3)
	assert.Equal(t, entity.EventTypeAssessmentSubmitted, first.events[0].EventType())
	assert.Equal(t, 3.5, first.events[0].Payload()["overall_score"])
	assert.NotEmpty(t, first.events[0].Payload()["event_id"])
	assert.True(t, first.events[0].Timestamp().Before(first.events[1].Timestamp()))

	n, err = relay.RelayOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOutboxRelayKeepsFailedEvents(t *testing.T) {
	factory, db := testutil.NewFactory(t)
	seedOutbox(t, db, 2)

	pub := &recordingPublisher{fail: true}
	relay := NewOutboxRelayService(factory, []events.Publisher{pub}, logger.NewNopLogger(), time.Second, 10)

	n, err := relay.RelayOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.EqualValues(t, 2, pendingCount(t, db))

	pub.fail = false
	n, err = relay.RelayOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Zero(t, pendingCount(t, db))
}

func TestOutboxToDashboardPipeline(t *testing.T) {
	factory, db := testutil.NewFactory(t)
	seedOutbox(t, db, 1)

	bus := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 16}, watermill.NopLogger{})
	defer bus.Close()

	hub := &recordingBroadcaster{got: make(chan []byte, 4)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, NewDashboardConsumerService(bus, "dashboard_events", hub, logger.NewNopLogger()).Consume(ctx))

	relay := NewOutboxRelayService(factory,
		[]events.Publisher{events.NewChannelPublisher(bus, "dashboard_events")},
		logger.NewNopLogger(), time.Second, 10)
	n, err := relay.RelayOnce(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	select {
	case data := <-hub.got:
		ev, err := events.Unmarshal(data)
		require.NoError(t, err)
		assert.Equal(t, entity.EventTypeAssessmentSubmitted, ev.Type)
		assert.Equal(t, 3.5, ev.Data["overall_score"])
	case <-time.After(2 * time.Second):
		t.Fatal("dashboard did not receive the relayed event")
	}
}
