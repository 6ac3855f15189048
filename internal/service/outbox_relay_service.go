package service

import (
	"context"
	"time"

	"github.com/goodwellmafunga/skills-assessment/internal/entity"
	"github.com/goodwellmafunga/skills-assessment/internal/pkg/logger"
	"github.com/goodwellmafunga/skills-assessment/internal/repository/unitofwork"
	"github.com/goodwellmafunga/skills-assessment/pkg/events"
)

type IOutboxRelayService interface {
	// Run drains the outbox every interval until ctx is done.
	Run(ctx context.Context)
	// RelayOnce publishes one batch and returns how many events it marked.
	RelayOnce(ctx context.Context) (int, error)
}

type outboxRelayService struct {
	uowFactory unitofwork.RepositoryFactory
	publishers []events.Publisher
	logger     logger.ILogger
	interval   time.Duration
	batchSize  int
}

func NewOutboxRelayService(
	uowFactory unitofwork.RepositoryFactory,
	publishers []events.Publisher,
	log logger.ILogger,
	interval time.Duration,
	batchSize int,
) IOutboxRelayService {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &outboxRelayService{
		uowFactory: uowFactory,
		publishers: publishers,
		logger:     log,
		interval:   interval,
		batchSize:  batchSize,
	}
}

func (s *outboxRelayService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("OUTBOX", "Relay started", map[string]interface{}{"interval": s.interval.String(), "publishers": len(s.publishers)})
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("OUTBOX", "Relay stopped", nil)
			return
		case <-ticker.C:
			if _, err := s.RelayOnce(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("OUTBOX", "Relay tick failed", map[string]interface{}{"error": err.Error()})
			}
		}
	}
}

// RelayOnce publishes pending events oldest first. An event that fails to
// publish stays pending for the next tick; events are delivered at least once.
func (s *outboxRelayService) RelayOnce(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pending, err := uow.OutboxRepository().FindPending(ctx, s.batchSize)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, e := range pending {
		if err := s.publish(ctx, e); err != nil {
			s.logger.Warn("OUTBOX", "Publish failed, will retry", map[string]interface{}{
				"event_id": e.Id, "event_type": e.EventType, "error": err.Error(),
			})
			continue
		}

		ok, err := uow.OutboxRepository().MarkProcessed(ctx, e.Id, time.Now())
		if err != nil {
			return marked, err
		}
		if ok {
			marked++
		}
	}

	if marked > 0 {
		s.logger.Info("OUTBOX", "Events relayed", map[string]interface{}{"count": marked})
	}
	return marked, nil
}

func (s *outboxRelayService) publish(ctx context.Context, e *entity.OutboxEvent) error {
	ev := toBusEvent(e)
	for _, p := range s.publishers {
		if err := p.Publish(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

// toBusEvent copies the stored payload and tags it with the outbox id so
// consumers can drop redeliveries.
func toBusEvent(e *entity.OutboxEvent) events.BaseEvent {
	data := make(map[string]interface{}, len(e.Payload)+1)
	for k, v := range e.Payload {
		data[k] = v
	}
	data["event_id"] = e.Id.String()
	return events.BaseEvent{Type: e.EventType, Data: data, OccurredAt: e.CreatedAt}
}
