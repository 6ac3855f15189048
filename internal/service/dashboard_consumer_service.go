package service

import (
	"context"

	"github.com/goodwellmafunga/skills-assessment/internal/pkg/logger"
	"github.com/goodwellmafunga/skills-assessment/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// DashboardBroadcaster pushes a serialized event to live dashboard clients.
type DashboardBroadcaster interface {
	Broadcast(data []byte)
}

type IDashboardConsumerService interface {
	Consume(ctx context.Context) error
}

type dashboardConsumerService struct {
	subscriber message.Subscriber
	topicName  string
	hub        DashboardBroadcaster
	logger     logger.ILogger
}

func NewDashboardConsumerService(
	subscriber message.Subscriber,
	topicName string,
	hub DashboardBroadcaster,
	log logger.ILogger,
) IDashboardConsumerService {
	return &dashboardConsumerService{
		subscriber: subscriber,
		topicName:  topicName,
		hub:        hub,
		logger:     log,
	}
}

// Consume subscribes synchronously and handles messages in the background
// until ctx is done.
func (cs *dashboardConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *dashboardConsumerService) processMessage(msg *message.Message) {
	event, err := events.Unmarshal(msg.Payload)
	if err != nil || event.Type == "" {
		cs.logger.Warn("DASHBOARD", "Dropping malformed bus message", map[string]interface{}{"message_id": msg.UUID})
		// Ack invalid messages to prevent infinite retry
		msg.Ack()
		return
	}

	cs.hub.Broadcast(msg.Payload)
	msg.Ack()
}
