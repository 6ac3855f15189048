package events

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// ChannelPublisher puts events on an in-process watermill topic.
type ChannelPublisher struct {
	publisher message.Publisher
	topic     string
}

func NewChannelPublisher(publisher message.Publisher, topic string) *ChannelPublisher {
	return &ChannelPublisher{publisher: publisher, topic: topic}
}

func (p *ChannelPublisher) Publish(ctx context.Context, event Event) error {
	data, err := Marshal(event)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)
	msg.Metadata.Set("event_type", event.EventType())
	return p.publisher.Publish(p.topic, msg)
}
