package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/goodwellmafunga/skills-assessment/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrHubFull = errors.New("websocket hub is at capacity")

// clusterMessage is what instances exchange over Redis pub/sub.
type clusterMessage struct {
	Origin  string `json:"origin"`
	Message []byte `json:"message"`
}

// Hub fans dashboard events out to connected clients. Delivery is best
// effort: a client whose buffer is full is dropped.
type Hub struct {
	clients    map[*Client]struct{}
	maxClients int
	mu         sync.RWMutex

	// Redis connection for cross-instance fan-out, nil when single instance.
	rdb        redis.UniversalClient
	channel    string
	instanceID string

	logger logger.ILogger
}

func NewHub(rdb redis.UniversalClient, channel string, maxClients int, log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		maxClients: maxClients,
		rdb:        rdb,
		channel:    channel,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

// Start subscribes to the cluster channel and relays remote events to local
// clients until ctx is done. Without Redis it is a no-op.
func (h *Hub) Start(ctx context.Context) error {
	if h.rdb == nil {
		return nil
	}

	pubsub := h.rdb.Subscribe(ctx, h.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return err
	}

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var cm clusterMessage
				if err := json.Unmarshal([]byte(msg.Payload), &cm); err != nil {
					h.logger.Warn("Hub", "Malformed cluster message", map[string]interface{}{"error": err.Error()})
					continue
				}
				if cm.Origin == h.instanceID {
					continue
				}
				h.deliver(cm.Message)
			}
		}
	}()

	h.logger.Info("Hub", "Subscribed to cluster channel", map[string]interface{}{"channel": h.channel, "instance": h.instanceID})
	return nil
}

func (h *Hub) Register(client *Client) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.maxClients > 0 && len(h.clients) >= h.maxClients {
		return ErrHubFull
	}
	h.clients[client] = struct{}{}
	h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID, "clients": len(h.clients)})
	return nil
}

// Unregister removes the client and closes its send channel. Safe to call
// more than once.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.Send)
	h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"user_id": client.UserID, "clients": len(h.clients)})
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends data to every local client and to the other instances.
func (h *Hub) Broadcast(data []byte) {
	h.deliver(data)

	if h.rdb == nil {
		return
	}
	payload, err := json.Marshal(clusterMessage{Origin: h.instanceID, Message: data})
	if err != nil {
		return
	}
	if err := h.rdb.Publish(context.Background(), h.channel, payload).Err(); err != nil {
		h.logger.Warn("Hub", "Cluster publish failed", map[string]interface{}{"error": err.Error()})
	}
}

func (h *Hub) deliver(data []byte) {
	var slow []*Client

	h.mu.RLock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.logger.Warn("Hub", "Client send buffer full, disconnecting", map[string]interface{}{"user_id": client.UserID})
		h.Unregister(client)
	}
}
