package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs runs one dashboard connection until either side closes it. A full
// hub refuses the connection with a policy-violation close frame.
func ServeWs(hub *Hub, c *websocket.Conn, userID uuid.UUID) {
	client := NewClient(hub, c, userID)
	if err := hub.Register(client); err != nil {
		c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()))
		c.Close()
		return
	}

	go client.writePump()
	client.readPump()
}
