package ws

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 32
)

// client is one websocket connection bound to a player identity in a room.
type client struct {
	handler *Handler
	conn    *websocket.Conn
	send    chan OutboundMessage

	playerID string
	name     string
	roomID   string
}

// enqueue hands a message to the write pump. A client that cannot keep up
// loses messages rather than blocking the engine.
func (c *client) enqueue(msg OutboundMessage) {
	select {
	case c.send <- msg:
	default:
		zap.L().Warn("dropping message for slow client",
			zap.String("playerId", c.playerID),
			zap.String("event", string(msg.Event)))
	}
}

func (c *client) readPump() {
	defer func() {
		c.handler.hub.leave(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Warn("websocket read failed",
					zap.String("playerId", c.playerID),
					zap.Error(err))
			}
			return
		}

		var msg InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.enqueue(OutboundMessage{Event: EventError, Error: "malformed message"})
			continue
		}

		c.handler.handleMessage(c, &msg)
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
