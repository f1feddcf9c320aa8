package websocket

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	// Outbound frame buffer per connection
	sendBufferSize = 256
)

// Conn is the subset of *websocket.Conn the hub touches, split out so tests
// can substitute an in-memory connection.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	Close() error
}

// Client is one live socket bound to an authenticated user.
type Client struct {
	id     string
	userID string
	conn   Conn
	send   chan []byte
	done   chan struct{}

	closed     int32 // atomic, set once the connection is no longer sendable
	doneClosed int32 // atomic, guards close(done)
}

func NewClient(conn Conn, userID string) *Client {
	return &Client{
		id:     uuid.New().String(),
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
}

func (c *Client) ID() string {
	return c.id
}

func (c *Client) UserID() string {
	return c.userID
}

// Send queues a frame for delivery. Returns false when the peer is gone or
// its buffer is full; the frame is dropped, never queued elsewhere. The send
// channel is never closed, so Send stays safe against a concurrent teardown
// on the hub goroutine.
func (c *Client) Send(payload []byte) bool {
	if c.isClosed() {
		return false
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *Client) isClosed() bool {
	return atomic.LoadInt32(&c.closed) == 1
}

func (c *Client) markClosed() {
	atomic.StoreInt32(&c.closed, 1)
}

// signalDone tells writePump to send the close frame and exit. The send
// channel is left open and garbage-collected with the client.
func (c *Client) signalDone() {
	if atomic.CompareAndSwapInt32(&c.doneClosed, 0, 1) {
		close(c.done)
	}
}

// readPump relays inbound frames to the hub's relay. It runs one loop per
// connection, which is what keeps per-connection processing ordered.
func (c *Client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.ctx.Done():
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("websocket read error", "clientID", c.id, "error", err)
			}
			return
		}
		h.relay.Handle(h.ctx, c, raw)
	}
}

// writePump drains the send channel onto the socket and keeps the
// connection alive with periodic pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
