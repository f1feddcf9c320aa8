// Package websocket implements the room-presence and broadcast engine: the
// gatekeeper that admits authenticated connections, the registry that tracks
// which rooms each connection has joined, and the relay that persists and
// fans out chat events.
package websocket

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Hub owns the membership registry and the per-connection pumps, and
// coordinates connection teardown and graceful shutdown.
type Hub struct {
	registry *Registry
	relay    *Relay

	unregister chan *Client

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	wg     sync.WaitGroup

	logger *slog.Logger
}

func NewHub(store PersistenceService, logger *slog.Logger) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	registry := NewRegistry()

	return &Hub{
		registry:   registry,
		relay:      NewRelay(registry, store, logger),
		unregister: make(chan *Client),
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Registry exposes the membership registry; handlers and tests read it,
// mutations go through Admit and the relay.
func (h *Hub) Registry() *Registry {
	return h.registry
}

// Relay exposes the event relay.
func (h *Hub) Relay() *Relay {
	return h.relay
}

// Admit registers an authenticated connection with an empty room set and
// starts its pumps. The entry is visible in the registry before the first
// frame is read.
func (h *Hub) Admit(c *Client) {
	h.registry.Add(c)
	h.logger.Info("client connected", "clientID", c.id, "userID", c.userID)

	h.wg.Add(2)
	go func() {
		defer h.wg.Done()
		c.writePump()
	}()
	go func() {
		defer h.wg.Done()
		c.readPump(h)
	}()
}

// Run processes connection teardown until Stop is called. Should be started
// in its own goroutine.
func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case c := <-h.unregister:
			h.drop(c)
		case <-h.ctx.Done():
			h.shutdownClients()
			return
		}
	}
}

func (h *Hub) drop(c *Client) {
	c.markClosed()
	h.registry.Remove(c)
	c.signalDone()
	h.logger.Info("client disconnected", "clientID", c.id, "userID", c.userID)
}

func (h *Hub) shutdownClients() {
	clients := h.registry.Clients()
	for _, c := range clients {
		h.drop(c)
		c.conn.Close()
	}
	h.logger.Info("closed client connections", "count", len(clients))
}

// Stop shuts the hub down and waits for the pumps to finish, up to timeout.
func (h *Hub) Stop(timeout time.Duration) error {
	h.cancel()
	<-h.done

	finished := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-time.After(timeout):
		h.logger.Warn("hub shutdown timeout reached")
		return context.DeadlineExceeded
	}
}
