package websocket

import "sync"

// Registry tracks which rooms each live connection has joined. It is the
// single piece of shared mutable state in the WebSocket layer; every
// mutation holds the lock for the whole update, so a reader never observes
// a half-applied membership change.
type Registry struct {
	mu      sync.RWMutex
	members map[*Client]map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		members: make(map[*Client]map[string]struct{}),
	}
}

// Add creates an entry with an empty room set for a newly admitted
// connection. No-op if the connection is already present.
func (r *Registry) Add(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[c]; !ok {
		r.members[c] = make(map[string]struct{})
	}
}

// Join adds roomID to the connection's room set. Idempotent; no-op when the
// connection has already been removed.
func (r *Registry) Join(c *Client, roomID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rooms, ok := r.members[c]
	if !ok {
		return
	}
	rooms[roomID] = struct{}{}
}

// Leave removes roomID from the connection's room set. No-op if the room
// was never joined.
func (r *Registry) Leave(c *Client, roomID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rooms, ok := r.members[c]; ok {
		delete(rooms, roomID)
	}
}

// Remove deletes the connection's entire entry. Safe to call for
// connections that were never admitted.
func (r *Registry) Remove(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.members, c)
}

// Member reports whether the connection has joined roomID.
func (r *Registry) Member(c *Client, roomID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms, ok := r.members[c]
	if !ok {
		return false
	}
	_, joined := rooms[roomID]
	return joined
}

// MembersOf returns the connections currently joined to roomID whose
// sockets are still open.
func (r *Registry) MembersOf(roomID string) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var members []*Client
	for c, rooms := range r.members {
		if c.isClosed() {
			continue
		}
		if _, joined := rooms[roomID]; joined {
			members = append(members, c)
		}
	}
	return members
}

// Clients returns a snapshot of every registered connection.
func (r *Registry) Clients() []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]*Client, 0, len(r.members))
	for c := range r.members {
		clients = append(clients, c)
	}
	return clients
}

// Len returns the number of registered connections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.members)
}
