package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
)

// PersistenceService is the external store the relay consults before a chat
// event becomes visible to anyone.
type PersistenceService interface {
	RoomExists(ctx context.Context, roomID string) (bool, error)
	AppendChat(ctx context.Context, roomID, message, senderID string) error
}

// Relay reacts to typed inbound events from admitted connections: join and
// leave mutate the registry, chat is validated, persisted and fanned out.
type Relay struct {
	registry *Registry
	store    PersistenceService
	logger   *slog.Logger
}

func NewRelay(registry *Registry, store PersistenceService, logger *slog.Logger) *Relay {
	return &Relay{registry: registry, store: store, logger: logger}
}

// Handle processes one inbound frame. A malformed frame costs the sender a
// single error frame and nothing more; the connection stays open.
func (r *Relay) Handle(ctx context.Context, c *Client, raw []byte) {
	ev, err := ParseEvent(raw)
	if err != nil {
		r.sendError(c, "malformed frame")
		return
	}

	switch ev.Type {
	case EventJoinRoom:
		if ev.RoomID == "" {
			r.sendError(c, "roomId is required")
			return
		}
		r.registry.Join(c, string(ev.RoomID))

	case EventLeaveRoom:
		if ev.RoomID == "" {
			r.sendError(c, "roomId is required")
			return
		}
		r.registry.Leave(c, string(ev.RoomID))

	case EventChat:
		r.handleChat(ctx, c, ev)

	default:
		r.logger.Warn("unrecognized event kind", "type", ev.Type, "clientID", c.id)
	}
}

func (r *Relay) handleChat(ctx context.Context, c *Client, ev *Event) {
	roomID := string(ev.RoomID)
	if roomID == "" || ev.Message == "" {
		r.sendError(c, "chat requires roomId and a non-empty message")
		return
	}

	// Only members may post. Silent drop per policy.
	if !r.registry.Member(c, roomID) {
		r.logger.Debug("chat to non-joined room dropped", "clientID", c.id, "roomID", roomID)
		return
	}

	// The room can have been deleted since joining, or the id can be bogus.
	exists, err := r.store.RoomExists(ctx, roomID)
	if err != nil {
		r.logger.Error("room lookup failed", "roomID", roomID, "error", err)
		return
	}
	if !exists {
		r.logger.Debug("chat to nonexistent room dropped", "clientID", c.id, "roomID", roomID)
		return
	}

	// Persist before broadcast: peers never see a message that was not
	// durably recorded.
	if err := r.store.AppendChat(ctx, roomID, ev.Message, c.userID); err != nil {
		r.logger.Error("failed to persist chat", "roomID", roomID, "senderID", c.userID, "error", err)
		r.sendError(c, "message could not be delivered")
		return
	}

	payload, err := json.Marshal(NewChatFrame(roomID, ev.Message, c.userID))
	if err != nil {
		r.logger.Error("failed to encode chat frame", "error", err)
		return
	}

	// Fire-and-forget per target; a slow peer loses the frame but never
	// blocks delivery to the rest. The sender is a member like any other.
	for _, member := range r.registry.MembersOf(roomID) {
		if !member.Send(payload) {
			r.logger.Debug("frame dropped for slow peer", "clientID", member.id, "roomID", roomID)
		}
	}
}

func (r *Relay) sendError(c *Client, message string) {
	payload, err := json.Marshal(NewErrorFrame(message))
	if err != nil {
		return
	}
	c.Send(payload)
}
