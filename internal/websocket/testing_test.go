package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

// fakeConn is an in-memory Conn for tests that never touch a real socket.
type fakeConn struct {
	mu         sync.Mutex
	closed     bool
	writeTypes []int
}

func (f *fakeConn) ReadMessage() (int, []byte, error) { select {} }

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeTypes = append(f.writeTypes, messageType)
	return nil
}

func (f *fakeConn) wroteMessageType(messageType int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, mt := range f.writeTypes {
		if mt == messageType {
			return true
		}
	}
	return false
}

func (f *fakeConn) SetReadLimit(limit int64) {}

func (f *fakeConn) SetReadDeadline(t time.Time) error { return nil }

func (f *fakeConn) SetWriteDeadline(t time.Time) error { return nil }

func (f *fakeConn) SetPongHandler(h func(string) error) {}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

type appendedChat struct {
	roomID   string
	message  string
	senderID string
}

// fakeStore is an in-memory PersistenceService.
type fakeStore struct {
	mu        sync.Mutex
	rooms     map[string]bool
	appendErr error
	appended  []appendedChat
}

func newFakeStore(rooms ...string) *fakeStore {
	s := &fakeStore{rooms: make(map[string]bool)}
	for _, r := range rooms {
		s.rooms[r] = true
	}
	return s
}

func (s *fakeStore) RoomExists(ctx context.Context, roomID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rooms[roomID], nil
}

func (s *fakeStore) AppendChat(ctx context.Context, roomID, message, senderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appendErr != nil {
		return s.appendErr
	}
	s.appended = append(s.appended, appendedChat{roomID: roomID, message: message, senderID: senderID})
	return nil
}

func (s *fakeStore) appendedChats() []appendedChat {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]appendedChat, len(s.appended))
	copy(out, s.appended)
	return out
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(userID string) *Client {
	return NewClient(&fakeConn{}, userID)
}

// queuedFrames drains every frame currently buffered for the client.
func queuedFrames(t *testing.T, c *Client) [][]byte {
	t.Helper()
	var frames [][]byte
	for {
		select {
		case payload := <-c.send:
			frames = append(frames, payload)
		default:
			return frames
		}
	}
}

// decodeFrames unmarshals queued frames into generic maps.
func decodeFrames(t *testing.T, c *Client) []map[string]interface{} {
	t.Helper()
	var decoded []map[string]interface{}
	for _, raw := range queuedFrames(t, c) {
		var m map[string]interface{}
		if err := json.Unmarshal(raw, &m); err != nil {
			t.Fatalf("invalid frame %q: %v", raw, err)
		}
		decoded = append(decoded, m)
	}
	return decoded
}
