package websocket

import (
	"log/slog"
	"net/http"

	"chat-server/internal/auth"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Browser clients connect from arbitrary origins; the credential
		// check below is the actual admission control.
		return true
	},
}

// Gatekeeper admits or rejects incoming socket connections. Every rejection
// path closes the socket before the connection ever reaches the registry.
type Gatekeeper struct {
	hub      *Hub
	verifier auth.TokenVerifier
	logger   *slog.Logger
}

func NewGatekeeper(hub *Hub, verifier auth.TokenVerifier, logger *slog.Logger) *Gatekeeper {
	return &Gatekeeper{hub: hub, verifier: verifier, logger: logger}
}

// Admit upgrades the request, checks the bearer credential carried in the
// token query parameter, and registers the connection on success.
func (g *Gatekeeper) Admit(w http.ResponseWriter, req *http.Request) {
	conn, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		g.logger.Warn("websocket upgrade failed", "remote", req.RemoteAddr, "error", err)
		return
	}

	token := req.URL.Query().Get("token")
	if token == "" {
		g.logger.Warn("connection rejected: missing token", "remote", req.RemoteAddr)
		conn.Close()
		return
	}

	userID, err := g.verifier.Verify(token)
	if err != nil {
		g.logger.Warn("connection rejected: invalid token", "remote", req.RemoteAddr, "error", err)
		conn.Close()
		return
	}

	g.hub.Admit(NewClient(conn, userID))
}
