package handlers

import (
	"chat-server/internal/websocket"

	"github.com/gin-gonic/gin"
)

type WSHandler struct {
	gatekeeper *websocket.Gatekeeper
}

func NewWSHandler(gatekeeper *websocket.Gatekeeper) *WSHandler {
	return &WSHandler{gatekeeper: gatekeeper}
}

// HandleWebSocket godoc
// @Summary WebSocket connection
// @Description Upgrade to a WebSocket session for real-time messaging. The
// bearer credential is carried in the token query parameter and checked
// once at connection time.
// @Tags websocket
// @Param token query string true "Bearer credential"
// @Success 101 "Switching Protocols"
// @Router /ws [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	h.gatekeeper.Admit(c.Writer, c.Request)
}
