package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"samwad/backend/internal/hub"
	"samwad/backend/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The portal client may be served from a different origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades GET /ws. A bearer token is optional, but an
// invalid one is rejected; identity binding itself happens over the
// socket via register_identity.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	if auth := c.GetHeader("Authorization"); auth != "" {
		tokenString, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}
		if _, err := h.validateToken(tokenString); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &hub.WebSocketClient{
		ID:   uuid.New().String(),
		Conn: conn,
		Hub:  h.Hub,
		Send: make(chan models.Event, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
