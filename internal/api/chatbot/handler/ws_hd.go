package chatbotHandler

import (
	"ProjectGlimmer/pkg/log"
	"context"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/oklog/ulid/v2"
)

// ChatSocket runs the chat pipeline over a websocket. Each text frame is one
// user message; the reply frame carries the same payload as the HTTP
// endpoint.
func (h *ChatbotHandler) ChatSocket(conn *websocket.Conn) {
	sessionID := conn.Query("session")
	if sessionID == "" {
		sessionID = ulid.Make().String()
	}

	h.log.WithFields(log.Fields{
		"session_id": sessionID,
	}).Info("Chat websocket connected")

	defer func() {
		h.log.WithFields(log.Fields{
			"session_id": sessionID,
		}).Info("Chat websocket disconnected")
		conn.Close()
	}()

	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.WithFields(log.Fields{
					"session_id": sessionID,
					"error":      err.Error(),
				}).Warn("Chat websocket read failed")
			}
			return
		}

		if messageType != websocket.TextMessage {
			continue
		}

		c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		result, err := h.chatbotService.Chat(c, sessionID, nil, string(payload))
		cancel()

		if err != nil {
			if writeErr := conn.WriteJSON(map[string]string{"error": err.Error()}); writeErr != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(result); err != nil {
			h.log.WithFields(log.Fields{
				"session_id": sessionID,
				"error":      err.Error(),
			}).Warn("Chat websocket write failed")
			return
		}
	}
}
