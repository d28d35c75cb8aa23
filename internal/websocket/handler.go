package websocket

import (
	"net/http"

	ws "github.com/coder/websocket"
)

// Handler upgrades a dashboard request to a WebSocket and runs it as a hub
// client until the connection drops. Auth is enforced by the session guard
// in front of this handler, not here.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := ws.Accept(w, r, nil)
		if err != nil {
			hub.logger.Warn("websocket accept", "error", err)
			return
		}

		client := NewClient(hub, conn)
		client.Run(r.Context())
	}
}
