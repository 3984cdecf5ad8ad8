package feed

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The storefront and admin panel are served from other origins.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades the request and keeps the client registered until it
// disconnects. Incoming messages are ignored.
func WSHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		if err := hub.Join(ws); err != nil {
			_ = ws.Close()
			return
		}
		log.Debug("[feed] client connected")

		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		hub.Remove(ws)
		log.Debug("[feed] client disconnected")
	}
}
