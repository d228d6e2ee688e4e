package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Big-pappi/sk-project/logger"
	"github.com/Big-pappi/sk-project/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

// GET /ws/orders
// Live feed of newly created orders for seller dashboards and rider apps.
func OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

// broadcastNewOrder pushes an order to every connected client. Dead
// connections are dropped; delivery is best effort.
func broadcastNewOrder(order models.Order) {
	data, err := json.Marshal(gin.H{"event": "order_created", "order": order})
	if err != nil {
		logger.Log.Warn("failed to marshal order broadcast", zap.Error(err))
		return
	}

	wsMu.Lock()
	defer wsMu.Unlock()
	for conn := range wsClients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(wsClients, conn)
		}
	}
}
