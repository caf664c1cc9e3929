package api

import (
	"net/http"
	"sync"
	"time"

	"rewards_miniapp/internal/model"
	"rewards_miniapp/pkg/auth"
	"rewards_miniapp/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	MessageAccountUpdate = "account_update"
	MessagePing          = "ping"
	MessagePong          = "pong"

	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type wsClient struct {
	telegramID int64
	conn       *websocket.Conn
	send       chan []byte
	closeOnce  sync.Once
}

func (cl *wsClient) close() {
	cl.closeOnce.Do(func() {
		close(cl.send)
	})
}

// Hub fans account updates out to every open connection of that account.
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*wsClient]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[int64]map[*wsClient]struct{}),
	}
}

func NewWSRoutes(handler *gin.RouterGroup, hub *Hub, a *auth.TelegramAuth) {
	handler.GET("/ws", a.TelegramAuthMiddleware(), hub.handleWebSocket)
}

// NotifyAccount pushes the account state to its live connections. Slow
// connections drop the update instead of blocking the caller.
func (h *Hub) NotifyAccount(acc *model.Account) {
	if acc == nil {
		return
	}

	data, err := json.Marshal(Message{Type: MessageAccountUpdate, Payload: toAccountResponse(acc)})
	if err != nil {
		logger.Logger().Error("failed to marshal account update", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for cl := range h.clients[acc.TelegramID] {
		select {
		case cl.send <- data:
		default:
			logger.Logger().Warn("dropping account update for slow client", zap.Int64("telegram_id", acc.TelegramID))
		}
	}
}

// Connections reports how many sockets are open for an account.
func (h *Hub) Connections(telegramID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[telegramID])
}

func (h *Hub) register(cl *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[cl.telegramID] == nil {
		h.clients[cl.telegramID] = make(map[*wsClient]struct{})
	}
	h.clients[cl.telegramID][cl] = struct{}{}
}

func (h *Hub) unregister(cl *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.clients[cl.telegramID]; ok {
		delete(set, cl)
		if len(set) == 0 {
			delete(h.clients, cl.telegramID)
		}
	}
	cl.close()
}

func (h *Hub) handleWebSocket(c *gin.Context) {
	log := logger.Logger()

	id, ok := callerID(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Info("websocket upgrade failed", zap.Error(err))
		return
	}

	cl := &wsClient{
		telegramID: id,
		conn:       conn,
		send:       make(chan []byte, sendBufferSize),
	}
	h.register(cl)
	log.Debug("websocket connected",
		zap.Int64("telegram_id", id),
		zap.Int("connections", h.Connections(id)))

	go h.writeLoop(cl)
	go h.readLoop(cl)
}

func (h *Hub) readLoop(cl *wsClient) {
	log := logger.Logger()

	defer func() {
		h.unregister(cl)
		cl.conn.Close()
		log.Debug("websocket disconnected",
			zap.Int64("telegram_id", cl.telegramID),
			zap.Int("connections", h.Connections(cl.telegramID)))
	}()

	cl.conn.SetReadLimit(4096)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Info("websocket unexpected close", zap.Error(err))
			}
			return
		}

		var message Message
		if err := json.Unmarshal(msg, &message); err != nil {
			log.Debug("failed to unmarshal message", zap.Error(err))
			continue
		}

		if message.Type == MessagePing {
			data, _ := json.Marshal(Message{Type: MessagePong})
			h.mu.RLock()
			select {
			case cl.send <- data:
			default:
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) writeLoop(cl *wsClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()

	for {
		select {
		case data, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logger.Logger().Info("failed to write websocket message", zap.Error(err))
				return
			}

		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
