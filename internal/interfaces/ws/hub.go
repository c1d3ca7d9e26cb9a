package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/pkg/logger"
)

// Hub difunde los eventos de cambio del inventario a los clientes WebSocket
// conectados (el canal de "toasts" del tablero). Implementa inventory.Notifier.
type Hub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
	mu         sync.Mutex
	log        *logger.Logger
}

// NewHub construye el hub; llamar Run en una goroutine propia.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 16),
		log:        log,
	}
}

// Publish serializa el evento y lo encola para difusión. No bloquea la
// mutación que lo origina: si el canal está lleno el evento se descarta con
// un warn (los snapshots persistidos siguen siendo la fuente de verdad).
func (h *Hub) Publish(event dto.ChangeEventDTO) {
	raw, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Msg("serializar evento de cambio")
		return
	}
	select {
	case h.broadcast <- raw:
	default:
		h.log.Warn().Str("kind", event.Kind).Msg("difusión saturada, evento descartado")
	}
}

// Register encola la suscripción de una conexión nueva.
func (h *Hub) Register(conn *websocket.Conn) {
	h.register <- conn
}

// Unregister encola la baja de una conexión.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.unregister <- conn
}

// Run atiende registros, bajas y difusión. Bloquea; ejecutar en goroutine.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()
			h.log.Debug().Msg("cliente WebSocket conectado")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}
