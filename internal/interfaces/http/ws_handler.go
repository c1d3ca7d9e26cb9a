package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/interfaces/ws"
)

// WSUpgrade exige que la petición sea un upgrade de WebSocket.
func WSUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// WSHandler registra la conexión en el hub de notificaciones y la mantiene
// abierta hasta que el cliente cierre. Los clientes solo reciben; los
// mensajes entrantes se descartan.
func WSHandler(hub *ws.Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		hub.Register(conn)
		defer hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
