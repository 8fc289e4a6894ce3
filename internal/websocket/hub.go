package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"mis/internal/access"
	"mis/internal/session"
	"mis/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Client represents a single connected WebSocket client
type Client struct {
	ID        string
	Principal string
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
}

// Hub maintains the set of active clients and broadcasts change events to them.
// Only the Run goroutine touches the client set.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	upgrader   websocket.Upgrader
	log        zerolog.Logger
}

// NewHub initializes a new WS Hub instance. An empty origin list accepts any origin.
func NewHub(log zerolog.Logger, allowedOrigins []string) *Hub {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		log:        log.With().Str("component", "websocket").Logger(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(origins) == 0 || origin == "" || origins[origin]
			},
		},
	}
}

// Run dispatches events until ctx is cancelled, then disconnects every client.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.log.Info().Msg("hub stopped")
			return nil
		case client := <-h.register:
			h.clients[client] = true
			h.log.Debug().Str("client", client.ID).Str("principal", client.Principal).Msg("client connected")
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.log.Debug().Str("client", client.ID).Msg("client disconnected")
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Broadcast queues v as a JSON text frame for every client. It never blocks:
// when the queue is full the event is dropped.
func (h *Hub) Broadcast(v interface{}) {
	msg, err := json.Marshal(v)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to encode event")
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.log.Warn().Msg("broadcast queue full, event dropped")
	}
}

// writePump handles writing messages from the Hub to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			_, _ = w.Write(message)

			// Fast track writing queued messages
			n := len(c.send)
			for i := 0; i < n; i++ {
				_, _ = w.Write([]byte{'\n'})
				_, _ = w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only drains control frames; clients never send events
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Warn().Err(err).Str("client", c.ID).Msg("unexpected close")
			}
			return
		}
	}
}

// Handler authenticates the session cookie through the gate, then upgrades.
func (h *Hub) Handler(gate *access.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := gate.Authorize(c.Request.Context(), session.TokenFromRequest(c.Request), access.Authenticated())
		if err != nil {
			h.log.Debug().Err(err).Msg("connection rejected")
			response.Abort(c, err)
			return
		}

		conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.log.Warn().Err(err).Msg("upgrade failed")
			return
		}
		client := &Client{
			ID:        uuid.NewString(),
			Principal: user.Username,
			hub:       h,
			conn:      conn,
			send:      make(chan []byte, 256),
		}
		select {
		case h.register <- client:
		case <-h.done:
			_ = conn.Close()
			return
		}

		go client.writePump()
		go client.readPump()
	}
}
