package ws_battle

import (
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	usecase_battle "github.com/biofact005-rgb/neetquiz/internal/usecase/battle"
)

// Client is one connected player. It is the opaque connection handle
// the coordinator passes around.
type Client struct {
	conn   *websocket.Conn
	send   chan usecase_battle.Event
	userID string
	name   string
}

// Hub tracks which clients belong to which battle room and delivers
// the coordinator's events to them. It implements the coordinator's
// Transport.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
	rooms   map[string]map[*Client]bool

	logger *slog.Logger
}

type HubOption func(*Hub)

func WithHubLogger(logger *slog.Logger) HubOption {
	return func(h *Hub) {
		h.logger = logger
	}
}

func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		clients: make(map[*Client]bool),
		rooms:   make(map[string]map[*Client]bool),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info("client registered",
		"user_id", client.userID)
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	for code, roomClients := range h.rooms {
		if roomClients[client] {
			delete(roomClients, client)
			if len(roomClients) == 0 {
				delete(h.rooms, code)
			}
		}
	}

	h.logger.Info("client unregistered",
		"user_id", client.userID)
}

// Join associates a connection with a room so later broadcasts for
// that code reach it.
func (h *Hub) Join(conn usecase_battle.Conn, code string) {
	client, ok := conn.(*Client)
	if !ok {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.clients[client] {
		return
	}
	if _, ok := h.rooms[code]; !ok {
		h.rooms[code] = make(map[*Client]bool)
	}
	h.rooms[code][client] = true
}

// Reply delivers an event to a single connection. Slow consumers are
// dropped rather than allowed to stall the caller.
func (h *Hub) Reply(conn usecase_battle.Conn, event usecase_battle.Event) {
	client, ok := conn.(*Client)
	if !ok {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if !h.clients[client] {
		return
	}
	select {
	case client.send <- event:
	default:
		h.logger.Warn("dropping event for slow client",
			"user_id", client.userID,
			"event", string(event.Type))
	}
}

// Broadcast delivers an event to every connection of a room.
func (h *Hub) Broadcast(code string, event usecase_battle.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[code] {
		select {
		case client.send <- event:
		default:
			h.logger.Warn("dropping broadcast for slow client",
				"user_id", client.userID,
				"room", code,
				"event", string(event.Type))
		}
	}
}
