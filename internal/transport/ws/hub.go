package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Dashboard message types
const (
	MsgAnalysisCompleted MessageType = "analysis_completed"
	MsgWeightsDerived    MessageType = "weights_derived"
	MsgMatchComputed     MessageType = "match_computed"
	MsgError             MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections for the dashboard feed
type Hub struct {
	// clientID -> connections (a client may open several dashboards)
	conns map[string]map[*Connection]bool

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	ClientID string
	Send     chan []byte
	Hub      *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	ToClient string // Empty means all connected clients
	Message  *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.ClientID] == nil {
				h.conns[conn.ClientID] = make(map[*Connection]bool)
			}
			h.conns[conn.ClientID][conn] = true
			log.Printf("Client %s connected to dashboard feed", conn.ClientID)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if clientConns, ok := h.conns[conn.ClientID]; ok {
				if clientConns[conn] {
					delete(clientConns, conn)
					close(conn.Send)
					if len(clientConns) == 0 {
						delete(h.conns, conn.ClientID)
					}
					log.Printf("Client %s disconnected from dashboard feed", conn.ClientID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)

			if msg.ToClient != "" {
				// Send to one client's connections
				for conn := range h.conns[msg.ToClient] {
					select {
					case conn.Send <- data:
					default:
						// Drop message if buffer full
					}
				}
			} else {
				// Broadcast to every connected client
				for _, clientConns := range h.conns {
					for conn := range clientConns {
						select {
						case conn.Send <- data:
						default:
						}
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToClient sends a message to a specific client (implements service.Broadcaster)
func (h *Hub) BroadcastToClient(clientID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		ToClient: clientID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// BroadcastToAll sends a message to every connected client (implements service.Broadcaster)
func (h *Hub) BroadcastToAll(msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		ToClient: "", // Empty means all
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
