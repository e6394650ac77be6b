package websockets

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketManager delivers freshly persisted notifications to connected
// recipients. Delivery here is best effort; the inbox row is the source
// of truth and a disconnected user simply reads it later.
type WebSocketManager struct {
	mu         sync.Mutex
	clients    map[*websocket.Conn]*Client
	register   chan *Client
	unregister chan *websocket.Conn
	send       chan DirectMessage
}

// NewWebSocketManager initializes a WebSocketManager
func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[*websocket.Conn]*Client),
		register:   make(chan *Client),
		unregister: make(chan *websocket.Conn),
		send:       make(chan DirectMessage, 64),
	}
}

// Run starts the WebSocket manager
func (manager *WebSocketManager) Run() {
	for {
		select {
		case client := <-manager.register:
			manager.mu.Lock()
			manager.clients[client.Conn] = client
			manager.mu.Unlock()

		case conn := <-manager.unregister:
			manager.mu.Lock()
			if client, exists := manager.clients[conn]; exists {
				delete(manager.clients, conn)
				conn.Close()
				log.Printf("Client %s disconnected", client.UserID)
			}
			manager.mu.Unlock()

		case message := <-manager.send:
			manager.mu.Lock()
			for _, client := range manager.clients {
				if client.UserID != message.UserID {
					continue
				}
				if err := client.Conn.WriteMessage(websocket.TextMessage, message.Payload); err != nil {
					client.Conn.Close()
					delete(manager.clients, client.Conn)
				}
			}
			manager.mu.Unlock()
		}
	}
}

// PushToUser queues payload for every open connection the user has.
// Never blocks the caller; if the hub is saturated the push is dropped
// and the notification stays readable from the inbox.
func (manager *WebSocketManager) PushToUser(userID string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("unable to marshal websocket payload for %s: %v", userID, err)
		return
	}
	select {
	case manager.send <- DirectMessage{UserID: userID, Payload: data}:
	default:
		log.Printf("websocket send buffer full, dropping push for %s", userID)
	}
}

// HandleConnection upgrades the request and keeps the connection
// registered until the peer goes away.
func (manager *WebSocketManager) HandleConnection(w http.ResponseWriter, r *http.Request, userID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	manager.register <- &Client{UserID: userID, Conn: conn}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			manager.unregister <- conn
			break
		}
	}
}
