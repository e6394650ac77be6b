package websockets

import "github.com/gorilla/websocket"

// Client is one authenticated websocket connection.
type Client struct {
	UserID string
	Conn   *websocket.Conn
}

// DirectMessage targets every connection a single user holds.
type DirectMessage struct {
	UserID  string
	Payload []byte
}
