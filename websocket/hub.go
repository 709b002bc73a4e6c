package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"

	"github.com/tomasgiraldo/serconn/database"
	"github.com/tomasgiraldo/serconn/models"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// MessagePayload is what chat clients send over the socket.
type MessagePayload struct {
	ChatID  string `json:"chat_id"`
	Content string `json:"content"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *models.Message)

// RunHub routes saved chat messages to the connected counterparty.
func RunHub() {
	for {
		select {
		case client := <-Register:
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case message := <-Broadcast:
			var chat models.Chat
			if err := database.DB.First(&chat, "id = ?", message.ChatID).Error; err != nil {
				log.Printf("Error fetching chat %s for broadcast: %v", message.ChatID, err)
				continue
			}

			recipient := chat.Counterparty(message.SenderID)
			clientsMu.RLock()
			conn, ok := clients[recipient]
			clientsMu.RUnlock()
			if !ok {
				continue
			}

			if err := conn.WriteJSON(message); err != nil {
				log.Printf("Error sending message to client %s: %v", recipient, err)
				conn.Close()
				clientsMu.Lock()
				delete(clients, recipient)
				clientsMu.Unlock()
			}
		}
	}
}
