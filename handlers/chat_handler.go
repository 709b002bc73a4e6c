package handlers

import (
	"errors"
	"fmt"
	"log"

	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	config "github.com/tomasgiraldo/serconn/configs"
	"github.com/tomasgiraldo/serconn/database"
	"github.com/tomasgiraldo/serconn/models"
	"github.com/tomasgiraldo/serconn/services"
	"github.com/tomasgiraldo/serconn/websocket"
)

// StartChat opens (or reuses) the chat between the calling seeker and the
// provider in the path.
func StartChat(c *fiber.Ctx) error {
	seekerID := currentUserID(c)

	providerID, err := uuid.Parse(c.Params("providerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid provider id"})
	}

	chat, err := services.StartOrGetChat(database.DB, seekerID, providerID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(chat)
}

func GetChatMessages(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var chat models.Chat
	if err := database.DB.First(&chat, "id = ?", c.Params("chatId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Chat not found"})
	}
	if !chat.Participant(userID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No tienes permiso para realizar esta acción."})
	}

	var messages []models.Message
	if err := database.DB.
		Where("chat_id = ?", chat.ID).
		Order("created_at asc").
		Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch messages"})
	}
	return c.JSON(messages)
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

func SendMessage(c *fiber.Ctx) error {
	userID := currentUserID(c)

	chatID, err := uuid.Parse(c.Params("chatId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid chat id"})
	}

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	message, err := services.PostMessage(database.DB, chatID, userID, req.Content)
	if err != nil {
		return mapServiceError(c, err)
	}
	websocket.Broadcast <- message
	return c.Status(fiber.StatusCreated).JSON(message)
}

// ClearChat hard-deletes every message in the chat.
func ClearChat(c *fiber.Ctx) error {
	userID := currentUserID(c)

	chatID, err := uuid.Parse(c.Params("chatId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid chat id"})
	}

	if err := services.ClearMessages(database.DB, chatID, userID); err != nil {
		return mapServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetMyChats lists the caller's conversations, newest first.
func GetMyChats(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var chats []models.Chat
	err := database.DB.
		Preload("Seeker").
		Preload("Provider").
		Where("seeker_id = ? OR provider_id = ?", userID, userID).
		Order("created_at desc").
		Find(&chats).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch chats"})
	}
	return c.JSON(chats)
}

// ServeWs upgrades the connection for live chat: the first frame must be an
// auth message, then every frame is a chat message persisted and relayed to
// the counterparty.
func ServeWs(c *websocketcontrib.Conn) {
	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}

	userID, err := uuid.Parse(claims["user_id"].(string))
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid user ID"})
		c.Close()
		return
	}

	client := &websocket.Client{UserID: userID, Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		c.Close()
	}()

	for {
		var payload websocket.MessagePayload
		if err := c.ReadJSON(&payload); err != nil {
			if !websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseNormalClosure) {
				log.Printf("WebSocket read error for client %s: %v", userID, err)
			}
			break
		}

		chatID, err := uuid.Parse(payload.ChatID)
		if err != nil {
			_ = c.WriteJSON(fiber.Map{"error": "Invalid chat ID"})
			continue
		}

		message, err := services.PostMessage(database.DB, chatID, userID, payload.Content)
		if err != nil {
			_ = c.WriteJSON(fiber.Map{"error": err.Error()})
			continue
		}
		websocket.Broadcast <- message
	}
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
