package libraries

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"studio-site-backend/internal/copilot"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// WebSocketMessage represents the standard structure for all websocket messages
type WebSocketMessageType string

const (
	WebSocketMessageTypePing  WebSocketMessageType = "ping"
	WebSocketMessageTypePong  WebSocketMessageType = "pong"
	WebSocketMessageTypeError WebSocketMessageType = "error"
	WebSocketMessageTypeSend  WebSocketMessageType = "send"
	WebSocketMessageTypeReset WebSocketMessageType = "reset"
	WebSocketMessageTypeTurns WebSocketMessageType = "turns"
)

type WebSocketMessage struct {
	Type WebSocketMessageType `json:"type"`
	Data interface{}          `json:"data,omitempty"`
}

type SendPayload struct {
	Text string `json:"text"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// TurnsPayload is the conversation snapshot pushed after every change.
type TurnsPayload struct {
	SessionID string             `json:"session_id"`
	Busy      bool               `json:"busy"`
	Turns     []copilot.ChatTurn `json:"turns"`
}

// chatConn is the slice of *websocket.Conn the session loop needs.
type chatConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// chatClient serializes writes to one socket. Replies resolve on their own
// goroutine, so writes need the lock.
type chatClient struct {
	id     string
	conn   chatConn
	mu     sync.Mutex
	closed bool
}

func (c *chatClient) push(msg WebSocketMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Println("failed to marshal websocket message:", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		log.Println("write error:", err)
	}
}

func (c *chatClient) pushError(message string) {
	c.push(WebSocketMessage{
		Type: WebSocketMessageTypeError,
		Data: &ErrorPayload{Message: message},
	})
}

func (c *chatClient) pushTurns(session *copilot.ChatSession) {
	c.push(WebSocketMessage{
		Type: WebSocketMessageTypeTurns,
		Data: &TurnsPayload{
			SessionID: c.id,
			Busy:      session.Busy(),
			Turns:     session.Turns(),
		},
	})
}

func (c *chatClient) close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.conn.Close()
}

// busySnapshotPolicy pushes a snapshot when a reply starts computing, so the
// client sees the busy indicator and the pending user turn before the reply
// lands. By the time Reply runs, the session has taken the busy flag.
type busySnapshotPolicy struct {
	inner  copilot.ReplyPolicy
	notify func()
}

func (p *busySnapshotPolicy) Reply(ctx context.Context, turns []copilot.ChatTurn) string {
	p.notify()
	return p.inner.Reply(ctx, turns)
}

// ChatSocketHandler runs the live chat mode: one ChatSession per
// connection, fed by the given reply policy.
func ChatSocketHandler(policy copilot.ReplyPolicy) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		runChatSession(conn, policy)
	})
}

// runChatSession owns one connection for its lifetime. The session dies
// with the socket; an in-flight reply at disconnect is discarded, never
// delivered.
func runChatSession(conn chatConn, policy copilot.ReplyPolicy) {
	client := &chatClient{
		id:   uuid.NewString(),
		conn: conn,
	}

	wrapped := &busySnapshotPolicy{inner: policy}
	session := copilot.NewChatSession(wrapped)
	wrapped.notify = func() { client.pushTurns(session) }

	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		session.Reset()
		client.close()
	}()

	// Initial snapshot carries the greeting turn.
	client.pushTurns(session)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var in struct {
			Type WebSocketMessageType `json:"type"`
			Data json.RawMessage      `json:"data,omitempty"`
		}
		if err := json.Unmarshal(msg, &in); err != nil {
			log.Println("failed to parse JSON:", err)
			client.pushError("Invalid JSON format")
			continue
		}

		switch in.Type {
		case WebSocketMessageTypePing:
			client.push(WebSocketMessage{Type: WebSocketMessageTypePong})

		case WebSocketMessageTypeReset:
			session.Reset()
			client.pushTurns(session)

		case WebSocketMessageTypeSend:
			var payload SendPayload
			if len(in.Data) > 0 {
				if err := json.Unmarshal(in.Data, &payload); err != nil {
					client.pushError("Invalid send payload")
					continue
				}
			}

			go func(text string) {
				if err := session.Send(ctx, text); err != nil {
					client.pushError("A reply is already in flight")
					return
				}
				client.pushTurns(session)
			}(payload.Text)

		default:
			client.pushError("Type is invalid or not provided")
		}
	}
}
