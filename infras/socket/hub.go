package socket

//go:generate go run go.uber.org/mock/mockgen -source=./hub.go -destination=./mocks/hub_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sitepro/infras/otel"
	"sitepro/shared/constant"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const writeWait = 10 * time.Second

// Conn is the part of *websocket.Conn the hub writes through.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Hub fans messages out to every open connection of a user.
type Hub interface {
	Register(userID string, conn Conn) (unregister func())
	Send(ctx context.Context, userID string, message []byte) error
	Connections(userID string) int
}

type client struct {
	conn Conn
	mu   sync.Mutex
}

func (c *client) write(message []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	return c.conn.WriteMessage(websocket.TextMessage, message)
}

type hubImpl struct {
	otel    otel.Otel
	mu      sync.RWMutex
	clients map[string]map[*client]struct{}
}

func NewHub(otl otel.Otel) Hub {
	return &hubImpl{
		otel:    otl,
		clients: make(map[string]map[*client]struct{}),
	}
}

func (h *hubImpl) Register(userID string, conn Conn) func() {
	c := &client{conn: conn}

	h.mu.Lock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*client]struct{})
	}

	h.clients[userID][c] = struct{}{}
	h.mu.Unlock()

	log.Debug().Str("user_id", userID).Msg("websocket client registered")

	var once sync.Once

	return func() {
		once.Do(func() {
			h.remove(userID, c)
			log.Debug().Str("user_id", userID).Msg("websocket client unregistered")
		})
	}
}

func (h *hubImpl) remove(userID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.clients[userID]
	if !ok {
		return
	}

	delete(conns, c)

	if len(conns) == 0 {
		delete(h.clients, userID)
	}
}

// Send writes message to all of userID's connections. A user with no open connection is not an error.
// Connections that fail to write are dropped.
func (h *hubImpl) Send(ctx context.Context, userID string, message []byte) (err error) {
	_, scope := h.otel.NewScope(ctx, constant.OtelSocketScopeName, constant.OtelSocketScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	scope.SetAttribute("socket.connections", len(targets))

	var errs []error

	for _, c := range targets {
		if werr := c.write(message); werr != nil {
			log.Warn().Err(werr).Str("user_id", userID).Msg("dropping websocket client after failed write")

			h.remove(userID, c)
			_ = c.conn.Close()

			errs = append(errs, werr)
		}
	}

	return errors.Join(errs...)
}

func (h *hubImpl) Connections(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[userID])
}
