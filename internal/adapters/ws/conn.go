// Package ws bridges one websocket per subscriber to the room API.
package ws

import (
	"sync"

	"github.com/gorilla/websocket"

	"pointcast/internal/core"
)

// Conn adapts a websocket to the core subscriber contract. The room
// only ever touches the send side of the bounded queue; the write pump
// owns the socket.
type Conn struct {
	ws   *websocket.Conn
	send chan core.GameView

	mu     sync.RWMutex
	closed bool
}

func newConn(ws *websocket.Conn, buffer int) *Conn {
	return &Conn{
		ws:   ws,
		send: make(chan core.GameView, buffer),
	}
}

func (c *Conn) TrySend(v core.GameView) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return core.ErrSubscriberClosed
	}
	select {
	case c.send <- v:
	default:
		return core.ErrBackpressure
	}
	return nil
}

func (c *Conn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.ws.Close()
	c.mu.Unlock()
}
