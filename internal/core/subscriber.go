package core

import "errors"

var (
	ErrBackpressure     = errors.New("backpressure")
	ErrSubscriberClosed = errors.New("subscriber closed")
)

// Subscriber is the outbound path from a room to one connected client.
// Owned by the transport adapter; the room only ever pushes through it
// and closes it when the player is dropped.
type Subscriber interface {
	// TrySend queues one snapshot without blocking. It fails when the
	// peer cannot accept more data (buffer full or closed).
	TrySend(GameView) error
	// Close releases transport resources. Safe to call more than once.
	Close()
}
