package ws

import (
	"errors"
	"testing"

	"pointcast/internal/core"
)

func TestTrySendBackpressure(t *testing.T) {
	c := newConn(nil, 1)
	if err := c.TrySend(core.GameView{}); err != nil {
		t.Fatalf("first send: %v", err)
	}
	if err := c.TrySend(core.GameView{}); !errors.Is(err, core.ErrBackpressure) {
		t.Fatalf("full buffer must report backpressure, got %v", err)
	}
}
