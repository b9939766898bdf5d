package ws

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"pointcast/internal/core"
	"pointcast/internal/domain"
)

func (ctl *Controller) writePump(ctx context.Context, cancel context.CancelFunc, c *Conn) {
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case view, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.ws.SetWriteDeadline(time.Now().Add(ctl.cfg.WriteTimeout)); err != nil {
				log.Debug().Err(err).Str("module", "adapters.ws").Msg("writePump set deadline")
				return
			}
			if err := c.ws.WriteJSON(view); err != nil {
				log.Debug().Err(err).Str("module", "adapters.ws").Msg("writePump write error")
				return
			}
		}
	}
}

func (ctl *Controller) readPump(ctx context.Context, cancel context.CancelFunc, roomID domain.RoomID, uid domain.UserID, room *core.Room, c *Conn) {
	defer func() {
		cancel()
		c.Close()
		// The guard on Disconnect keeps a superseded connection from
		// evicting its replacement.
		if room.Disconnect(uid, c) == 0 {
			ctl.rooms.Remove(roomID)
		}
		log.Info().Str("module", "adapters.ws").Stringer("room", roomID).Stringer("user", uid).Msg("subscriber closed")
	}()

	for {
		select {
		case <-ctx.Done():
			return
		default:
			_, data, err := c.ws.ReadMessage()
			if err != nil {
				log.Debug().Err(err).Str("module", "adapters.ws").Stringer("user", uid).Msg("readPump read error")
				return
			}
			ctl.handleCommand(uid, room, data)
		}
	}
}
