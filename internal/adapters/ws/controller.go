package ws

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"pointcast/internal/config"
	"pointcast/internal/core"
	"pointcast/internal/domain"
)

type Controller struct {
	cfg   *config.Config
	rooms *core.Registry
}

func NewController(cfg *config.Config, rooms *core.Registry) *Controller {
	return &Controller{cfg: cfg, rooms: rooms}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleSubscribe upgrades the connection, joins the room and streams
// snapshots until either side drops. The first snapshot arrives from
// the join broadcast itself. It expects the router to have resolved the
// caller's identity into the gin context.
func (ctl *Controller) HandleSubscribe(ctx context.Context, c *gin.Context) {
	roomID, err := domain.ParseRoomID(c.Param("room_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad room id"})
		return
	}
	uid := c.MustGet("user_id").(domain.UserID)
	log.Info().Str("module", "adapters.ws").Stringer("room", roomID).Stringer("user", uid).Msg("new subscriber")

	sock, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("module", "adapters.ws").Msg("ws upgrade")
		return
	}

	conn := newConn(sock, ctl.cfg.SendBuffer)
	room := ctl.rooms.GetOrCreate(roomID)

	// Join before the pumps start: the join broadcast lands in the
	// buffered send queue and becomes the subscriber's first snapshot.
	room.Join(uid, conn)

	ctx, cancel := context.WithCancel(ctx)
	go ctl.writePump(ctx, cancel, conn)
	go ctl.readPump(ctx, cancel, roomID, uid, room, conn)
}
