package http

import (
	"context"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"pointcast/internal/adapters/ws"
	"pointcast/internal/config"
	"pointcast/internal/core"
)

func SetupRouter(ctx context.Context, cfg *config.Config, rooms *core.Registry) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionMaxAge.Seconds()),
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("pointcast", store))

	ctl := ws.NewController(cfg, rooms)

	api := r.Group("/api")
	api.GET("/me", handleMe)
	api.GET("/rooms", handleListRooms(rooms))

	room := api.Group("/room/:room_id", RequireUserID())
	room.POST("/bet", handleBet(rooms))
	room.POST("/name", handleSetName(rooms))
	room.POST("/reveal", handleReveal(rooms))
	room.POST("/hide", handleHide(rooms))

	r.GET("/ws/room/:room_id", func(c *gin.Context) {
		// The subscribe path may mint an identity; commands may not.
		uid, err := ProvisionUserID(c)
		if err != nil {
			log.Error().Err(err).Str("module", "adapters.http").Msg("session save")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session failure"})
			return
		}
		c.Set(CtxUserKey, uid)
		ctl.HandleSubscribe(ctx, c)
	})

	log.Info().Str("module", "adapters.http").Str("mode", cfg.Mode).Msg("router setup")
	return r
}
