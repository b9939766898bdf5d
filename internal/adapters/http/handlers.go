package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"pointcast/internal/core"
	"pointcast/internal/domain"
	"pointcast/internal/nickname"
)

// lookupRoom resolves :room_id through a non-creating lookup. Command
// paths never create rooms; only subscribers do.
func lookupRoom(c *gin.Context, rooms *core.Registry) (*core.Room, bool) {
	id, err := domain.ParseRoomID(c.Param("room_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad room id"})
		return nil, false
	}
	room, ok := rooms.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such room"})
		return nil, false
	}
	return room, true
}

func handleMe(c *gin.Context) {
	id, err := ProvisionUserID(c)
	if err != nil {
		log.Error().Err(err).Str("module", "adapters.http").Msg("session save")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session failure"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"uid":  id.String(),
		"name": nickname.FromUserID(id),
	})
}

func handleBet(rooms *core.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Card *uint64 `json:"card"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad payload"})
			return
		}
		room, ok := lookupRoom(c, rooms)
		if !ok {
			return
		}
		uid := c.MustGet(CtxUserKey).(domain.UserID)
		if err := room.PlaceBet(uid, body.Card); err != nil {
			if errors.Is(err, core.ErrUnknownCard) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleSetName(rooms *core.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Name string `json:"name"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad payload"})
			return
		}
		if err := domain.CheckUsername(body.Name); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		room, ok := lookupRoom(c, rooms)
		if !ok {
			return
		}
		room.SetName(c.MustGet(CtxUserKey).(domain.UserID), body.Name)
		c.Status(http.StatusNoContent)
	}
}

func handleReveal(rooms *core.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		room, ok := lookupRoom(c, rooms)
		if !ok {
			return
		}
		room.Reveal()
		c.Status(http.StatusNoContent)
	}
}

func handleHide(rooms *core.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		room, ok := lookupRoom(c, rooms)
		if !ok {
			return
		}
		room.Hide()
		c.Status(http.StatusNoContent)
	}
}

func handleListRooms(rooms *core.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, rooms.List())
	}
}
