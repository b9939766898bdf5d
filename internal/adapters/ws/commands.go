package ws

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"pointcast/internal/core"
	"pointcast/internal/domain"
)

// handleCommand dispatches one inbound frame. Frames carry an envelope
// type plus a command-specific payload. Rejected commands are logged
// and dropped; the synchronous error surface is the HTTP API.
func (ctl *Controller) handleCommand(uid domain.UserID, room *core.Room, data []byte) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		log.Warn().Err(err).Str("module", "adapters.ws").Msg("bad json")
		return
	}

	switch env.Type {
	case "bet":
		var p struct {
			Card *uint64 `json:"card"`
		}
		if err := json.Unmarshal(data, &p); err != nil {
			log.Warn().Err(err).Str("module", "adapters.ws").Msg("bad bet payload")
			return
		}
		if err := room.PlaceBet(uid, p.Card); err != nil {
			log.Warn().Err(err).Str("module", "adapters.ws").Stringer("user", uid).Msg("bet rejected")
		}
	case "name":
		var p struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &p); err != nil {
			log.Warn().Err(err).Str("module", "adapters.ws").Msg("bad name payload")
			return
		}
		if err := domain.CheckUsername(p.Name); err != nil {
			log.Warn().Err(err).Str("module", "adapters.ws").Stringer("user", uid).Msg("name rejected")
			return
		}
		room.SetName(uid, p.Name)
	case "reveal":
		room.Reveal()
	case "hide":
		room.Hide()
	default:
		log.Warn().Str("module", "adapters.ws").Str("type", env.Type).Msg("unknown command")
	}
}
