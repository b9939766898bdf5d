package core

import (
	"sync"

	"github.com/rs/zerolog/log"

	"pointcast/internal/domain"
)

// Registry maps room ids to live rooms. Read-mostly: lookups take the
// read lock, only create and remove take the write lock, so lookups
// for unrelated rooms never contend with each other.
type Registry struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]*Room
}

func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[domain.RoomID]*Room),
	}
}

// Get is a non-creating lookup.
func (g *Registry) Get(id domain.RoomID) (*Room, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	room, ok := g.rooms[id]
	return room, ok
}

// GetOrCreate returns the existing room or inserts a fresh one with
// default state. Concurrent callers for the same unseen id all observe
// a single winner.
func (g *Registry) GetOrCreate(id domain.RoomID) *Room {
	g.mu.RLock()
	room, ok := g.rooms[id]
	g.mu.RUnlock()

	if ok {
		return room
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if room, ok = g.rooms[id]; !ok {
		room = NewRoom(id)
		g.rooms[id] = room
		log.Info().Str("module", "core.registry").Stringer("room", id).Msg("room created")
	}
	return room
}

// Remove deletes the room's entry. Holders of a stale reference keep a
// working room; new lookups for the same id create a fresh one.
func (g *Registry) Remove(id domain.RoomID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.rooms, id)
	log.Info().Str("module", "core.registry").Stringer("room", id).Msg("room removed")
}

// RoomInfo is a read-only view for APIs.
type RoomInfo struct {
	ID          domain.RoomID `json:"id"`
	PlayerCount int           `json:"player_count"`
}

// List snapshots the room set under the read lock, then counts players
// without it: a room busy in a long broadcast must not stall registry
// writers queued behind this lookup.
func (g *Registry) List() []RoomInfo {
	g.mu.RLock()
	rooms := make([]*Room, 0, len(g.rooms))
	for _, r := range g.rooms {
		rooms = append(rooms, r)
	}
	g.mu.RUnlock()

	out := make([]RoomInfo, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, RoomInfo{ID: r.ID(), PlayerCount: r.PlayerCount()})
	}
	return out
}
