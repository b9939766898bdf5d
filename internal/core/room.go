package core

import (
	"errors"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"

	"pointcast/internal/domain"
	"pointcast/internal/nickname"
)

var ErrUnknownCard = errors.New("card not in menu")

type player struct {
	bet  *uint64
	name string
	sub  Subscriber
}

// Room owns the authoritative state for one room: the card menu, the
// visibility flag and the connected players with their bets and names.
// Every mutation, including the fan-out following it, runs under mu, so
// no subscriber can observe partially-applied state.
type Room struct {
	id domain.RoomID

	mu      sync.Mutex
	cards   []uint64
	hidden  bool
	players map[domain.UserID]*player
}

func NewRoom(id domain.RoomID) *Room {
	return &Room{
		id:      id,
		cards:   domain.DefaultCards(),
		hidden:  true,
		players: make(map[domain.UserID]*player),
	}
}

func (r *Room) ID() domain.RoomID { return r.id }

func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

// Join registers uid with an empty bet and a generated nickname. A user
// holds at most one live connection per room: a prior connection under
// the same uid is closed and replaced, not left dangling.
func (r *Room) Join(uid domain.UserID, sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.players[uid]; ok {
		log.Debug().Str("module", "core.room").Stringer("room", r.id).Stringer("user", uid).Msg("superseding previous connection")
		old.sub.Close()
	}
	r.players[uid] = &player{name: nickname.FromUserID(uid), sub: sub}
	r.broadcastLocked()
}

// Disconnect removes uid's record and closes its channel. When sub is
// non-nil the player is only removed while it still owns that
// subscriber, so a superseded connection cannot evict its replacement.
// Returns the remaining player count.
func (r *Room) Disconnect(uid domain.UserID, sub Subscriber) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[uid]
	if !ok || (sub != nil && p.sub != sub) {
		return len(r.players)
	}
	delete(r.players, uid)
	p.sub.Close()
	log.Debug().Str("module", "core.room").Stringer("room", r.id).Stringer("user", uid).Msg("player disconnected")
	r.broadcastLocked()
	return len(r.players)
}

// PlaceBet sets uid's bet to card, or clears it when card is nil. A
// non-nil value must be on the current menu. A bet from a uid that is
// no longer connected is a benign race and is dropped without a
// broadcast.
func (r *Room) PlaceBet(uid domain.UserID, card *uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Presence first: a stale command stays silent even when it also
	// carries an off-menu card.
	p, ok := r.players[uid]
	if !ok {
		return nil
	}
	if card != nil && !slices.Contains(r.cards, *card) {
		return ErrUnknownCard
	}
	p.bet = card
	r.broadcastLocked()
	return nil
}

// SetName sets uid's display name. Validation is the caller's job; see
// domain.CheckUsername. No-op for an unknown uid.
func (r *Room) SetName(uid domain.UserID, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[uid]
	if !ok {
		return
	}
	p.name = name
	r.broadcastLocked()
}

// Reveal exposes everyone's bets.
func (r *Room) Reveal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hidden = false
	r.broadcastLocked()
}

// Hide starts a fresh round: it conceals the table and clears every
// player's bet. There is no way to re-reveal the previous round.
func (r *Room) Hide() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hidden = true
	for _, p := range r.players {
		p.bet = nil
	}
	r.broadcastLocked()
}

// AddCard inserts a stake value into the menu, keeping it sorted and
// deduplicated.
func (r *Room) AddCard(v uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cards = domain.NormalizeCards(append(r.cards, v))
	r.broadcastLocked()
}

// RemoveCard deletes a stake value from the menu if present.
func (r *Room) RemoveCard(v uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.Index(r.cards, v)
	if i < 0 {
		return
	}
	r.cards = slices.Delete(r.cards, i, i+1)
	r.broadcastLocked()
}

// viewFor builds the snapshot self receives. The own record is never
// redacted; while hidden, any other player's placed bet collapses to
// the marker value.
func (r *Room) viewFor(self domain.UserID, p *player) GameView {
	view := GameView{
		Players:   make([]PlayerView, 0, len(r.players)),
		Cards:     slices.Clone(r.cards),
		SelfState: PlayerView{Card: p.bet, Name: p.name},
		Hidden:    r.hidden,
	}
	for uid, other := range r.players {
		if uid == self {
			continue
		}
		pv := PlayerView{Card: other.bet, Name: other.name}
		if r.hidden && pv.Card != nil {
			marker := hasBetMarker
			pv.Card = &marker
		}
		view.Players = append(view.Players, pv)
	}
	return view
}

// broadcastLocked pushes a fresh per-recipient view to every player. A
// failed send means that player is gone: it is removed, its channel
// closed, and the whole pass reruns against the survivors, since a
// dropped player changes everyone else's view. The player set strictly
// shrinks on every rerun, so the loop terminates within at most the
// player count at entry. Send failures never reach the command caller.
func (r *Room) broadcastLocked() {
	for {
		var dead []domain.UserID
		for uid, p := range r.players {
			if err := p.sub.TrySend(r.viewFor(uid, p)); err != nil {
				log.Debug().Err(err).Str("module", "core.room").Stringer("room", r.id).Stringer("user", uid).Msg("send failed, dropping player")
				dead = append(dead, uid)
			}
		}
		if len(dead) == 0 {
			return
		}
		for _, uid := range dead {
			p := r.players[uid]
			delete(r.players, uid)
			p.sub.Close()
		}
	}
}
