package core

// hasBetMarker replaces another player's bet while the table is hidden:
// the UI can show that someone voted without learning the amount.
const hasBetMarker uint64 = 0

// PlayerView is one player's record as a specific recipient sees it.
type PlayerView struct {
	Card *uint64 `json:"card"`
	Name string  `json:"name"`
}

// GameView is the snapshot pushed to one subscriber after every
// mutation. Built fresh per recipient, never cached.
type GameView struct {
	Players   []PlayerView `json:"players"`
	Cards     []uint64     `json:"cards"`
	SelfState PlayerView   `json:"self_state"`
	Hidden    bool         `json:"hidden"`
}
