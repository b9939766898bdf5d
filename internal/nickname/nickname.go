// Package nickname derives a default display name from a user identity.
package nickname

import (
	"encoding/binary"
	"strconv"

	"pointcast/internal/domain"
)

var adjectives = []string{
	"brisk", "calm", "clever", "daring", "eager", "fuzzy", "gentle", "grim",
	"happy", "keen", "lucky", "mellow", "nimble", "proud", "quiet", "rapid",
	"shy", "sleepy", "sly", "solid", "spry", "stern", "swift", "witty",
}

var animals = []string{
	"badger", "bison", "crane", "ferret", "fox", "heron", "ibex", "lemur",
	"lynx", "marten", "mole", "moose", "otter", "owl", "panda", "raven",
	"seal", "shrew", "stoat", "swan", "tapir", "vole", "wolf", "wren",
}

// FromUserID is deterministic: the same identity always maps to the
// same name. The result satisfies domain.CheckUsername.
func FromUserID(id domain.UserID) string {
	raw := [16]byte(id)
	hi := binary.BigEndian.Uint64(raw[:8])
	lo := binary.BigEndian.Uint64(raw[8:])
	return adjectives[hi%uint64(len(adjectives))] +
		"_" + animals[lo%uint64(len(animals))] +
		"_" + strconv.FormatUint((hi^lo)%100, 10)
}
