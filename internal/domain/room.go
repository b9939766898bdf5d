package domain

import (
	"slices"
	"strconv"
)

// RoomID is an externally supplied room number, usually taken from a
// URL path segment.
type RoomID uint64

// ParseRoomID accepts any unsigned decimal integer; no further
// validation is applied.
func ParseRoomID(s string) (RoomID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return RoomID(v), nil
}

func (id RoomID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// DefaultCards is the stake menu a fresh room starts with, in integer
// hundredths (150 reads as "1.5").
func DefaultCards() []uint64 {
	return []uint64{50, 100, 200, 300, 500, 800, 1300, 2100}
}

// NormalizeCards sorts ascending and drops duplicates. The menu is kept
// in this form at all times.
func NormalizeCards(cards []uint64) []uint64 {
	slices.Sort(cards)
	return slices.Compact(cards)
}
