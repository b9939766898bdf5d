package domain

import (
	"slices"
	"testing"
)

func TestParseRoomID(t *testing.T) {
	id, err := ParseRoomID("42")
	if err != nil || id != 42 {
		t.Fatalf("ParseRoomID(42) = %v, %v", id, err)
	}
	for _, bad := range []string{"", "-1", "abc", "18446744073709551616"} {
		if _, err := ParseRoomID(bad); err == nil {
			t.Fatalf("ParseRoomID(%q) should fail", bad)
		}
	}
}

func TestNormalizeCards(t *testing.T) {
	got := NormalizeCards([]uint64{500, 50, 500, 100, 50})
	want := []uint64{50, 100, 500}
	if !slices.Equal(got, want) {
		t.Fatalf("NormalizeCards = %v, want %v", got, want)
	}
}
