package domain

import (
	"errors"
	"testing"
)

func TestCheckUsername(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrUsernameEmpty},
		{"simple", "bob", nil},
		{"digits and separators", "bob_2-b", nil},
		{"upper", "Bob-Z9", nil},
		{"punctuation", "bob!", ErrUsernameChars},
		{"space", "bob smith", ErrUsernameChars},
		{"unicode", "bøb", ErrUsernameChars},
		{"only separators", "_-", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := CheckUsername(tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("CheckUsername(%q) = %v, want %v", tc.in, err, tc.want)
			}
		})
	}
}

func TestUserIDRoundTrip(t *testing.T) {
	id := NewUserID()
	parsed, err := ParseUserID(id.String())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed != id {
		t.Fatalf("round trip changed identity: %s != %s", parsed, id)
	}
	if _, err := ParseUserID("not-a-uuid"); err == nil {
		t.Fatalf("expected parse failure")
	}
}
