// Package domain contains entity without logic, just meta-data
package domain

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUsernameEmpty = errors.New("username empty")
	ErrUsernameChars = errors.New("allowed characters: a-z A-Z 0-9 _-")
)

// UserID is a 128-bit per-session identity. It is not a secret and is
// only ever used as a map key.
type UserID uuid.UUID

// NewUserID returns a fresh random identity.
func NewUserID() UserID {
	return UserID(uuid.New())
}

// ParseUserID parses the canonical string form produced by String.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err
	}
	return UserID(id), nil
}

func (id UserID) String() string {
	return uuid.UUID(id).String()
}

// CheckUsername reports whether a display name is acceptable: non-empty
// and restricted to [0-9a-zA-Z_-]. Invalid names are rejected outright,
// never corrected.
func CheckUsername(s string) error {
	if len(s) == 0 {
		return ErrUsernameEmpty
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_' || c == '-':
		default:
			return ErrUsernameChars
		}
	}
	return nil
}
