package nickname

import (
	"testing"

	"pointcast/internal/domain"
)

func TestDeterministic(t *testing.T) {
	id := domain.NewUserID()
	if FromUserID(id) != FromUserID(id) {
		t.Fatalf("nickname must be stable for one identity")
	}
}

func TestOutputValidatesAsUsername(t *testing.T) {
	for i := 0; i < 50; i++ {
		name := FromUserID(domain.NewUserID())
		if err := domain.CheckUsername(name); err != nil {
			t.Fatalf("generated name %q invalid: %v", name, err)
		}
	}
}
