package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("ctx: %w", NotFound("hotel %d not found", 3))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound match")
	}
	if errors.Is(err, ErrConflict) {
		t.Fatalf("kinds must not cross-match")
	}
	if KindOf(err) != KindNotFound {
		t.Fatalf("KindOf: %s", KindOf(err))
	}
}

func TestStorage_WrapsOnlyUntyped(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage("hotel query failed", cause)
	if KindOf(err) != KindStorage || !errors.Is(err, cause) {
		t.Fatalf("storage wrap: %v", err)
	}
	if err.Error() != "hotel query failed: connection refused" {
		t.Fatalf("message: %q", err.Error())
	}

	typed := Conflict("dup")
	if Storage("x", typed) != typed {
		t.Fatalf("typed errors must pass through")
	}
	if Storage("x", nil) != nil {
		t.Fatalf("nil must stay nil")
	}
	if KindOf(errors.New("plain")) != KindStorage {
		t.Fatalf("untyped errors count as storage")
	}
}
