package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hammamikhairi/ottocalc/internal/domain"
)

func TestRenderErrorPriority(t *testing.T) {
	// A transport error wrapped inside something else still renders as a
	// network error.
	wrapped := fmt.Errorf("outer: %w", &domain.TransportError{Err: errors.New("dial tcp: refused")})
	if got := RenderError(wrapped); got != NetworkErrorDisplay {
		t.Fatalf("expected %q, got %q", NetworkErrorDisplay, got)
	}

	if got := RenderError(errors.New("mystery")); got != NetworkErrorDisplay {
		t.Fatalf("unknown errors should render as network error, got %q", got)
	}
}

func TestRenderResult(t *testing.T) {
	if got := RenderResult("42"); got != "= 42" {
		t.Fatalf("expected = 42, got %q", got)
	}
}

func TestRenderEmptyExpression(t *testing.T) {
	if got := RenderError(domain.ErrEmptyExpression); got != ZeroDisplay {
		t.Fatalf("expected %q, got %q", ZeroDisplay, got)
	}
}
