package engine

import (
	"errors"
	"fmt"

	"github.com/hammamikhairi/ottocalc/internal/domain"
)

// Display strings for the failure paths.
const (
	NetworkErrorDisplay   = "Network error"
	serverErrorFallback   = "Server responded with an error"
	invalidExprFallback   = "Invalid expression"
	malformedRespFallback = "Malformed response"
)

// RenderResult formats a successful evaluation.
func RenderResult(value string) string {
	return "= " + value
}

// RenderError maps an evaluation failure to its display line. Errors outside
// the domain taxonomy render as a network error.
func RenderError(err error) string {
	var (
		statusErr   *domain.StatusError
		rejectedErr *domain.RejectedError
		transport   *domain.TransportError
	)
	switch {
	case errors.Is(err, domain.ErrEmptyExpression):
		return ZeroDisplay
	case errors.As(err, &transport):
		return NetworkErrorDisplay
	case errors.As(err, &statusErr):
		if !statusErr.Structured {
			return fmt.Sprintf("HTTP Error: %d", statusErr.Code)
		}
		return "Error: " + orDefault(statusErr.Message, serverErrorFallback)
	case errors.As(err, &rejectedErr):
		return "Error: " + orDefault(rejectedErr.Message, invalidExprFallback)
	case errors.Is(err, domain.ErrMalformedResponse):
		return "Error: " + malformedRespFallback
	}
	return NetworkErrorDisplay
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
