package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across layers.
var (
	ErrEmptyExpression   = errors.New("empty expression")
	ErrMalformedResponse = errors.New("malformed response")
)

// TransportError reports a request that never completed: connection
// refused, DNS failure, timeout, or a body cut off mid-read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is a non-2xx response from the evaluation endpoint.
// Structured is set when the body was valid JSON, whether or not it
// carried a message.
type StatusError struct {
	Code       int
	Message    string
	Structured bool
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("status %d", e.Code)
}

// RejectedError is a 2xx response whose payload has ok=false.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return "rejected"
	}
	return "rejected: " + e.Message
}
