package domain

import "context"

// Evaluator turns an expression into a result value. The only production
// implementation talks HTTP to the evaluation endpoint; tests swap in fakes.
// Failures are reported as *TransportError, *StatusError, *RejectedError,
// or an error wrapping ErrMalformedResponse.
type Evaluator interface {
	Evaluate(ctx context.Context, expr string) (string, error)
}

// HistoryStore keeps submitted expressions for recall. Implementations can be
// in-memory or file-backed.
type HistoryStore interface {
	Append(ctx context.Context, entry HistoryEntry) error
	List(ctx context.Context) ([]HistoryEntry, error)
	Clear(ctx context.Context) error
}
