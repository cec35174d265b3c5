package domain

import "time"

// Submission is one evaluation request handed out by the engine. Seq grows
// monotonically per engine; the engine uses it to drop stale responses.
type Submission struct {
	Seq  uint64
	Expr string
	Live bool // issued by the debounced preview rather than an explicit submit
}

// HistoryEntry is a submitted expression and what the display showed for it.
type HistoryEntry struct {
	Expr        string
	Display     string
	SubmittedAt time.Time
}
