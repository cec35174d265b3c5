// Package engine is the calculator's command reducer. It owns the
// expression editor and the result display, applies one domain.Command at a
// time, and hands out numbered submissions for the caller to evaluate.
package engine

import (
	"context"
	"strings"
	"time"

	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/editor"
	"github.com/hammamikhairi/ottocalc/internal/logger"
)

// ZeroDisplay is shown at startup, after Clear, and for an empty submit.
const ZeroDisplay = "= 0"

// Option configures the engine.
type Option func(*Engine)

// WithHistory records explicit submissions in h and enables history recall.
func WithHistory(h domain.HistoryStore) Option {
	return func(e *Engine) {
		e.history = h
	}
}

// Engine applies commands to the expression buffer and result display.
// It is driven from a single goroutine (the UI loop) and is not safe for
// concurrent use.
type Engine struct {
	ed      *editor.Editor
	display string
	lastErr error
	history domain.HistoryStore
	log     *logger.Logger

	// issued is the last Seq handed out. applied is the Seq whose result is
	// on display. Results at or below floor were overtaken by a local
	// display write (clear or empty submit).
	issued  uint64
	applied uint64
	floor   uint64

	// recall is the history index being shown, -1 when editing a draft.
	recall int
	draft  string
}

// New creates an engine with an empty buffer and ZeroDisplay.
func New(log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		ed:      editor.New(),
		display: ZeroDisplay,
		log:     log,
		recall:  -1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Editor exposes the buffer for rendering. Mutate it through Dispatch.
func (e *Engine) Editor() *editor.Editor { return e.ed }

// Text returns the current expression.
func (e *Engine) Text() string { return e.ed.Text() }

// Display returns the result line.
func (e *Engine) Display() string { return e.display }

// LastErr returns the error behind the current display, or nil when it shows
// a value.
func (e *Engine) LastErr() error { return e.lastErr }

// Dispatch applies cmd. For Submit and Preview with a non-empty expression it
// returns the submission to evaluate and true; the caller passes the outcome
// back through Resolve.
func (e *Engine) Dispatch(ctx context.Context, cmd domain.Command) (domain.Submission, bool) {
	e.log.Debug("engine: %s %q", cmd.Kind, cmd.Text)

	if cmd.Mutates() && cmd.Kind != domain.CommandHistoryPrev && cmd.Kind != domain.CommandHistoryNext {
		e.recall = -1
	}

	switch cmd.Kind {
	case domain.CommandInsert:
		e.ed.Insert(cmd.Text)
	case domain.CommandType:
		e.ed.Type(cmd.Text)
	case domain.CommandDelete:
		e.ed.Delete()
	case domain.CommandDeleteForward:
		e.ed.DeleteForward()
	case domain.CommandClear:
		e.ed.Clear()
		e.reset()
	case domain.CommandSubmit, domain.CommandPreview:
		return e.submit(cmd.Kind == domain.CommandPreview)
	case domain.CommandMoveLeft:
		e.ed.MoveLeft(false)
	case domain.CommandMoveRight:
		e.ed.MoveRight(false)
	case domain.CommandHome:
		e.ed.Home(false)
	case domain.CommandEnd:
		e.ed.End(false)
	case domain.CommandSelectLeft:
		e.ed.MoveLeft(true)
	case domain.CommandSelectRight:
		e.ed.MoveRight(true)
	case domain.CommandSelectHome:
		e.ed.Home(true)
	case domain.CommandSelectEnd:
		e.ed.End(true)
	case domain.CommandSelectAll:
		e.ed.SelectAll()
	case domain.CommandSetCaret:
		e.ed.SetCaret(cmd.Pos)
	case domain.CommandHistoryPrev:
		e.recallStep(ctx, -1)
	case domain.CommandHistoryNext:
		e.recallStep(ctx, +1)
	default:
		e.log.Warn("engine: unhandled command %s", cmd.Kind)
	}
	return domain.Submission{}, false
}

func (e *Engine) submit(live bool) (domain.Submission, bool) {
	expr := strings.TrimSpace(e.ed.Text())
	if expr == "" {
		e.reset()
		return domain.Submission{}, false
	}
	e.issued++
	return domain.Submission{Seq: e.issued, Expr: expr, Live: live}, true
}

// reset shows ZeroDisplay and retires every submission issued so far.
func (e *Engine) reset() {
	e.display = ZeroDisplay
	e.lastErr = nil
	e.floor = e.issued
}

// Resolve applies the outcome of sub. It reports false and leaves the
// display alone when a newer submission has already been shown or the
// display was reset after sub was issued.
func (e *Engine) Resolve(ctx context.Context, sub domain.Submission, result string, err error) bool {
	if sub.Seq <= e.floor || sub.Seq < e.applied {
		e.log.Debug("engine: dropping stale result seq=%d (applied=%d floor=%d)", sub.Seq, e.applied, e.floor)
		return false
	}
	e.applied = sub.Seq

	if err != nil {
		e.display = RenderError(err)
		e.lastErr = err
		e.log.Info("engine: %q -> %s (%v)", sub.Expr, e.display, err)
	} else {
		e.display = RenderResult(result)
		e.lastErr = nil
		e.log.Debug("engine: %q -> %s", sub.Expr, e.display)
	}

	if e.history != nil && !sub.Live {
		entry := domain.HistoryEntry{Expr: sub.Expr, Display: e.display, SubmittedAt: time.Now()}
		if herr := e.history.Append(ctx, entry); herr != nil {
			e.log.Warn("engine: recording history: %v", herr)
		}
	}
	return true
}

// Evaluate runs an explicit submit synchronously against ev and returns the
// resulting display line.
func (e *Engine) Evaluate(ctx context.Context, ev domain.Evaluator) string {
	sub, ok := e.Dispatch(ctx, domain.Submit())
	if !ok {
		return e.display
	}
	result, err := ev.Evaluate(ctx, sub.Expr)
	e.Resolve(ctx, sub, result, err)
	return e.display
}

// recallStep walks the history by dir (-1 older, +1 newer). Stepping past
// the newest entry restores the draft that was being edited.
func (e *Engine) recallStep(ctx context.Context, dir int) {
	if e.history == nil {
		return
	}
	entries, err := e.history.List(ctx)
	if err != nil {
		e.log.Warn("engine: listing history: %v", err)
		return
	}
	if len(entries) == 0 {
		return
	}

	idx := e.recall
	if idx < 0 {
		if dir > 0 {
			return
		}
		e.draft = e.ed.Text()
		idx = len(entries)
	}
	idx += dir

	switch {
	case idx < 0:
		idx = 0
	case idx >= len(entries):
		e.recall = -1
		e.ed.SetText(e.draft)
		return
	}
	e.recall = idx
	e.ed.SetText(entries[idx].Expr)
}
