// Package display provides the calculator's terminal UI using Bubble Tea.
//
// The [UI] type owns the expression field, the result line, and an
// on-screen keypad. Every edit goes through the engine as a
// domain.Command; evaluations run as Bubble Tea commands and report back
// as messages, so the engine is only ever touched from the update loop.
package display

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/engine"
	"github.com/hammamikhairi/ottocalc/internal/logger"
	"github.com/hammamikhairi/ottocalc/internal/timer"
)

// refocusDelay is how long after startup the field grabs focus again, in
// case the first layout pass moved it to the keypad.
const refocusDelay = 50 * time.Millisecond

// clipboardRead is swapped out in tests.
var clipboardRead = clipboard.ReadAll

// ── UI ───────────────────────────────────────────────────────────

// Option configures the UI.
type Option func(*UI)

// WithDebounce sets the live-evaluation quiet period. Zero disables live
// evaluation.
func WithDebounce(d time.Duration) Option {
	return func(u *UI) { u.debounce = d }
}

// WithBanner toggles the banner above the field.
func WithBanner(on bool) Option {
	return func(u *UI) { u.banner = on }
}

// WithKeypad replaces the default keypad layout.
func WithKeypad(rows [][]Button) Option {
	return func(u *UI) { u.keypad = rows }
}

// UI runs the calculator in the terminal.
//
// Call [NewUI] then [UI.Run] (blocking).
type UI struct {
	program  *tea.Program
	engine   *engine.Engine
	eval     domain.Evaluator
	log      *logger.Logger
	debounce time.Duration
	banner   bool
	keypad   [][]Button
	done     atomic.Bool
}

// NewUI creates the display. Call Run() to start.
func NewUI(eng *engine.Engine, ev domain.Evaluator, log *logger.Logger, opts ...Option) *UI {
	u := &UI{
		engine:   eng,
		eval:     ev,
		log:      log,
		debounce: timer.DefaultDelay,
		banner:   true,
		keypad:   DefaultKeypad(),
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

// send forwards msg to the running program. Safe from any goroutine.
func (u *UI) send(msg tea.Msg) {
	if u.program != nil && !u.done.Load() {
		u.program.Send(msg)
	}
}

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// Run starts the Bubble Tea event loop. Blocks until the user quits or ctx
// is cancelled.
func (u *UI) Run(ctx context.Context) error {
	live := timer.NewDebouncer(func() { u.send(previewMsg{}) }, u.log, timer.WithDelay(u.debounce))
	defer live.Stop()

	m := newModel(ctx, u.engine, u.eval, u.log, u.keypad)
	if live.Delay() > 0 {
		m.live = live
		u.log.Debug("display: live evaluation after %s", live.Delay())
	} else {
		u.log.Info("display: live evaluation disabled")
	}
	if u.banner {
		m.banner = RenderBanner(0)
	}

	u.program = tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := u.program.Run()
	u.done.Store(true)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type focusArea int

const (
	focusField focusArea = iota
	focusKeypad
)

// liveTrigger is the debouncer as seen by the model.
type liveTrigger interface {
	Trigger()
}

type model struct {
	ctx     context.Context
	engine  *engine.Engine
	eval    domain.Evaluator
	live    liveTrigger // nil disables live evaluation
	log     *logger.Logger
	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	keypad [][]Button
	cellW  int
	banner string

	focus          focusArea
	padRow, padCol int
	inflight       int
	width          int
}

// Messages.
type (
	refocusMsg struct{}
	previewMsg struct{}
	resultMsg  struct {
		sub   domain.Submission
		value string
		err   error
	}
)

func newModel(ctx context.Context, eng *engine.Engine, ev domain.Evaluator, log *logger.Logger, keypad [][]Button) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return model{
		ctx:     ctx,
		engine:  eng,
		eval:    ev,
		log:     log,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		keypad:  keypad,
		cellW:   cellWidthFor(keypad),
		focus:   focusField,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("ottocalc"),
		tea.Tick(refocusDelay, func(time.Time) tea.Msg { return refocusMsg{} }),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if m.banner != "" {
			m.banner = RenderBanner(msg.Width)
		}
		return m, nil

	case refocusMsg:
		m.focus = focusField
		return m, nil

	case previewMsg:
		out := m.dispatch(domain.Preview())
		return m, out

	case resultMsg:
		if m.inflight > 0 {
			m.inflight--
		}
		m.engine.Resolve(m.ctx, msg.sub, msg.value, msg.err)
		return m, nil

	case spinner.TickMsg:
		if m.inflight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if m.focus == focusKeypad {
			return m.updateKeypadKey(msg)
		}
		return m.updateFieldKey(msg)
	}
	return m, nil
}

func (m model) updateFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, k.Submit):
		out := m.dispatch(domain.Submit())
		return m, out
	case key.Matches(msg, k.Clear):
		out := m.dispatch(domain.Clear())
		return m, out
	case key.Matches(msg, k.ToggleKeypad):
		m.focus = focusKeypad
		return m, nil
	case key.Matches(msg, k.Backspace):
		out := m.edit(domain.Delete())
		return m, out
	case key.Matches(msg, k.DeleteForward):
		out := m.edit(domain.Command{Kind: domain.CommandDeleteForward})
		return m, out
	case key.Matches(msg, k.Paste):
		text, err := clipboardRead()
		if err != nil {
			m.log.Warn("display: reading clipboard: %v", err)
			return m, nil
		}
		out := m.edit(domain.Type(text))
		return m, out
	}

	if kind, ok := m.motionFor(msg); ok {
		out := m.dispatch(domain.Command{Kind: kind})
		return m, out
	}

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return m, nil
		}
		out := m.edit(domain.Type(string(msg.Runes)))
		return m, out
	case tea.KeySpace:
		out := m.edit(domain.Type(" "))
		return m, out
	}
	return m, nil
}

// motionFor maps caret, selection, and history keys to their command.
func (m model) motionFor(msg tea.KeyMsg) (domain.CommandKind, bool) {
	k := m.keys
	bindings := []struct {
		b    key.Binding
		kind domain.CommandKind
	}{
		{k.SelectLeft, domain.CommandSelectLeft},
		{k.SelectRight, domain.CommandSelectRight},
		{k.SelectHome, domain.CommandSelectHome},
		{k.SelectEnd, domain.CommandSelectEnd},
		{k.SelectAll, domain.CommandSelectAll},
		{k.Left, domain.CommandMoveLeft},
		{k.Right, domain.CommandMoveRight},
		{k.Home, domain.CommandHome},
		{k.End, domain.CommandEnd},
		{k.HistoryPrev, domain.CommandHistoryPrev},
		{k.HistoryNext, domain.CommandHistoryNext},
	}
	for _, bk := range bindings {
		if key.Matches(msg, bk.b) {
			return bk.kind, true
		}
	}
	return 0, false
}

func (m model) updateKeypadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.PadLeave), key.Matches(msg, k.ToggleKeypad):
		m.focus = focusField
	case key.Matches(msg, k.PadPress):
		return m.press(m.padRow, m.padCol)
	case key.Matches(msg, k.PadUp):
		m.movePad(-1, 0)
	case key.Matches(msg, k.PadDown):
		m.movePad(+1, 0)
	case key.Matches(msg, k.PadLeft):
		m.movePad(0, -1)
	case key.Matches(msg, k.PadRight):
		m.movePad(0, +1)
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case msg.Type == tea.KeyRunes && !msg.Alt:
		// Any typed rune goes straight back to the field.
		m.focus = focusField
		out := m.edit(domain.Type(string(msg.Runes)))
		return m, out
	}
	return m, nil
}

func (m *model) movePad(dRow, dCol int) {
	if len(m.keypad) == 0 {
		return
	}
	m.padRow = clampInt(m.padRow+dRow, 0, len(m.keypad)-1)
	m.padCol = clampInt(m.padCol+dCol, 0, len(m.keypad[m.padRow])-1)
}

// press activates a keypad button and hands focus back to the field.
func (m model) press(row, col int) (tea.Model, tea.Cmd) {
	m.focus = focusField
	if row < 0 || row >= len(m.keypad) || col < 0 || col >= len(m.keypad[row]) {
		return m, nil
	}
	btn := m.keypad[row][col]
	cmd, ok := btn.Command()
	if !ok {
		m.log.Warn("display: button %q has no command", btn.Label)
		return m, nil
	}
	m.log.Debug("display: pressed %q", btn.Label)
	out := m.dispatch(cmd)
	return m, out
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	top := m.headerLines()
	switch {
	case msg.Y == top:
		m.focus = focusField
		x := msg.X - runewidth.StringWidth(prompt)
		pos := fieldHit(m.engine.Editor(), m.fieldWidth(), x)
		out := m.dispatch(domain.Command{Kind: domain.CommandSetCaret, Pos: pos})
		return m, out
	case msg.Y >= m.keypadTop():
		row, col, ok := keypadHit(m.keypad, m.cellW, msg.X, msg.Y-m.keypadTop())
		if !ok {
			return m, nil
		}
		m.padRow, m.padCol = row, col
		return m.press(row, col)
	}
	return m, nil
}

// edit applies a keystroke edit and, if the buffer changed, restarts the
// live-evaluation quiet period.
func (m *model) edit(cmd domain.Command) tea.Cmd {
	before := m.engine.Text()
	out := m.dispatch(cmd)
	if m.live != nil && m.engine.Text() != before {
		m.live.Trigger()
	}
	return out
}

// dispatch sends cmd to the engine and, when it yields a submission,
// returns the command that evaluates it.
func (m *model) dispatch(cmd domain.Command) tea.Cmd {
	sub, ok := m.engine.Dispatch(m.ctx, cmd)
	if !ok {
		return nil
	}
	m.inflight++
	cmds := []tea.Cmd{m.evaluate(sub)}
	if m.inflight == 1 {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m model) evaluate(sub domain.Submission) tea.Cmd {
	ctx, ev := m.ctx, m.eval
	return func() tea.Msg {
		value, err := ev.Evaluate(ctx, sub.Expr)
		return resultMsg{sub: sub, value: value, err: err}
	}
}

// ── Layout ───────────────────────────────────────────────────────

func (m model) headerLines() int { return strings.Count(m.banner, "\n") }

// keypadTop is the screen line of the first keypad row: field, result,
// and one blank line sit above it.
func (m model) keypadTop() int { return m.headerLines() + 3 }

func (m model) fieldWidth() int {
	w := m.width
	if w <= 0 {
		w = 80
	}
	w -= runewidth.StringWidth(prompt)
	if w < 1 {
		w = 1
	}
	return w
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.banner)

	b.WriteString(promptStyle.Render(prompt))
	b.WriteString(renderField(m.engine.Editor(), m.fieldWidth(), m.focus == focusField))
	b.WriteByte('\n')

	b.WriteString(m.renderResult())
	b.WriteString("\n\n")

	focusRow, focusCol := -1, -1
	if m.focus == focusKeypad {
		focusRow, focusCol = m.padRow, m.padCol
	}
	b.WriteString(renderKeypad(m.keypad, m.cellW, focusRow, focusCol))
	b.WriteString("\n\n")

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m model) renderResult() string {
	indicator := "  "
	if m.inflight > 0 {
		indicator = m.spinner.View() + " "
	}
	st := resultStyle
	if m.engine.LastErr() != nil {
		st = resultErrStyle
	}
	return indicator + st.Render(m.engine.Display())
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
