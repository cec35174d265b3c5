package display

import "github.com/charmbracelet/lipgloss"

// ── Styles ───────────────────────────────────────────────────────

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	fieldTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	fieldSelStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#3f3f46")).
			Foreground(lipgloss.Color("#f4f4f5"))

	caretStyle = lipgloss.NewStyle().
			Reverse(true)

	// Result line: soft mint for values, soft coral for errors.
	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	resultErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	// ── Keypad ──

	keyLiteralStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#27272a")).
			Foreground(lipgloss.Color("#d4d4d8"))

	keyFuncStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1e293b")).
			Foreground(lipgloss.Color("#bae6fd"))

	keyActionStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#3f3f46")).
			Foreground(lipgloss.Color("#fde68a"))

	keyFocusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#94a3b8")).
			Foreground(lipgloss.Color("#18181b")).
			Bold(true)

	// BannerStyle is the muted slate used for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))
)
