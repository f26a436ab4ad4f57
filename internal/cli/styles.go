package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// styles colors the human-readable output. All methods degrade to the
// plain string when color is off, so callers never branch on it.
type styles struct {
	enabled bool
	accent  lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
}

func newStyles(enabled bool) styles {
	return styles{
		enabled: enabled,
		accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

func (s styles) Accent(text string) string {
	if !s.enabled {
		return text
	}
	return s.accent.Render(text)
}

func (s styles) Success(text string) string {
	if !s.enabled {
		return text
	}
	return s.success.Render(text)
}

func (s styles) Warn(text string) string {
	if !s.enabled {
		return text
	}
	return s.warn.Render(text)
}

// colorEnabled decides whether to color output. mode is the config value
// ("auto", "always", "never"); the --no-color flag and the NO_COLOR
// convention always win, then "auto" requires a TTY with a color profile.
func colorEnabled(mode string, noColorFlag bool) bool {
	if noColorFlag || mode == "never" {
		return false
	}
	if _, present := os.LookupEnv("NO_COLOR"); present {
		return false
	}
	if mode == "always" {
		return true
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}
