// Package theme maps the persisted light/dark preference to terminal styles.
package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	domain "github.com/pawmart/pawmart/pkg/types"
)

// Palette is the set of colours for one theme.
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
}

var (
	// Light is the default palette.
	Light = Palette{
		Primary: lipgloss.Color("#9333EA"),
		Accent:  lipgloss.Color("#22C55E"),
		Text:    lipgloss.Color("#1F2937"),
		Muted:   lipgloss.Color("#6B7280"),
		Error:   lipgloss.Color("#DC2626"),
		Success: lipgloss.Color("#16A34A"),
	}

	// Dark is the palette for dark terminals.
	Dark = Palette{
		Primary: lipgloss.Color("#C084FC"),
		Accent:  lipgloss.Color("#4ADE80"),
		Text:    lipgloss.Color("#F3F4F6"),
		Muted:   lipgloss.Color("#9CA3AF"),
		Error:   lipgloss.Color("#F87171"),
		Success: lipgloss.Color("#4ADE80"),
	}
)

// PaletteFor returns the palette of t; unknown themes get Light.
func PaletteFor(t domain.Theme) Palette {
	if t == domain.ThemeDark {
		return Dark
	}
	return Light
}

// Styles are the rendered styles used by the CLI.
type Styles struct {
	Title   lipgloss.Style
	Badge   lipgloss.Style
	Price   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Info    lipgloss.Style
}

// NewStyles builds styles for t that render to w. Colour output is
// disabled automatically when w is not a terminal.
func NewStyles(w io.Writer, t domain.Theme) Styles {
	r := lipgloss.NewRenderer(w)
	p := PaletteFor(t)
	r.SetHasDarkBackground(t == domain.ThemeDark)

	return Styles{
		Title:   r.NewStyle().Foreground(p.Primary).Bold(true),
		Badge:   r.NewStyle().Foreground(p.Accent).Bold(true),
		Price:   r.NewStyle().Foreground(p.Accent),
		Text:    r.NewStyle().Foreground(p.Text),
		Muted:   r.NewStyle().Foreground(p.Muted).Italic(true),
		Error:   r.NewStyle().Foreground(p.Error).Bold(true),
		Success: r.NewStyle().Foreground(p.Success).Bold(true),
		Info:    r.NewStyle().Foreground(p.Primary),
	}
}
