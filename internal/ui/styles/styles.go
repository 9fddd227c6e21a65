// Package styles provides Lip Gloss styles for sticks' terminal output.
package styles

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	Primary    = lipgloss.Color("#7C3AED") // Purple
	Secondary  = lipgloss.Color("#06B6D4") // Cyan
	Success    = lipgloss.Color("#10B981") // Green
	Warning    = lipgloss.Color("#F59E0B") // Amber
	Error      = lipgloss.Color("#EF4444") // Red
	Muted      = lipgloss.Color("#6B7280") // Gray
	MutedLight = lipgloss.Color("#9CA3AF") // Light Gray
)

// Styles renders output for one writer. Colors are dropped automatically
// when the writer is not a terminal.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Box     lipgloss.Style
}

// New returns styles bound to w's color profile.
func New(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)
	return &Styles{
		Title: r.NewStyle().
			Foreground(Primary).
			Bold(true),
		Label: r.NewStyle().
			Foreground(MutedLight),
		Value: r.NewStyle().
			Bold(true),
		Success: r.NewStyle().
			Foreground(Success),
		Warning: r.NewStyle().
			Foreground(Warning),
		Error: r.NewStyle().
			Foreground(Error),
		Muted: r.NewStyle().
			Foreground(Muted),
		Box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1),
	}
}

// Mark renders ✓ or ✗.
func (s *Styles) Mark(ok bool) string {
	if ok {
		return s.Success.Render("✓")
	}
	return s.Error.Render("✗")
}

// Done renders a "✓ msg" line.
func (s *Styles) Done(msg string) string {
	return s.Success.Render("✓") + " " + msg
}

// Warn renders a "⚠ msg" line.
func (s *Styles) Warn(msg string) string {
	return s.Warning.Render("⚠") + " " + msg
}

// Row renders an aligned "label  value" line. width pads the label.
func (s *Styles) Row(label, value string, width int) string {
	pad := width - lipgloss.Width(label)
	if pad < 1 {
		pad = 1
	}
	return "  " + s.Label.Render(label) + strings.Repeat(" ", pad) + value
}

// Note renders a multi-line hint inside a rounded box.
func (s *Styles) Note(text string) string {
	return s.Box.Render(text)
}
