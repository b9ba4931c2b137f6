package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/packlist/internal/view"
)

// ProgressBar renders a bar with the packed percentage. An empty list draws an
// empty bar and no percentage.
func ProgressBar(s view.Stats, width int) string {
	t := Current()
	if width < 5 {
		width = 5
	}
	if s.Empty() {
		return t.Muted.Render(strings.Repeat(t.BarEmpty, width) + "    ")
	}
	filled := s.Packed * width / s.Total
	if filled > width {
		filled = width
	}
	bar := t.Success.Render(strings.Repeat(t.BarFull, filled)) +
		t.Muted.Render(strings.Repeat(t.BarEmpty, width-filled))
	return fmt.Sprintf("%s %3d%%", bar, s.Percentage)
}

// Panel draws a framed box around lines using the current theme.
func Panel(lines []string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// FprintFail writes an error line to w.
func FprintFail(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Error.Render("✖ "+msg))
}
