package ui

import (
	"fmt"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/session"
	"github.com/idilsaglam/packlist/internal/view"
)

// AppTitle heads every panel.
const AppTitle = "Vacation Check List 🌴"

const maxDescription = 60

// Header is the title line with live counts.
func Header(s view.Stats) string {
	t := Current()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render(AppTitle),
		t.Success.Render(t.SymDone), s.Packed,
		t.Pending.Render(t.SymPending), s.Total-s.Packed,
		t.Accent.Render("Total"), s.Total,
	)
}

// ItemText is the plain "<box> <qty> <description>" line for one item.
func ItemText(it model.Item) string {
	t := Current()
	box := t.BoxUnchecked
	if it.Packed {
		box = t.BoxChecked
	}
	return fmt.Sprintf("%s %d %s", box, it.Quantity, truncate(it.Description))
}

// ItemLine is ItemText with theme styling applied.
func ItemLine(it model.Item) string {
	t := Current()
	text := fmt.Sprintf("%d %s", it.Quantity, truncate(it.Description))
	if it.Packed {
		return t.Success.Render(t.BoxChecked) + " " + t.Packed.Render(text)
	}
	return t.Muted.Render(t.BoxUnchecked) + " " + text
}

// ItemLines numbers items from 1 in the order given.
func ItemLines(items []model.Item) []string {
	t := Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		out = append(out, t.Muted.Render(idx)+" "+ItemLine(it))
	}
	return out
}

// Footer is the progress bar plus the stats message.
func Footer(s view.Stats, barWidth int) []string {
	t := Current()
	msg := s.Message()
	if s.Complete() {
		msg = t.Success.Render(msg)
	}
	return []string{ProgressBar(s, barWidth), msg}
}

// FrameLines lays out a whole frame for non-interactive output.
func FrameLines(f session.Frame) []string {
	t := Current()
	var lines []string
	lines = append(lines, Header(f.Stats), "")
	lines = append(lines, ItemLines(f.Items)...)
	lines = append(lines, "", t.Accent.Render(f.Order.Label()))
	lines = append(lines, Footer(f.Stats, 28)...)
	return lines
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) > maxDescription {
		return string(r[:maxDescription-3]) + "..."
	}
	return s
}
