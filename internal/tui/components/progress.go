package components

import (
	"fmt"

	"github.com/ThinkBotz/samattendx/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForAttendance picks a color for a percentage relative to the
// target: green at or above, orange within five points, red below.
func ColorForAttendance(pct, target float64) string {
	t := theme.Active
	switch {
	case pct >= target:
		return string(t.Green)
	case pct >= target-5:
		return string(t.Orange)
	default:
		return string(t.Red)
	}
}

// AttendanceBar renders a labeled progress bar for a 0-100 percentage,
// colored against the target.
func AttendanceBar(label string, pct, target float64, labelW, barW int) string {
	t := theme.Active

	frac := pct / 100
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	color := ColorForAttendance(pct, target)
	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " + bar.ViewAs(frac) +
		" " + pctStyle.Render(fmt.Sprintf("%6.2f%%", pct))
}
