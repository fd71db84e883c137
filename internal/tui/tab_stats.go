package tui

import (
	"fmt"
	"strings"

	"github.com/ThinkBotz/samattendx/internal/cli"
	"github.com/ThinkBotz/samattendx/internal/engine"
	"github.com/ThinkBotz/samattendx/internal/model"
	"github.com/ThinkBotz/samattendx/internal/tui/components"
	"github.com/ThinkBotz/samattendx/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderStatsTab() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	month := a.month.Format(model.MonthFormat)
	stats := engine.MonthlyStats(month, a.snap, a.pol)

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render(cli.FormatMonth(month)))
	b.WriteString("\n\n")

	if stats.ScheduledPeriods == 0 {
		b.WriteString(labelStyle.Render("  No periods scheduled this month.\n"))
	} else {
		rows := []struct {
			label string
			value string
		}{
			{"Scheduled", fmt.Sprintf("%d periods", stats.ScheduledPeriods)},
			{"Present", fmt.Sprintf("%d", stats.Present)},
			{"Absent", fmt.Sprintf("%d", stats.Absent)},
			{"Cancelled", fmt.Sprintf("%d", stats.Cancelled)},
		}
		for _, r := range rows {
			b.WriteString("  ")
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", r.label)))
			b.WriteString(valueStyle.Render(r.value))
			b.WriteString("\n")
		}
		b.WriteString("\n  ")
		b.WriteString(components.AttendanceBar("This month", stats.Percentage, a.target, 10, a.barWidth()))
		b.WriteString("\n")
	}

	overall := engine.OverallStats(a.snap, a.pol, false)
	if len(overall.Months) == 0 {
		return b.String()
	}

	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("All Months"))
	b.WriteString("\n\n")
	for _, m := range overall.Months {
		ms := engine.MonthlyStats(m, a.snap, a.pol)
		b.WriteString("  ")
		b.WriteString(components.AttendanceBar(cli.FormatMonth(m), ms.Percentage, a.target, 14, a.barWidth()))
		b.WriteString("\n")
	}
	b.WriteString("\n  ")
	b.WriteString(components.AttendanceBar("Overall", overall.Percentage, a.target, 14, a.barWidth()))
	b.WriteString("\n")

	return b.String()
}

func (a App) barWidth() int {
	w := a.width - 40
	if w < 10 {
		w = 10
	}
	if w > 40 {
		w = 40
	}
	return w
}
