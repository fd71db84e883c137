package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ThinkBotz/samattendx/internal/engine"
	"github.com/ThinkBotz/samattendx/internal/model"
	"github.com/ThinkBotz/samattendx/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderPredictorTab() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)

	now := time.Now()
	projections := engine.ProjectMonth(a.snap, now, []float64{a.target, a.target + 1})
	first := projections[0]

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("Predictor " + now.Format("January 2006")))
	b.WriteString("\n\n")

	if first.ScheduledSoFar == 0 && first.Remaining == 0 {
		b.WriteString(labelStyle.Render("  No periods scheduled this month.\n"))
		return b.String()
	}

	b.WriteString("  ")
	b.WriteString(labelStyle.Render("So far      "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d of %d periods", first.Present, first.ScheduledSoFar)))
	b.WriteString("\n  ")
	b.WriteString(labelStyle.Render("Remaining   "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d periods", first.Remaining)))
	b.WriteString("\n\n")

	for _, p := range projections {
		b.WriteString("  ")
		b.WriteString(titleStyle.Render(fmt.Sprintf("%.0f%% target", p.Target)))
		b.WriteString("\n")
		if p.NeedToAttend > p.Remaining {
			b.WriteString("  ")
			b.WriteString(warnStyle.Render("Out of reach this month, even with full attendance."))
			b.WriteString("\n\n")
			continue
		}
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(fmt.Sprintf("Attend %d of the remaining %d, can miss %d.",
			p.NeedToAttend, p.Remaining, p.CanMiss)))
		b.WriteString("\n\n")
	}

	budget := engine.MonthSkipBudget(now.Format(model.MonthFormat), a.snap, a.target)
	if budget.TotalPeriods == 0 {
		return b.String()
	}

	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Skip Budget"))
	b.WriteString("\n\n")
	rows := []struct {
		label string
		value string
	}{
		{"Total periods", fmt.Sprintf("%d across %d days", budget.TotalPeriods, budget.WorkingDays)},
		{"Period value", fmt.Sprintf("%.3f%%", budget.PerPeriodValue)},
		{"Skippable", fmt.Sprintf("%d periods", budget.CanSkipPeriods)},
		{"Already absent", fmt.Sprintf("%d periods", budget.AlreadyAbsent)},
		{"Still skippable", fmt.Sprintf("%d periods (%d whole days)", budget.StillCanSkip, budget.FullDaysCanSkip)},
	}
	for _, r := range rows {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-16s", r.label)))
		b.WriteString(valueStyle.Render(r.value))
		b.WriteString("\n")
	}
	return b.String()
}
