package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ThinkBotz/samattendx/internal/engine"
	"github.com/ThinkBotz/samattendx/internal/ledger"
	"github.com/ThinkBotz/samattendx/internal/model"
	"github.com/ThinkBotz/samattendx/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCalendarTab() string {
	var b strings.Builder
	b.WriteString(a.renderMonthGrid())
	b.WriteString("\n")
	b.WriteString(a.renderDayDetail())
	b.WriteString("\n")
	b.WriteString(a.renderLegend())
	return b.String()
}

func (a App) renderMonthGrid() string {
	t := theme.Active

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	cursorStyle := lipgloss.NewStyle().Background(t.SurfaceHover).Bold(true)

	var b strings.Builder
	b.WriteString("\n  ")
	for d := model.Sunday; d <= model.Saturday; d++ {
		b.WriteString(headStyle.Render(fmt.Sprintf("%-4s", d.String()[:3])))
	}
	b.WriteString("\n")

	first := a.month
	daysInMonth := first.AddDate(0, 1, -1).Day()

	b.WriteString("  ")
	b.WriteString(strings.Repeat("    ", int(first.Weekday())))
	for day := 1; day <= daysInMonth; day++ {
		date := first.AddDate(0, 0, day-1)
		cell := fmt.Sprintf("%3d ", day)

		styled := lipgloss.NewStyle().Foreground(a.dayColor(date)).Render(cell)
		if date.Equal(a.cursor) {
			styled = cursorStyle.Render(cell)
		}
		b.WriteString(styled)

		if date.Weekday() == time.Saturday && day < daysInMonth {
			b.WriteString("\n  ")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (a App) dayColor(date time.Time) lipgloss.Color {
	t := theme.Active
	switch engine.SummarizeDay(date, a.snap) {
	case model.DayHoliday:
		return t.Blue
	case model.DayExam:
		return t.Yellow
	case model.DayAllPresent:
		return t.Green
	case model.DayAllAbsent:
		return t.Red
	case model.DayMixed:
		return t.Orange
	}
	if model.WeekdayOf(date) == model.Sunday {
		return t.TextDim
	}
	return t.TextPrimary
}

func (a App) renderDayDetail() string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	date := a.cursorDate()
	day := model.WeekdayOf(a.cursor)

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(valueStyle.Bold(true).Render(a.cursor.Format("Mon, 02 Jan 2006")))

	set := a.snap.Settings
	switch {
	case day == model.Sunday:
		b.WriteString(dimStyle.Render("  (Sunday)"))
	case set.IsHoliday(date):
		b.WriteString(lipgloss.NewStyle().Foreground(t.Blue).Render("  (holiday)"))
	case set.IsExamDay(date):
		b.WriteString(lipgloss.NewStyle().Foreground(t.Yellow).Render("  (exam day)"))
	default:
		n := engine.ScheduledPeriods(a.cursor, a.snap.Timetable, set)
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %d periods scheduled", n)))
	}
	b.WriteString("\n\n")

	ds, ok := a.snap.Timetable.DayFor(day)
	if !ok || day == model.Sunday {
		return b.String()
	}

	for _, slot := range ds.TimeSlots {
		if slot.SubjectID == "" {
			continue
		}
		name := a.snap.SubjectName(slot.SubjectID)
		line := fmt.Sprintf("  %s-%s  %-20s ", slot.StartTime, slot.EndTime, name)
		b.WriteString(labelStyle.Render(line))

		if rec, found := ledger.Find(a.snap.AttendanceRecords, date, slot.ID); found {
			b.WriteString(a.statusLabel(rec.Status))
		} else {
			b.WriteString(dimStyle.Render("unmarked"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) statusLabel(s model.Status) string {
	t := theme.Active
	switch s {
	case model.StatusPresent:
		return lipgloss.NewStyle().Foreground(t.Green).Render("present")
	case model.StatusAbsent:
		return lipgloss.NewStyle().Foreground(t.Red).Render("absent")
	default:
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("cancelled")
	}
}

func (a App) renderLegend() string {
	t := theme.Active
	entries := []struct {
		color lipgloss.Color
		label string
	}{
		{t.Green, "present"},
		{t.Red, "absent"},
		{t.Orange, "mixed"},
		{t.Blue, "holiday"},
		{t.Yellow, "exam"},
	}

	var parts []string
	for _, e := range entries {
		parts = append(parts, lipgloss.NewStyle().Foreground(e.color).Render("■ "+e.label))
	}
	return "  " + strings.Join(parts, "  ")
}
