// Package tui provides the interactive Bubble Tea calendar for samattendx.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ThinkBotz/samattendx/internal/config"
	"github.com/ThinkBotz/samattendx/internal/engine"
	"github.com/ThinkBotz/samattendx/internal/ledger"
	"github.com/ThinkBotz/samattendx/internal/model"
	"github.com/ThinkBotz/samattendx/internal/store"
	"github.com/ThinkBotz/samattendx/internal/tui/components"
	"github.com/ThinkBotz/samattendx/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model.
type App struct {
	store   *store.Store
	profile model.Profile
	snap    model.Snapshot
	target  float64
	pol     engine.DenominatorPolicy

	// Calendar state
	month  time.Time // first day of the visible month
	cursor time.Time // selected day

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	note      string // transient message in the status bar

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

type setupValues struct {
	Target string
	Theme  string
}

const (
	minTerminalWidth = 60
	minContentHeight = 5
)

// NewApp creates the TUI model for the active profile.
func NewApp(st *store.Store, profile model.Profile, snap model.Snapshot, target float64, pol engine.DenominatorPolicy) App {
	now := time.Now()
	a := App{
		store:   st,
		profile: profile,
		snap:    snap,
		target:  target,
		pol:     pol,
		month:   time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local),
		cursor:  time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local),
	}

	if !config.Exists() {
		a.needSetup = true
		a.setupVals.Target = fmt.Sprintf("%.0f", target)
		a.setupVals.Theme = theme.Active.Name
		a.setupForm = newSetupForm(&a.setupVals)
	}
	return a
}

func newSetupForm(vals *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target attendance percentage").
				Description("Most institutions require 75%.").
				Value(&vals.Target).
				Validate(func(s string) error {
					pct, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || pct <= 0 || pct > 100 {
						return fmt.Errorf("enter a number between 1 and 100")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
	)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}
		if key == "q" {
			return a, tea.Quit
		}

		a.note = ""

		// Tab shortcuts
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}
		if key == "tab" {
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if a.activeTab == 0 {
			return a.updateCalendar(key)
		}
		return a, nil
	}

	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}
	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

func (a *App) saveSetupConfig() {
	cfg, _ := config.Load()

	if pct, err := strconv.ParseFloat(strings.TrimSpace(a.setupVals.Target), 64); err == nil && pct > 0 && pct <= 100 {
		cfg.Attendance.TargetPercent = pct
		a.target = pct
	}
	cfg.Appearance.Theme = a.setupVals.Theme
	theme.SetActive(cfg.Appearance.Theme)

	if err := config.Save(cfg); err != nil {
		a.note = "config not saved: " + err.Error()
	}
}

func (a App) updateCalendar(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "left", "h":
		a.setCursor(a.cursor.AddDate(0, 0, -1))
	case "right", "l":
		a.setCursor(a.cursor.AddDate(0, 0, 1))
	case "down", "j":
		a.setCursor(a.cursor.AddDate(0, 0, 7))
	case "up", "k":
		a.setCursor(a.cursor.AddDate(0, 0, -7))
	case "[":
		a.month = a.month.AddDate(0, -1, 0)
		a.cursor = a.month
	case "]":
		a.month = a.month.AddDate(0, 1, 0)
		a.cursor = a.month
	case "t":
		now := time.Now()
		a.month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
		a.cursor = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	case "p":
		a.markCursorDay(model.StatusPresent)
	case "a":
		a.markCursorDay(model.StatusAbsent)
	case "n":
		a.markCursorDay(model.StatusCancelled)
	case "x":
		a.snap.AttendanceRecords = ledger.ClearDay(a.snap.AttendanceRecords, a.cursorDate())
		a.save()
	case "H":
		a.toggleSpecial(&a.snap.Settings.Holidays, "holiday")
	case "E":
		a.toggleSpecial(&a.snap.Settings.ExamDays, "exam day")
	}
	return a, nil
}

// setCursor moves the cursor, following it across month boundaries.
func (a *App) setCursor(d time.Time) {
	a.cursor = d
	a.month = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.Local)
}

func (a App) cursorDate() string {
	return a.cursor.Format(model.DateFormat)
}

func (a *App) markCursorDay(status model.Status) {
	day := model.WeekdayOf(a.cursor)
	if _, ok := a.snap.Timetable.DayFor(day); !ok {
		a.note = "no timetable for " + day.String()
		return
	}
	a.snap.AttendanceRecords = ledger.MarkAllDay(
		a.snap.AttendanceRecords, a.snap.Timetable, a.cursorDate(), day, status)
	a.save()
}

func (a *App) toggleSpecial(list *[]string, what string) {
	date := a.cursorDate()
	if model.WeekdayOf(a.cursor) == model.Sunday && what == "holiday" {
		a.note = "Sundays are always holidays"
		return
	}
	for i, d := range *list {
		if d == date {
			*list = append((*list)[:i:i], (*list)[i+1:]...)
			a.save()
			a.note = date + " is no longer a " + what
			return
		}
	}
	a.snap.AttendanceRecords = ledger.MarkAllDay(
		a.snap.AttendanceRecords, a.snap.Timetable, date, model.WeekdayOf(a.cursor), model.StatusCancelled)
	*list = append(*list, date)
	a.save()
	a.note = date + " is now a " + what
}

func (a *App) save() {
	if err := a.store.SaveSnapshot(a.profile.ID, a.snap); err != nil {
		a.note = "save failed: " + err.Error()
	}
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d)\n", a.width, minTerminalWidth)
	}
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	h := a.height

	monthStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	header := components.RenderTabBar(a.activeTab, w) + "\n " +
		monthStyle.Render(a.month.Format("January 2006"))

	statusBar := components.RenderStatusBar(w, a.profile.Name, a.note)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderCalendarTab()
	case 1:
		content = a.renderStatsTab()
	case 2:
		content = a.renderPredictorTab()
	}
	content = padHeight(truncateHeight(content, contentH), contentH)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"c s r", "Jump to tab"},
		{"h j k l", "Move around the calendar"},
		{"[ ]", "Previous / next month"},
		{"t", "Jump to today"},
		{"p a n", "Mark day present / absent / cancelled"},
		{"x", "Clear the day's records"},
		{"H E", "Toggle holiday / exam day"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, maxLines int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= maxLines {
		return s
	}
	return strings.Join(lines[:maxLines], "\n")
}

func padHeight(s string, minLines int) string {
	lines := strings.Count(s, "\n") + 1
	if lines >= minLines {
		return s
	}
	return s + strings.Repeat("\n", minLines-lines)
}
