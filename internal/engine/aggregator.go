package engine

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/ThinkBotz/samattendx/internal/model"
)

// DenominatorPolicy selects what a percentage is measured against.
type DenominatorPolicy int

const (
	// DenominatorScheduled divides present by every period the timetable
	// scheduled for the month, marked or not. The default: un-marked
	// periods depress the percentage until they are marked.
	DenominatorScheduled DenominatorPolicy = iota
	// DenominatorTaken divides present by present+absent only, ignoring
	// periods where no attendance was recorded.
	DenominatorTaken
)

// ParsePolicy maps the config strings "scheduled" and "taken" to a
// policy, defaulting to scheduled.
func ParsePolicy(s string) DenominatorPolicy {
	if strings.EqualFold(s, "taken") {
		return DenominatorTaken
	}
	return DenominatorScheduled
}

// MonthlyStats aggregates one month's attendance. The percentage is
// rounded to two decimals and clamped to [0, 100]; a month with a zero
// denominator yields 0 rather than a division fault.
func MonthlyStats(month string, snap model.Snapshot, pol DenominatorPolicy) model.MonthStats {
	stats := model.MonthStats{Month: month}

	prefix := month + "-"
	for _, r := range snap.AttendanceRecords {
		if !strings.HasPrefix(r.Date, prefix) {
			continue
		}
		switch r.Status {
		case model.StatusPresent:
			stats.Present++
		case model.StatusAbsent:
			stats.Absent++
		case model.StatusCancelled:
			stats.Cancelled++
		}
	}

	_, totalPeriods, _ := MonthPeriods(month, snap.Timetable, snap.Settings)
	stats.ScheduledPeriods = totalPeriods

	denominator := totalPeriods
	if pol == DenominatorTaken {
		denominator = stats.Present + stats.Absent
	}
	stats.Percentage = percentage(stats.Present, denominator)
	return stats
}

// OverallStats aggregates across every month that holds at least one
// non-cancelled record. When includeEmptyMonths is set and a semester
// range is configured, record-free months inside the semester also feed
// the denominator.
func OverallStats(snap model.Snapshot, pol DenominatorPolicy, includeEmptyMonths bool) model.OverallStats {
	var stats model.OverallStats

	monthSet := make(map[string]struct{})
	for _, r := range snap.AttendanceRecords {
		if r.Status == model.StatusCancelled {
			continue
		}
		if len(r.Date) >= len(model.MonthFormat) {
			monthSet[r.Date[:len(model.MonthFormat)]] = struct{}{}
		}
		switch r.Status {
		case model.StatusPresent:
			stats.Present++
		case model.StatusAbsent:
			stats.Absent++
		}
	}

	if includeEmptyMonths {
		for _, m := range semesterMonths(snap.Settings) {
			monthSet[m] = struct{}{}
		}
	}

	months := make([]string, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Strings(months)
	stats.Months = months

	for _, m := range months {
		_, totalPeriods, _ := MonthPeriods(m, snap.Timetable, snap.Settings)
		stats.ScheduledPeriods += totalPeriods
	}

	denominator := stats.ScheduledPeriods
	if pol == DenominatorTaken {
		denominator = stats.Present + stats.Absent
	}
	stats.Percentage = percentage(stats.Present, denominator)
	return stats
}

// LatestMonthWithRecords returns the most recent month holding a
// non-cancelled record, or "" when the ledger is empty. The stats views
// fall back to it when the current month has nothing marked yet.
func LatestMonthWithRecords(snap model.Snapshot) string {
	latest := ""
	for _, r := range snap.AttendanceRecords {
		if r.Status == model.StatusCancelled || len(r.Date) < len(model.MonthFormat) {
			continue
		}
		if m := r.Date[:len(model.MonthFormat)]; m > latest {
			latest = m
		}
	}
	return latest
}

// semesterMonths enumerates the months spanned by the configured semester
// range. An open-ended range contributes nothing.
func semesterMonths(set model.AcademicSettings) []string {
	if set.SemesterStart == "" || set.SemesterEnd == "" {
		return nil
	}
	start, err := time.ParseInLocation(model.DateFormat, set.SemesterStart, time.Local)
	if err != nil {
		return nil
	}
	end, err := time.ParseInLocation(model.DateFormat, set.SemesterEnd, time.Local)
	if err != nil {
		return nil
	}

	var months []string
	for m := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.Local); !m.After(end); m = m.AddDate(0, 1, 0) {
		months = append(months, m.Format(model.MonthFormat))
	}
	return months
}

// percentage computes present/total*100 rounded to two decimals and
// clamped to at most 100. A zero total yields 0.
func percentage(present, total int) float64 {
	if total <= 0 {
		return 0
	}
	pct := float64(present) / float64(total) * 100
	if pct > 100 {
		pct = 100
	}
	return math.Round(pct*100) / 100
}
