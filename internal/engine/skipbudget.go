package engine

import (
	"math"
	"sort"
	"strings"

	"github.com/ThinkBotz/samattendx/internal/model"
)

// MaxFullDaysSkippable returns how many entire days a periods budget can
// cover, consuming the days with the most periods first. Greedy is
// optimal here: covering a heavier day first never leaves a lighter day
// uncoverable that would otherwise fit.
func MaxFullDaysSkippable(budget int, perDayPeriods []int) int {
	if budget <= 0 || len(perDayPeriods) == 0 {
		return 0
	}

	sorted := make([]int, len(perDayPeriods))
	copy(sorted, perDayPeriods)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	days := 0
	for _, periods := range sorted {
		if budget < periods {
			break
		}
		budget -= periods
		days++
	}
	return days
}

// MonthSkipBudget computes the month's skippable-periods accounting
// against a target percentage: the minimum periods to attend, how many
// may still be missed net of absences already taken, and how many whole
// days that budget covers.
func MonthSkipBudget(month string, snap model.Snapshot, target float64) model.SkipBudget {
	workingDays, totalPeriods, perDay := MonthPeriods(month, snap.Timetable, snap.Settings)

	budget := model.SkipBudget{
		Target:           target,
		WorkingDays:      workingDays,
		TotalPeriods:     totalPeriods,
		MinAttendPeriods: int(math.Ceil(target / 100 * float64(totalPeriods))),
	}
	budget.CanSkipPeriods = totalPeriods - budget.MinAttendPeriods

	prefix := month + "-"
	for _, r := range snap.AttendanceRecords {
		if r.Status == model.StatusAbsent && strings.HasPrefix(r.Date, prefix) {
			budget.AlreadyAbsent++
		}
	}

	budget.StillCanSkip = budget.CanSkipPeriods - budget.AlreadyAbsent
	if budget.StillCanSkip < 0 {
		budget.StillCanSkip = 0
	}
	budget.FullDaysCanSkip = MaxFullDaysSkippable(budget.StillCanSkip, perDay)

	if totalPeriods > 0 {
		budget.PerPeriodValue = math.Round(100.0/float64(totalPeriods)*1000) / 1000
	}
	return budget
}
