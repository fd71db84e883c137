// Package engine implements the attendance accounting core: calendar
// classification, monthly and overall aggregation, target projection, and
// skip budgeting. Every function is a pure computation over a snapshot.
package engine

import (
	"time"

	"github.com/ThinkBotz/samattendx/internal/model"
)

// ScheduledPeriods returns how many periods the timetable schedules for a
// date, after Sunday/holiday/exam-day exclusions. Free slots (no subject)
// never count.
func ScheduledPeriods(date time.Time, tt model.Timetable, set model.AcademicSettings) int {
	if date.Weekday() == time.Sunday {
		return 0
	}
	iso := date.Format(model.DateFormat)
	if set.IsHoliday(iso) || set.IsExamDay(iso) {
		return 0
	}
	day, ok := tt.DayFor(model.WeekdayOf(date))
	if !ok {
		return 0
	}
	n := 0
	for _, slot := range day.TimeSlots {
		if slot.SubjectID != "" {
			n++
		}
	}
	return n
}

// IsTeachingDay reports whether a date has at least one scheduled period.
// A weekday whose slots are all free is not a teaching day.
func IsTeachingDay(date time.Time, tt model.Timetable, set model.AcademicSettings) bool {
	return ScheduledPeriods(date, tt, set) > 0
}

// MonthPeriods walks every date of a month ("2025-08") and returns the
// count of teaching days, the total scheduled periods, and the per-day
// period counts of the teaching days in calendar order. A malformed month
// yields zeros rather than an error.
func MonthPeriods(month string, tt model.Timetable, set model.AcademicSettings) (workingDays, totalPeriods int, perDay []int) {
	first, err := time.ParseInLocation(model.MonthFormat, month, time.Local)
	if err != nil {
		return 0, 0, nil
	}
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		periods := ScheduledPeriods(d, tt, set)
		if periods > 0 {
			workingDays++
			totalPeriods += periods
			perDay = append(perDay, periods)
		}
	}
	return workingDays, totalPeriods, perDay
}

// RemainingScheduled sums scheduled periods from a date (inclusive)
// through the end of its month, clipped to the semester range when set.
func RemainingScheduled(from time.Time, tt model.Timetable, set model.AcademicSettings) int {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	end := time.Date(from.Year(), from.Month()+1, 0, 0, 0, 0, 0, from.Location())

	total := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !set.InSemester(d) {
			continue
		}
		total += ScheduledPeriods(d, tt, set)
	}
	return total
}

// SummarizeDay classifies a date for calendar display. Holiday and exam
// flags win over recorded attendance; otherwise the day's records decide
// between all-present, all-absent, and mixed.
func SummarizeDay(date time.Time, snap model.Snapshot) model.DayMark {
	iso := date.Format(model.DateFormat)
	if date.Weekday() == time.Sunday || snap.Settings.IsHoliday(iso) {
		return model.DayHoliday
	}
	if snap.Settings.IsExamDay(iso) {
		return model.DayExam
	}

	day, ok := snap.Timetable.DayFor(model.WeekdayOf(date))
	if !ok {
		return model.DayNone
	}
	slots := 0
	for _, slot := range day.TimeSlots {
		if slot.SubjectID != "" {
			slots++
		}
	}
	if slots == 0 {
		return model.DayNone
	}

	var present, absent, cancelled int
	for _, r := range snap.AttendanceRecords {
		if r.Date != iso {
			continue
		}
		switch r.Status {
		case model.StatusPresent:
			present++
		case model.StatusAbsent:
			absent++
		case model.StatusCancelled:
			cancelled++
		}
	}

	switch {
	case cancelled == slots:
		return model.DayHoliday
	case present == slots:
		return model.DayAllPresent
	case absent == slots:
		return model.DayAllAbsent
	case present > 0 && absent > 0:
		return model.DayMixed
	default:
		return model.DayNone
	}
}
