// Package ledger holds the per-period attendance facts and their write
// semantics. Every operation takes the current record set and returns an
// updated one; callers swap the new set into their snapshot.
package ledger

import (
	"time"

	"github.com/ThinkBotz/samattendx/internal/model"
)

// Mark upserts one attendance record keyed by (date, timeSlotID).
// Last write wins; marking the same period twice with the same arguments
// leaves the ledger unchanged after the first call.
func Mark(records []model.AttendanceRecord, rec model.AttendanceRecord) []model.AttendanceRecord {
	for i, r := range records {
		if r.Date == rec.Date && r.TimeSlotID == rec.TimeSlotID {
			out := make([]model.AttendanceRecord, len(records))
			copy(out, records)
			out[i] = rec
			return out
		}
	}
	out := make([]model.AttendanceRecord, len(records), len(records)+1)
	copy(out, records)
	return append(out, rec)
}

// Clear removes the record for (date, timeSlotID). No-op if absent.
func Clear(records []model.AttendanceRecord, date, timeSlotID string) []model.AttendanceRecord {
	out := make([]model.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if r.Date == date && r.TimeSlotID == timeSlotID {
			continue
		}
		out = append(out, r)
	}
	return out
}

// MarkAllDay replaces every record for a date with one record per
// subject-bearing slot of the weekday's schedule, all carrying status.
// This is what holiday and exam-day toggles use to write cancelled en
// masse. A weekday absent from the timetable leaves the ledger untouched.
func MarkAllDay(records []model.AttendanceRecord, tt model.Timetable, date string, day model.Weekday, status model.Status) []model.AttendanceRecord {
	sched, ok := tt.DayFor(day)
	if !ok {
		return records
	}

	out := ClearDay(records, date)
	for _, slot := range sched.TimeSlots {
		if slot.SubjectID == "" {
			continue
		}
		out = append(out, model.AttendanceRecord{
			Date:       date,
			Day:        day,
			TimeSlotID: slot.ID,
			SubjectID:  slot.SubjectID,
			Status:     status,
		})
	}
	return out
}

// ClearDay removes every record for a date and only for that date.
func ClearDay(records []model.AttendanceRecord, date string) []model.AttendanceRecord {
	out := make([]model.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if r.Date != date {
			out = append(out, r)
		}
	}
	return out
}

// BulkMark applies MarkAllDay across many dates. Sundays, explicit
// holidays, and dates outside the semester range are silently skipped,
// as are dates that do not parse.
func BulkMark(records []model.AttendanceRecord, tt model.Timetable, set model.AcademicSettings, dates []string, status model.Status) []model.AttendanceRecord {
	out := records
	for _, date := range eligibleDates(set, dates) {
		day, _ := time.ParseInLocation(model.DateFormat, date, time.Local)
		out = MarkAllDay(out, tt, date, model.WeekdayOf(day), status)
	}
	return out
}

// BulkClear removes every record for the given dates, filtered the same
// way as BulkMark.
func BulkClear(records []model.AttendanceRecord, set model.AcademicSettings, dates []string) []model.AttendanceRecord {
	out := records
	for _, date := range eligibleDates(set, dates) {
		out = ClearDay(out, date)
	}
	return out
}

// Find returns the record for (date, timeSlotID) if one exists.
func Find(records []model.AttendanceRecord, date, timeSlotID string) (model.AttendanceRecord, bool) {
	for _, r := range records {
		if r.Date == date && r.TimeSlotID == timeSlotID {
			return r, true
		}
	}
	return model.AttendanceRecord{}, false
}

// ForDate returns every record for a date.
func ForDate(records []model.AttendanceRecord, date string) []model.AttendanceRecord {
	var out []model.AttendanceRecord
	for _, r := range records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

// eligibleDates filters bulk targets: parseable, not a Sunday, not an
// explicit holiday, and inside the semester range when one is set.
func eligibleDates(set model.AcademicSettings, dates []string) []string {
	var out []string
	for _, date := range dates {
		d, err := time.ParseInLocation(model.DateFormat, date, time.Local)
		if err != nil {
			continue
		}
		if d.Weekday() == time.Sunday || set.IsHoliday(date) || !set.InSemester(d) {
			continue
		}
		out = append(out, date)
	}
	return out
}
