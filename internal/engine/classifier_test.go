package engine

import (
	"testing"
	"time"

	"github.com/ThinkBotz/samattendx/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(model.DateFormat, s, time.Local)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

// mondayTimetable schedules four subject periods on Monday and nothing else.
func mondayTimetable() model.Timetable {
	return model.Timetable{Schedule: []model.DaySchedule{
		{Day: model.Monday, TimeSlots: []model.TimeSlot{
			{ID: "1", StartTime: "09:10", EndTime: "10:00", SubjectID: "math"},
			{ID: "2", StartTime: "10:00", EndTime: "10:50", SubjectID: "phys"},
			{ID: "3", StartTime: "10:50", EndTime: "11:40", SubjectID: "chem"},
			{ID: "4", StartTime: "11:40", EndTime: "12:30", SubjectID: "eng"},
		}},
	}}
}

func TestScheduledPeriods_SundayAlwaysZero(t *testing.T) {
	// Even a timetable that schedules Sunday must not make it a teaching day.
	tt := model.Timetable{Schedule: []model.DaySchedule{
		{Day: model.Sunday, TimeSlots: []model.TimeSlot{
			{ID: "1", SubjectID: "math"},
		}},
	}}

	sunday := mustDate(t, "2025-09-07")
	if got := ScheduledPeriods(sunday, tt, model.AcademicSettings{}); got != 0 {
		t.Fatalf("ScheduledPeriods(Sunday) = %d, want 0", got)
	}
	if IsTeachingDay(sunday, tt, model.AcademicSettings{}) {
		t.Fatal("IsTeachingDay(Sunday) = true, want false")
	}
}

func TestScheduledPeriods_HolidayAndExamDay(t *testing.T) {
	tt := mondayTimetable()
	set := model.AcademicSettings{
		Holidays: []string{"2025-09-08"},
		ExamDays: []string{"2025-09-15"},
	}

	if got := ScheduledPeriods(mustDate(t, "2025-09-08"), tt, set); got != 0 {
		t.Fatalf("holiday Monday = %d periods, want 0", got)
	}
	if got := ScheduledPeriods(mustDate(t, "2025-09-15"), tt, set); got != 0 {
		t.Fatalf("exam-day Monday = %d periods, want 0", got)
	}
	if got := ScheduledPeriods(mustDate(t, "2025-09-01"), tt, set); got != 4 {
		t.Fatalf("plain Monday = %d periods, want 4", got)
	}
}

func TestScheduledPeriods_RedundantSundayHoliday(t *testing.T) {
	// A Sunday that is also listed in holidays stays a non-teaching day.
	tt := mondayTimetable()
	set := model.AcademicSettings{Holidays: []string{"2025-09-07"}}

	if got := ScheduledPeriods(mustDate(t, "2025-09-07"), tt, set); got != 0 {
		t.Fatalf("Sunday+holiday = %d periods, want 0", got)
	}
}

func TestIsTeachingDay_AllFreeSlots(t *testing.T) {
	tt := model.Timetable{Schedule: []model.DaySchedule{
		{Day: model.Tuesday, TimeSlots: []model.TimeSlot{
			{ID: "1", StartTime: "09:10", EndTime: "10:00"},
			{ID: "2", StartTime: "10:00", EndTime: "10:50"},
		}},
	}}

	tuesday := mustDate(t, "2025-09-02")
	if IsTeachingDay(tuesday, tt, model.AcademicSettings{}) {
		t.Fatal("weekday with only free slots reported as teaching day")
	}
}

func TestScheduledPeriods_MissingDaySchedule(t *testing.T) {
	tt := mondayTimetable()
	wednesday := mustDate(t, "2025-09-03")
	if got := ScheduledPeriods(wednesday, tt, model.AcademicSettings{}); got != 0 {
		t.Fatalf("unscheduled weekday = %d periods, want 0", got)
	}
}

func TestMonthPeriods(t *testing.T) {
	tt := mondayTimetable()
	set := model.AcademicSettings{Holidays: []string{"2025-09-08"}}

	// September 2025 has Mondays on 1, 8, 15, 22, 29; one is a holiday.
	workingDays, totalPeriods, perDay := MonthPeriods("2025-09", tt, set)
	if workingDays != 4 {
		t.Fatalf("workingDays = %d, want 4", workingDays)
	}
	if totalPeriods != 16 {
		t.Fatalf("totalPeriods = %d, want 16", totalPeriods)
	}
	if len(perDay) != 4 {
		t.Fatalf("perDay has %d entries, want 4", len(perDay))
	}
	for i, p := range perDay {
		if p != 4 {
			t.Fatalf("perDay[%d] = %d, want 4", i, p)
		}
	}
}

func TestMonthPeriods_MalformedMonth(t *testing.T) {
	workingDays, totalPeriods, perDay := MonthPeriods("not-a-month", mondayTimetable(), model.AcademicSettings{})
	if workingDays != 0 || totalPeriods != 0 || perDay != nil {
		t.Fatalf("malformed month = (%d, %d, %v), want zeros", workingDays, totalPeriods, perDay)
	}
}

func TestRemainingScheduled(t *testing.T) {
	tt := mondayTimetable()

	// From Sep 10 through month end: Mondays 15, 22, 29 remain.
	got := RemainingScheduled(mustDate(t, "2025-09-10"), tt, model.AcademicSettings{})
	if got != 12 {
		t.Fatalf("RemainingScheduled = %d, want 12", got)
	}

	// From a Monday, that day itself counts.
	got = RemainingScheduled(mustDate(t, "2025-09-29"), tt, model.AcademicSettings{})
	if got != 4 {
		t.Fatalf("RemainingScheduled from last Monday = %d, want 4", got)
	}
}

func TestRemainingScheduled_SemesterBound(t *testing.T) {
	tt := mondayTimetable()
	set := model.AcademicSettings{SemesterEnd: "2025-09-20"}

	// Mondays 15 remains; 22 and 29 fall after semester end.
	got := RemainingScheduled(mustDate(t, "2025-09-10"), tt, set)
	if got != 4 {
		t.Fatalf("RemainingScheduled with semester end = %d, want 4", got)
	}
}

func TestSummarizeDay(t *testing.T) {
	tt := mondayTimetable()
	base := model.Snapshot{Timetable: tt}

	rec := func(slot string, status model.Status) model.AttendanceRecord {
		return model.AttendanceRecord{Date: "2025-09-01", Day: model.Monday, TimeSlotID: slot, Status: status}
	}

	cases := []struct {
		name    string
		date    string
		records []model.AttendanceRecord
		setting model.AcademicSettings
		want    model.DayMark
	}{
		{"sunday", "2025-09-07", nil, model.AcademicSettings{}, model.DayHoliday},
		{"explicit holiday", "2025-09-01", nil, model.AcademicSettings{Holidays: []string{"2025-09-01"}}, model.DayHoliday},
		{"exam day", "2025-09-01", nil, model.AcademicSettings{ExamDays: []string{"2025-09-01"}}, model.DayExam},
		{"no schedule", "2025-09-03", nil, model.AcademicSettings{}, model.DayNone},
		{"unmarked", "2025-09-01", nil, model.AcademicSettings{}, model.DayNone},
		{"all present", "2025-09-01", []model.AttendanceRecord{
			rec("1", model.StatusPresent), rec("2", model.StatusPresent),
			rec("3", model.StatusPresent), rec("4", model.StatusPresent),
		}, model.AcademicSettings{}, model.DayAllPresent},
		{"all absent", "2025-09-01", []model.AttendanceRecord{
			rec("1", model.StatusAbsent), rec("2", model.StatusAbsent),
			rec("3", model.StatusAbsent), rec("4", model.StatusAbsent),
		}, model.AcademicSettings{}, model.DayAllAbsent},
		{"mixed", "2025-09-01", []model.AttendanceRecord{
			rec("1", model.StatusPresent), rec("2", model.StatusAbsent),
		}, model.AcademicSettings{}, model.DayMixed},
		{"all cancelled", "2025-09-01", []model.AttendanceRecord{
			rec("1", model.StatusCancelled), rec("2", model.StatusCancelled),
			rec("3", model.StatusCancelled), rec("4", model.StatusCancelled),
		}, model.AcademicSettings{}, model.DayHoliday},
	}

	for _, tc := range cases {
		snap := base
		snap.AttendanceRecords = tc.records
		snap.Settings = tc.setting
		if got := SummarizeDay(mustDate(t, tc.date), snap); got != tc.want {
			t.Errorf("%s: SummarizeDay = %v, want %v", tc.name, got, tc.want)
		}
	}
}
