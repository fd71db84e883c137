// Package model defines domain types for samattendx timetables and attendance.
package model

import "time"

// DateFormat is the wire format for calendar dates ("2025-08-31").
const DateFormat = "2006-01-02"

// MonthFormat is the wire format for month keys ("2025-08").
const MonthFormat = "2006-01"

// Status is the attendance outcome recorded for one period.
type Status string

const (
	// StatusPresent means the student attended the period.
	StatusPresent Status = "present"
	// StatusAbsent means the student missed a period where attendance was taken.
	StatusAbsent Status = "absent"
	// StatusCancelled means no attendance was taken (holiday or exam period).
	// Cancelled periods count toward neither numerator nor denominator.
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the three recordable statuses.
func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusCancelled
}

// Subject is one course a student takes.
type Subject struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	// Criteria is an optional per-subject target percentage (0-100).
	Criteria *float64 `json:"criteria,omitempty"`
}

// TimeSlot is one scheduled teaching unit on a weekday. A slot with no
// SubjectID is a free period and is never counted as scheduled.
type TimeSlot struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	SubjectID string `json:"subjectId,omitempty"`
}

// DaySchedule lists the slots for one weekday.
type DaySchedule struct {
	Day       Weekday    `json:"day"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// Timetable is the weekly schedule, at most one DaySchedule per weekday.
type Timetable struct {
	Schedule []DaySchedule `json:"schedule"`
}

// DayFor returns the schedule for a weekday, or false if the timetable
// has no entry for it.
func (t Timetable) DayFor(day Weekday) (DaySchedule, bool) {
	for _, d := range t.Schedule {
		if d.Day == day {
			return d, true
		}
	}
	return DaySchedule{}, false
}

// AttendanceRecord is one per-period attendance fact. At most one record
// exists per (Date, TimeSlotID); writes replace.
type AttendanceRecord struct {
	Date       string  `json:"date"`
	Day        Weekday `json:"day"`
	TimeSlotID string  `json:"timeSlotId"`
	SubjectID  string  `json:"subjectId"`
	Status     Status  `json:"status"`
}

// AcademicSettings holds per-date overrides layered on top of the weekly
// timetable. Sundays are an implicit, non-overridable holiday.
type AcademicSettings struct {
	Holidays      []string `json:"holidays"`
	ExamDays      []string `json:"examDays,omitempty"`
	SemesterStart string   `json:"semesterStart,omitempty"`
	SemesterEnd   string   `json:"semesterEnd,omitempty"`
}

// IsHoliday reports whether the ISO date is an explicit holiday.
func (s AcademicSettings) IsHoliday(iso string) bool {
	for _, h := range s.Holidays {
		if h == iso {
			return true
		}
	}
	return false
}

// IsExamDay reports whether the ISO date is flagged as an exam day.
// Exam days take no attendance but are labeled differently from holidays.
func (s AcademicSettings) IsExamDay(iso string) bool {
	for _, e := range s.ExamDays {
		if e == iso {
			return true
		}
	}
	return false
}

// InSemester reports whether a date falls inside the configured semester
// range. Unset bounds are open.
func (s AcademicSettings) InSemester(t time.Time) bool {
	if s.SemesterStart != "" {
		if start, err := time.ParseInLocation(DateFormat, s.SemesterStart, t.Location()); err == nil && t.Before(start) {
			return false
		}
	}
	if s.SemesterEnd != "" {
		if end, err := time.ParseInLocation(DateFormat, s.SemesterEnd, t.Location()); err == nil && t.After(end) {
			return false
		}
	}
	return true
}

// Snapshot is one profile's complete state. Engine functions take a
// Snapshot by value and never mutate it; ledger operations return
// updated record slices instead of writing in place.
type Snapshot struct {
	Subjects          []Subject          `json:"subjects"`
	Timetable         Timetable          `json:"timetable"`
	AttendanceRecords []AttendanceRecord `json:"attendanceRecords"`
	Settings          AcademicSettings   `json:"settings"`
}

// SubjectName resolves a subject ID to its display name, degrading to a
// placeholder when the subject no longer exists.
func (s Snapshot) SubjectName(id string) string {
	for _, sub := range s.Subjects {
		if sub.ID == id {
			return sub.Name
		}
	}
	return "Unknown Subject"
}

// Profile is one user of the app. Each profile owns an independent Snapshot.
type Profile struct {
	ID        string
	Name      string
	AvatarURL string
	CreatedAt time.Time
}

// DefaultTimetable returns the out-of-the-box weekly schedule:
// Monday through Saturday, seven free periods each.
func DefaultTimetable() Timetable {
	days := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
	schedule := make([]DaySchedule, 0, len(days))
	for _, day := range days {
		schedule = append(schedule, DaySchedule{Day: day, TimeSlots: defaultSlots()})
	}
	return Timetable{Schedule: schedule}
}

func defaultSlots() []TimeSlot {
	return []TimeSlot{
		{ID: "1", StartTime: "09:10", EndTime: "10:00"},
		{ID: "2", StartTime: "10:00", EndTime: "10:50"},
		{ID: "3", StartTime: "10:50", EndTime: "11:40"},
		{ID: "4", StartTime: "11:40", EndTime: "12:30"},
		{ID: "5", StartTime: "13:20", EndTime: "14:10"},
		{ID: "6", StartTime: "14:10", EndTime: "15:00"},
		{ID: "7", StartTime: "15:00", EndTime: "15:50"},
	}
}
