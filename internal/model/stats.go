package model

// MonthStats holds the attendance aggregate for one calendar month.
type MonthStats struct {
	Month            string
	ScheduledPeriods int
	Present          int
	Absent           int
	Cancelled        int
	Percentage       float64
}

// OverallStats holds the all-time aggregate across every month that has
// attendance records.
type OverallStats struct {
	Months           []string
	ScheduledPeriods int
	Present          int
	Absent           int
	Percentage       float64
}

// Projection answers "what does it take to hit a target percentage by
// month end" for one target, evaluated independently of any other target.
type Projection struct {
	Target          float64
	Present         int
	ScheduledSoFar  int
	Remaining       int
	TotalProjected  int
	RequiredPresent int
	NeedToAttend    int
	CanMiss         int
}

// SkipBudget holds the month's skippable-periods accounting for a target.
type SkipBudget struct {
	Target           float64
	WorkingDays      int
	TotalPeriods     int
	MinAttendPeriods int
	CanSkipPeriods   int
	AlreadyAbsent    int
	StillCanSkip     int
	FullDaysCanSkip  int
	// PerPeriodValue is how many percentage points one period is worth.
	PerPeriodValue float64
}

// DayMark classifies a calendar date for display purposes.
type DayMark int

const (
	DayNone DayMark = iota
	DayHoliday
	DayExam
	DayAllPresent
	DayAllAbsent
	DayMixed
)

func (d DayMark) String() string {
	switch d {
	case DayHoliday:
		return "holiday"
	case DayExam:
		return "exam"
	case DayAllPresent:
		return "present"
	case DayAllAbsent:
		return "absent"
	case DayMixed:
		return "mixed"
	default:
		return "none"
	}
}
