package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Weekday identifies one of the seven days of the week. Values match
// time.Weekday so conversions are free in both directions.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// WeekdayOf returns the Weekday for a calendar date.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday())
}

// ParseWeekday converts a weekday name ("Monday", case-insensitive) to
// a Weekday.
func ParseWeekday(s string) (Weekday, error) {
	for i, name := range weekdayNames {
		if strings.EqualFold(name, s) {
			return Weekday(i), nil
		}
	}
	return Sunday, fmt.Errorf("unknown weekday %q", s)
}

// MarshalJSON emits the weekday name so snapshots keep the exported
// backup shape ("day": "Monday").
func (w Weekday) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

func (w *Weekday) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseWeekday(s)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
