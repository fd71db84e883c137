// Package backup serializes snapshots to the portable JSON backup format
// and restores them, validating payloads before they reach the engine.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThinkBotz/samattendx/internal/model"
)

// payload is the backup file shape. Pointer fields distinguish an absent
// key from an empty value so imports can reject incomplete files.
type payload struct {
	Subjects          *[]model.Subject          `json:"subjects"`
	Timetable         *model.Timetable          `json:"timetable"`
	AttendanceRecords *[]model.AttendanceRecord `json:"attendanceRecords"`
	Settings          *model.AcademicSettings   `json:"settings,omitempty"`
	ExportDate        string                    `json:"exportDate,omitempty"`
}

// Export renders a snapshot as an indented JSON backup stamped with the
// export time. Nil collections are emitted as empty arrays so the file
// round-trips through strict parsers.
func Export(snap model.Snapshot, now time.Time) ([]byte, error) {
	snap = normalize(snap)
	p := payload{
		Subjects:          &snap.Subjects,
		Timetable:         &snap.Timetable,
		AttendanceRecords: &snap.AttendanceRecords,
		Settings:          &snap.Settings,
		ExportDate:        now.UTC().Format(time.RFC3339),
	}
	return json.MarshalIndent(p, "", "  ")
}

// Import parses a backup and merges it over the current snapshot.
// Payloads missing subjects, timetable, or attendanceRecords are
// rejected. Absent settings keep the current ones.
func Import(data []byte, current model.Snapshot) (model.Snapshot, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Snapshot{}, fmt.Errorf("parsing backup: %w", err)
	}

	switch {
	case p.Subjects == nil:
		return model.Snapshot{}, fmt.Errorf("invalid backup: missing subjects")
	case p.Timetable == nil:
		return model.Snapshot{}, fmt.Errorf("invalid backup: missing timetable")
	case p.AttendanceRecords == nil:
		return model.Snapshot{}, fmt.Errorf("invalid backup: missing attendanceRecords")
	}

	snap := model.Snapshot{
		Subjects:          *p.Subjects,
		Timetable:         *p.Timetable,
		AttendanceRecords: *p.AttendanceRecords,
		Settings:          current.Settings,
	}
	if p.Settings != nil {
		snap.Settings = *p.Settings
	}
	return normalize(snap), nil
}

func normalize(snap model.Snapshot) model.Snapshot {
	if snap.Subjects == nil {
		snap.Subjects = []model.Subject{}
	}
	if snap.AttendanceRecords == nil {
		snap.AttendanceRecords = []model.AttendanceRecord{}
	}
	if snap.Timetable.Schedule == nil {
		snap.Timetable.Schedule = []model.DaySchedule{}
	}
	if snap.Settings.Holidays == nil {
		snap.Settings.Holidays = []string{}
	}
	return snap
}
