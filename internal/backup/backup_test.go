package backup

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ThinkBotz/samattendx/internal/engine"
	"github.com/ThinkBotz/samattendx/internal/model"
)

func sampleSnapshot() model.Snapshot {
	return model.Snapshot{
		Subjects: []model.Subject{
			{ID: "math", Name: "Mathematics", Color: "#4385BE", CreatedAt: time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)},
		},
		Timetable: model.Timetable{Schedule: []model.DaySchedule{
			{Day: model.Monday, TimeSlots: []model.TimeSlot{
				{ID: "1", StartTime: "09:10", EndTime: "10:00", SubjectID: "math"},
				{ID: "2", StartTime: "10:00", EndTime: "10:50", SubjectID: "math"},
				{ID: "3", StartTime: "10:50", EndTime: "11:40", SubjectID: "math"},
				{ID: "4", StartTime: "11:40", EndTime: "12:30", SubjectID: "math"},
			}},
		}},
		AttendanceRecords: []model.AttendanceRecord{
			{Date: "2025-09-08", Day: model.Monday, TimeSlotID: "1", SubjectID: "math", Status: model.StatusPresent},
			{Date: "2025-09-08", Day: model.Monday, TimeSlotID: "2", SubjectID: "math", Status: model.StatusPresent},
			{Date: "2025-09-08", Day: model.Monday, TimeSlotID: "3", SubjectID: "math", Status: model.StatusPresent},
			{Date: "2025-09-08", Day: model.Monday, TimeSlotID: "4", SubjectID: "math", Status: model.StatusAbsent},
		},
		Settings: model.AcademicSettings{
			Holidays: []string{"2025-09-01", "2025-09-15", "2025-09-22", "2025-09-29"},
		},
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	snap := sampleSnapshot()

	data, err := Export(snap, time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	restored, err := Import(data, model.Snapshot{})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if !reflect.DeepEqual(restored, snap) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", restored, snap)
	}

	// The round trip must preserve computed stats exactly.
	before := engine.MonthlyStats("2025-09", snap, engine.DenominatorScheduled)
	after := engine.MonthlyStats("2025-09", restored, engine.DenominatorScheduled)
	if before != after {
		t.Fatalf("monthly stats changed across round trip:\n got %+v\nwant %+v", after, before)
	}
	overallBefore := engine.OverallStats(snap, engine.DenominatorScheduled, false)
	overallAfter := engine.OverallStats(restored, engine.DenominatorScheduled, false)
	if !reflect.DeepEqual(overallBefore, overallAfter) {
		t.Fatalf("overall stats changed across round trip:\n got %+v\nwant %+v", overallAfter, overallBefore)
	}
}

func TestExport_WeekdayAndStatusAsStrings(t *testing.T) {
	data, err := Export(sampleSnapshot(), time.Now())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"day": "Monday"`) {
		t.Fatal("weekday not exported by name")
	}
	if !strings.Contains(s, `"status": "present"`) {
		t.Fatal("status not exported as string")
	}
	if !strings.Contains(s, `"exportDate"`) {
		t.Fatal("export stamp missing")
	}
}

func TestImport_RejectsIncompletePayloads(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"missing subjects", `{"timetable":{"schedule":[]},"attendanceRecords":[]}`},
		{"missing timetable", `{"subjects":[],"attendanceRecords":[]}`},
		{"missing records", `{"subjects":[],"timetable":{"schedule":[]}}`},
		{"not json", `hello`},
	}

	for _, tc := range cases {
		if _, err := Import([]byte(tc.json), model.Snapshot{}); err == nil {
			t.Errorf("%s: import accepted an invalid payload", tc.name)
		}
	}
}

func TestImport_KeepsCurrentSettingsWhenAbsent(t *testing.T) {
	current := model.Snapshot{
		Settings: model.AcademicSettings{Holidays: []string{"2025-09-01"}, SemesterEnd: "2025-12-20"},
	}

	snap, err := Import([]byte(`{"subjects":[],"timetable":{"schedule":[]},"attendanceRecords":[]}`), current)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if snap.Settings.SemesterEnd != "2025-12-20" {
		t.Fatalf("settings not kept: %+v", snap.Settings)
	}
	if len(snap.Settings.Holidays) != 1 {
		t.Fatalf("holidays not kept: %v", snap.Settings.Holidays)
	}
}

func TestImport_EmptyCollectionsAccepted(t *testing.T) {
	snap, err := Import([]byte(`{"subjects":[],"timetable":{"schedule":[]},"attendanceRecords":[]}`), model.Snapshot{})
	if err != nil {
		t.Fatalf("Import of empty-but-present collections: %v", err)
	}
	if snap.Subjects == nil || snap.AttendanceRecords == nil {
		t.Fatal("collections not normalized to empty slices")
	}
}
