package store

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ThinkBotz/samattendx/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "attend.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestActiveProfile_FirstRunSeedsDefault(t *testing.T) {
	s := openTestStore(t)

	p, err := s.ActiveProfile()
	if err != nil {
		t.Fatalf("ActiveProfile: %v", err)
	}
	if p.Name != "Profile 1" {
		t.Fatalf("seeded profile name = %q, want Profile 1", p.Name)
	}

	snap, err := s.LoadSnapshot(p.ID)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(snap.Timetable.Schedule) != 6 {
		t.Fatalf("default timetable has %d days, want Monday-Saturday", len(snap.Timetable.Schedule))
	}

	// A second call returns the same profile, not another seed.
	again, err := s.ActiveProfile()
	if err != nil {
		t.Fatalf("ActiveProfile again: %v", err)
	}
	if again.ID != p.ID {
		t.Fatalf("active profile changed: %s vs %s", again.ID, p.ID)
	}
}

func TestSaveLoadSnapshot_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	p, err := s.ActiveProfile()
	if err != nil {
		t.Fatalf("ActiveProfile: %v", err)
	}

	criteria := 80.0
	snap := model.Snapshot{
		Subjects: []model.Subject{
			{ID: "math", Name: "Mathematics", Color: "#4385BE", Criteria: &criteria},
		},
		Timetable: model.Timetable{Schedule: []model.DaySchedule{
			{Day: model.Monday, TimeSlots: []model.TimeSlot{
				{ID: "1", StartTime: "09:10", EndTime: "10:00", SubjectID: "math"},
				{ID: "2", StartTime: "10:00", EndTime: "10:50"},
			}},
		}},
		AttendanceRecords: []model.AttendanceRecord{
			{Date: "2025-09-08", Day: model.Monday, TimeSlotID: "1", SubjectID: "math", Status: model.StatusPresent},
		},
		Settings: model.AcademicSettings{
			Holidays:      []string{"2025-09-15"},
			ExamDays:      []string{"2025-09-22"},
			SemesterStart: "2025-08-01",
			SemesterEnd:   "2025-12-20",
		},
	}

	if err := s.SaveSnapshot(p.ID, snap); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	loaded, err := s.LoadSnapshot(p.ID)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	if len(loaded.Subjects) != 1 || loaded.Subjects[0].Name != "Mathematics" {
		t.Fatalf("subjects = %+v", loaded.Subjects)
	}
	if loaded.Subjects[0].Criteria == nil || *loaded.Subjects[0].Criteria != 80 {
		t.Fatalf("criteria did not round trip: %v", loaded.Subjects[0].Criteria)
	}
	if !reflect.DeepEqual(loaded.Timetable, snap.Timetable) {
		t.Fatalf("timetable mismatch:\n got %+v\nwant %+v", loaded.Timetable, snap.Timetable)
	}
	if !reflect.DeepEqual(loaded.AttendanceRecords, snap.AttendanceRecords) {
		t.Fatalf("records mismatch:\n got %+v\nwant %+v", loaded.AttendanceRecords, snap.AttendanceRecords)
	}
	if !reflect.DeepEqual(loaded.Settings, snap.Settings) {
		t.Fatalf("settings mismatch:\n got %+v\nwant %+v", loaded.Settings, snap.Settings)
	}

	// Saving again replaces rather than accumulates.
	snap.AttendanceRecords = nil
	if err := s.SaveSnapshot(p.ID, snap); err != nil {
		t.Fatalf("SaveSnapshot replace: %v", err)
	}
	loaded, err = s.LoadSnapshot(p.ID)
	if err != nil {
		t.Fatalf("LoadSnapshot after replace: %v", err)
	}
	if len(loaded.AttendanceRecords) != 0 {
		t.Fatalf("records survived replacement: %v", loaded.AttendanceRecords)
	}
}

func TestProfileLifecycle(t *testing.T) {
	s := openTestStore(t)
	first, err := s.ActiveProfile()
	if err != nil {
		t.Fatalf("ActiveProfile: %v", err)
	}

	second, err := s.CreateProfile("Roommate", "")
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	// Creating a profile activates it.
	active, err := s.ActiveProfile()
	if err != nil {
		t.Fatalf("ActiveProfile: %v", err)
	}
	if active.ID != second.ID {
		t.Fatalf("active = %s, want newly created %s", active.ID, second.ID)
	}

	if err := s.SwitchProfile(first.ID); err != nil {
		t.Fatalf("SwitchProfile: %v", err)
	}
	if err := s.SwitchProfile("nope"); err == nil {
		t.Fatal("switching to unknown profile did not error")
	}

	if err := s.RenameProfile(second.ID, "Flatmate"); err != nil {
		t.Fatalf("RenameProfile: %v", err)
	}
	profiles, err := s.Profiles()
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("profile count = %d, want 2", len(profiles))
	}

	if err := s.DeleteProfile(second.ID); err != nil {
		t.Fatalf("DeleteProfile: %v", err)
	}
	if err := s.DeleteProfile(first.ID); !errors.Is(err, ErrLastProfile) {
		t.Fatalf("deleting last profile: %v, want ErrLastProfile", err)
	}
}

func TestDeleteActiveProfile_PromotesSurvivor(t *testing.T) {
	s := openTestStore(t)
	first, err := s.ActiveProfile()
	if err != nil {
		t.Fatalf("ActiveProfile: %v", err)
	}
	second, err := s.CreateProfile("Second", "")
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	// second is active; deleting it must hand the torch back.
	if err := s.DeleteProfile(second.ID); err != nil {
		t.Fatalf("DeleteProfile: %v", err)
	}
	active, err := s.ActiveProfile()
	if err != nil {
		t.Fatalf("ActiveProfile: %v", err)
	}
	if active.ID != first.ID {
		t.Fatalf("active after delete = %s, want %s", active.ID, first.ID)
	}
}
