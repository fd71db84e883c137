package ledger

import (
	"reflect"
	"testing"

	"github.com/ThinkBotz/samattendx/internal/model"
)

func testTimetable() model.Timetable {
	return model.Timetable{Schedule: []model.DaySchedule{
		{Day: model.Monday, TimeSlots: []model.TimeSlot{
			{ID: "1", SubjectID: "math"},
			{ID: "2", SubjectID: "phys"},
			{ID: "3"}, // free period, never written
		}},
		{Day: model.Tuesday, TimeSlots: []model.TimeSlot{
			{ID: "1", SubjectID: "chem"},
		}},
	}}
}

func rec(date, slot string, status model.Status) model.AttendanceRecord {
	return model.AttendanceRecord{
		Date: date, Day: model.Monday, TimeSlotID: slot, SubjectID: "math", Status: status,
	}
}

func TestMark_Idempotent(t *testing.T) {
	r := rec("2025-09-08", "1", model.StatusPresent)

	once := Mark(nil, r)
	twice := Mark(once, r)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("marking twice diverged: %v vs %v", once, twice)
	}
	if len(twice) != 1 {
		t.Fatalf("ledger has %d records, want 1", len(twice))
	}
}

func TestMark_ReplacesByKey(t *testing.T) {
	records := Mark(nil, rec("2025-09-08", "1", model.StatusPresent))
	records = Mark(records, rec("2025-09-08", "1", model.StatusAbsent))

	if len(records) != 1 {
		t.Fatalf("ledger has %d records, want upsert to keep 1", len(records))
	}
	if records[0].Status != model.StatusAbsent {
		t.Fatalf("status = %s, want last write to win", records[0].Status)
	}
}

func TestMark_DoesNotMutateInput(t *testing.T) {
	original := []model.AttendanceRecord{rec("2025-09-08", "1", model.StatusPresent)}
	Mark(original, rec("2025-09-08", "1", model.StatusAbsent))

	if original[0].Status != model.StatusPresent {
		t.Fatal("Mark mutated the caller's record slice")
	}
}

func TestClear(t *testing.T) {
	records := []model.AttendanceRecord{
		rec("2025-09-08", "1", model.StatusPresent),
		rec("2025-09-08", "2", model.StatusPresent),
	}

	records = Clear(records, "2025-09-08", "1")
	if len(records) != 1 || records[0].TimeSlotID != "2" {
		t.Fatalf("after clear: %v, want only slot 2", records)
	}

	// Clearing an absent key is a no-op.
	if got := Clear(records, "2025-09-08", "9"); len(got) != 1 {
		t.Fatalf("clear of missing key changed ledger: %v", got)
	}
}

func TestMarkAllDay(t *testing.T) {
	tt := testTimetable()

	// Pre-existing record for the date must be replaced, not duplicated.
	records := []model.AttendanceRecord{rec("2025-09-08", "1", model.StatusAbsent)}
	records = MarkAllDay(records, tt, "2025-09-08", model.Monday, model.StatusCancelled)

	if len(records) != 2 {
		t.Fatalf("ledger has %d records, want one per subject slot", len(records))
	}
	for _, r := range records {
		if r.Status != model.StatusCancelled {
			t.Fatalf("slot %s status = %s, want cancelled", r.TimeSlotID, r.Status)
		}
		if r.TimeSlotID == "3" {
			t.Fatal("free period was written")
		}
	}
}

func TestMarkAllDay_UnknownWeekday(t *testing.T) {
	records := []model.AttendanceRecord{rec("2025-09-08", "1", model.StatusPresent)}
	got := MarkAllDay(records, testTimetable(), "2025-09-10", model.Wednesday, model.StatusPresent)
	if !reflect.DeepEqual(got, records) {
		t.Fatalf("unknown weekday changed ledger: %v", got)
	}
}

func TestClearDay_OnlyThatDate(t *testing.T) {
	records := []model.AttendanceRecord{
		rec("2025-09-08", "1", model.StatusPresent),
		rec("2025-09-08", "2", model.StatusAbsent),
		rec("2025-09-09", "1", model.StatusPresent),
	}

	records = ClearDay(records, "2025-09-08")
	if len(records) != 1 {
		t.Fatalf("ledger has %d records, want 1", len(records))
	}
	if records[0].Date != "2025-09-09" {
		t.Fatalf("surviving record date = %s, want 2025-09-09", records[0].Date)
	}
}

func TestBulkMark_FiltersIneligibleDates(t *testing.T) {
	tt := testTimetable()
	set := model.AcademicSettings{
		Holidays:      []string{"2025-09-15"},
		SemesterStart: "2025-09-01",
		SemesterEnd:   "2025-09-30",
	}

	dates := []string{
		"2025-09-08", // Monday, eligible
		"2025-09-07", // Sunday, skipped
		"2025-09-15", // holiday, skipped
		"2025-10-06", // outside semester, skipped
		"garbage",    // unparseable, skipped
	}

	records := BulkMark(nil, tt, set, dates, model.StatusPresent)
	if len(records) != 2 {
		t.Fatalf("ledger has %d records, want 2 (the Monday's subject slots)", len(records))
	}
	for _, r := range records {
		if r.Date != "2025-09-08" {
			t.Fatalf("record landed on %s, want 2025-09-08 only", r.Date)
		}
	}
}

func TestBulkClear(t *testing.T) {
	set := model.AcademicSettings{}
	records := []model.AttendanceRecord{
		rec("2025-09-08", "1", model.StatusPresent),
		rec("2025-09-09", "1", model.StatusPresent),
	}

	// Sunday target is filtered, so nothing is cleared for it.
	records = BulkClear(records, set, []string{"2025-09-08", "2025-09-07"})
	if len(records) != 1 || records[0].Date != "2025-09-09" {
		t.Fatalf("after bulk clear: %v, want only 2025-09-09", records)
	}
}

func TestFind(t *testing.T) {
	records := []model.AttendanceRecord{rec("2025-09-08", "1", model.StatusPresent)}

	if _, ok := Find(records, "2025-09-08", "2"); ok {
		t.Fatal("found a record for an unmarked slot")
	}
	got, ok := Find(records, "2025-09-08", "1")
	if !ok || got.Status != model.StatusPresent {
		t.Fatalf("Find = (%v, %v), want the present record", got, ok)
	}
}
