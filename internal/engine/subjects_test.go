package engine

import (
	"testing"

	"github.com/ThinkBotz/samattendx/internal/model"
)

func TestSubjectStats(t *testing.T) {
	snap := model.Snapshot{
		AttendanceRecords: []model.AttendanceRecord{
			{Date: "2025-09-08", TimeSlotID: "1", SubjectID: "math", Status: model.StatusPresent},
			{Date: "2025-09-09", TimeSlotID: "1", SubjectID: "math", Status: model.StatusPresent},
			{Date: "2025-09-10", TimeSlotID: "1", SubjectID: "math", Status: model.StatusAbsent},
			{Date: "2025-09-11", TimeSlotID: "1", SubjectID: "math", Status: model.StatusCancelled},
			{Date: "2025-09-08", TimeSlotID: "2", SubjectID: "phys", Status: model.StatusAbsent},
		},
	}

	stats := SubjectStats(snap)

	math := stats["math"]
	if math.Present != 2 || math.Absent != 1 || math.Cancelled != 1 {
		t.Fatalf("math tally = %+v", math)
	}
	if math.Taken != 3 {
		t.Fatalf("math Taken = %d, want 3 (cancelled excluded)", math.Taken)
	}
	if math.Percentage != 66.67 {
		t.Fatalf("math Percentage = %.2f, want 66.67", math.Percentage)
	}

	phys := stats["phys"]
	if phys.Percentage != 0 {
		t.Fatalf("phys Percentage = %.2f, want 0", phys.Percentage)
	}
}

func TestSubjectStats_Empty(t *testing.T) {
	stats := SubjectStats(model.Snapshot{})
	if len(stats) != 0 {
		t.Fatalf("expected empty map, got %d entries", len(stats))
	}
}
