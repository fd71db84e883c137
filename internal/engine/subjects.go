package engine

import "github.com/ThinkBotz/samattendx/internal/model"

// SubjectStat is a per-subject attendance tally across the whole
// snapshot. Percentages use taken periods as the denominator, since a
// subject's scheduled count only exists day by day.
type SubjectStat struct {
	Present    int
	Absent     int
	Cancelled  int
	Taken      int
	Percentage float64
}

// SubjectStats groups attendance records by subject id.
func SubjectStats(snap model.Snapshot) map[string]SubjectStat {
	stats := make(map[string]SubjectStat)
	for _, rec := range snap.AttendanceRecords {
		st := stats[rec.SubjectID]
		switch rec.Status {
		case model.StatusPresent:
			st.Present++
		case model.StatusAbsent:
			st.Absent++
		case model.StatusCancelled:
			st.Cancelled++
		}
		stats[rec.SubjectID] = st
	}
	for id, st := range stats {
		st.Taken = st.Present + st.Absent
		st.Percentage = percentage(st.Present, st.Taken)
		stats[id] = st
	}
	return stats
}
