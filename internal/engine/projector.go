package engine

import (
	"math"
	"strings"
	"time"

	"github.com/ThinkBotz/samattendx/internal/model"
)

// Project computes what it takes to finish the month at or above a target
// percentage, given this month's record so far and the periods still
// scheduled. Holds an exact invariant: canMiss is the slack left after
// the absences already taken.
func Project(target float64, present, scheduledSoFar, remaining int) model.Projection {
	totalProjected := scheduledSoFar + remaining
	requiredPresent := int(math.Ceil(target / 100 * float64(totalProjected)))

	needToAttend := requiredPresent - present
	if needToAttend < 0 {
		needToAttend = 0
	}
	canMiss := totalProjected - requiredPresent - (scheduledSoFar - present)
	if canMiss < 0 {
		canMiss = 0
	}

	return model.Projection{
		Target:          target,
		Present:         present,
		ScheduledSoFar:  scheduledSoFar,
		Remaining:       remaining,
		TotalProjected:  totalProjected,
		RequiredPresent: requiredPresent,
		NeedToAttend:    needToAttend,
		CanMiss:         canMiss,
	}
}

// ProjectMonth evaluates one Projection per target for the month
// containing now. The month-to-date base counts periods where attendance
// was actually taken (cancelled excluded); the remainder comes from the
// timetable, today inclusive, clipped to the semester range. Targets are
// evaluated independently.
func ProjectMonth(snap model.Snapshot, now time.Time, targets []float64) []model.Projection {
	prefix := now.Format(model.MonthFormat) + "-"

	var taken, present int
	for _, r := range snap.AttendanceRecords {
		if !strings.HasPrefix(r.Date, prefix) || r.Status == model.StatusCancelled {
			continue
		}
		taken++
		if r.Status == model.StatusPresent {
			present++
		}
	}

	remaining := RemainingScheduled(now, snap.Timetable, snap.Settings)

	projections := make([]model.Projection, 0, len(targets))
	for _, target := range targets {
		projections = append(projections, Project(target, present, taken, remaining))
	}
	return projections
}
