package Calculations

import (
	"fmt"
	"time"
)

// OperationDuration returns the whole hours and remainder minutes between
// start and end. An operation without an end time is still running, so its
// duration is measured against now; now is a parameter, not an ambient read.
func OperationDuration(start time.Time, end *time.Time, now time.Time) (hours, minutes int, inProgress bool) {
	bound := now
	if end != nil {
		bound = *end
		inProgress = false
	} else {
		inProgress = true
	}

	totalMinutes := int(bound.Sub(start).Minutes())
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return totalMinutes / 60, totalMinutes % 60, inProgress
}

// FormatOperationDuration renders a duration as "2h 5m", with the
// "(em andamento)" marker distinguishing a live duration from a closed one
// of the same length.
func FormatOperationDuration(start time.Time, end *time.Time, now time.Time) string {
	hours, minutes, inProgress := OperationDuration(start, end, now)
	if inProgress {
		return fmt.Sprintf("%dh %dm (em andamento)", hours, minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
