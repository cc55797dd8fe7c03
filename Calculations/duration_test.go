package Calculations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOperationDurationCompleted(t *testing.T) {
	start := date("2023-11-19").Add(10 * time.Hour)
	end := start.Add(2*time.Hour + 5*time.Minute)

	hours, minutes, inProgress := OperationDuration(start, &end, end.Add(48*time.Hour))

	assert.Equal(t, 2, hours)
	assert.Equal(t, 5, minutes)
	assert.False(t, inProgress)
}

func TestOperationDurationOpenUsesNow(t *testing.T) {
	start := date("2023-11-20").Add(8 * time.Hour)
	now := start.Add(3*time.Hour + 30*time.Minute)

	hours, minutes, inProgress := OperationDuration(start, nil, now)

	assert.Equal(t, 3, hours)
	assert.Equal(t, 30, minutes)
	assert.True(t, inProgress)
}

func TestOperationDurationOpenIsNonDecreasing(t *testing.T) {
	start := date("2023-11-20").Add(8 * time.Hour)
	t1 := start.Add(90 * time.Minute)
	t2 := start.Add(200 * time.Minute)

	h1, m1, _ := OperationDuration(start, nil, t1)
	h2, m2, _ := OperationDuration(start, nil, t2)

	assert.LessOrEqual(t, h1*60+m1, h2*60+m2)
}

func TestOperationDurationClampsNegative(t *testing.T) {
	start := date("2023-11-20").Add(8 * time.Hour)

	hours, minutes, _ := OperationDuration(start, nil, start.Add(-time.Hour))

	assert.Zero(t, hours)
	assert.Zero(t, minutes)
}

func TestFormatOperationDuration(t *testing.T) {
	start := date("2023-11-20").Add(8 * time.Hour)
	end := start.Add(2 * time.Hour)
	now := start.Add(2 * time.Hour)

	// same numeric duration, but the open one carries the marker
	assert.Equal(t, "2h 0m", FormatOperationDuration(start, &end, now))
	assert.Equal(t, "2h 0m (em andamento)", FormatOperationDuration(start, nil, now))
}
