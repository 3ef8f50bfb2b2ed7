package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduled() *Interview {
	return &Interview{
		ID:              "iv-1",
		ApplicationID:   "app-1",
		Date:            "2026-09-10",
		StartTime:       "10:00",
		DurationMinutes: 60,
		Status:          StatusScheduled,
	}
}

func TestConfirm(t *testing.T) {
	iv := scheduled()
	require.NoError(t, iv.Confirm())
	assert.Equal(t, StatusConfirmed, iv.Status)

	iv = scheduled()
	iv.Status = StatusRescheduled
	require.NoError(t, iv.Confirm())

	iv = scheduled()
	iv.Status = StatusConfirmed
	assert.Error(t, iv.Confirm())
}

func TestReschedule(t *testing.T) {
	iv := scheduled()
	require.NoError(t, iv.Reschedule("2026-09-11", "14:30", "candidate asked"))

	assert.Equal(t, StatusRescheduled, iv.Status)
	assert.Equal(t, "2026-09-11", iv.Date)
	assert.Equal(t, "14:30", iv.StartTime)
	require.Len(t, iv.History, 1)
	assert.Equal(t, "2026-09-10", iv.History[0].Date)
	assert.Equal(t, "10:00", iv.History[0].StartTime)
	assert.Equal(t, "candidate asked", iv.History[0].Reason)

	// A second move appends, never overwrites
	require.NoError(t, iv.Reschedule("2026-09-12", "09:00", ""))
	assert.Len(t, iv.History, 2)
}

func TestRescheduleValidatesSlot(t *testing.T) {
	iv := scheduled()
	assert.Error(t, iv.Reschedule("10/09/2026", "14:30", ""))
	assert.Error(t, iv.Reschedule("2026-09-11", "2pm", ""))
	assert.Empty(t, iv.History)
}

func TestTerminalGuards(t *testing.T) {
	for _, status := range []InterviewStatus{StatusCompleted, StatusCancelled, StatusNoShow} {
		iv := scheduled()
		iv.Status = status
		assert.True(t, iv.IsTerminal(), "%s must be terminal", status)
		assert.False(t, iv.IsActive())
		assert.Error(t, iv.Confirm())
		assert.Error(t, iv.Reschedule("2026-09-11", "09:00", ""))
		assert.Error(t, iv.Complete())
		assert.Error(t, iv.Cancel())
		assert.Error(t, iv.MarkNoShow())
	}
}

func TestStatusChanges(t *testing.T) {
	iv := scheduled()
	require.NoError(t, iv.Complete())
	assert.Equal(t, StatusCompleted, iv.Status)

	iv = scheduled()
	require.NoError(t, iv.Cancel())
	assert.Equal(t, StatusCancelled, iv.Status)

	iv = scheduled()
	require.NoError(t, iv.MarkNoShow())
	assert.Equal(t, StatusNoShow, iv.Status)
}

func TestInterval(t *testing.T) {
	iv := scheduled()
	start, end, err := iv.Interval()
	require.NoError(t, err)
	assert.Equal(t, 600, start)
	assert.Equal(t, 660, end)
}

func TestOverlaps(t *testing.T) {
	iv := scheduled() // 10:00-11:00

	assert.True(t, iv.Overlaps(630, 60), "10:30-11:30 intersects")
	assert.True(t, iv.Overlaps(570, 60), "09:30-10:30 intersects")
	assert.True(t, iv.Overlaps(615, 15), "fully contained slot intersects")
	assert.True(t, iv.Overlaps(540, 180), "enclosing slot intersects")

	// Half-open intervals: back-to-back slots are fine
	assert.False(t, iv.Overlaps(660, 60), "starting at the end does not intersect")
	assert.False(t, iv.Overlaps(540, 60), "ending at the start does not intersect")
	assert.False(t, iv.Overlaps(720, 30))
}
