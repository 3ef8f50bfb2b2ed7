package interview

import (
	"time"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

// InterviewStatus tracks the interview lifecycle, independent of the
// application that references it
type InterviewStatus string

const (
	StatusScheduled   InterviewStatus = "SCHEDULED"   // Proposed by the company
	StatusConfirmed   InterviewStatus = "CONFIRMED"   // Seeker confirmed attendance
	StatusRescheduled InterviewStatus = "RESCHEDULED" // Moved to a new slot
	StatusCompleted   InterviewStatus = "COMPLETED"   // Interview held
	StatusCancelled   InterviewStatus = "CANCELLED"   // Called off
	StatusNoShow      InterviewStatus = "NO_SHOW"     // Seeker did not attend
)

// ScheduleChange records a superseded slot when an interview is moved
type ScheduleChange struct {
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	Reason    string    `json:"reason,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
}

// DateLayout and TimeLayout are the wire formats for interview slots
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Interview struct {
	ID              kernel.InterviewID   `db:"id" json:"id"`
	ApplicationID   kernel.ApplicationID `db:"application_id" json:"application_id"`
	CompanyID       kernel.CompanyID     `db:"company_id" json:"company_id"`
	SeekerID        kernel.SeekerID      `db:"seeker_id" json:"seeker_id"`
	Date            string               `db:"date" json:"date"`
	StartTime       string               `db:"start_time" json:"start_time"`
	DurationMinutes int                  `db:"duration_minutes" json:"duration_minutes"`
	Notes           string               `db:"notes" json:"notes,omitempty"`
	Status          InterviewStatus      `db:"status" json:"status"`
	History         []ScheduleChange     `db:"-" json:"history,omitempty"`
	CreatedAt       time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time            `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsTerminal checks if the interview can no longer change
func (i *Interview) IsTerminal() bool {
	switch i.Status {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsActive checks if the interview still occupies its slot
func (i *Interview) IsActive() bool {
	return !i.IsTerminal()
}

// Confirm records the seeker's confirmation
func (i *Interview) Confirm() error {
	if i.Status != StatusScheduled && i.Status != StatusRescheduled {
		return ErrInvalidStatusChange().
			WithDetail("current_status", i.Status).
			WithDetail("target_status", StatusConfirmed)
	}
	i.Status = StatusConfirmed
	i.UpdatedAt = time.Now()
	return nil
}

// Reschedule moves the interview to a new slot, preserving the
// superseded slot in the history list
func (i *Interview) Reschedule(newDate, newTime, reason string) error {
	if i.IsTerminal() {
		return ErrInvalidStatusChange().
			WithDetail("current_status", i.Status).
			WithDetail("target_status", StatusRescheduled)
	}
	if _, err := time.Parse(DateLayout, newDate); err != nil {
		return ErrInvalidSlot().WithDetail("date", newDate)
	}
	if _, err := time.Parse(TimeLayout, newTime); err != nil {
		return ErrInvalidSlot().WithDetail("start_time", newTime)
	}

	i.History = append(i.History, ScheduleChange{
		Date:      i.Date,
		StartTime: i.StartTime,
		Reason:    reason,
		ChangedAt: time.Now(),
	})
	i.Date = newDate
	i.StartTime = newTime
	i.Status = StatusRescheduled
	i.UpdatedAt = time.Now()
	return nil
}

// Complete marks the interview as held
func (i *Interview) Complete() error {
	if i.IsTerminal() {
		return ErrInvalidStatusChange().
			WithDetail("current_status", i.Status).
			WithDetail("target_status", StatusCompleted)
	}
	i.Status = StatusCompleted
	i.UpdatedAt = time.Now()
	return nil
}

// Cancel calls the interview off
func (i *Interview) Cancel() error {
	if i.IsTerminal() {
		return ErrInvalidStatusChange().
			WithDetail("current_status", i.Status).
			WithDetail("target_status", StatusCancelled)
	}
	i.Status = StatusCancelled
	i.UpdatedAt = time.Now()
	return nil
}

// MarkNoShow records that the seeker did not attend
func (i *Interview) MarkNoShow() error {
	if i.IsTerminal() {
		return ErrInvalidStatusChange().
			WithDetail("current_status", i.Status).
			WithDetail("target_status", StatusNoShow)
	}
	i.Status = StatusNoShow
	i.UpdatedAt = time.Now()
	return nil
}

// Interval returns the interview's slot as minutes since midnight,
// half-open on the right
func (i *Interview) Interval() (start, end int, err error) {
	t, err := time.Parse(TimeLayout, i.StartTime)
	if err != nil {
		return 0, 0, ErrInvalidSlot().WithDetail("start_time", i.StartTime)
	}
	start = t.Hour()*60 + t.Minute()
	return start, start + i.DurationMinutes, nil
}

// Overlaps checks interval intersection with another slot on the same
// day. Slots are half-open, so back-to-back interviews do not overlap
func (i *Interview) Overlaps(startMinute, durationMinutes int) bool {
	myStart, myEnd, err := i.Interval()
	if err != nil {
		return false
	}
	otherEnd := startMinute + durationMinutes
	return myStart < otherEnd && startMinute < myEnd
}
