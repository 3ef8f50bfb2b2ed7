package application

import (
	"context"
	"time"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

// EventKind identifies what happened to an application
type EventKind string

const (
	EventApplied            EventKind = "application.applied"
	EventInvited            EventKind = "application.invited"
	EventInvitationAccepted EventKind = "application.invitation_accepted"
	EventShortlisted        EventKind = "application.shortlisted"
	EventHireRequested      EventKind = "application.hire_requested"
	EventHireResponded      EventKind = "application.hire_responded"
	EventInterviewScheduled EventKind = "application.interview_scheduled"
	EventInterviewResponded EventKind = "application.interview_responded"
	EventAccepted           EventKind = "application.accepted"
	EventRejected           EventKind = "application.rejected"
	EventDeclined           EventKind = "application.declined"
	EventWithdrawn          EventKind = "application.withdrawn"
	EventAbsenceReported    EventKind = "application.absence_reported"
	EventCompleted          EventKind = "application.completed"
	EventCancelled          EventKind = "application.cancelled"
)

// Event is emitted after a transition commits. Consumers dispatch
// notifications from it; the transition itself never waits on them
type Event struct {
	ID            kernel.EventID       `json:"id"`
	Kind          EventKind            `json:"kind"`
	ApplicationID kernel.ApplicationID `json:"application_id"`
	JobID         kernel.JobID         `json:"job_id"`
	SeekerID      kernel.SeekerID      `json:"seeker_id"`
	CompanyID     kernel.CompanyID     `json:"company_id"`
	JobTitle      kernel.JobTitle      `json:"job_title"`
	Status        ApplicationStatus    `json:"status"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

// Publisher delivers application events to interested consumers
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
