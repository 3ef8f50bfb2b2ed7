package notification

import (
	"fmt"

	"github.com/Abraxas-365/stint/marketplace/application"
	"github.com/Abraxas-365/stint/pkg/kernel"
)

// Recipient identifies who a notification is addressed to
type Recipient string

const (
	RecipientSeeker  Recipient = "seeker"
	RecipientCompany Recipient = "company"
)

// Notification is one rendered message ready for dispatch
type Notification struct {
	EventID   kernel.EventID   `json:"event_id"`
	Recipient Recipient        `json:"recipient"`
	SeekerID  kernel.SeekerID  `json:"seeker_id,omitempty"`
	CompanyID kernel.CompanyID `json:"company_id,omitempty"`
	Subject   string           `json:"subject"`
	Body      string           `json:"body"`
}

// FromEvent renders the notifications an application event produces.
// Most transitions notify the counterparty of whoever acted
func FromEvent(event application.Event) []Notification {
	toSeeker := func(subject, body string) Notification {
		return Notification{
			EventID:   event.ID,
			Recipient: RecipientSeeker,
			SeekerID:  event.SeekerID,
			Subject:   subject,
			Body:      body,
		}
	}
	toCompany := func(subject, body string) Notification {
		return Notification{
			EventID:   event.ID,
			Recipient: RecipientCompany,
			CompanyID: event.CompanyID,
			Subject:   subject,
			Body:      body,
		}
	}

	title := string(event.JobTitle)

	switch event.Kind {
	case application.EventApplied:
		return []Notification{toCompany(
			"New application received",
			fmt.Sprintf("A candidate applied to %s.", title),
		)}
	case application.EventInvited:
		return []Notification{toSeeker(
			"You have been invited to a job",
			fmt.Sprintf("A company invited you to apply for %s.", title),
		)}
	case application.EventInvitationAccepted:
		return []Notification{toCompany(
			"Invitation accepted",
			fmt.Sprintf("A candidate accepted your invitation for %s.", title),
		)}
	case application.EventShortlisted:
		return []Notification{toSeeker(
			"You have been shortlisted",
			fmt.Sprintf("Your application for %s was shortlisted.", title),
		)}
	case application.EventHireRequested:
		return []Notification{toSeeker(
			"Hire request received",
			fmt.Sprintf("You received a hire request for %s.", title),
		)}
	case application.EventHireResponded:
		return []Notification{toCompany(
			"Hire request answered",
			fmt.Sprintf("The candidate responded to your hire request for %s.", title),
		)}
	case application.EventInterviewScheduled:
		return []Notification{toSeeker(
			"Interview scheduled",
			fmt.Sprintf("An interview was scheduled for %s.", title),
		)}
	case application.EventInterviewResponded:
		return []Notification{toCompany(
			"Interview request answered",
			fmt.Sprintf("The candidate responded to the interview request for %s.", title),
		)}
	case application.EventAccepted:
		return []Notification{toSeeker(
			"You have been hired",
			fmt.Sprintf("Congratulations, you were hired for %s.", title),
		)}
	case application.EventRejected:
		return []Notification{toSeeker(
			"Application update",
			fmt.Sprintf("Your application for %s was not successful.", title),
		)}
	case application.EventDeclined:
		return []Notification{toSeeker(
			"Application update",
			fmt.Sprintf("Your application for %s was declined.", title),
		)}
	case application.EventWithdrawn:
		return []Notification{toCompany(
			"Application withdrawn",
			fmt.Sprintf("A candidate withdrew their application for %s.", title),
		)}
	case application.EventAbsenceReported:
		return []Notification{toSeeker(
			"Absence reported",
			fmt.Sprintf("An absence was reported on your application for %s.", title),
		)}
	case application.EventCompleted:
		return []Notification{
			toSeeker("Job completed", fmt.Sprintf("The engagement for %s was marked completed.", title)),
			toCompany("Job completed", fmt.Sprintf("The engagement for %s was marked completed.", title)),
		}
	case application.EventCancelled:
		return []Notification{
			toSeeker("Job cancelled", fmt.Sprintf("The engagement for %s was cancelled.", title)),
			toCompany("Job cancelled", fmt.Sprintf("The engagement for %s was cancelled.", title)),
		}
	}
	return nil
}
