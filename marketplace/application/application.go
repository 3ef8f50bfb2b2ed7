package application

import (
	"time"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

// ApplicationStatus represents where one candidacy sits in its lifecycle
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "APPLIED"     // Seeker applied to the job
	StatusInvited     ApplicationStatus = "INVITED"     // Company invited the seeker, awaiting acceptance
	StatusShortlisted ApplicationStatus = "SHORTLISTED" // Company shortlisted the candidate
	StatusInterviewed ApplicationStatus = "INTERVIEWED" // Interview scheduled or held
	StatusHired       ApplicationStatus = "HIRED"       // Hire extended or confirmed
	StatusRejected    ApplicationStatus = "REJECTED"    // Company rejected the candidate
	StatusDeclined    ApplicationStatus = "DECLINED"    // Company declined with a structured reason
	StatusWithdrawn   ApplicationStatus = "WITHDRAWN"   // Seeker withdrew the application
	StatusCancelled   ApplicationStatus = "CANCELLED"   // Engagement cancelled by either party
	StatusCompleted   ApplicationStatus = "COMPLETED"   // Hired engagement finished
)

// HireResponse is the seeker's answer to a hire request, tracked
// independently of the top-level status
type HireResponse string

const (
	HireResponsePending  HireResponse = "PENDING"
	HireResponseAccepted HireResponse = "ACCEPTED"
	HireResponseDeclined HireResponse = "DECLINED"
)

// InterviewResponse is the seeker's answer to an interview request
type InterviewResponse string

const (
	InterviewResponseAccepted InterviewResponse = "ACCEPTED"
	InterviewResponseDeclined InterviewResponse = "DECLINED"
)

// AbsenceReport annotates a no-show without changing the application status
type AbsenceReport struct {
	Reason     string    `json:"reason"`
	ReportedAt time.Time `json:"reported_at"`
}

// transitions maps each status to the statuses reachable from it.
// Terminal statuses have no entry
var transitions = map[ApplicationStatus][]ApplicationStatus{
	StatusApplied:     {StatusShortlisted, StatusInterviewed, StatusHired, StatusRejected, StatusDeclined, StatusWithdrawn, StatusCancelled},
	StatusInvited:     {StatusApplied, StatusShortlisted, StatusInterviewed, StatusRejected, StatusDeclined, StatusWithdrawn, StatusCancelled},
	StatusShortlisted: {StatusInterviewed, StatusHired, StatusRejected, StatusDeclined, StatusWithdrawn, StatusCancelled},
	StatusInterviewed: {StatusHired, StatusRejected, StatusDeclined, StatusWithdrawn, StatusCancelled},
	StatusHired:       {StatusShortlisted, StatusCompleted, StatusRejected, StatusDeclined, StatusWithdrawn, StatusCancelled},
}

type Application struct {
	ID                 kernel.ApplicationID `db:"id" json:"id"`
	DisplayCode        string               `db:"display_code" json:"display_code"`
	JobID              kernel.JobID         `db:"job_id" json:"job_id"`
	SeekerID           kernel.SeekerID      `db:"seeker_id" json:"seeker_id"`
	CompanyID          kernel.CompanyID     `db:"company_id" json:"company_id"`
	Status             ApplicationStatus    `db:"status" json:"status"`
	HireResponse       HireResponse         `db:"hire_response" json:"hire_response,omitempty"`
	InterviewResponse  InterviewResponse    `db:"interview_response" json:"interview_response,omitempty"`
	JobTitle           kernel.JobTitle      `db:"job_title" json:"job_title"`
	CompanyName        kernel.CompanyName   `db:"company_name" json:"company_name"`
	HiringType         kernel.HiringType    `db:"hiring_type" json:"hiring_type"`
	ChatID             kernel.ChatID        `db:"chat_id" json:"chat_id,omitempty"`
	InterviewScheduled bool                 `db:"interview_scheduled" json:"interview_scheduled"`
	DeclineReason      string               `db:"decline_reason" json:"decline_reason,omitempty"`
	AbsenceReports     []AbsenceReport      `db:"-" json:"absence_reports,omitempty"`
	Version            int64                `db:"version" json:"-"`
	StatusChangedAt    time.Time            `db:"status_changed_at" json:"status_changed_at"`
	CreatedAt          time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time            `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// State machine
// ============================================================================

// IsTerminal checks if no further transition is possible
func (a *Application) IsTerminal() bool {
	_, ok := transitions[a.Status]
	return !ok
}

// CanTransitionTo checks if the target status is reachable from the
// current status
func (a *Application) CanTransitionTo(target ApplicationStatus) bool {
	for _, allowed := range transitions[a.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// transitionTo moves the application along a valid edge
func (a *Application) transitionTo(target ApplicationStatus) error {
	if !a.CanTransitionTo(target) {
		return ErrInvalidTransition().
			WithDetail("from", a.Status).
			WithDetail("to", target)
	}

	now := time.Now()
	a.Status = target
	a.StatusChangedAt = now
	a.UpdatedAt = now
	return nil
}

// AcceptInvitation moves a company-initiated application to applied
func (a *Application) AcceptInvitation() error {
	if a.Status != StatusInvited {
		return ErrInvalidTransition().
			WithDetail("from", a.Status).
			WithDetail("to", StatusApplied)
	}
	return a.transitionTo(StatusApplied)
}

// Shortlist marks the candidate as shortlisted
func (a *Application) Shortlist() error {
	if a.Status != StatusApplied && a.Status != StatusInvited {
		return ErrInvalidTransition().
			WithDetail("from", a.Status).
			WithDetail("to", StatusShortlisted)
	}
	return a.transitionTo(StatusShortlisted)
}

// SendHireRequest extends a hire offer pending the seeker's response
func (a *Application) SendHireRequest() error {
	if a.Status != StatusShortlisted && a.Status != StatusApplied && a.Status != StatusInterviewed {
		return ErrInvalidTransition().
			WithDetail("from", a.Status).
			WithDetail("to", StatusHired)
	}
	if err := a.transitionTo(StatusHired); err != nil {
		return err
	}
	a.HireResponse = HireResponsePending
	return nil
}

// RespondToHireRequest records the seeker's answer to a pending hire
// request. Declining reverts the application to shortlisted
func (a *Application) RespondToHireRequest(accepted bool) error {
	if a.Status != StatusHired || a.HireResponse != HireResponsePending {
		return ErrNoPendingHireRequest().WithDetail("status", a.Status)
	}

	if accepted {
		a.HireResponse = HireResponseAccepted
		a.UpdatedAt = time.Now()
		return nil
	}

	if err := a.transitionTo(StatusShortlisted); err != nil {
		return err
	}
	a.HireResponse = HireResponseDeclined
	return nil
}

// ScheduleInterview moves the application to interviewed
func (a *Application) ScheduleInterview() error {
	if a.Status == StatusInterviewed {
		// Rescheduling an already-interviewed application is allowed
		a.InterviewScheduled = true
		a.UpdatedAt = time.Now()
		return nil
	}
	if a.Status != StatusApplied && a.Status != StatusShortlisted && a.Status != StatusInvited {
		return ErrInvalidTransition().
			WithDetail("from", a.Status).
			WithDetail("to", StatusInterviewed)
	}
	if err := a.transitionTo(StatusInterviewed); err != nil {
		return err
	}
	a.InterviewScheduled = true
	return nil
}

// RespondToInterviewRequest records the seeker's answer to a scheduled
// interview. The status stays interviewed either way
func (a *Application) RespondToInterviewRequest(accepted bool) error {
	if a.Status != StatusInterviewed {
		return ErrInvalidTransition().WithDetail("from", a.Status)
	}
	if !a.InterviewScheduled {
		return ErrNoInterviewScheduled()
	}

	if accepted {
		a.InterviewResponse = InterviewResponseAccepted
	} else {
		a.InterviewResponse = InterviewResponseDeclined
	}
	a.UpdatedAt = time.Now()
	return nil
}

// Accept hires the candidate directly
func (a *Application) Accept() error {
	if a.Status != StatusApplied && a.Status != StatusShortlisted {
		return ErrInvalidTransition().
			WithDetail("from", a.Status).
			WithDetail("to", StatusHired)
	}
	if err := a.transitionTo(StatusHired); err != nil {
		return err
	}
	a.HireResponse = HireResponseAccepted
	return nil
}

// Reject rejects the candidate from any non-terminal status
func (a *Application) Reject() error {
	return a.transitionTo(StatusRejected)
}

// Decline declines the candidate with a structured reason
func (a *Application) Decline(reason string) error {
	if reason == "" {
		return ErrReasonRequired()
	}
	if err := a.transitionTo(StatusDeclined); err != nil {
		return err
	}
	a.DeclineReason = reason
	return nil
}

// Withdraw removes the seeker's candidacy from any non-terminal status
func (a *Application) Withdraw() error {
	return a.transitionTo(StatusWithdrawn)
}

// ReportAbsence appends a no-show annotation without changing status
func (a *Application) ReportAbsence(reason string) error {
	if a.Status != StatusInterviewed && a.Status != StatusHired {
		return ErrInvalidTransition().WithDetail("from", a.Status)
	}
	a.AbsenceReports = append(a.AbsenceReports, AbsenceReport{
		Reason:     reason,
		ReportedAt: time.Now(),
	})
	a.UpdatedAt = time.Now()
	return nil
}

// Complete finishes a hired engagement
func (a *Application) Complete() error {
	if a.Status != StatusHired {
		return ErrInvalidTransition().
			WithDetail("from", a.Status).
			WithDetail("to", StatusCompleted)
	}
	return a.transitionTo(StatusCompleted)
}

// Cancel ends the engagement from any non-terminal status
func (a *Application) Cancel(reason string) error {
	if err := a.transitionTo(StatusCancelled); err != nil {
		return err
	}
	a.DeclineReason = reason
	return nil
}

// AssignChat records the chat thread for this application. Assignment
// happens at most once; later calls keep the first chat id
func (a *Application) AssignChat(chatID kernel.ChatID) {
	if !a.ChatID.IsEmpty() {
		return
	}
	a.ChatID = chatID
	a.UpdatedAt = time.Now()
}

// HasChat checks if a chat thread already exists for this application
func (a *Application) HasChat() bool {
	return !a.ChatID.IsEmpty()
}
