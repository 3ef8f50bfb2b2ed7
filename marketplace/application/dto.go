package application

import (
	"time"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

// InviteRequest - DTO for a company inviting a seeker to a job
type InviteRequest struct {
	SeekerID kernel.SeekerID `json:"seeker_id"`
}

// HireResponseRequest - DTO for the seeker's answer to a hire request
type HireResponseRequest struct {
	Accepted bool `json:"accepted"`
}

// InterviewResponseRequest - DTO for the seeker's answer to an
// interview request
type InterviewResponseRequest struct {
	Accepted bool `json:"accepted"`
}

// ReasonRequest - DTO for operations requiring a structured reason
type ReasonRequest struct {
	Reason string `json:"reason"`
}

// ScheduleInterviewRequest - DTO for scheduling an interview
type ScheduleInterviewRequest struct {
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes,omitempty"`
}

// Response type alias for paginated applications
type PaginatedApplicationsResponse = kernel.Paginated[ApplicationResponse]

// ApplicationResponse - DTO for returning application data
type ApplicationResponse struct {
	ID                 kernel.ApplicationID `json:"id"`
	DisplayCode        string               `json:"display_code"`
	JobID              kernel.JobID         `json:"job_id"`
	SeekerID           kernel.SeekerID      `json:"seeker_id"`
	CompanyID          kernel.CompanyID     `json:"company_id"`
	Status             ApplicationStatus    `json:"status"`
	HireResponse       HireResponse         `json:"hire_response,omitempty"`
	InterviewResponse  InterviewResponse    `json:"interview_response,omitempty"`
	JobTitle           kernel.JobTitle      `json:"job_title"`
	CompanyName        kernel.CompanyName   `json:"company_name"`
	HiringType         kernel.HiringType    `json:"hiring_type"`
	ChatID             kernel.ChatID        `json:"chat_id,omitempty"`
	InterviewScheduled bool                 `json:"interview_scheduled"`
	DeclineReason      string               `json:"decline_reason,omitempty"`
	AbsenceReports     []AbsenceReport      `json:"absence_reports,omitempty"`
	StatusChangedAt    time.Time            `json:"status_changed_at"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// ToResponse converts an application to its response DTO
func (a *Application) ToResponse() *ApplicationResponse {
	return &ApplicationResponse{
		ID:                 a.ID,
		DisplayCode:        a.DisplayCode,
		JobID:              a.JobID,
		SeekerID:           a.SeekerID,
		CompanyID:          a.CompanyID,
		Status:             a.Status,
		HireResponse:       a.HireResponse,
		InterviewResponse:  a.InterviewResponse,
		JobTitle:           a.JobTitle,
		CompanyName:        a.CompanyName,
		HiringType:         a.HiringType,
		ChatID:             a.ChatID,
		InterviewScheduled: a.InterviewScheduled,
		DeclineReason:      a.DeclineReason,
		AbsenceReports:     a.AbsenceReports,
		StatusChangedAt:    a.StatusChangedAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}
