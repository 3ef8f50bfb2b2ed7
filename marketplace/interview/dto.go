package interview

import (
	"github.com/Abraxas-365/stint/pkg/kernel"
)

// ScheduleForApplicationRequest - DTO for attaching an interview slot
// to an application
type ScheduleForApplicationRequest struct {
	ApplicationID   kernel.ApplicationID `json:"application_id"`
	CompanyID       kernel.CompanyID     `json:"company_id"`
	SeekerID        kernel.SeekerID      `json:"seeker_id"`
	Date            string               `json:"date"`
	StartTime       string               `json:"start_time"`
	DurationMinutes int                  `json:"duration_minutes"`
	Notes           string               `json:"notes,omitempty"`
}

// RescheduleRequest - DTO for moving an interview to a new slot
type RescheduleRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	Reason    string `json:"reason,omitempty"`
}

// ConflictQuery - DTO for checking slot conflicts
type ConflictQuery struct {
	CompanyID       kernel.CompanyID `json:"company_id"`
	Date            string           `json:"date"`
	StartTime       string           `json:"start_time"`
	DurationMinutes int              `json:"duration_minutes"`
}

// Slot is one bookable interval on a day
type Slot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
