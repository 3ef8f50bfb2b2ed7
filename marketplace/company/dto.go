package company

import (
	"time"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

// UpdateCompanyRequest - DTO for updating a company profile
type UpdateCompanyRequest struct {
	Name     kernel.CompanyName `json:"name,omitempty"`
	Phone    kernel.Phone       `json:"phone,omitempty"`
	About    string             `json:"about,omitempty"`
	Industry string             `json:"industry,omitempty"`
}

// CompanyResponse - DTO for returning company data
type CompanyResponse struct {
	ID             kernel.CompanyID   `json:"id"`
	Name           kernel.CompanyName `json:"name"`
	Email          kernel.Email       `json:"email"`
	Phone          kernel.Phone       `json:"phone,omitempty"`
	About          string             `json:"about,omitempty"`
	Industry       string             `json:"industry,omitempty"`
	Plan           SubscriptionPlan   `json:"plan"`
	TrialStartDate *time.Time         `json:"trial_start_date,omitempty"`
	TrialEndDate   *time.Time         `json:"trial_end_date,omitempty"`
	Status         CompanyStatus      `json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// UsageResponse - DTO for the usage-vs-limits report
type UsageResponse struct {
	CompanyID kernel.CompanyID `json:"company_id"`
	Plan      SubscriptionPlan `json:"plan"`
	Limits    PlanLimits       `json:"limits"`
	Usage     UsageCounts      `json:"usage"`
	OnTrial   bool             `json:"on_trial"`
	TrialEnds *time.Time       `json:"trial_ends,omitempty"`
}
