package company

import (
	"time"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

// SubscriptionPlan identifies the billing plan a company is on
type SubscriptionPlan string

const (
	PlanFreeTrial SubscriptionPlan = "FREE_TRIAL"
	PlanStarter   SubscriptionPlan = "STARTER"
	PlanGrowth    SubscriptionPlan = "GROWTH"
)

// TrialDuration is the fixed free-trial window
const TrialDuration = 14 * 24 * time.Hour

// UsageAction is a billable/limited action recorded in the usage ledger
type UsageAction string

const (
	ActionJobPost UsageAction = "job_post"
	ActionInvite  UsageAction = "invite"
	ActionHire    UsageAction = "hire"
)

// PlanLimits are the ceilings per plan; -1 means unlimited
type PlanLimits struct {
	JobPosts        int `json:"job_posts"`
	InvitesPerMonth int `json:"invites_per_month"`
	HiresPerMonth   int `json:"hires_per_month"`
}

var planLimits = map[SubscriptionPlan]PlanLimits{
	PlanFreeTrial: {JobPosts: 3, InvitesPerMonth: 10, HiresPerMonth: 2},
	PlanStarter:   {JobPosts: 10, InvitesPerMonth: 50, HiresPerMonth: 10},
	PlanGrowth:    {JobPosts: -1, InvitesPerMonth: -1, HiresPerMonth: -1},
}

// UsageEvent is one row of the append-only usage ledger. Counters are
// always derived by aggregating events, never stored as mutable fields.
type UsageEvent struct {
	ID         kernel.EventID   `db:"id" json:"id"`
	CompanyID  kernel.CompanyID `db:"company_id" json:"company_id"`
	Action     UsageAction      `db:"action" json:"action"`
	Ref        string           `db:"ref" json:"ref,omitempty"`
	OccurredAt time.Time        `db:"occurred_at" json:"occurred_at"`
}

// UsageCounts are counters derived from the ledger
type UsageCounts struct {
	JobPosts         int `json:"job_posts"`
	InvitesThisMonth int `json:"invites_this_month"`
	HiresThisMonth   int `json:"hires_this_month"`
}

func (u UsageCounts) count(action UsageAction) int {
	switch action {
	case ActionJobPost:
		return u.JobPosts
	case ActionInvite:
		return u.InvitesThisMonth
	case ActionHire:
		return u.HiresThisMonth
	}
	return 0
}

func (l PlanLimits) limit(action UsageAction) int {
	switch action {
	case ActionJobPost:
		return l.JobPosts
	case ActionInvite:
		return l.InvitesPerMonth
	case ActionHire:
		return l.HiresPerMonth
	}
	return 0
}

// CompanyStatus represents the status of a company profile
type CompanyStatus string

const (
	CompanyStatusActive    CompanyStatus = "ACTIVE"
	CompanyStatusSuspended CompanyStatus = "SUSPENDED"
)

// Company is the employer-side profile. Its ID (not the account id) is the
// canonical companyId carried by jobs, applications and chats.
type Company struct {
	ID             kernel.CompanyID   `db:"id" json:"id"`
	AccountID      kernel.AccountID   `db:"account_id" json:"account_id"`
	Name           kernel.CompanyName `db:"name" json:"name"`
	Email          kernel.Email       `db:"email" json:"email"`
	Phone          kernel.Phone       `db:"phone" json:"phone,omitempty"`
	About          string             `db:"about" json:"about,omitempty"`
	Industry       string             `db:"industry" json:"industry,omitempty"`
	Plan           SubscriptionPlan   `db:"plan" json:"plan"`
	TrialStartDate *time.Time         `db:"trial_start_date" json:"trial_start_date,omitempty"`
	TrialEndDate   *time.Time         `db:"trial_end_date" json:"trial_end_date,omitempty"`
	Status         CompanyStatus      `db:"status" json:"status"`
	CreatedAt      time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsActive checks if the company profile is active
func (c *Company) IsActive() bool {
	return c.Status == CompanyStatusActive
}

// StartTrial opens the fixed trial window
func (c *Company) StartTrial(now time.Time) {
	end := now.Add(TrialDuration)
	c.Plan = PlanFreeTrial
	c.TrialStartDate = &now
	c.TrialEndDate = &end
	c.UpdatedAt = now
}

// OnTrial checks if the company is on the free trial plan
func (c *Company) OnTrial() bool {
	return c.Plan == PlanFreeTrial
}

// TrialExpired checks if the trial window has closed
func (c *Company) TrialExpired(now time.Time) bool {
	return c.OnTrial() && c.TrialEndDate != nil && now.After(*c.TrialEndDate)
}

// Limits returns the ceilings for the current plan
func (c *Company) Limits() PlanLimits {
	return planLimits[c.Plan]
}

// CanPerformAction checks the derived usage against the plan ceiling and
// the trial window. It must be consulted before any limited action.
func (c *Company) CanPerformAction(action UsageAction, usage UsageCounts, now time.Time) error {
	if !c.IsActive() {
		return ErrCompanySuspended()
	}

	if c.TrialExpired(now) {
		return ErrTrialExpired().WithDetail("trial_end_date", c.TrialEndDate)
	}

	limit := c.Limits().limit(action)
	if limit < 0 {
		return nil
	}

	if usage.count(action) >= limit {
		return ErrPlanLimitReached().
			WithDetail("action", action).
			WithDetail("limit", limit).
			WithDetail("plan", c.Plan)
	}

	return nil
}

// ChangePlan switches the subscription plan
func (c *Company) ChangePlan(plan SubscriptionPlan) {
	c.Plan = plan
	c.UpdatedAt = time.Now()
}
