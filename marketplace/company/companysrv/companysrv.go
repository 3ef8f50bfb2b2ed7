package companysrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/stint/marketplace/company"
	"github.com/Abraxas-365/stint/pkg/errx"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/google/uuid"
)

// CompanyService provides business operations for company profiles and
// implements company.Limiter over the usage ledger
type CompanyService struct {
	companyRepo company.Repository
}

// NewCompanyService creates a new instance of the company service
func NewCompanyService(companyRepo company.Repository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// CreateProfile provisions a company profile for a new account and opens
// its trial window
func (s *CompanyService) CreateProfile(ctx context.Context, accountID kernel.AccountID, name kernel.CompanyName, email kernel.Email) (*company.Company, error) {
	now := time.Now()
	profile := &company.Company{
		ID:        kernel.NewCompanyID(uuid.NewString()),
		AccountID: accountID,
		Name:      name,
		Email:     email,
		Status:    company.CompanyStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	profile.StartTrial(now)

	if err := s.companyRepo.Create(ctx, profile); err != nil {
		return nil, errx.Wrap(err, "failed to create company profile", errx.TypeInternal)
	}

	return profile, nil
}

// ResolveProfile maps an authenticated account to its company profile
func (s *CompanyService) ResolveProfile(ctx context.Context, accountID kernel.AccountID) (*company.Company, error) {
	profile, err := s.companyRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, company.ErrProfileNotFound().WithDetail("account_id", accountID.String())
	}
	return profile, nil
}

// GetProfile retrieves a company by profile id
func (s *CompanyService) GetProfile(ctx context.Context, id kernel.CompanyID) (*company.CompanyResponse, error) {
	profile, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, company.ErrProfileNotFound().WithDetail("company_id", id.String())
	}
	return toResponse(profile), nil
}

// UpdateProfile updates the caller's own profile
func (s *CompanyService) UpdateProfile(ctx context.Context, accountID kernel.AccountID, req company.UpdateCompanyRequest) (*company.CompanyResponse, error) {
	profile, err := s.ResolveProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		profile.Name = req.Name
	}
	if req.Phone != "" {
		profile.Phone = req.Phone
	}
	if req.About != "" {
		profile.About = req.About
	}
	if req.Industry != "" {
		profile.Industry = req.Industry
	}
	profile.UpdatedAt = time.Now()

	if err := s.companyRepo.Update(ctx, profile.ID, profile); err != nil {
		return nil, errx.Wrap(err, "failed to update company profile", errx.TypeInternal)
	}

	return toResponse(profile), nil
}

// GetUsage reports ledger-derived usage against the plan limits
func (s *CompanyService) GetUsage(ctx context.Context, accountID kernel.AccountID) (*company.UsageResponse, error) {
	profile, err := s.ResolveProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	usage, err := s.deriveUsage(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	return &company.UsageResponse{
		CompanyID: profile.ID,
		Plan:      profile.Plan,
		Limits:    profile.Limits(),
		Usage:     *usage,
		OnTrial:   profile.OnTrial(),
		TrialEnds: profile.TrialEndDate,
	}, nil
}

// ============================================================================
// company.Limiter implementation
// ============================================================================

// EnsureCanPerform checks the action against the derived usage and plan
func (s *CompanyService) EnsureCanPerform(ctx context.Context, companyID kernel.CompanyID, action company.UsageAction) error {
	profile, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return company.ErrProfileNotFound().WithDetail("company_id", companyID.String())
	}

	usage, err := s.deriveUsage(ctx, companyID)
	if err != nil {
		return err
	}

	return profile.CanPerformAction(action, *usage, time.Now())
}

// RecordAction appends the performed action to the ledger
func (s *CompanyService) RecordAction(ctx context.Context, companyID kernel.CompanyID, action company.UsageAction, ref string) error {
	event := &company.UsageEvent{
		ID:         kernel.NewEventID(uuid.NewString()),
		CompanyID:  companyID,
		Action:     action,
		Ref:        ref,
		OccurredAt: time.Now(),
	}

	if err := s.companyRepo.AppendUsage(ctx, event); err != nil {
		return errx.Wrap(err, "failed to append usage event", errx.TypeInternal)
	}
	return nil
}

// deriveUsage aggregates the ledger into counters. Job posts count over
// the whole ledger; invites and hires over the current calendar month.
func (s *CompanyService) deriveUsage(ctx context.Context, companyID kernel.CompanyID) (*company.UsageCounts, error) {
	monthStart := startOfMonth(time.Now())

	jobPosts, err := s.companyRepo.CountUsage(ctx, companyID, company.ActionJobPost, time.Time{})
	if err != nil {
		return nil, errx.Wrap(err, "failed to derive job post usage", errx.TypeInternal)
	}

	invites, err := s.companyRepo.CountUsage(ctx, companyID, company.ActionInvite, monthStart)
	if err != nil {
		return nil, errx.Wrap(err, "failed to derive invite usage", errx.TypeInternal)
	}

	hires, err := s.companyRepo.CountUsage(ctx, companyID, company.ActionHire, monthStart)
	if err != nil {
		return nil, errx.Wrap(err, "failed to derive hire usage", errx.TypeInternal)
	}

	return &company.UsageCounts{
		JobPosts:         jobPosts,
		InvitesThisMonth: invites,
		HiresThisMonth:   hires,
	}, nil
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// ============================================================================
// Helper Methods
// ============================================================================

func toResponse(c *company.Company) *company.CompanyResponse {
	return &company.CompanyResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		About:          c.About,
		Industry:       c.Industry,
		Plan:           c.Plan,
		TrialStartDate: c.TrialStartDate,
		TrialEndDate:   c.TrialEndDate,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
