package companysrv

import (
	"context"
	"testing"
	"time"

	"github.com/Abraxas-365/stint/marketplace/company"
	"github.com/Abraxas-365/stint/pkg/errx"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompanyRepo struct {
	byID   map[kernel.CompanyID]*company.Company
	ledger []company.UsageEvent
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{byID: map[kernel.CompanyID]*company.Company{}}
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *company.Company) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, id kernel.CompanyID, c *company.Company) error {
	f.byID[id] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id kernel.CompanyID) (*company.Company, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, company.ErrProfileNotFound()
}

func (f *fakeCompanyRepo) GetByAccountID(_ context.Context, accountID kernel.AccountID) (*company.Company, error) {
	for _, c := range f.byID {
		if c.AccountID == accountID {
			return c, nil
		}
	}
	return nil, company.ErrProfileNotFound()
}

func (f *fakeCompanyRepo) Exists(_ context.Context, id kernel.CompanyID) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeCompanyRepo) AppendUsage(_ context.Context, event *company.UsageEvent) error {
	f.ledger = append(f.ledger, *event)
	return nil
}

func (f *fakeCompanyRepo) CountUsage(_ context.Context, companyID kernel.CompanyID, action company.UsageAction, since time.Time) (int, error) {
	count := 0
	for _, e := range f.ledger {
		if e.CompanyID != companyID || e.Action != action {
			continue
		}
		if !since.IsZero() && e.OccurredAt.Before(since) {
			continue
		}
		count++
	}
	return count, nil
}

func trialCompany(repo *fakeCompanyRepo) *company.Company {
	c := &company.Company{
		ID:        "company-1",
		AccountID: "acct-1",
		Name:      "Acme Logistics",
		Status:    company.CompanyStatusActive,
	}
	c.StartTrial(time.Now())
	repo.byID[c.ID] = c
	return c
}

func TestCreateProfileOpensTrial(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewCompanyService(repo)

	profile, err := svc.CreateProfile(context.Background(), "acct-1", "Acme Logistics", "ops@acme.test")
	require.NoError(t, err)

	assert.Equal(t, company.PlanFreeTrial, profile.Plan)
	assert.NotNil(t, profile.TrialEndDate)
	assert.Equal(t, company.CompanyStatusActive, profile.Status)
	assert.Contains(t, repo.byID, profile.ID)
}

func TestEnsureCanPerformCountsTheLedger(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewCompanyService(repo)
	c := trialCompany(repo)

	// Trial allows 3 job posts
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.EnsureCanPerform(context.Background(), c.ID, company.ActionJobPost))
		require.NoError(t, svc.RecordAction(context.Background(), c.ID, company.ActionJobPost, "job-x"))
	}

	err := svc.EnsureCanPerform(context.Background(), c.ID, company.ActionJobPost)
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeBusiness))

	// Other actions are still open
	assert.NoError(t, svc.EnsureCanPerform(context.Background(), c.ID, company.ActionInvite))
}

func TestMonthlyActionsIgnoreOldLedgerEntries(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewCompanyService(repo)
	c := trialCompany(repo)

	// Fill last month's ledger past the invite ceiling
	lastMonth := time.Now().AddDate(0, 0, -45)
	for i := 0; i < 20; i++ {
		repo.ledger = append(repo.ledger, company.UsageEvent{
			CompanyID:  c.ID,
			Action:     company.ActionInvite,
			OccurredAt: lastMonth,
		})
	}

	// Invites count per calendar month, so this month starts fresh
	assert.NoError(t, svc.EnsureCanPerform(context.Background(), c.ID, company.ActionInvite))
}

func TestJobPostsCountAcrossMonths(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewCompanyService(repo)
	c := trialCompany(repo)

	lastMonth := time.Now().AddDate(0, 0, -45)
	for i := 0; i < 3; i++ {
		repo.ledger = append(repo.ledger, company.UsageEvent{
			CompanyID:  c.ID,
			Action:     company.ActionJobPost,
			OccurredAt: lastMonth,
		})
	}

	// Job posts count over the whole ledger, not per month
	err := svc.EnsureCanPerform(context.Background(), c.ID, company.ActionJobPost)
	require.Error(t, err)
}

func TestRecordActionAppends(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewCompanyService(repo)
	c := trialCompany(repo)

	require.NoError(t, svc.RecordAction(context.Background(), c.ID, company.ActionHire, "app-1"))
	require.Len(t, repo.ledger, 1)
	assert.Equal(t, company.ActionHire, repo.ledger[0].Action)
	assert.Equal(t, "app-1", repo.ledger[0].Ref)
	assert.False(t, repo.ledger[0].ID.IsEmpty())
}

func TestGetUsageReportsDerivedCounters(t *testing.T) {
	repo := newFakeCompanyRepo()
	svc := NewCompanyService(repo)
	c := trialCompany(repo)

	require.NoError(t, svc.RecordAction(context.Background(), c.ID, company.ActionJobPost, "job-1"))
	require.NoError(t, svc.RecordAction(context.Background(), c.ID, company.ActionInvite, "app-1"))
	require.NoError(t, svc.RecordAction(context.Background(), c.ID, company.ActionInvite, "app-2"))

	usage, err := svc.GetUsage(context.Background(), c.AccountID)
	require.NoError(t, err)

	assert.Equal(t, 1, usage.Usage.JobPosts)
	assert.Equal(t, 2, usage.Usage.InvitesThisMonth)
	assert.Equal(t, 0, usage.Usage.HiresThisMonth)
	assert.True(t, usage.OnTrial)
	assert.Equal(t, 3, usage.Limits.JobPosts)
}

func TestEnsureCanPerformUnknownCompany(t *testing.T) {
	svc := NewCompanyService(newFakeCompanyRepo())

	err := svc.EnsureCanPerform(context.Background(), "missing", company.ActionHire)
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeNotFound))
}
