package applicationsrv

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/stint/marketplace/application"
	"github.com/Abraxas-365/stint/marketplace/company"
	"github.com/Abraxas-365/stint/marketplace/interview"
	"github.com/Abraxas-365/stint/marketplace/job"
	"github.com/Abraxas-365/stint/marketplace/seeker"
	"github.com/Abraxas-365/stint/pkg/errx"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// In-memory fakes
// ============================================================================

type fakeApplicationRepo struct {
	byID      map[kernel.ApplicationID]*application.Application
	conflicts int // injected version conflicts on upcoming updates
	updates   int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{byID: map[kernel.ApplicationID]*application.Application{}}
}

func cloneApp(a *application.Application) *application.Application {
	c := *a
	return &c
}

func (f *fakeApplicationRepo) Create(_ context.Context, app *application.Application) error {
	app.Version = 1
	f.byID[app.ID] = cloneApp(app)
	return nil
}

func (f *fakeApplicationRepo) Update(_ context.Context, app *application.Application) error {
	f.updates++
	if f.conflicts > 0 {
		f.conflicts--
		return application.ErrVersionConflict()
	}
	stored, ok := f.byID[app.ID]
	if !ok {
		return application.ErrNotFound()
	}
	if stored.Version != app.Version {
		return application.ErrVersionConflict()
	}
	app.Version++
	f.byID[app.ID] = cloneApp(app)
	return nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id kernel.ApplicationID) (*application.Application, error) {
	if stored, ok := f.byID[id]; ok {
		return cloneApp(stored), nil
	}
	return nil, application.ErrNotFound()
}

func (f *fakeApplicationRepo) FindByRef(_ context.Context, ref string) (*application.Application, error) {
	for _, stored := range f.byID {
		if string(stored.ID) == ref || stored.DisplayCode == ref {
			return cloneApp(stored), nil
		}
	}
	return nil, application.ErrNotFound()
}

func (f *fakeApplicationRepo) ExistsActiveByJobAndSeeker(_ context.Context, jobID kernel.JobID, seekerID kernel.SeekerID) (bool, error) {
	for _, stored := range f.byID {
		if stored.JobID == jobID && stored.SeekerID == seekerID && !stored.IsTerminal() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) ListBySeekerID(_ context.Context, seekerID kernel.SeekerID, p kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	var items []application.Application
	for _, stored := range f.byID {
		if stored.SeekerID == seekerID {
			items = append(items, *stored)
		}
	}
	return kernel.NewPaginated(items, p.Page, int64(len(items))), nil
}

func (f *fakeApplicationRepo) ListByJobID(_ context.Context, jobID kernel.JobID, p kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	var items []application.Application
	for _, stored := range f.byID {
		if stored.JobID == jobID {
			items = append(items, *stored)
		}
	}
	return kernel.NewPaginated(items, p.Page, int64(len(items))), nil
}

func (f *fakeApplicationRepo) ListByCompanyID(_ context.Context, companyID kernel.CompanyID, p kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	var items []application.Application
	for _, stored := range f.byID {
		if stored.CompanyID == companyID {
			items = append(items, *stored)
		}
	}
	return kernel.NewPaginated(items, p.Page, int64(len(items))), nil
}

type fakeJobRepo struct {
	jobs map[kernel.JobID]*job.Job
}

func (f *fakeJobRepo) Create(_ context.Context, j *job.Job) error {
	f.jobs[j.ID] = j
	return nil
}

func (f *fakeJobRepo) Update(_ context.Context, id kernel.JobID, j *job.Job) error {
	f.jobs[id] = j
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id kernel.JobID) (*job.Job, error) {
	if j, ok := f.jobs[id]; ok {
		return j, nil
	}
	return nil, job.ErrJobNotFound()
}

func (f *fakeJobRepo) Exists(_ context.Context, id kernel.JobID) (bool, error) {
	_, ok := f.jobs[id]
	return ok, nil
}

func (f *fakeJobRepo) ListByCompanyID(_ context.Context, _ kernel.CompanyID, p kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return kernel.NewPaginated[job.Job](nil, p.Page, 0), nil
}

func (f *fakeJobRepo) Search(_ context.Context, req job.SearchJobsRequest) (*kernel.Paginated[job.Job], error) {
	return kernel.NewPaginated[job.Job](nil, req.Pagination.Page, 0), nil
}

func (f *fakeJobRepo) IncrementApplications(_ context.Context, id kernel.JobID) error {
	f.jobs[id].ApplicationsCount++
	return nil
}

func (f *fakeJobRepo) DecrementApplications(_ context.Context, id kernel.JobID) error {
	if f.jobs[id].ApplicationsCount > 0 {
		f.jobs[id].ApplicationsCount--
	}
	return nil
}

func (f *fakeJobRepo) IncrementViews(_ context.Context, id kernel.JobID) error {
	f.jobs[id].ViewsCount++
	return nil
}

type fakeSeekerRepo struct {
	byAccount map[kernel.AccountID]*seeker.Seeker
}

func (f *fakeSeekerRepo) Create(_ context.Context, s *seeker.Seeker) error { return nil }
func (f *fakeSeekerRepo) Update(_ context.Context, _ kernel.SeekerID, _ *seeker.Seeker) error {
	return nil
}

func (f *fakeSeekerRepo) GetByID(_ context.Context, id kernel.SeekerID) (*seeker.Seeker, error) {
	for _, s := range f.byAccount {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, seeker.ErrProfileNotFound()
}

func (f *fakeSeekerRepo) GetByAccountID(_ context.Context, accountID kernel.AccountID) (*seeker.Seeker, error) {
	if s, ok := f.byAccount[accountID]; ok {
		return s, nil
	}
	return nil, seeker.ErrProfileNotFound()
}

func (f *fakeSeekerRepo) Exists(_ context.Context, id kernel.SeekerID) (bool, error) {
	_, err := f.GetByID(context.Background(), id)
	return err == nil, nil
}

type fakeCompanyRepo struct {
	byAccount map[kernel.AccountID]*company.Company
}

func (f *fakeCompanyRepo) Create(_ context.Context, _ *company.Company) error { return nil }
func (f *fakeCompanyRepo) Update(_ context.Context, _ kernel.CompanyID, _ *company.Company) error {
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id kernel.CompanyID) (*company.Company, error) {
	for _, c := range f.byAccount {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, company.ErrProfileNotFound()
}

func (f *fakeCompanyRepo) GetByAccountID(_ context.Context, accountID kernel.AccountID) (*company.Company, error) {
	if c, ok := f.byAccount[accountID]; ok {
		return c, nil
	}
	return nil, company.ErrProfileNotFound()
}

func (f *fakeCompanyRepo) Exists(_ context.Context, id kernel.CompanyID) (bool, error) {
	_, err := f.GetByID(context.Background(), id)
	return err == nil, nil
}

func (f *fakeCompanyRepo) AppendUsage(_ context.Context, _ *company.UsageEvent) error { return nil }
func (f *fakeCompanyRepo) CountUsage(_ context.Context, _ kernel.CompanyID, _ company.UsageAction, _ time.Time) (int, error) {
	return 0, nil
}

type fakeLimiter struct {
	denied   map[company.UsageAction]error
	recorded []company.UsageAction
}

func (f *fakeLimiter) EnsureCanPerform(_ context.Context, _ kernel.CompanyID, action company.UsageAction) error {
	if err, ok := f.denied[action]; ok {
		return err
	}
	return nil
}

func (f *fakeLimiter) RecordAction(_ context.Context, _ kernel.CompanyID, action company.UsageAction, _ string) error {
	f.recorded = append(f.recorded, action)
	return nil
}

// fakeChats hands out one thread per participant triple, like the real
// chat service does
type fakeChats struct {
	threads map[string]kernel.ChatID
}

func (f *fakeChats) CreateForApplication(_ context.Context, companyID kernel.CompanyID, seekerID kernel.SeekerID, jobID kernel.JobID, _ kernel.JobTitle) (kernel.ChatID, error) {
	key := companyID.String() + "/" + seekerID.String() + "/" + jobID.String()
	if id, ok := f.threads[key]; ok {
		return id, nil
	}
	id := kernel.NewChatID("chat-" + key)
	f.threads[key] = id
	return id, nil
}

type fakeScheduler struct {
	requests []interview.ScheduleForApplicationRequest
	fail     error
}

func (f *fakeScheduler) ScheduleForApplication(_ context.Context, req interview.ScheduleForApplicationRequest) (*interview.Interview, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.requests = append(f.requests, req)
	return &interview.Interview{ApplicationID: req.ApplicationID, Status: interview.StatusScheduled}, nil
}

type fakePublisher struct {
	events []application.Event
}

func (f *fakePublisher) Publish(_ context.Context, event application.Event) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) kinds() []application.EventKind {
	var kinds []application.EventKind
	for _, e := range f.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// ============================================================================
// Fixture
// ============================================================================

const (
	seekerAccount  = kernel.AccountID("acct-seeker")
	seekerAccount2 = kernel.AccountID("acct-seeker-2")
	companyAccount = kernel.AccountID("acct-company")
	otherAccount   = kernel.AccountID("acct-other-company")

	seekerID  = kernel.SeekerID("seeker-1")
	seekerID2 = kernel.SeekerID("seeker-2")
	companyID = kernel.CompanyID("company-1")
	otherCoID = kernel.CompanyID("company-2")
	jobID     = kernel.JobID("job-1")
)

type world struct {
	apps      *fakeApplicationRepo
	jobs      *fakeJobRepo
	limiter   *fakeLimiter
	chats     *fakeChats
	scheduler *fakeScheduler
	events    *fakePublisher
	svc       *ApplicationService
}

func newWorld() *world {
	w := &world{
		apps: newFakeApplicationRepo(),
		jobs: &fakeJobRepo{jobs: map[kernel.JobID]*job.Job{
			jobID: {
				ID:          jobID,
				CompanyID:   companyID,
				Title:       "Warehouse Shift",
				CompanyName: "Acme Logistics",
				HiringType:  kernel.HiringTypeHourly,
				Status:      job.JobStatusPublished,
			},
		}},
		limiter:   &fakeLimiter{denied: map[company.UsageAction]error{}},
		chats:     &fakeChats{threads: map[string]kernel.ChatID{}},
		scheduler: &fakeScheduler{},
		events:    &fakePublisher{},
	}

	seekers := &fakeSeekerRepo{byAccount: map[kernel.AccountID]*seeker.Seeker{
		seekerAccount:  {ID: seekerID, AccountID: seekerAccount, Status: seeker.SeekerStatusActive},
		seekerAccount2: {ID: seekerID2, AccountID: seekerAccount2, Status: seeker.SeekerStatusActive},
	}}
	companies := &fakeCompanyRepo{byAccount: map[kernel.AccountID]*company.Company{
		companyAccount: {ID: companyID, AccountID: companyAccount, Plan: company.PlanStarter, Status: company.CompanyStatusActive},
		otherAccount:   {ID: otherCoID, AccountID: otherAccount, Plan: company.PlanStarter, Status: company.CompanyStatusActive},
	}}

	w.svc = NewApplicationService(w.apps, w.jobs, seekers, companies, w.limiter, w.chats, w.scheduler, w.events)
	return w
}

func (w *world) apply(t *testing.T) *application.ApplicationResponse {
	t.Helper()
	resp, err := w.svc.Apply(context.Background(), seekerAccount, jobID)
	require.NoError(t, err)
	return resp
}

// ============================================================================
// Creation
// ============================================================================

func TestApply(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)

	assert.Equal(t, application.StatusApplied, resp.Status)
	assert.Equal(t, seekerID, resp.SeekerID)
	assert.Equal(t, companyID, resp.CompanyID)
	assert.Equal(t, kernel.JobTitle("Warehouse Shift"), resp.JobTitle)
	assert.True(t, strings.HasPrefix(resp.DisplayCode, "APP-"))
	assert.Equal(t, 1, w.jobs.jobs[jobID].ApplicationsCount)
	assert.Equal(t, []application.EventKind{application.EventApplied}, w.events.kinds())
}

func TestApplyToUnpublishedJob(t *testing.T) {
	w := newWorld()
	w.jobs.jobs[jobID].Status = job.JobStatusDraft

	_, err := w.svc.Apply(context.Background(), seekerAccount, jobID)
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeBusiness))
	assert.Equal(t, 0, w.jobs.jobs[jobID].ApplicationsCount)
}

func TestApplyDuplicate(t *testing.T) {
	w := newWorld()
	w.apply(t)

	_, err := w.svc.Apply(context.Background(), seekerAccount, jobID)
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeConflict))
	assert.Equal(t, 1, w.jobs.jobs[jobID].ApplicationsCount)
}

func TestApplyAgainAfterWithdrawal(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)

	_, err := w.svc.Withdraw(context.Background(), seekerAccount, string(resp.ID))
	require.NoError(t, err)

	// A terminal application no longer blocks a new one
	resp2, err := w.svc.Apply(context.Background(), seekerAccount, jobID)
	require.NoError(t, err)
	assert.NotEqual(t, resp.ID, resp2.ID)
}

func TestInvite(t *testing.T) {
	w := newWorld()
	resp, err := w.svc.Invite(context.Background(), companyAccount, jobID, application.InviteRequest{SeekerID: seekerID})
	require.NoError(t, err)

	assert.Equal(t, application.StatusInvited, resp.Status)
	assert.Equal(t, []company.UsageAction{company.ActionInvite}, w.limiter.recorded)
	assert.Equal(t, []application.EventKind{application.EventInvited}, w.events.kinds())
	assert.Equal(t, 1, w.jobs.jobs[jobID].ApplicationsCount)
}

func TestInviteOnSomeoneElsesJob(t *testing.T) {
	w := newWorld()
	_, err := w.svc.Invite(context.Background(), otherAccount, jobID, application.InviteRequest{SeekerID: seekerID})
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeAuthorization))
}

func TestInviteBlockedByPlanLimit(t *testing.T) {
	w := newWorld()
	w.limiter.denied[company.ActionInvite] = company.ErrPlanLimitReached()

	_, err := w.svc.Invite(context.Background(), companyAccount, jobID, application.InviteRequest{SeekerID: seekerID})
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeBusiness))
	assert.Empty(t, w.apps.byID)
	assert.Empty(t, w.limiter.recorded)
}

// ============================================================================
// Transitions
// ============================================================================

func TestAcceptInvitationFlow(t *testing.T) {
	w := newWorld()
	invited, err := w.svc.Invite(context.Background(), companyAccount, jobID, application.InviteRequest{SeekerID: seekerID})
	require.NoError(t, err)

	resp, err := w.svc.AcceptInvitation(context.Background(), seekerAccount, string(invited.ID))
	require.NoError(t, err)
	assert.Equal(t, application.StatusApplied, resp.Status)
}

func TestAcceptInvitationByWrongSeeker(t *testing.T) {
	w := newWorld()
	invited, err := w.svc.Invite(context.Background(), companyAccount, jobID, application.InviteRequest{SeekerID: seekerID})
	require.NoError(t, err)

	_, err = w.svc.AcceptInvitation(context.Background(), seekerAccount2, string(invited.ID))
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeAuthorization))
}

func TestShortlistByWrongCompany(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)

	_, err := w.svc.Shortlist(context.Background(), otherAccount, string(resp.ID))
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeAuthorization))

	stored, _ := w.apps.GetByID(context.Background(), resp.ID)
	assert.Equal(t, application.StatusApplied, stored.Status)
}

func TestWithdrawReleasesJobCounter(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)

	_, err := w.svc.ScheduleInterview(context.Background(), companyAccount, string(resp.ID), application.ScheduleInterviewRequest{
		Date: "2026-09-10", StartTime: "10:00", DurationMinutes: 60,
	})
	require.NoError(t, err)

	// Withdrawing is allowed even after an interview was scheduled
	withdrawn, err := w.svc.Withdraw(context.Background(), seekerAccount, string(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, application.StatusWithdrawn, withdrawn.Status)
	assert.Equal(t, 0, w.jobs.jobs[jobID].ApplicationsCount)
	assert.Contains(t, w.events.kinds(), application.EventWithdrawn)
}

func TestWithdrawCounterStaysAtZero(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)
	w.jobs.jobs[jobID].ApplicationsCount = 0

	_, err := w.svc.Withdraw(context.Background(), seekerAccount, string(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, 0, w.jobs.jobs[jobID].ApplicationsCount)
}

func TestHireRequestRoundTrip(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)

	hired, err := w.svc.SendHireRequest(context.Background(), companyAccount, string(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, application.StatusHired, hired.Status)
	assert.Equal(t, application.HireResponsePending, hired.HireResponse)
	assert.Empty(t, w.limiter.recorded, "the ledger records on acceptance, not on the offer")

	answered, err := w.svc.RespondToHireRequest(context.Background(), seekerAccount, string(resp.ID), application.HireResponseRequest{Accepted: true})
	require.NoError(t, err)
	assert.Equal(t, application.StatusHired, answered.Status)
	assert.Equal(t, application.HireResponseAccepted, answered.HireResponse)
	assert.Equal(t, []company.UsageAction{company.ActionHire}, w.limiter.recorded)
}

func TestHireRequestDeclinedRevertsToShortlisted(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)

	_, err := w.svc.SendHireRequest(context.Background(), companyAccount, string(resp.ID))
	require.NoError(t, err)

	answered, err := w.svc.RespondToHireRequest(context.Background(), seekerAccount, string(resp.ID), application.HireResponseRequest{Accepted: false})
	require.NoError(t, err)
	assert.Equal(t, application.StatusShortlisted, answered.Status)
	assert.Equal(t, application.HireResponseDeclined, answered.HireResponse)
	assert.Empty(t, w.limiter.recorded)
}

func TestSendHireRequestBlockedByPlanLimit(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)
	w.limiter.denied[company.ActionHire] = company.ErrPlanLimitReached()

	_, err := w.svc.SendHireRequest(context.Background(), companyAccount, string(resp.ID))
	require.Error(t, err)

	stored, _ := w.apps.GetByID(context.Background(), resp.ID)
	assert.Equal(t, application.StatusApplied, stored.Status)
}

func TestScheduleInterviewOpensOneChat(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)

	req := application.ScheduleInterviewRequest{Date: "2026-09-10", StartTime: "10:00", DurationMinutes: 60}
	first, err := w.svc.ScheduleInterview(context.Background(), companyAccount, string(resp.ID), req)
	require.NoError(t, err)
	assert.Equal(t, application.StatusInterviewed, first.Status)
	assert.True(t, first.InterviewScheduled)
	assert.False(t, first.ChatID.IsEmpty())

	// Rescheduling reuses the existing thread
	req.StartTime = "14:00"
	second, err := w.svc.ScheduleInterview(context.Background(), companyAccount, string(resp.ID), req)
	require.NoError(t, err)
	assert.Equal(t, first.ChatID, second.ChatID)
	assert.Len(t, w.chats.threads, 1)
	assert.Len(t, w.scheduler.requests, 2)
	assert.Equal(t, "14:00", w.scheduler.requests[1].StartTime)
}

func TestScheduleInterviewRejectedSlotLeavesApplicationUntouched(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)

	w.scheduler.fail = interview.ErrInvalidSlot()

	_, err := w.svc.ScheduleInterview(context.Background(), companyAccount, string(resp.ID), application.ScheduleInterviewRequest{
		Date: "2026-09-10", StartTime: "10:00", DurationMinutes: 60,
	})
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))

	stored, _ := w.apps.GetByID(context.Background(), resp.ID)
	assert.Equal(t, application.StatusApplied, stored.Status)
	assert.False(t, stored.InterviewScheduled)
	assert.True(t, stored.ChatID.IsEmpty())
}

func TestScheduleInterviewConflictingSlotLeavesApplicationUntouched(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)

	w.scheduler.fail = interview.ErrSlotConflict()

	_, err := w.svc.ScheduleInterview(context.Background(), companyAccount, string(resp.ID), application.ScheduleInterviewRequest{
		Date: "2026-09-10", StartTime: "10:00", DurationMinutes: 60,
	})
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeConflict))

	stored, _ := w.apps.GetByID(context.Background(), resp.ID)
	assert.Equal(t, application.StatusApplied, stored.Status)
	assert.False(t, stored.InterviewScheduled)

	// A later valid slot goes through cleanly
	w.scheduler.fail = nil
	scheduled, err := w.svc.ScheduleInterview(context.Background(), companyAccount, string(resp.ID), application.ScheduleInterviewRequest{
		Date: "2026-09-10", StartTime: "14:00", DurationMinutes: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, application.StatusInterviewed, scheduled.Status)
}

func TestAcceptOpensChatAndRecordsHire(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)

	accepted, err := w.svc.Accept(context.Background(), companyAccount, string(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, application.StatusHired, accepted.Status)
	assert.Equal(t, application.HireResponseAccepted, accepted.HireResponse)
	assert.False(t, accepted.ChatID.IsEmpty())
	assert.Equal(t, []company.UsageAction{company.ActionHire}, w.limiter.recorded)
	assert.Contains(t, w.events.kinds(), application.EventAccepted)
}

func TestStrangerWithExhaustedPlanGetsForbidden(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)
	w.limiter.denied[company.ActionHire] = company.ErrPlanLimitReached()

	// Authorization is decided before the plan ceiling is consulted
	_, err := w.svc.SendHireRequest(context.Background(), otherAccount, string(resp.ID))
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeAuthorization))

	_, err = w.svc.Accept(context.Background(), otherAccount, string(resp.ID))
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeAuthorization))
}

func TestDeclineRequiresReason(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)

	_, err := w.svc.Decline(context.Background(), companyAccount, string(resp.ID), application.ReasonRequest{})
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))

	declined, err := w.svc.Decline(context.Background(), companyAccount, string(resp.ID), application.ReasonRequest{Reason: "not a fit"})
	require.NoError(t, err)
	assert.Equal(t, application.StatusDeclined, declined.Status)
	assert.Equal(t, "not a fit", declined.DeclineReason)
}

func TestReportAbsenceKeepsStatus(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)

	_, err := w.svc.ScheduleInterview(context.Background(), companyAccount, string(resp.ID), application.ScheduleInterviewRequest{
		Date: "2026-09-10", StartTime: "10:00", DurationMinutes: 30,
	})
	require.NoError(t, err)

	reported, err := w.svc.ReportAbsence(context.Background(), companyAccount, string(resp.ID), application.ReasonRequest{Reason: "did not show up"})
	require.NoError(t, err)
	assert.Equal(t, application.StatusInterviewed, reported.Status)
	assert.Len(t, reported.AbsenceReports, 1)
}

func TestCompleteJobByEitherParty(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)
	_, err := w.svc.Accept(context.Background(), companyAccount, string(resp.ID))
	require.NoError(t, err)

	completed, err := w.svc.CompleteJob(context.Background(), seekerAccount, kernel.AccountTypeSeeker, string(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, application.StatusCompleted, completed.Status)
	assert.Contains(t, w.events.kinds(), application.EventCompleted)
}

func TestCompleteJobRequiresHired(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)

	_, err := w.svc.CompleteJob(context.Background(), companyAccount, kernel.AccountTypeCompany, string(resp.ID))
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeBusiness))
}

func TestCancelJobByCompany(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)

	cancelled, err := w.svc.CancelJob(context.Background(), companyAccount, kernel.AccountTypeCompany, string(resp.ID), application.ReasonRequest{Reason: "role closed"})
	require.NoError(t, err)
	assert.Equal(t, application.StatusCancelled, cancelled.Status)
}

// ============================================================================
// Concurrency
// ============================================================================

func TestTransitionRetriesOnVersionConflict(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)

	w.apps.conflicts = 2
	w.apps.updates = 0

	shortlisted, err := w.svc.Shortlist(context.Background(), companyAccount, string(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, application.StatusShortlisted, shortlisted.Status)
	assert.Equal(t, 3, w.apps.updates)
}

func TestTransitionGivesUpAfterRetries(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)

	w.apps.conflicts = 3

	_, err := w.svc.Shortlist(context.Background(), companyAccount, string(resp.ID))
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeConflict))

	stored, _ := w.apps.GetByID(context.Background(), resp.ID)
	assert.Equal(t, application.StatusApplied, stored.Status)
}

// ============================================================================
// Queries
// ============================================================================

func TestGetByRefAcceptsDisplayCode(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)

	byCode, err := w.svc.GetByRef(context.Background(), seekerAccount, kernel.AccountTypeSeeker, resp.DisplayCode)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, byCode.ID)

	byID, err := w.svc.GetByRef(context.Background(), companyAccount, kernel.AccountTypeCompany, string(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, resp.ID, byID.ID)
}

func TestGetByRefDeniesStrangers(t *testing.T) {
	w := newWorld()
	resp := w.apply(t)

	_, err := w.svc.GetByRef(context.Background(), otherAccount, kernel.AccountTypeCompany, string(resp.ID))
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeAuthorization))
}

func TestListMine(t *testing.T) {
	w := newWorld()
	w.apply(t)

	page, err := w.svc.ListMine(context.Background(), seekerAccount, kernel.PaginationOptions{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Total)

	empty, err := w.svc.ListMine(context.Background(), seekerAccount2, kernel.PaginationOptions{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.True(t, empty.Empty)
}

func TestListForJobRequiresOwnership(t *testing.T) {
	w := newWorld()
	w.apply(t)

	page, err := w.svc.ListForJob(context.Background(), companyAccount, jobID, kernel.PaginationOptions{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	_, err = w.svc.ListForJob(context.Background(), otherAccount, jobID, kernel.PaginationOptions{Page: 1, PageSize: 20})
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeAuthorization))
}
