package applicationsrv

import (
	"context"
	"strings"
	"time"

	"github.com/Abraxas-365/stint/marketplace/application"
	"github.com/Abraxas-365/stint/marketplace/chat"
	"github.com/Abraxas-365/stint/marketplace/company"
	"github.com/Abraxas-365/stint/marketplace/interview"
	"github.com/Abraxas-365/stint/marketplace/job"
	"github.com/Abraxas-365/stint/marketplace/seeker"
	"github.com/Abraxas-365/stint/pkg/errx"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/Abraxas-365/stint/pkg/logx"
	"github.com/google/uuid"
)

// maxUpdateRetries bounds reload attempts after a version conflict
const maxUpdateRetries = 3

// ApplicationService drives the candidacy lifecycle. Every transition
// loads the aggregate, validates the actor and the edge, persists with
// a compare-and-swap on the version stamp and retries on conflict
type ApplicationService struct {
	repo       application.Repository
	jobs       job.Repository
	seekers    seeker.Repository
	companies  company.Repository
	limiter    company.Limiter
	chats      chat.Creator
	interviews interview.Scheduler
	events     application.Publisher
}

// NewApplicationService creates a new application service
func NewApplicationService(
	repo application.Repository,
	jobs job.Repository,
	seekers seeker.Repository,
	companies company.Repository,
	limiter company.Limiter,
	chats chat.Creator,
	interviews interview.Scheduler,
	events application.Publisher,
) *ApplicationService {
	return &ApplicationService{
		repo:       repo,
		jobs:       jobs,
		seekers:    seekers,
		companies:  companies,
		limiter:    limiter,
		chats:      chats,
		interviews: interviews,
		events:     events,
	}
}

// ============================================================================
// Creation
// ============================================================================

// Apply creates a seeker-initiated application against a published job
func (s *ApplicationService) Apply(ctx context.Context, accountID kernel.AccountID, jobID kernel.JobID) (*application.ApplicationResponse, error) {
	skr, err := s.seekerActor(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !skr.CanApplyToJob() {
		return nil, seeker.ErrSeekerSuspended()
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !j.AcceptsApplications() {
		return nil, job.ErrJobNotAcceptingApplications().WithDetail("job_status", j.Status)
	}

	app, err := s.createApplication(ctx, j, skr.ID, application.StatusApplied)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, application.EventApplied, app)
	return app.ToResponse(), nil
}

// Invite creates a company-initiated application for a seeker
func (s *ApplicationService) Invite(ctx context.Context, accountID kernel.AccountID, jobID kernel.JobID, req application.InviteRequest) (*application.ApplicationResponse, error) {
	comp, err := s.companyActor(ctx, accountID)
	if err != nil {
		return nil, err
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.CompanyID != comp.ID {
		return nil, job.ErrNotJobOwner().WithDetail("job_id", jobID)
	}

	skr, err := s.seekers.GetByID(ctx, req.SeekerID)
	if err != nil {
		return nil, err
	}

	if err := s.limiter.EnsureCanPerform(ctx, comp.ID, company.ActionInvite); err != nil {
		return nil, err
	}

	app, err := s.createApplication(ctx, j, skr.ID, application.StatusInvited)
	if err != nil {
		return nil, err
	}

	if err := s.limiter.RecordAction(ctx, comp.ID, company.ActionInvite, string(app.ID)); err != nil {
		logx.Warnf("failed to record invite usage for company %s: %v", comp.ID, err)
	}

	s.publish(ctx, application.EventInvited, app)
	return app.ToResponse(), nil
}

func (s *ApplicationService) createApplication(ctx context.Context, j *job.Job, seekerID kernel.SeekerID, initial application.ApplicationStatus) (*application.Application, error) {
	exists, err := s.repo.ExistsActiveByJobAndSeeker(ctx, j.ID, seekerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, application.ErrDuplicate().
			WithDetail("job_id", j.ID).
			WithDetail("seeker_id", seekerID)
	}

	now := time.Now()
	app := &application.Application{
		ID:              kernel.NewApplicationID(uuid.New().String()),
		DisplayCode:     newDisplayCode(),
		JobID:           j.ID,
		SeekerID:        seekerID,
		CompanyID:       j.CompanyID,
		Status:          initial,
		JobTitle:        j.Title,
		CompanyName:     j.CompanyName,
		HiringType:      j.HiringType,
		StatusChangedAt: now,
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	// Counter failure after creation is logged, not rolled back
	if err := s.jobs.IncrementApplications(ctx, j.ID); err != nil {
		logx.Warnf("failed to increment applications count for job %s: %v", j.ID, err)
	}

	logx.Infof("application %s created for job %s (status %s)", app.ID, j.ID, initial)
	return app, nil
}

// ============================================================================
// Seeker transitions
// ============================================================================

// AcceptInvitation moves an invited application to applied
func (s *ApplicationService) AcceptInvitation(ctx context.Context, accountID kernel.AccountID, ref string) (*application.ApplicationResponse, error) {
	app, err := s.seekerTransition(ctx, accountID, ref, func(a *application.Application) error {
		return a.AcceptInvitation()
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, application.EventInvitationAccepted, app)
	return app.ToResponse(), nil
}

// RespondToHireRequest records the seeker's answer to a pending hire
// request. Accepting confirms the hire; declining reverts to
// shortlisted
func (s *ApplicationService) RespondToHireRequest(ctx context.Context, accountID kernel.AccountID, ref string, req application.HireResponseRequest) (*application.ApplicationResponse, error) {
	app, err := s.seekerTransition(ctx, accountID, ref, func(a *application.Application) error {
		return a.RespondToHireRequest(req.Accepted)
	})
	if err != nil {
		return nil, err
	}

	if req.Accepted {
		if err := s.limiter.RecordAction(ctx, app.CompanyID, company.ActionHire, string(app.ID)); err != nil {
			logx.Warnf("failed to record hire usage for company %s: %v", app.CompanyID, err)
		}
	}

	s.publish(ctx, application.EventHireResponded, app)
	return app.ToResponse(), nil
}

// RespondToInterviewRequest records the seeker's answer to a scheduled
// interview
func (s *ApplicationService) RespondToInterviewRequest(ctx context.Context, accountID kernel.AccountID, ref string, req application.InterviewResponseRequest) (*application.ApplicationResponse, error) {
	app, err := s.seekerTransition(ctx, accountID, ref, func(a *application.Application) error {
		return a.RespondToInterviewRequest(req.Accepted)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, application.EventInterviewResponded, app)
	return app.ToResponse(), nil
}

// Withdraw removes the seeker's candidacy and releases the job counter
func (s *ApplicationService) Withdraw(ctx context.Context, accountID kernel.AccountID, ref string) (*application.ApplicationResponse, error) {
	app, err := s.seekerTransition(ctx, accountID, ref, func(a *application.Application) error {
		return a.Withdraw()
	})
	if err != nil {
		return nil, err
	}

	if err := s.jobs.DecrementApplications(ctx, app.JobID); err != nil {
		logx.Warnf("failed to decrement applications count for job %s: %v", app.JobID, err)
	}

	s.publish(ctx, application.EventWithdrawn, app)
	return app.ToResponse(), nil
}

// ============================================================================
// Company transitions
// ============================================================================

// Shortlist marks the candidate as shortlisted
func (s *ApplicationService) Shortlist(ctx context.Context, accountID kernel.AccountID, ref string) (*application.ApplicationResponse, error) {
	app, err := s.companyTransition(ctx, accountID, ref, func(a *application.Application) error {
		return a.Shortlist()
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, application.EventShortlisted, app)
	return app.ToResponse(), nil
}

// SendHireRequest extends a hire offer pending the seeker's response.
// The plan ceiling is checked after the caller is authorized; the
// ledger records on acceptance
func (s *ApplicationService) SendHireRequest(ctx context.Context, accountID kernel.AccountID, ref string) (*application.ApplicationResponse, error) {
	comp, err := s.companyActor(ctx, accountID)
	if err != nil {
		return nil, err
	}

	app, err := s.transition(ctx, ref, s.authorizeCompany(ctx, comp), func(a *application.Application) error {
		if err := s.limiter.EnsureCanPerform(ctx, comp.ID, company.ActionHire); err != nil {
			return err
		}
		return a.SendHireRequest()
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, application.EventHireRequested, app)
	return app.ToResponse(), nil
}

// ScheduleInterview moves the application to interviewed, attaches the
// interview slot and opens the chat thread when none exists yet. The
// slot is booked inside the mutator: an invalid or conflicting slot
// aborts the transition before anything is persisted
func (s *ApplicationService) ScheduleInterview(ctx context.Context, accountID kernel.AccountID, ref string, req application.ScheduleInterviewRequest) (*application.ApplicationResponse, error) {
	comp, err := s.companyActor(ctx, accountID)
	if err != nil {
		return nil, err
	}

	app, err := s.transition(ctx, ref, s.authorizeCompany(ctx, comp), func(a *application.Application) error {
		if err := a.ScheduleInterview(); err != nil {
			return err
		}
		// Scheduling is idempotent per application, so a version-conflict
		// retry moves the same interview instead of booking a second one
		if _, err := s.interviews.ScheduleForApplication(ctx, interview.ScheduleForApplicationRequest{
			ApplicationID:   a.ID,
			CompanyID:       a.CompanyID,
			SeekerID:        a.SeekerID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			Notes:           req.Notes,
		}); err != nil {
			return err
		}
		return s.attachChat(ctx, a)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, application.EventInterviewScheduled, app)
	return app.ToResponse(), nil
}

// Accept hires the candidate directly and opens the chat thread when
// none exists yet
func (s *ApplicationService) Accept(ctx context.Context, accountID kernel.AccountID, ref string) (*application.ApplicationResponse, error) {
	comp, err := s.companyActor(ctx, accountID)
	if err != nil {
		return nil, err
	}

	app, err := s.transition(ctx, ref, s.authorizeCompany(ctx, comp), func(a *application.Application) error {
		if err := s.limiter.EnsureCanPerform(ctx, comp.ID, company.ActionHire); err != nil {
			return err
		}
		if err := a.Accept(); err != nil {
			return err
		}
		return s.attachChat(ctx, a)
	})
	if err != nil {
		return nil, err
	}

	if err := s.limiter.RecordAction(ctx, comp.ID, company.ActionHire, string(app.ID)); err != nil {
		logx.Warnf("failed to record hire usage for company %s: %v", comp.ID, err)
	}

	s.publish(ctx, application.EventAccepted, app)
	return app.ToResponse(), nil
}

// Reject rejects the candidate
func (s *ApplicationService) Reject(ctx context.Context, accountID kernel.AccountID, ref string) (*application.ApplicationResponse, error) {
	app, err := s.companyTransition(ctx, accountID, ref, func(a *application.Application) error {
		return a.Reject()
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, application.EventRejected, app)
	return app.ToResponse(), nil
}

// Decline declines the candidate with a structured reason
func (s *ApplicationService) Decline(ctx context.Context, accountID kernel.AccountID, ref string, req application.ReasonRequest) (*application.ApplicationResponse, error) {
	app, err := s.companyTransition(ctx, accountID, ref, func(a *application.Application) error {
		return a.Decline(req.Reason)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, application.EventDeclined, app)
	return app.ToResponse(), nil
}

// ReportAbsence annotates a no-show without changing status
func (s *ApplicationService) ReportAbsence(ctx context.Context, accountID kernel.AccountID, ref string, req application.ReasonRequest) (*application.ApplicationResponse, error) {
	app, err := s.companyTransition(ctx, accountID, ref, func(a *application.Application) error {
		return a.ReportAbsence(req.Reason)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, application.EventAbsenceReported, app)
	return app.ToResponse(), nil
}

// ============================================================================
// Either-party transitions
// ============================================================================

// CompleteJob finishes a hired engagement. Either party may call it
func (s *ApplicationService) CompleteJob(ctx context.Context, accountID kernel.AccountID, accountType kernel.AccountType, ref string) (*application.ApplicationResponse, error) {
	app, err := s.partyTransition(ctx, accountID, accountType, ref, func(a *application.Application) error {
		return a.Complete()
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, application.EventCompleted, app)
	return app.ToResponse(), nil
}

// CancelJob ends the engagement from any non-terminal status. Either
// party may call it
func (s *ApplicationService) CancelJob(ctx context.Context, accountID kernel.AccountID, accountType kernel.AccountType, ref string, req application.ReasonRequest) (*application.ApplicationResponse, error) {
	app, err := s.partyTransition(ctx, accountID, accountType, ref, func(a *application.Application) error {
		return a.Cancel(req.Reason)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, application.EventCancelled, app)
	return app.ToResponse(), nil
}

// ============================================================================
// Queries
// ============================================================================

// GetByRef retrieves an application visible to the caller
func (s *ApplicationService) GetByRef(ctx context.Context, accountID kernel.AccountID, accountType kernel.AccountType, ref string) (*application.ApplicationResponse, error) {
	app, err := s.repo.FindByRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeParty(ctx, accountID, accountType)(app); err != nil {
		return nil, err
	}
	return app.ToResponse(), nil
}

// ListMine lists the caller's applications as a seeker
func (s *ApplicationService) ListMine(ctx context.Context, accountID kernel.AccountID, pagination kernel.PaginationOptions) (*application.PaginatedApplicationsResponse, error) {
	skr, err := s.seekerActor(ctx, accountID)
	if err != nil {
		return nil, err
	}
	result, err := s.repo.ListBySeekerID(ctx, skr.ID, pagination)
	if err != nil {
		return nil, err
	}
	return toPaginatedResponse(result), nil
}

// ListForJob lists applications against one of the caller's jobs
func (s *ApplicationService) ListForJob(ctx context.Context, accountID kernel.AccountID, jobID kernel.JobID, pagination kernel.PaginationOptions) (*application.PaginatedApplicationsResponse, error) {
	comp, err := s.companyActor(ctx, accountID)
	if err != nil {
		return nil, err
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.CompanyID != comp.ID {
		return nil, job.ErrNotJobOwner().WithDetail("job_id", jobID)
	}

	result, err := s.repo.ListByJobID(ctx, jobID, pagination)
	if err != nil {
		return nil, err
	}
	return toPaginatedResponse(result), nil
}

// ListForCompany lists applications across all of the caller's jobs
func (s *ApplicationService) ListForCompany(ctx context.Context, accountID kernel.AccountID, pagination kernel.PaginationOptions) (*application.PaginatedApplicationsResponse, error) {
	comp, err := s.companyActor(ctx, accountID)
	if err != nil {
		return nil, err
	}
	result, err := s.repo.ListByCompanyID(ctx, comp.ID, pagination)
	if err != nil {
		return nil, err
	}
	return toPaginatedResponse(result), nil
}

// ============================================================================
// Transition plumbing
// ============================================================================

type mutator func(*application.Application) error
type authorizer func(*application.Application) error

// transition runs one load-validate-mutate-store cycle, retrying on
// version conflicts. Side effects inside the mutator must be
// idempotent because a retry replays them
func (s *ApplicationService) transition(ctx context.Context, ref string, authorize authorizer, mutate mutator) (*application.Application, error) {
	var conflict error
	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		app, err := s.repo.FindByRef(ctx, ref)
		if err != nil {
			return nil, err
		}
		if err := authorize(app); err != nil {
			return nil, err
		}
		if err := mutate(app); err != nil {
			return nil, err
		}

		err = s.repo.Update(ctx, app)
		if err == nil {
			return app, nil
		}
		if !errx.IsType(err, errx.TypeConflict) {
			return nil, err
		}
		conflict = err
		logx.Debugf("version conflict on application %s, retrying (%d/%d)", ref, attempt+1, maxUpdateRetries)
	}
	return nil, conflict
}

func (s *ApplicationService) seekerTransition(ctx context.Context, accountID kernel.AccountID, ref string, mutate mutator) (*application.Application, error) {
	skr, err := s.seekerActor(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, ref, s.authorizeSeeker(skr), mutate)
}

func (s *ApplicationService) companyTransition(ctx context.Context, accountID kernel.AccountID, ref string, mutate mutator) (*application.Application, error) {
	comp, err := s.companyActor(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, ref, s.authorizeCompany(ctx, comp), mutate)
}

func (s *ApplicationService) partyTransition(ctx context.Context, accountID kernel.AccountID, accountType kernel.AccountType, ref string, mutate mutator) (*application.Application, error) {
	return s.transition(ctx, ref, s.authorizeParty(ctx, accountID, accountType), mutate)
}

func (s *ApplicationService) seekerActor(ctx context.Context, accountID kernel.AccountID) (*seeker.Seeker, error) {
	return s.seekers.GetByAccountID(ctx, accountID)
}

func (s *ApplicationService) companyActor(ctx context.Context, accountID kernel.AccountID) (*company.Company, error) {
	return s.companies.GetByAccountID(ctx, accountID)
}

func (s *ApplicationService) authorizeSeeker(skr *seeker.Seeker) authorizer {
	return func(app *application.Application) error {
		if app.SeekerID != skr.ID {
			return application.ErrForbidden().WithDetail("application_id", app.ID)
		}
		return nil
	}
}

// authorizeCompany accepts the company recorded on the application, or
// the owner of the referenced job when the two disagree
func (s *ApplicationService) authorizeCompany(ctx context.Context, comp *company.Company) authorizer {
	return func(app *application.Application) error {
		if app.CompanyID == comp.ID {
			return nil
		}
		j, err := s.jobs.GetByID(ctx, app.JobID)
		if err == nil && j.CompanyID == comp.ID {
			return nil
		}
		return application.ErrForbidden().WithDetail("application_id", app.ID)
	}
}

func (s *ApplicationService) authorizeParty(ctx context.Context, accountID kernel.AccountID, accountType kernel.AccountType) authorizer {
	return func(app *application.Application) error {
		switch accountType {
		case kernel.AccountTypeSeeker:
			skr, err := s.seekerActor(ctx, accountID)
			if err != nil {
				return err
			}
			return s.authorizeSeeker(skr)(app)
		case kernel.AccountTypeCompany:
			comp, err := s.companyActor(ctx, accountID)
			if err != nil {
				return err
			}
			return s.authorizeCompany(ctx, comp)(app)
		}
		return application.ErrForbidden()
	}
}

// attachChat opens the chat thread for the application's participants
// and records the id. Existing threads are reused, never duplicated
func (s *ApplicationService) attachChat(ctx context.Context, app *application.Application) error {
	if app.HasChat() {
		return nil
	}
	chatID, err := s.chats.CreateForApplication(ctx, app.CompanyID, app.SeekerID, app.JobID, app.JobTitle)
	if err != nil {
		return err
	}
	app.AssignChat(chatID)
	return nil
}

func (s *ApplicationService) publish(ctx context.Context, kind application.EventKind, app *application.Application) {
	event := application.Event{
		ID:            kernel.NewEventID(uuid.New().String()),
		Kind:          kind,
		ApplicationID: app.ID,
		JobID:         app.JobID,
		SeekerID:      app.SeekerID,
		CompanyID:     app.CompanyID,
		JobTitle:      app.JobTitle,
		Status:        app.Status,
		OccurredAt:    time.Now(),
	}

	// Dispatch never fails the transition that produced the event
	if err := s.events.Publish(ctx, event); err != nil {
		logx.Warnf("failed to publish %s for application %s: %v", kind, app.ID, err)
	}
}

func newDisplayCode() string {
	return "APP-" + strings.ToUpper(uuid.New().String()[:8])
}

func toPaginatedResponse(result *kernel.Paginated[application.Application]) *application.PaginatedApplicationsResponse {
	items := make([]application.ApplicationResponse, len(result.Items))
	for i := range result.Items {
		items[i] = *result.Items[i].ToResponse()
	}
	return kernel.NewPaginated(items, result.Page, result.Total)
}
