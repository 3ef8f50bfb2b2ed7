package jobsrv

import (
	"context"

	"github.com/Abraxas-365/stint/marketplace/company"
	"github.com/Abraxas-365/stint/marketplace/job"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/Abraxas-365/stint/pkg/logx"
	"github.com/google/uuid"
)

// CompanyDirectory resolves the company profile behind an authenticated
// account
type CompanyDirectory interface {
	ResolveProfile(ctx context.Context, accountID kernel.AccountID) (*company.Company, error)
}

// JobService handles job posting business logic
type JobService struct {
	repo      job.Repository
	companies CompanyDirectory
	limiter   company.Limiter
}

// NewJobService creates a new job service
func NewJobService(
	repo job.Repository,
	companies CompanyDirectory,
	limiter company.Limiter,
) *JobService {
	return &JobService{
		repo:      repo,
		companies: companies,
		limiter:   limiter,
	}
}

// CreateJob creates a new job posting in draft status
func (s *JobService) CreateJob(ctx context.Context, accountID kernel.AccountID, req job.CreateJobRequest) (*job.JobResponse, error) {
	comp, err := s.companies.ResolveProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Title == "" || req.Description == "" {
		return nil, job.ErrInvalidRequest().WithDetail("reason", "title and description are required")
	}
	if !req.HiringType.IsValid() {
		return nil, job.ErrInvalidRequest().WithDetail("hiring_type", req.HiringType)
	}

	// Plan limits gate job creation, not publication
	if err := s.limiter.EnsureCanPerform(ctx, comp.ID, company.ActionJobPost); err != nil {
		return nil, err
	}

	j := &job.Job{
		ID:          kernel.NewJobID(uuid.New().String()),
		CompanyID:   comp.ID,
		Title:       req.Title,
		Description: req.Description,
		HiringType:  req.HiringType,
		CompanyName: comp.Name,
		Location:    req.Location,
		Rate:        req.Rate,
		Status:      job.JobStatusDraft,
	}

	if err := s.repo.Create(ctx, j); err != nil {
		return nil, err
	}

	if err := s.limiter.RecordAction(ctx, comp.ID, company.ActionJobPost, string(j.ID)); err != nil {
		logx.Warnf("failed to record job post usage for company %s: %v", comp.ID, err)
	}

	logx.Infof("job %s created by company %s", j.ID, comp.ID)
	return toResponse(j), nil
}

// GetJob retrieves a job and counts the view
func (s *JobService) GetJob(ctx context.Context, id kernel.JobID) (*job.JobResponse, error) {
	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// View counting is best effort
	if err := s.repo.IncrementViews(ctx, id); err != nil {
		logx.Debugf("failed to count view for job %s: %v", id, err)
	}

	return toResponse(j), nil
}

// UpdateJob updates an existing job owned by the caller
func (s *JobService) UpdateJob(ctx context.Context, accountID kernel.AccountID, id kernel.JobID, req job.UpdateJobRequest) (*job.JobResponse, error) {
	j, err := s.ownedJob(ctx, accountID, id)
	if err != nil {
		return nil, err
	}

	j.UpdateDetails(req.Title, req.Description, req.Location, req.Rate)

	if err := s.repo.Update(ctx, id, j); err != nil {
		return nil, err
	}

	return toResponse(j), nil
}

// PublishJob moves a job to published status
func (s *JobService) PublishJob(ctx context.Context, accountID kernel.AccountID, id kernel.JobID) (*job.JobResponse, error) {
	return s.changeStatus(ctx, accountID, id, func(j *job.Job) error { return j.Publish() })
}

// PauseJob temporarily stops a job from accepting applications
func (s *JobService) PauseJob(ctx context.Context, accountID kernel.AccountID, id kernel.JobID) (*job.JobResponse, error) {
	return s.changeStatus(ctx, accountID, id, func(j *job.Job) error { return j.Pause() })
}

// CloseJob permanently stops a job from accepting applications
func (s *JobService) CloseJob(ctx context.Context, accountID kernel.AccountID, id kernel.JobID) (*job.JobResponse, error) {
	return s.changeStatus(ctx, accountID, id, func(j *job.Job) error { return j.Close() })
}

// SearchJobs searches published jobs
func (s *JobService) SearchJobs(ctx context.Context, req job.SearchJobsRequest) (*job.PaginatedJobsResponse, error) {
	result, err := s.repo.Search(ctx, req)
	if err != nil {
		return nil, err
	}
	return toPaginatedResponse(result), nil
}

// ListOwnJobs lists the jobs posted by the caller's company
func (s *JobService) ListOwnJobs(ctx context.Context, accountID kernel.AccountID, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	comp, err := s.companies.ResolveProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	result, err := s.repo.ListByCompanyID(ctx, comp.ID, pagination)
	if err != nil {
		return nil, err
	}
	return toPaginatedResponse(result), nil
}

func (s *JobService) changeStatus(ctx context.Context, accountID kernel.AccountID, id kernel.JobID, change func(*job.Job) error) (*job.JobResponse, error) {
	j, err := s.ownedJob(ctx, accountID, id)
	if err != nil {
		return nil, err
	}

	if err := change(j); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, j); err != nil {
		return nil, err
	}

	logx.Infof("job %s moved to %s", j.ID, j.Status)
	return toResponse(j), nil
}

func (s *JobService) ownedJob(ctx context.Context, accountID kernel.AccountID, id kernel.JobID) (*job.Job, error) {
	comp, err := s.companies.ResolveProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if j.CompanyID != comp.ID {
		return nil, job.ErrNotJobOwner().WithDetail("job_id", id)
	}
	return j, nil
}

func toResponse(j *job.Job) *job.JobResponse {
	return &job.JobResponse{
		ID:                j.ID,
		CompanyID:         j.CompanyID,
		Title:             j.Title,
		Description:       j.Description,
		HiringType:        j.HiringType,
		CompanyName:       j.CompanyName,
		Location:          j.Location,
		Rate:              j.Rate,
		Status:            j.Status,
		ApplicationsCount: j.ApplicationsCount,
		ViewsCount:        j.ViewsCount,
		PublishedAt:       j.PublishedAt,
		CreatedAt:         j.CreatedAt,
		UpdatedAt:         j.UpdatedAt,
	}
}

func toPaginatedResponse(result *kernel.Paginated[job.Job]) *job.PaginatedJobsResponse {
	items := make([]job.JobResponse, len(result.Items))
	for i := range result.Items {
		items[i] = *toResponse(&result.Items[i])
	}
	return kernel.NewPaginated(items, result.Page, result.Total)
}
