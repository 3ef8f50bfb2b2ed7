package job

import (
	"context"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

type Repository interface {
	// Create creates a new job
	Create(ctx context.Context, job *Job) error

	// Update updates an existing job
	Update(ctx context.Context, id kernel.JobID, job *Job) error

	// GetByID retrieves a job by ID
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// Exists checks if a job exists by ID
	Exists(ctx context.Context, id kernel.JobID) (bool, error)

	// ListByCompanyID retrieves jobs posted by a company
	ListByCompanyID(ctx context.Context, companyID kernel.CompanyID, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// Search searches published jobs
	Search(ctx context.Context, req SearchJobsRequest) (*kernel.Paginated[Job], error)

	// IncrementApplications adds one to the job's application counter
	IncrementApplications(ctx context.Context, id kernel.JobID) error

	// DecrementApplications subtracts one from the job's application
	// counter, floor-clamped at zero
	DecrementApplications(ctx context.Context, id kernel.JobID) error

	// IncrementViews adds one to the job's view counter
	IncrementViews(ctx context.Context, id kernel.JobID) error
}
