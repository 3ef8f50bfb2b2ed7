package application

import (
	"context"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

type Repository interface {
	// Create creates a new application
	Create(ctx context.Context, app *Application) error

	// Update persists the application if its stored version still
	// matches the version it was loaded at, then bumps the version.
	// Returns a version conflict error when another writer got there
	// first
	Update(ctx context.Context, app *Application) error

	// GetByID retrieves an application by ID
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// FindByRef retrieves an application by storage ID, falling back to
	// the display code carried by older clients
	FindByRef(ctx context.Context, ref string) (*Application, error)

	// ExistsActiveByJobAndSeeker checks for a non-terminal application
	// on the same (job, seeker) pair
	ExistsActiveByJobAndSeeker(ctx context.Context, jobID kernel.JobID, seekerID kernel.SeekerID) (bool, error)

	// ListBySeekerID retrieves a seeker's applications
	ListBySeekerID(ctx context.Context, seekerID kernel.SeekerID, pagination kernel.PaginationOptions) (*kernel.Paginated[Application], error)

	// ListByJobID retrieves applications against a job
	ListByJobID(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[Application], error)

	// ListByCompanyID retrieves applications across all of a company's
	// jobs
	ListByCompanyID(ctx context.Context, companyID kernel.CompanyID, pagination kernel.PaginationOptions) (*kernel.Paginated[Application], error)
}
