package interview

import (
	"context"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

type Repository interface {
	// Create creates a new interview
	Create(ctx context.Context, interview *Interview) error

	// Update updates an existing interview
	Update(ctx context.Context, id kernel.InterviewID, interview *Interview) error

	// GetByID retrieves an interview by ID
	GetByID(ctx context.Context, id kernel.InterviewID) (*Interview, error)

	// GetByApplicationID retrieves the interview attached to an
	// application, if any
	GetByApplicationID(ctx context.Context, applicationID kernel.ApplicationID) (*Interview, error)

	// ListByCompanyAndDate retrieves a company's interviews on one day
	ListByCompanyAndDate(ctx context.Context, companyID kernel.CompanyID, date string) ([]Interview, error)

	// ListBySeekerID retrieves a seeker's interviews
	ListBySeekerID(ctx context.Context, seekerID kernel.SeekerID, pagination kernel.PaginationOptions) (*kernel.Paginated[Interview], error)
}

// Scheduler attaches interview slots to applications. Consumed by the
// application transition flow
type Scheduler interface {
	// ScheduleForApplication creates the interview for an application,
	// or moves the existing one to the new slot
	ScheduleForApplication(ctx context.Context, req ScheduleForApplicationRequest) (*Interview, error)
}
