package company

import (
	"context"
	"time"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

type Repository interface {
	// Create creates a new company profile
	Create(ctx context.Context, company *Company) error

	// Update updates an existing company profile
	Update(ctx context.Context, id kernel.CompanyID, company *Company) error

	// GetByID retrieves a company by profile ID
	GetByID(ctx context.Context, id kernel.CompanyID) (*Company, error)

	// GetByAccountID resolves an authentication account to its company profile
	GetByAccountID(ctx context.Context, accountID kernel.AccountID) (*Company, error)

	// Exists checks if a company exists by profile ID
	Exists(ctx context.Context, id kernel.CompanyID) (bool, error)

	// AppendUsage appends one event to the usage ledger
	AppendUsage(ctx context.Context, event *UsageEvent) error

	// CountUsage counts ledger events for an action since a point in time.
	// A zero time counts the whole ledger.
	CountUsage(ctx context.Context, companyID kernel.CompanyID, action UsageAction, since time.Time) (int, error)
}

// Limiter gates plan-limited actions. Implemented by the company service
// and consumed by the job and application services.
type Limiter interface {
	// EnsureCanPerform fails when the action would exceed the company's
	// plan ceiling or its trial window has closed
	EnsureCanPerform(ctx context.Context, companyID kernel.CompanyID, action UsageAction) error

	// RecordAction appends the performed action to the usage ledger
	RecordAction(ctx context.Context, companyID kernel.CompanyID, action UsageAction, ref string) error
}
