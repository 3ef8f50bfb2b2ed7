package seeker

import (
	"context"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

type Repository interface {
	// Create creates a new seeker profile
	Create(ctx context.Context, seeker *Seeker) error

	// Update updates an existing seeker profile
	Update(ctx context.Context, id kernel.SeekerID, seeker *Seeker) error

	// GetByID retrieves a seeker by profile ID
	GetByID(ctx context.Context, id kernel.SeekerID) (*Seeker, error)

	// GetByAccountID resolves an authentication account to its seeker profile
	GetByAccountID(ctx context.Context, accountID kernel.AccountID) (*Seeker, error)

	// Exists checks if a seeker exists by profile ID
	Exists(ctx context.Context, id kernel.SeekerID) (bool, error)
}
