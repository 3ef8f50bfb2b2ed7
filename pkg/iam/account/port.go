package account

import (
	"context"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

type Repository interface {
	// Create creates a new account
	Create(ctx context.Context, account *Account) error

	// GetByID retrieves an account by ID
	GetByID(ctx context.Context, id kernel.AccountID) (*Account, error)

	// GetByEmail retrieves an account by email
	GetByEmail(ctx context.Context, email kernel.Email) (*Account, error)

	// ExistsByEmail checks if an account exists for an email
	ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error)
}
