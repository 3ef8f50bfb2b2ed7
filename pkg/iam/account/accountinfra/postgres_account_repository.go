package accountinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Abraxas-365/stint/pkg/iam/account"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresAccountRepository implements account.Repository using PostgreSQL
type PostgresAccountRepository struct {
	db *sqlx.DB
}

// NewPostgresAccountRepository creates a new PostgreSQL account repository
func NewPostgresAccountRepository(db *sqlx.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) Create(ctx context.Context, acc *account.Account) error {
	query := `
		INSERT INTO accounts (id, email, phone, password_hash, account_type, status, created_at, updated_at)
		VALUES (:id, :email, :phone, :password_hash, :account_type, :status, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, acc)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return account.ErrEmailTaken()
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

func (r *PostgresAccountRepository) GetByID(ctx context.Context, id kernel.AccountID) (*account.Account, error) {
	var acc account.Account
	err := r.db.GetContext(ctx, &acc, `SELECT * FROM accounts WHERE id = $1`, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrAccountNotFound()
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &acc, nil
}

func (r *PostgresAccountRepository) GetByEmail(ctx context.Context, email kernel.Email) (*account.Account, error) {
	var acc account.Account
	err := r.db.GetContext(ctx, &acc, `SELECT * FROM accounts WHERE email = $1`, string(email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrAccountNotFound()
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return &acc, nil
}

func (r *PostgresAccountRepository) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`, string(email))
	if err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return exists, nil
}
