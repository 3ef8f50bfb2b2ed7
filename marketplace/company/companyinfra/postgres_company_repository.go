package companyinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Abraxas-365/stint/marketplace/company"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

// PostgresCompanyRepository implements company.Repository using PostgreSQL
type PostgresCompanyRepository struct {
	db *sqlx.DB
}

// NewPostgresCompanyRepository creates a new PostgreSQL company repository
func NewPostgresCompanyRepository(db *sqlx.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

func (r *PostgresCompanyRepository) Create(ctx context.Context, c *company.Company) error {
	query := `
		INSERT INTO companies (
			id, account_id, name, email, phone, about, industry, plan,
			trial_start_date, trial_end_date, status, created_at, updated_at
		) VALUES (
			:id, :account_id, :name, :email, :phone, :about, :industry, :plan,
			:trial_start_date, :trial_end_date, :status, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

func (r *PostgresCompanyRepository) Update(ctx context.Context, id kernel.CompanyID, c *company.Company) error {
	query := `
		UPDATE companies SET
			name = :name,
			phone = :phone,
			about = :about,
			industry = :industry,
			plan = :plan,
			trial_start_date = :trial_start_date,
			trial_end_date = :trial_end_date,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return company.ErrProfileNotFound()
	}
	return nil
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id kernel.CompanyID) (*company.Company, error) {
	var c company.Company
	err := r.db.GetContext(ctx, &c, `SELECT * FROM companies WHERE id = $1`, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, company.ErrProfileNotFound()
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &c, nil
}

func (r *PostgresCompanyRepository) GetByAccountID(ctx context.Context, accountID kernel.AccountID) (*company.Company, error) {
	var c company.Company
	err := r.db.GetContext(ctx, &c, `SELECT * FROM companies WHERE account_id = $1`, string(accountID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, company.ErrProfileNotFound()
		}
		return nil, fmt.Errorf("failed to get company by account: %w", err)
	}
	return &c, nil
}

func (r *PostgresCompanyRepository) Exists(ctx context.Context, id kernel.CompanyID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM companies WHERE id = $1)`, string(id))
	if err != nil {
		return false, fmt.Errorf("failed to check company existence: %w", err)
	}
	return exists, nil
}

// ============================================================================
// Usage ledger
// ============================================================================

func (r *PostgresCompanyRepository) AppendUsage(ctx context.Context, event *company.UsageEvent) error {
	query := `
		INSERT INTO usage_events (id, company_id, action, ref, occurred_at)
		VALUES (:id, :company_id, :action, :ref, :occurred_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("failed to append usage event: %w", err)
	}
	return nil
}

func (r *PostgresCompanyRepository) CountUsage(ctx context.Context, companyID kernel.CompanyID, action company.UsageAction, since time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM usage_events
		WHERE company_id = $1 AND action = $2 AND occurred_at >= $3
	`, string(companyID), string(action), since)
	if err != nil {
		return 0, fmt.Errorf("failed to count usage events: %w", err)
	}
	return count, nil
}
