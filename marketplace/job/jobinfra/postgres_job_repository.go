package jobinfra

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Abraxas-365/stint/marketplace/job"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j *job.Job) error {
	now := time.Now()
	j.CreatedAt = now
	j.UpdatedAt = now

	query := `
		INSERT INTO jobs (
			id, company_id, title, description, hiring_type, company_name,
			location, rate, status, applications_count, views_count,
			published_at, created_at, updated_at
		) VALUES (
			:id, :company_id, :title, :description, :hiring_type, :company_name,
			:location, :rate, :status, :applications_count, :views_count,
			:published_at, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, j); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, id kernel.JobID, j *job.Job) error {
	query := `
		UPDATE jobs SET
			title = :title,
			description = :description,
			location = :location,
			rate = :rate,
			status = :status,
			published_at = :published_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, j)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return job.ErrJobNotFound()
	}
	return nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	var j job.Job
	err := r.db.GetContext(ctx, &j, `SELECT * FROM jobs WHERE id = $1`, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &j, nil
}

func (r *PostgresJobRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, string(id))
	if err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}
	return exists, nil
}

func (r *PostgresJobRepository) ListByCompanyID(ctx context.Context, companyID kernel.CompanyID, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM jobs WHERE company_id = $1`, string(companyID))
	if err != nil {
		return nil, fmt.Errorf("failed to count company jobs: %w", err)
	}

	var jobs []job.Job
	err = r.db.SelectContext(ctx, &jobs, `
		SELECT * FROM jobs
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, string(companyID), pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list company jobs: %w", err)
	}

	return kernel.NewPaginated(jobs, pagination.Page, total), nil
}

func (r *PostgresJobRepository) Search(ctx context.Context, req job.SearchJobsRequest) (*kernel.Paginated[job.Job], error) {
	conditions := []string{"status = $1"}
	args := []any{string(job.JobStatusPublished)}

	if req.Query != "" {
		args = append(args, "%"+req.Query+"%")
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if req.HiringType != "" {
		args = append(args, string(req.HiringType))
		conditions = append(conditions, fmt.Sprintf("hiring_type = $%d", len(args)))
	}
	if req.Location != "" {
		args = append(args, "%"+req.Location+"%")
		conditions = append(conditions, fmt.Sprintf("location ILIKE $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM jobs WHERE `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	args = append(args, req.Pagination.Limit(), req.Pagination.Offset())
	query := fmt.Sprintf(`
		SELECT * FROM jobs
		WHERE %s
		ORDER BY published_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	var jobs []job.Job
	if err := r.db.SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}

	return kernel.NewPaginated(jobs, req.Pagination.Page, total), nil
}

// ============================================================================
// Counters
// ============================================================================

func (r *PostgresJobRepository) IncrementApplications(ctx context.Context, id kernel.JobID) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE jobs SET applications_count = applications_count + 1, updated_at = NOW()
		WHERE id = $1
	`, string(id))
	if err != nil {
		return fmt.Errorf("failed to increment applications count: %w", err)
	}
	return checkFound(result)
}

func (r *PostgresJobRepository) DecrementApplications(ctx context.Context, id kernel.JobID) error {
	// GREATEST keeps the counter from going negative when decrements race
	result, err := r.db.ExecContext(ctx, `
		UPDATE jobs SET applications_count = GREATEST(applications_count - 1, 0), updated_at = NOW()
		WHERE id = $1
	`, string(id))
	if err != nil {
		return fmt.Errorf("failed to decrement applications count: %w", err)
	}
	return checkFound(result)
}

func (r *PostgresJobRepository) IncrementViews(ctx context.Context, id kernel.JobID) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE jobs SET views_count = views_count + 1 WHERE id = $1
	`, string(id))
	if err != nil {
		return fmt.Errorf("failed to increment views count: %w", err)
	}
	return checkFound(result)
}

func checkFound(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return job.ErrJobNotFound()
	}
	return nil
}
