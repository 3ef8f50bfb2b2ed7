package seekerinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Abraxas-365/stint/marketplace/seeker"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresSeekerRepository implements seeker.Repository using PostgreSQL
type PostgresSeekerRepository struct {
	db *sqlx.DB
}

// NewPostgresSeekerRepository creates a new PostgreSQL seeker repository
func NewPostgresSeekerRepository(db *sqlx.DB) *PostgresSeekerRepository {
	return &PostgresSeekerRepository{db: db}
}

// ============================================================================
// Database Models
// ============================================================================

type seekerModel struct {
	ID           string         `db:"id"`
	AccountID    string         `db:"account_id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	Phone        string         `db:"phone"`
	Headline     string         `db:"headline"`
	Skills       pq.StringArray `db:"skills"`
	Availability string         `db:"availability"`
	CVBucketUrl  string         `db:"cv_bucket_url"`
	Status       string         `db:"status"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (m *seekerModel) toEntity() *seeker.Seeker {
	return &seeker.Seeker{
		ID:           kernel.SeekerID(m.ID),
		AccountID:    kernel.AccountID(m.AccountID),
		Name:         m.Name,
		Email:        kernel.Email(m.Email),
		Phone:        kernel.Phone(m.Phone),
		Headline:     m.Headline,
		Skills:       []string(m.Skills),
		Availability: kernel.Availability(m.Availability),
		CVBucketUrl:  kernel.BucketURL(m.CVBucketUrl),
		Status:       seeker.SeekerStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromEntity(s *seeker.Seeker) *seekerModel {
	return &seekerModel{
		ID:           string(s.ID),
		AccountID:    string(s.AccountID),
		Name:         s.Name,
		Email:        string(s.Email),
		Phone:        string(s.Phone),
		Headline:     s.Headline,
		Skills:       pq.StringArray(s.Skills),
		Availability: string(s.Availability),
		CVBucketUrl:  string(s.CVBucketUrl),
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

func (r *PostgresSeekerRepository) Create(ctx context.Context, s *seeker.Seeker) error {
	model := fromEntity(s)

	query := `
		INSERT INTO seekers (
			id, account_id, name, email, phone, headline, skills,
			availability, cv_bucket_url, status, created_at, updated_at
		) VALUES (
			:id, :account_id, :name, :email, :phone, :headline, :skills,
			:availability, :cv_bucket_url, :status, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create seeker: %w", err)
	}
	return nil
}

func (r *PostgresSeekerRepository) Update(ctx context.Context, id kernel.SeekerID, s *seeker.Seeker) error {
	model := fromEntity(s)
	model.ID = string(id)

	query := `
		UPDATE seekers SET
			name = :name,
			phone = :phone,
			headline = :headline,
			skills = :skills,
			availability = :availability,
			cv_bucket_url = :cv_bucket_url,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update seeker: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return seeker.ErrProfileNotFound()
	}
	return nil
}

func (r *PostgresSeekerRepository) GetByID(ctx context.Context, id kernel.SeekerID) (*seeker.Seeker, error) {
	var model seekerModel
	err := r.db.GetContext(ctx, &model, `SELECT * FROM seekers WHERE id = $1`, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, seeker.ErrProfileNotFound()
		}
		return nil, fmt.Errorf("failed to get seeker: %w", err)
	}
	return model.toEntity(), nil
}

func (r *PostgresSeekerRepository) GetByAccountID(ctx context.Context, accountID kernel.AccountID) (*seeker.Seeker, error) {
	var model seekerModel
	err := r.db.GetContext(ctx, &model, `SELECT * FROM seekers WHERE account_id = $1`, string(accountID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, seeker.ErrProfileNotFound()
		}
		return nil, fmt.Errorf("failed to get seeker by account: %w", err)
	}
	return model.toEntity(), nil
}

func (r *PostgresSeekerRepository) Exists(ctx context.Context, id kernel.SeekerID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM seekers WHERE id = $1)`, string(id))
	if err != nil {
		return false, fmt.Errorf("failed to check seeker existence: %w", err)
	}
	return exists, nil
}
