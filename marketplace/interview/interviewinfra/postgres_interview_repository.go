package interviewinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abraxas-365/stint/marketplace/interview"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

// PostgresInterviewRepository implements interview.Repository using
// PostgreSQL. The reschedule history rides in a jsonb column
type PostgresInterviewRepository struct {
	db *sqlx.DB
}

// NewPostgresInterviewRepository creates a new PostgreSQL interview repository
func NewPostgresInterviewRepository(db *sqlx.DB) *PostgresInterviewRepository {
	return &PostgresInterviewRepository{db: db}
}

type interviewModel struct {
	ID              string    `db:"id"`
	ApplicationID   string    `db:"application_id"`
	CompanyID       string    `db:"company_id"`
	SeekerID        string    `db:"seeker_id"`
	Date            string    `db:"date"`
	StartTime       string    `db:"start_time"`
	DurationMinutes int       `db:"duration_minutes"`
	Notes           string    `db:"notes"`
	Status          string    `db:"status"`
	History         []byte    `db:"history"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (m *interviewModel) toEntity() (*interview.Interview, error) {
	iv := &interview.Interview{
		ID:              kernel.NewInterviewID(m.ID),
		ApplicationID:   kernel.NewApplicationID(m.ApplicationID),
		CompanyID:       kernel.NewCompanyID(m.CompanyID),
		SeekerID:        kernel.NewSeekerID(m.SeekerID),
		Date:            m.Date,
		StartTime:       m.StartTime,
		DurationMinutes: m.DurationMinutes,
		Notes:           m.Notes,
		Status:          interview.InterviewStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if len(m.History) > 0 {
		if err := json.Unmarshal(m.History, &iv.History); err != nil {
			return nil, fmt.Errorf("failed to decode interview history: %w", err)
		}
	}
	return iv, nil
}

func fromEntity(iv *interview.Interview) (*interviewModel, error) {
	history, err := json.Marshal(iv.History)
	if err != nil {
		return nil, fmt.Errorf("failed to encode interview history: %w", err)
	}
	return &interviewModel{
		ID:              iv.ID.String(),
		ApplicationID:   iv.ApplicationID.String(),
		CompanyID:       iv.CompanyID.String(),
		SeekerID:        iv.SeekerID.String(),
		Date:            iv.Date,
		StartTime:       iv.StartTime,
		DurationMinutes: iv.DurationMinutes,
		Notes:           iv.Notes,
		Status:          string(iv.Status),
		History:         history,
		CreatedAt:       iv.CreatedAt,
		UpdatedAt:       iv.UpdatedAt,
	}, nil
}

func (r *PostgresInterviewRepository) Create(ctx context.Context, iv *interview.Interview) error {
	now := time.Now()
	iv.CreatedAt = now
	iv.UpdatedAt = now

	model, err := fromEntity(iv)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO interviews (
			id, application_id, company_id, seeker_id, date, start_time,
			duration_minutes, notes, status, history, created_at, updated_at
		) VALUES (
			:id, :application_id, :company_id, :seeker_id, :date, :start_time,
			:duration_minutes, :notes, :status, :history, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}
	return nil
}

func (r *PostgresInterviewRepository) Update(ctx context.Context, id kernel.InterviewID, iv *interview.Interview) error {
	model, err := fromEntity(iv)
	if err != nil {
		return err
	}

	query := `
		UPDATE interviews SET
			date = :date,
			start_time = :start_time,
			duration_minutes = :duration_minutes,
			notes = :notes,
			status = :status,
			history = :history,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update interview: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return interview.ErrInterviewNotFound()
	}
	return nil
}

func (r *PostgresInterviewRepository) GetByID(ctx context.Context, id kernel.InterviewID) (*interview.Interview, error) {
	var model interviewModel
	err := r.db.GetContext(ctx, &model, `SELECT * FROM interviews WHERE id = $1`, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, interview.ErrInterviewNotFound()
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return model.toEntity()
}

func (r *PostgresInterviewRepository) GetByApplicationID(ctx context.Context, applicationID kernel.ApplicationID) (*interview.Interview, error) {
	var model interviewModel
	err := r.db.GetContext(ctx, &model, `
		SELECT * FROM interviews WHERE application_id = $1
		ORDER BY created_at DESC LIMIT 1
	`, string(applicationID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, interview.ErrInterviewNotFound()
		}
		return nil, fmt.Errorf("failed to get interview by application: %w", err)
	}
	return model.toEntity()
}

func (r *PostgresInterviewRepository) ListByCompanyAndDate(ctx context.Context, companyID kernel.CompanyID, date string) ([]interview.Interview, error) {
	var models []interviewModel
	err := r.db.SelectContext(ctx, &models, `
		SELECT * FROM interviews
		WHERE company_id = $1 AND date = $2
		ORDER BY start_time ASC
	`, string(companyID), date)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews by company and date: %w", err)
	}

	interviews := make([]interview.Interview, 0, len(models))
	for i := range models {
		iv, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, *iv)
	}
	return interviews, nil
}

func (r *PostgresInterviewRepository) ListBySeekerID(ctx context.Context, seekerID kernel.SeekerID, pagination kernel.PaginationOptions) (*kernel.Paginated[interview.Interview], error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM interviews WHERE seeker_id = $1`, string(seekerID))
	if err != nil {
		return nil, fmt.Errorf("failed to count seeker interviews: %w", err)
	}

	var models []interviewModel
	err = r.db.SelectContext(ctx, &models, `
		SELECT * FROM interviews
		WHERE seeker_id = $1
		ORDER BY date DESC, start_time DESC
		LIMIT $2 OFFSET $3
	`, string(seekerID), pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list seeker interviews: %w", err)
	}

	interviews := make([]interview.Interview, 0, len(models))
	for i := range models {
		iv, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, *iv)
	}
	return kernel.NewPaginated(interviews, pagination.Page, total), nil
}
