package applicationinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abraxas-365/stint/marketplace/application"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

// Non-terminal statuses for the duplicate-application check
var activeStatuses = []string{
	string(application.StatusApplied),
	string(application.StatusInvited),
	string(application.StatusShortlisted),
	string(application.StatusInterviewed),
	string(application.StatusHired),
}

// PostgresApplicationRepository implements application.Repository using
// PostgreSQL. Updates compare-and-swap on the version column
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

type applicationModel struct {
	ID                 string    `db:"id"`
	DisplayCode        string    `db:"display_code"`
	JobID              string    `db:"job_id"`
	SeekerID           string    `db:"seeker_id"`
	CompanyID          string    `db:"company_id"`
	Status             string    `db:"status"`
	HireResponse       string    `db:"hire_response"`
	InterviewResponse  string    `db:"interview_response"`
	JobTitle           string    `db:"job_title"`
	CompanyName        string    `db:"company_name"`
	HiringType         string    `db:"hiring_type"`
	ChatID             string    `db:"chat_id"`
	InterviewScheduled bool      `db:"interview_scheduled"`
	DeclineReason      string    `db:"decline_reason"`
	AbsenceReports     []byte    `db:"absence_reports"`
	Version            int64     `db:"version"`
	StatusChangedAt    time.Time `db:"status_changed_at"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func (m *applicationModel) toEntity() (*application.Application, error) {
	app := &application.Application{
		ID:                 kernel.NewApplicationID(m.ID),
		DisplayCode:        m.DisplayCode,
		JobID:              kernel.NewJobID(m.JobID),
		SeekerID:           kernel.NewSeekerID(m.SeekerID),
		CompanyID:          kernel.NewCompanyID(m.CompanyID),
		Status:             application.ApplicationStatus(m.Status),
		HireResponse:       application.HireResponse(m.HireResponse),
		InterviewResponse:  application.InterviewResponse(m.InterviewResponse),
		JobTitle:           kernel.JobTitle(m.JobTitle),
		CompanyName:        kernel.CompanyName(m.CompanyName),
		HiringType:         kernel.HiringType(m.HiringType),
		ChatID:             kernel.NewChatID(m.ChatID),
		InterviewScheduled: m.InterviewScheduled,
		DeclineReason:      m.DeclineReason,
		Version:            m.Version,
		StatusChangedAt:    m.StatusChangedAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if len(m.AbsenceReports) > 0 {
		if err := json.Unmarshal(m.AbsenceReports, &app.AbsenceReports); err != nil {
			return nil, fmt.Errorf("failed to decode absence reports: %w", err)
		}
	}
	return app, nil
}

func fromEntity(app *application.Application) (*applicationModel, error) {
	reports, err := json.Marshal(app.AbsenceReports)
	if err != nil {
		return nil, fmt.Errorf("failed to encode absence reports: %w", err)
	}
	return &applicationModel{
		ID:                 app.ID.String(),
		DisplayCode:        app.DisplayCode,
		JobID:              app.JobID.String(),
		SeekerID:           app.SeekerID.String(),
		CompanyID:          app.CompanyID.String(),
		Status:             string(app.Status),
		HireResponse:       string(app.HireResponse),
		InterviewResponse:  string(app.InterviewResponse),
		JobTitle:           string(app.JobTitle),
		CompanyName:        string(app.CompanyName),
		HiringType:         string(app.HiringType),
		ChatID:             app.ChatID.String(),
		InterviewScheduled: app.InterviewScheduled,
		DeclineReason:      app.DeclineReason,
		AbsenceReports:     reports,
		Version:            app.Version,
		StatusChangedAt:    app.StatusChangedAt,
		CreatedAt:          app.CreatedAt,
		UpdatedAt:          app.UpdatedAt,
	}, nil
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	app.Version = 1

	model, err := fromEntity(app)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO applications (
			id, display_code, job_id, seeker_id, company_id, status,
			hire_response, interview_response, job_title, company_name,
			hiring_type, chat_id, interview_scheduled, decline_reason,
			absence_reports, version, status_changed_at, created_at, updated_at
		) VALUES (
			:id, :display_code, :job_id, :seeker_id, :company_id, :status,
			:hire_response, :interview_response, :job_title, :company_name,
			:hiring_type, :chat_id, :interview_scheduled, :decline_reason,
			:absence_reports, :version, :status_changed_at, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// Update persists the aggregate only if the stored version still
// matches the loaded one. Zero rows affected with an existing row means
// another writer won the race
func (r *PostgresApplicationRepository) Update(ctx context.Context, app *application.Application) error {
	loadedVersion := app.Version
	app.Version = loadedVersion + 1
	app.UpdatedAt = time.Now()

	model, err := fromEntity(app)
	if err != nil {
		app.Version = loadedVersion
		return err
	}

	query := `
		UPDATE applications SET
			status = :status,
			hire_response = :hire_response,
			interview_response = :interview_response,
			chat_id = :chat_id,
			interview_scheduled = :interview_scheduled,
			decline_reason = :decline_reason,
			absence_reports = :absence_reports,
			version = :version,
			status_changed_at = :status_changed_at,
			updated_at = :updated_at
		WHERE id = :id AND version = :loaded_version
	`

	result, err := r.db.NamedExecContext(ctx, query, map[string]any{
		"status":              model.Status,
		"hire_response":       model.HireResponse,
		"interview_response":  model.InterviewResponse,
		"chat_id":             model.ChatID,
		"interview_scheduled": model.InterviewScheduled,
		"decline_reason":      model.DeclineReason,
		"absence_reports":     model.AbsenceReports,
		"version":             model.Version,
		"status_changed_at":   model.StatusChangedAt,
		"updated_at":          model.UpdatedAt,
		"id":                  model.ID,
		"loaded_version":      loadedVersion,
	})
	if err != nil {
		app.Version = loadedVersion
		return fmt.Errorf("failed to update application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		app.Version = loadedVersion
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		app.Version = loadedVersion

		exists, err := r.exists(ctx, app.ID)
		if err != nil {
			return err
		}
		if !exists {
			return application.ErrNotFound()
		}
		return application.ErrVersionConflict().WithDetail("application_id", app.ID)
	}
	return nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	var model applicationModel
	err := r.db.GetContext(ctx, &model, `SELECT * FROM applications WHERE id = $1`, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrNotFound()
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return model.toEntity()
}

// FindByRef looks the application up by storage id first, then by the
// display code older clients still send
func (r *PostgresApplicationRepository) FindByRef(ctx context.Context, ref string) (*application.Application, error) {
	var model applicationModel
	err := r.db.GetContext(ctx, &model, `
		SELECT * FROM applications WHERE id = $1 OR display_code = $1
		LIMIT 1
	`, ref)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrNotFound()
		}
		return nil, fmt.Errorf("failed to find application by ref: %w", err)
	}
	return model.toEntity()
}

func (r *PostgresApplicationRepository) ExistsActiveByJobAndSeeker(ctx context.Context, jobID kernel.JobID, seekerID kernel.SeekerID) (bool, error) {
	query, args, err := sqlx.In(`
		SELECT EXISTS(
			SELECT 1 FROM applications
			WHERE job_id = ? AND seeker_id = ? AND status IN (?)
		)
	`, string(jobID), string(seekerID), activeStatuses)
	if err != nil {
		return false, fmt.Errorf("failed to build active application query: %w", err)
	}

	var exists bool
	if err := r.db.GetContext(ctx, &exists, r.db.Rebind(query), args...); err != nil {
		return false, fmt.Errorf("failed to check active application: %w", err)
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) ListBySeekerID(ctx context.Context, seekerID kernel.SeekerID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	return r.list(ctx, `seeker_id = $1`, string(seekerID), pagination)
}

func (r *PostgresApplicationRepository) ListByJobID(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	return r.list(ctx, `job_id = $1`, string(jobID), pagination)
}

func (r *PostgresApplicationRepository) ListByCompanyID(ctx context.Context, companyID kernel.CompanyID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	return r.list(ctx, `company_id = $1`, string(companyID), pagination)
}

func (r *PostgresApplicationRepository) list(ctx context.Context, where, arg string, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM applications WHERE `+where, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	var models []applicationModel
	err = r.db.SelectContext(ctx, &models, fmt.Sprintf(`
		SELECT * FROM applications
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, where), arg, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	apps := make([]application.Application, 0, len(models))
	for i := range models {
		app, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return kernel.NewPaginated(apps, pagination.Page, total), nil
}

func (r *PostgresApplicationRepository) exists(ctx context.Context, id kernel.ApplicationID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM applications WHERE id = $1)`, string(id))
	if err != nil {
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}
	return exists, nil
}
