package job

import (
	"time"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

// JobStatus represents the status of a job posting, independent of the
// status of any individual application against it
type JobStatus string

const (
	JobStatusDraft     JobStatus = "DRAFT"     // Created but not published
	JobStatusPublished JobStatus = "PUBLISHED" // Accepting applications
	JobStatusPaused    JobStatus = "PAUSED"    // Temporarily not accepting applications
	JobStatusClosed    JobStatus = "CLOSED"    // No longer accepting applications
)

type Job struct {
	ID                kernel.JobID       `db:"id" json:"id"`
	CompanyID         kernel.CompanyID   `db:"company_id" json:"company_id"`
	Title             kernel.JobTitle    `db:"title" json:"title"`
	Description       string             `db:"description" json:"description"`
	HiringType        kernel.HiringType  `db:"hiring_type" json:"hiring_type"`
	CompanyName       kernel.CompanyName `db:"company_name" json:"company_name"`
	Location          string             `db:"location" json:"location,omitempty"`
	Rate              int64              `db:"rate" json:"rate,omitempty"`
	Status            JobStatus          `db:"status" json:"status"`
	ApplicationsCount int                `db:"applications_count" json:"applications_count"`
	ViewsCount        int                `db:"views_count" json:"views_count"`
	PublishedAt       *time.Time         `db:"published_at" json:"published_at,omitempty"`
	CreatedAt         time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsPublished checks if the job is currently published
func (j *Job) IsPublished() bool {
	return j.Status == JobStatusPublished
}

// IsClosed checks if the job is closed
func (j *Job) IsClosed() bool {
	return j.Status == JobStatusClosed
}

// AcceptsApplications checks if new applications may be created
func (j *Job) AcceptsApplications() bool {
	return j.IsPublished()
}

// CanBePublished checks if a job can move to published
func (j *Job) CanBePublished() bool {
	return j.Status == JobStatusDraft || j.Status == JobStatusPaused
}

// Publish marks the job as published
func (j *Job) Publish() error {
	if !j.CanBePublished() {
		return ErrCannotPublish().WithDetail("current_status", j.Status)
	}

	now := time.Now()
	j.Status = JobStatusPublished
	if j.PublishedAt == nil {
		j.PublishedAt = &now
	}
	j.UpdatedAt = now
	return nil
}

// Pause temporarily stops accepting applications
func (j *Job) Pause() error {
	if !j.IsPublished() {
		return ErrInvalidStatusChange().
			WithDetail("current_status", j.Status).
			WithDetail("target_status", JobStatusPaused)
	}
	j.Status = JobStatusPaused
	j.UpdatedAt = time.Now()
	return nil
}

// Close permanently stops accepting applications
func (j *Job) Close() error {
	if j.IsClosed() {
		return ErrInvalidStatusChange().
			WithDetail("current_status", j.Status).
			WithDetail("target_status", JobStatusClosed)
	}
	j.Status = JobStatusClosed
	j.UpdatedAt = time.Now()
	return nil
}

// UpdateDetails updates the editable fields
func (j *Job) UpdateDetails(title kernel.JobTitle, description, location string, rate int64) {
	if title != "" {
		j.Title = title
	}
	if description != "" {
		j.Description = description
	}
	if location != "" {
		j.Location = location
	}
	if rate > 0 {
		j.Rate = rate
	}
	j.UpdatedAt = time.Now()
}
