package job

import (
	"time"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

// CreateJobRequest - DTO for creating a new job
type CreateJobRequest struct {
	Title       kernel.JobTitle   `json:"title"`
	Description string            `json:"description"`
	HiringType  kernel.HiringType `json:"hiring_type"`
	Location    string            `json:"location,omitempty"`
	Rate        int64             `json:"rate,omitempty"`
}

// UpdateJobRequest - DTO for updating an existing job
type UpdateJobRequest struct {
	Title       kernel.JobTitle `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty"`
	Rate        int64           `json:"rate,omitempty"`
}

// SearchJobsRequest - DTO for searching published jobs
type SearchJobsRequest struct {
	Query      string                   `json:"query,omitempty"`
	HiringType kernel.HiringType        `json:"hiring_type,omitempty"`
	Location   string                   `json:"location,omitempty"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// Response type alias for paginated jobs
type PaginatedJobsResponse = kernel.Paginated[JobResponse]

// JobResponse - DTO for returning job data
type JobResponse struct {
	ID                kernel.JobID       `json:"id"`
	CompanyID         kernel.CompanyID   `json:"company_id"`
	Title             kernel.JobTitle    `json:"title"`
	Description       string             `json:"description"`
	HiringType        kernel.HiringType  `json:"hiring_type"`
	CompanyName       kernel.CompanyName `json:"company_name"`
	Location          string             `json:"location,omitempty"`
	Rate              int64              `json:"rate,omitempty"`
	Status            JobStatus          `json:"status"`
	ApplicationsCount int                `json:"applications_count"`
	ViewsCount        int                `json:"views_count"`
	PublishedAt       *time.Time         `json:"published_at,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}
