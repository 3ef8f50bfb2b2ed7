package seeker

import (
	"time"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

// UpdateSeekerRequest - DTO for updating a seeker profile
type UpdateSeekerRequest struct {
	Name         string              `json:"name,omitempty"`
	Headline     string              `json:"headline,omitempty"`
	Skills       []string            `json:"skills,omitempty"`
	Availability kernel.Availability `json:"availability,omitempty"`
}

// SeekerResponse - DTO for returning seeker data
type SeekerResponse struct {
	ID           kernel.SeekerID     `json:"id"`
	Name         string              `json:"name"`
	Email        kernel.Email        `json:"email"`
	Phone        kernel.Phone        `json:"phone,omitempty"`
	Headline     string              `json:"headline,omitempty"`
	Skills       []string            `json:"skills,omitempty"`
	Availability kernel.Availability `json:"availability,omitempty"`
	HasCV        bool                `json:"has_cv"`
	Status       SeekerStatus        `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// UploadCVResponse - DTO returned after a CV upload
type UploadCVResponse struct {
	SeekerID   kernel.SeekerID  `json:"seeker_id"`
	BucketURL  kernel.BucketURL `json:"bucket_url"`
	FileName   string           `json:"file_name"`
	FileSize   int              `json:"file_size"`
	UploadedAt time.Time        `json:"uploaded_at"`
}
