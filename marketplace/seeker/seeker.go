package seeker

import (
	"time"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

// SeekerStatus represents the status of a seeker profile
type SeekerStatus string

const (
	SeekerStatusActive    SeekerStatus = "ACTIVE"
	SeekerStatusSuspended SeekerStatus = "SUSPENDED"
)

// Seeker is the worker-side profile. Its ID (not the account id) is the
// foreign key used by jobs, applications and chats.
type Seeker struct {
	ID           kernel.SeekerID     `db:"id" json:"id"`
	AccountID    kernel.AccountID    `db:"account_id" json:"account_id"`
	Name         string              `db:"name" json:"name"`
	Email        kernel.Email        `db:"email" json:"email"`
	Phone        kernel.Phone        `db:"phone" json:"phone,omitempty"`
	Headline     string              `db:"headline" json:"headline,omitempty"`
	Skills       []string            `db:"skills" json:"skills,omitempty"`
	Availability kernel.Availability `db:"availability" json:"availability,omitempty"`
	CVBucketUrl  kernel.BucketURL    `db:"cv_bucket_url" json:"cv_bucket_url,omitempty"`
	Status       SeekerStatus        `db:"status" json:"status"`
	CreatedAt    time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsActive checks if the seeker profile is active
func (s *Seeker) IsActive() bool {
	return s.Status == SeekerStatusActive
}

// CanApplyToJob checks if the seeker may submit applications
func (s *Seeker) CanApplyToJob() bool {
	return s.IsActive()
}

// HasCV checks if a CV has been uploaded
func (s *Seeker) HasCV() bool {
	return s.CVBucketUrl != ""
}

// UpdateProfile updates the mutable profile fields
func (s *Seeker) UpdateProfile(name, headline string, skills []string, availability kernel.Availability) {
	if name != "" {
		s.Name = name
	}
	if headline != "" {
		s.Headline = headline
	}
	if skills != nil {
		s.Skills = skills
	}
	if availability != "" {
		s.Availability = availability
	}
	s.UpdatedAt = time.Now()
}
