package chat

import (
	"context"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

// Creator opens conversation threads for applications. Safe to call
// more than once for the same participants; an existing thread is
// returned instead of a duplicate
type Creator interface {
	CreateForApplication(ctx context.Context, companyID kernel.CompanyID, seekerID kernel.SeekerID, jobID kernel.JobID, jobTitle kernel.JobTitle) (kernel.ChatID, error)
}

type Repository interface {
	// Create creates a new chat thread
	Create(ctx context.Context, chat *Chat) error

	// GetByID retrieves a chat by ID
	GetByID(ctx context.Context, id kernel.ChatID) (*Chat, error)

	// FindByParticipants retrieves the thread for a (company, seeker,
	// job) triple if one exists
	FindByParticipants(ctx context.Context, companyID kernel.CompanyID, seekerID kernel.SeekerID, jobID kernel.JobID) (*Chat, error)
}
