package chat

import (
	"time"

	"github.com/Abraxas-365/stint/pkg/kernel"
)

// Chat is a conversation thread between a company and a seeker about
// one job
type Chat struct {
	ID        kernel.ChatID      `db:"id" json:"id"`
	CompanyID kernel.CompanyID   `db:"company_id" json:"company_id"`
	SeekerID  kernel.SeekerID    `db:"seeker_id" json:"seeker_id"`
	JobID     kernel.JobID       `db:"job_id" json:"job_id"`
	JobTitle  kernel.JobTitle    `db:"job_title" json:"job_title"`
	CreatedAt time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt time.Time          `db:"updated_at" json:"updated_at"`
}

// IsBetween checks if the chat belongs to the given pair for the job
func (c *Chat) IsBetween(companyID kernel.CompanyID, seekerID kernel.SeekerID, jobID kernel.JobID) bool {
	return c.CompanyID == companyID && c.SeekerID == seekerID && c.JobID == jobID
}
