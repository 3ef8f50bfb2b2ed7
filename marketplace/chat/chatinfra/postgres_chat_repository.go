package chatinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Abraxas-365/stint/marketplace/chat"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

// PostgresChatRepository implements chat.Repository using PostgreSQL
type PostgresChatRepository struct {
	db *sqlx.DB
}

// NewPostgresChatRepository creates a new PostgreSQL chat repository
func NewPostgresChatRepository(db *sqlx.DB) *PostgresChatRepository {
	return &PostgresChatRepository{db: db}
}

func (r *PostgresChatRepository) Create(ctx context.Context, c *chat.Chat) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `
		INSERT INTO chats (id, company_id, seeker_id, job_id, job_title, created_at, updated_at)
		VALUES (:id, :company_id, :seeker_id, :job_id, :job_title, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("failed to create chat: %w", err)
	}
	return nil
}

func (r *PostgresChatRepository) GetByID(ctx context.Context, id kernel.ChatID) (*chat.Chat, error) {
	var c chat.Chat
	err := r.db.GetContext(ctx, &c, `SELECT * FROM chats WHERE id = $1`, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, chat.ErrChatNotFound()
		}
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}
	return &c, nil
}

func (r *PostgresChatRepository) FindByParticipants(ctx context.Context, companyID kernel.CompanyID, seekerID kernel.SeekerID, jobID kernel.JobID) (*chat.Chat, error) {
	var c chat.Chat
	err := r.db.GetContext(ctx, &c, `
		SELECT * FROM chats WHERE company_id = $1 AND seeker_id = $2 AND job_id = $3
	`, string(companyID), string(seekerID), string(jobID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, chat.ErrChatNotFound()
		}
		return nil, fmt.Errorf("failed to find chat by participants: %w", err)
	}
	return &c, nil
}
