package chatsrv

import (
	"context"

	"github.com/Abraxas-365/stint/marketplace/chat"
	"github.com/Abraxas-365/stint/pkg/errx"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/Abraxas-365/stint/pkg/logx"
	"github.com/google/uuid"
)

// ChatService opens and retrieves conversation threads
type ChatService struct {
	repo chat.Repository
}

// NewChatService creates a new chat service
func NewChatService(repo chat.Repository) *ChatService {
	return &ChatService{repo: repo}
}

// CreateForApplication returns the thread for the participants,
// creating it when none exists yet
func (s *ChatService) CreateForApplication(ctx context.Context, companyID kernel.CompanyID, seekerID kernel.SeekerID, jobID kernel.JobID, jobTitle kernel.JobTitle) (kernel.ChatID, error) {
	existing, err := s.repo.FindByParticipants(ctx, companyID, seekerID, jobID)
	if err == nil {
		return existing.ID, nil
	}
	if !errx.IsType(err, errx.TypeNotFound) {
		return "", err
	}

	c := &chat.Chat{
		ID:        kernel.NewChatID(uuid.New().String()),
		CompanyID: companyID,
		SeekerID:  seekerID,
		JobID:     jobID,
		JobTitle:  jobTitle,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return "", err
	}

	logx.Infof("chat %s opened for job %s between company %s and seeker %s", c.ID, jobID, companyID, seekerID)
	return c.ID, nil
}

// GetChat retrieves a chat by ID
func (s *ChatService) GetChat(ctx context.Context, id kernel.ChatID) (*chat.Chat, error) {
	return s.repo.GetByID(ctx, id)
}
