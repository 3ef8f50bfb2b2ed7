package chatsrv

import (
	"context"
	"testing"

	"github.com/Abraxas-365/stint/marketplace/chat"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatRepo struct {
	chats   []*chat.Chat
	creates int
}

func (f *fakeChatRepo) Create(_ context.Context, c *chat.Chat) error {
	f.creates++
	f.chats = append(f.chats, c)
	return nil
}

func (f *fakeChatRepo) GetByID(_ context.Context, id kernel.ChatID) (*chat.Chat, error) {
	for _, c := range f.chats {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, chat.ErrChatNotFound()
}

func (f *fakeChatRepo) FindByParticipants(_ context.Context, companyID kernel.CompanyID, seekerID kernel.SeekerID, jobID kernel.JobID) (*chat.Chat, error) {
	for _, c := range f.chats {
		if c.IsBetween(companyID, seekerID, jobID) {
			return c, nil
		}
	}
	return nil, chat.ErrChatNotFound()
}

func TestCreateForApplicationIsIdempotent(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := NewChatService(repo)

	first, err := svc.CreateForApplication(context.Background(), "company-1", "seeker-1", "job-1", "Warehouse Shift")
	require.NoError(t, err)
	assert.False(t, first.IsEmpty())

	second, err := svc.CreateForApplication(context.Background(), "company-1", "seeker-1", "job-1", "Warehouse Shift")
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeat calls return the existing thread")
	assert.Equal(t, 1, repo.creates)
}

func TestCreateForApplicationSeparatesJobs(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := NewChatService(repo)

	a, err := svc.CreateForApplication(context.Background(), "company-1", "seeker-1", "job-1", "Warehouse Shift")
	require.NoError(t, err)
	b, err := svc.CreateForApplication(context.Background(), "company-1", "seeker-1", "job-2", "Night Shift")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "each job gets its own thread")
	assert.Equal(t, 2, repo.creates)
}
