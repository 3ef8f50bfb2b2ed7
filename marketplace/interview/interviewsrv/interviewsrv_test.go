package interviewsrv

import (
	"context"
	"testing"

	"github.com/Abraxas-365/stint/marketplace/interview"
	"github.com/Abraxas-365/stint/pkg/errx"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInterviewRepo struct {
	byID map[kernel.InterviewID]*interview.Interview
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{byID: map[kernel.InterviewID]*interview.Interview{}}
}

func (f *fakeInterviewRepo) Create(_ context.Context, iv *interview.Interview) error {
	f.byID[iv.ID] = iv
	return nil
}

func (f *fakeInterviewRepo) Update(_ context.Context, id kernel.InterviewID, iv *interview.Interview) error {
	f.byID[id] = iv
	return nil
}

func (f *fakeInterviewRepo) GetByID(_ context.Context, id kernel.InterviewID) (*interview.Interview, error) {
	if iv, ok := f.byID[id]; ok {
		return iv, nil
	}
	return nil, interview.ErrInterviewNotFound()
}

func (f *fakeInterviewRepo) GetByApplicationID(_ context.Context, applicationID kernel.ApplicationID) (*interview.Interview, error) {
	for _, iv := range f.byID {
		if iv.ApplicationID == applicationID {
			return iv, nil
		}
	}
	return nil, interview.ErrInterviewNotFound()
}

func (f *fakeInterviewRepo) ListByCompanyAndDate(_ context.Context, companyID kernel.CompanyID, date string) ([]interview.Interview, error) {
	var out []interview.Interview
	for _, iv := range f.byID {
		if iv.CompanyID == companyID && iv.Date == date {
			out = append(out, *iv)
		}
	}
	return out, nil
}

func (f *fakeInterviewRepo) ListBySeekerID(_ context.Context, seekerID kernel.SeekerID, p kernel.PaginationOptions) (*kernel.Paginated[interview.Interview], error) {
	var out []interview.Interview
	for _, iv := range f.byID {
		if iv.SeekerID == seekerID {
			out = append(out, *iv)
		}
	}
	return kernel.NewPaginated(out, p.Page, int64(len(out))), nil
}

const (
	companyID = kernel.CompanyID("company-1")
	seekerID  = kernel.SeekerID("seeker-1")
	day       = "2026-09-10"
)

func scheduleRequest(appID kernel.ApplicationID, startTime string, duration int) interview.ScheduleForApplicationRequest {
	return interview.ScheduleForApplicationRequest{
		ApplicationID:   appID,
		CompanyID:       companyID,
		SeekerID:        seekerID,
		Date:            day,
		StartTime:       startTime,
		DurationMinutes: duration,
	}
}

func TestScheduleForApplicationCreates(t *testing.T) {
	repo := newFakeInterviewRepo()
	svc := NewInterviewService(repo)

	iv, err := svc.ScheduleForApplication(context.Background(), scheduleRequest("app-1", "10:00", 60))
	require.NoError(t, err)
	assert.Equal(t, interview.StatusScheduled, iv.Status)
	assert.Equal(t, "10:00", iv.StartTime)
	assert.Len(t, repo.byID, 1)
}

func TestScheduleForApplicationMovesExisting(t *testing.T) {
	repo := newFakeInterviewRepo()
	svc := NewInterviewService(repo)

	first, err := svc.ScheduleForApplication(context.Background(), scheduleRequest("app-1", "10:00", 60))
	require.NoError(t, err)

	second, err := svc.ScheduleForApplication(context.Background(), scheduleRequest("app-1", "14:00", 30))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "the same application keeps one interview")
	assert.Equal(t, interview.StatusRescheduled, second.Status)
	assert.Equal(t, "14:00", second.StartTime)
	assert.Equal(t, 30, second.DurationMinutes)
	require.Len(t, second.History, 1)
	assert.Equal(t, "10:00", second.History[0].StartTime)
	assert.Len(t, repo.byID, 1)
}

func TestScheduleForApplicationRejectsOverlap(t *testing.T) {
	repo := newFakeInterviewRepo()
	svc := NewInterviewService(repo)

	_, err := svc.ScheduleForApplication(context.Background(), scheduleRequest("app-1", "10:00", 60))
	require.NoError(t, err)

	_, err = svc.ScheduleForApplication(context.Background(), scheduleRequest("app-2", "10:30", 60))
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeConflict))

	// Back-to-back is fine, the slot is half-open
	_, err = svc.ScheduleForApplication(context.Background(), scheduleRequest("app-3", "11:00", 60))
	require.NoError(t, err)
}

func TestScheduleForApplicationOwnSlotDoesNotConflict(t *testing.T) {
	repo := newFakeInterviewRepo()
	svc := NewInterviewService(repo)

	_, err := svc.ScheduleForApplication(context.Background(), scheduleRequest("app-1", "10:00", 60))
	require.NoError(t, err)

	// Moving within its own window must not trip the conflict check
	moved, err := svc.ScheduleForApplication(context.Background(), scheduleRequest("app-1", "10:30", 60))
	require.NoError(t, err)
	assert.Equal(t, "10:30", moved.StartTime)
}

func TestScheduleForApplicationValidatesSlot(t *testing.T) {
	svc := NewInterviewService(newFakeInterviewRepo())

	cases := []interview.ScheduleForApplicationRequest{
		scheduleRequest("app-1", "10:00", 0),
		scheduleRequest("app-1", "25:00", 60),
		{ApplicationID: "app-1", CompanyID: companyID, SeekerID: seekerID, Date: "sept 10", StartTime: "10:00", DurationMinutes: 60},
	}
	for _, req := range cases {
		_, err := svc.ScheduleForApplication(context.Background(), req)
		require.Error(t, err)
		assert.True(t, errx.IsType(err, errx.TypeValidation))
	}
}

func TestConfirmChecksParticipant(t *testing.T) {
	repo := newFakeInterviewRepo()
	svc := NewInterviewService(repo)

	iv, err := svc.ScheduleForApplication(context.Background(), scheduleRequest("app-1", "10:00", 60))
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), "someone-else", iv.ID)
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeAuthorization))

	confirmed, err := svc.Confirm(context.Background(), seekerID, iv.ID)
	require.NoError(t, err)
	assert.Equal(t, interview.StatusConfirmed, confirmed.Status)
}

func TestRescheduleChecksCompany(t *testing.T) {
	repo := newFakeInterviewRepo()
	svc := NewInterviewService(repo)

	iv, err := svc.ScheduleForApplication(context.Background(), scheduleRequest("app-1", "10:00", 60))
	require.NoError(t, err)

	_, err = svc.Reschedule(context.Background(), "company-2", iv.ID, interview.RescheduleRequest{Date: day, StartTime: "15:00"})
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeAuthorization))

	moved, err := svc.Reschedule(context.Background(), companyID, iv.ID, interview.RescheduleRequest{Date: day, StartTime: "15:00", Reason: "room change"})
	require.NoError(t, err)
	assert.Equal(t, "15:00", moved.StartTime)
	assert.Len(t, moved.History, 1)
}

func TestCheckConflicts(t *testing.T) {
	repo := newFakeInterviewRepo()
	svc := NewInterviewService(repo)

	booked, err := svc.ScheduleForApplication(context.Background(), scheduleRequest("app-1", "10:00", 60))
	require.NoError(t, err)

	conflicts, err := svc.CheckConflicts(context.Background(), interview.ConflictQuery{
		CompanyID: companyID, Date: day, StartTime: "10:30", DurationMinutes: 60,
	})
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, booked.ID, conflicts[0].ID)

	// Cancelled interviews release their slot
	_, err = svc.Cancel(context.Background(), companyID, booked.ID)
	require.NoError(t, err)

	conflicts, err = svc.CheckConflicts(context.Background(), interview.ConflictQuery{
		CompanyID: companyID, Date: day, StartTime: "10:30", DurationMinutes: 60,
	})
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestAvailableSlots(t *testing.T) {
	repo := newFakeInterviewRepo()
	svc := NewInterviewService(repo)

	_, err := svc.ScheduleForApplication(context.Background(), scheduleRequest("app-1", "10:00", 60))
	require.NoError(t, err)

	slots, err := svc.AvailableSlots(context.Background(), companyID, day, 60)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "10:00", slots[0].EndTime)
	for _, slot := range slots {
		assert.NotEqual(t, "09:30", slot.StartTime, "09:30-10:30 collides with the booking")
		assert.NotEqual(t, "10:00", slot.StartTime)
		assert.NotEqual(t, "10:30", slot.StartTime)
	}
	// The day ends at 18:00, so the last 60-minute slot starts at 17:00
	assert.Equal(t, "17:00", slots[len(slots)-1].StartTime)
}

func TestCompleteAndNoShow(t *testing.T) {
	repo := newFakeInterviewRepo()
	svc := NewInterviewService(repo)

	iv, err := svc.ScheduleForApplication(context.Background(), scheduleRequest("app-1", "10:00", 60))
	require.NoError(t, err)

	done, err := svc.Complete(context.Background(), companyID, iv.ID)
	require.NoError(t, err)
	assert.Equal(t, interview.StatusCompleted, done.Status)

	_, err = svc.MarkNoShow(context.Background(), companyID, iv.ID)
	require.Error(t, err, "a completed interview cannot move again")
}
