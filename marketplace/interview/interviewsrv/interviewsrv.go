package interviewsrv

import (
	"context"
	"fmt"
	"time"

	"github.com/Abraxas-365/stint/marketplace/interview"
	"github.com/Abraxas-365/stint/pkg/errx"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/Abraxas-365/stint/pkg/logx"
	"github.com/google/uuid"
)

// Bookable window for a working day, minutes since midnight
const (
	dayStartMinute = 9 * 60
	dayEndMinute   = 18 * 60
	slotStepMinute = 30
)

// InterviewService handles interview scheduling business logic
type InterviewService struct {
	repo interview.Repository
}

// NewInterviewService creates a new interview service
func NewInterviewService(repo interview.Repository) *InterviewService {
	return &InterviewService{repo: repo}
}

// ScheduleForApplication creates the interview for an application, or
// moves the existing one when the application already has a slot
func (s *InterviewService) ScheduleForApplication(ctx context.Context, req interview.ScheduleForApplicationRequest) (*interview.Interview, error) {
	if err := validateSlot(req.Date, req.StartTime, req.DurationMinutes); err != nil {
		return nil, err
	}

	if err := s.ensureSlotFree(ctx, req.CompanyID, req.ApplicationID, req.Date, req.StartTime, req.DurationMinutes); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByApplicationID(ctx, req.ApplicationID)
	if err == nil {
		if err := existing.Reschedule(req.Date, req.StartTime, "rescheduled by company"); err != nil {
			return nil, err
		}
		existing.DurationMinutes = req.DurationMinutes
		if req.Notes != "" {
			existing.Notes = req.Notes
		}
		if err := s.repo.Update(ctx, existing.ID, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errx.IsType(err, errx.TypeNotFound) {
		return nil, err
	}

	iv := &interview.Interview{
		ID:              kernel.NewInterviewID(uuid.New().String()),
		ApplicationID:   req.ApplicationID,
		CompanyID:       req.CompanyID,
		SeekerID:        req.SeekerID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
		Status:          interview.StatusScheduled,
	}

	if err := s.repo.Create(ctx, iv); err != nil {
		return nil, err
	}

	logx.Infof("interview %s scheduled for application %s at %s %s", iv.ID, req.ApplicationID, req.Date, req.StartTime)
	return iv, nil
}

// GetInterview retrieves an interview visible to the caller
func (s *InterviewService) GetInterview(ctx context.Context, id kernel.InterviewID) (*interview.Interview, error) {
	return s.repo.GetByID(ctx, id)
}

// Confirm records the seeker's confirmation
func (s *InterviewService) Confirm(ctx context.Context, seekerID kernel.SeekerID, id kernel.InterviewID) (*interview.Interview, error) {
	iv, err := s.seekerInterview(ctx, seekerID, id)
	if err != nil {
		return nil, err
	}
	if err := iv.Confirm(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

// Reschedule moves an interview to a new slot, keeping the old slot in
// the history
func (s *InterviewService) Reschedule(ctx context.Context, companyID kernel.CompanyID, id kernel.InterviewID, req interview.RescheduleRequest) (*interview.Interview, error) {
	iv, err := s.companyInterview(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if err := validateSlot(req.Date, req.StartTime, iv.DurationMinutes); err != nil {
		return nil, err
	}
	if err := s.ensureSlotFree(ctx, companyID, iv.ApplicationID, req.Date, req.StartTime, iv.DurationMinutes); err != nil {
		return nil, err
	}

	if err := iv.Reschedule(req.Date, req.StartTime, req.Reason); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

// Complete marks an interview as held
func (s *InterviewService) Complete(ctx context.Context, companyID kernel.CompanyID, id kernel.InterviewID) (*interview.Interview, error) {
	return s.companyStatusChange(ctx, companyID, id, func(iv *interview.Interview) error { return iv.Complete() })
}

// Cancel calls an interview off
func (s *InterviewService) Cancel(ctx context.Context, companyID kernel.CompanyID, id kernel.InterviewID) (*interview.Interview, error) {
	return s.companyStatusChange(ctx, companyID, id, func(iv *interview.Interview) error { return iv.Cancel() })
}

// MarkNoShow records that the seeker did not attend
func (s *InterviewService) MarkNoShow(ctx context.Context, companyID kernel.CompanyID, id kernel.InterviewID) (*interview.Interview, error) {
	return s.companyStatusChange(ctx, companyID, id, func(iv *interview.Interview) error { return iv.MarkNoShow() })
}

// CheckConflicts returns the company's active interviews overlapping
// the given slot on the given day
func (s *InterviewService) CheckConflicts(ctx context.Context, query interview.ConflictQuery) ([]interview.Interview, error) {
	if err := validateSlot(query.Date, query.StartTime, query.DurationMinutes); err != nil {
		return nil, err
	}

	startMinute, err := minuteOfDay(query.StartTime)
	if err != nil {
		return nil, err
	}

	sameDay, err := s.repo.ListByCompanyAndDate(ctx, query.CompanyID, query.Date)
	if err != nil {
		return nil, err
	}

	var conflicts []interview.Interview
	for _, iv := range sameDay {
		if iv.IsActive() && iv.Overlaps(startMinute, query.DurationMinutes) {
			conflicts = append(conflicts, iv)
		}
	}
	return conflicts, nil
}

// AvailableSlots returns the free intervals of a company's day,
// stepping through the bookable window and dropping anything that
// overlaps an active interview
func (s *InterviewService) AvailableSlots(ctx context.Context, companyID kernel.CompanyID, date string, durationMinutes int) ([]interview.Slot, error) {
	if _, err := time.Parse(interview.DateLayout, date); err != nil {
		return nil, interview.ErrInvalidSlot().WithDetail("date", date)
	}
	if durationMinutes <= 0 {
		durationMinutes = slotStepMinute
	}

	sameDay, err := s.repo.ListByCompanyAndDate(ctx, companyID, date)
	if err != nil {
		return nil, err
	}

	var slots []interview.Slot
	for start := dayStartMinute; start+durationMinutes <= dayEndMinute; start += slotStepMinute {
		free := true
		for _, iv := range sameDay {
			if iv.IsActive() && iv.Overlaps(start, durationMinutes) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, interview.Slot{
				StartTime: formatMinute(start),
				EndTime:   formatMinute(start + durationMinutes),
			})
		}
	}
	return slots, nil
}

// ListSeekerInterviews retrieves a seeker's interviews
func (s *InterviewService) ListSeekerInterviews(ctx context.Context, seekerID kernel.SeekerID, pagination kernel.PaginationOptions) (*kernel.Paginated[interview.Interview], error) {
	return s.repo.ListBySeekerID(ctx, seekerID, pagination)
}

func (s *InterviewService) companyStatusChange(ctx context.Context, companyID kernel.CompanyID, id kernel.InterviewID, change func(*interview.Interview) error) (*interview.Interview, error) {
	iv, err := s.companyInterview(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if err := change(iv); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, iv); err != nil {
		return nil, err
	}
	logx.Infof("interview %s moved to %s", iv.ID, iv.Status)
	return iv, nil
}

func (s *InterviewService) companyInterview(ctx context.Context, companyID kernel.CompanyID, id kernel.InterviewID) (*interview.Interview, error) {
	iv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if iv.CompanyID != companyID {
		return nil, interview.ErrNotParticipant().WithDetail("interview_id", id)
	}
	return iv, nil
}

func (s *InterviewService) seekerInterview(ctx context.Context, seekerID kernel.SeekerID, id kernel.InterviewID) (*interview.Interview, error) {
	iv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if iv.SeekerID != seekerID {
		return nil, interview.ErrNotParticipant().WithDetail("interview_id", id)
	}
	return iv, nil
}

// ensureSlotFree rejects a slot overlapping another active interview of
// the company. The application's own interview does not count against
// itself
func (s *InterviewService) ensureSlotFree(ctx context.Context, companyID kernel.CompanyID, applicationID kernel.ApplicationID, date, startTime string, durationMinutes int) error {
	startMinute, err := minuteOfDay(startTime)
	if err != nil {
		return err
	}

	sameDay, err := s.repo.ListByCompanyAndDate(ctx, companyID, date)
	if err != nil {
		return err
	}

	for _, iv := range sameDay {
		if iv.ApplicationID == applicationID {
			continue
		}
		if iv.IsActive() && iv.Overlaps(startMinute, durationMinutes) {
			return interview.ErrSlotConflict().
				WithDetail("conflicting_interview_id", iv.ID).
				WithDetail("start_time", iv.StartTime)
		}
	}
	return nil
}

func validateSlot(date, startTime string, durationMinutes int) error {
	if _, err := time.Parse(interview.DateLayout, date); err != nil {
		return interview.ErrInvalidSlot().WithDetail("date", date)
	}
	if _, err := time.Parse(interview.TimeLayout, startTime); err != nil {
		return interview.ErrInvalidSlot().WithDetail("start_time", startTime)
	}
	if durationMinutes <= 0 {
		return interview.ErrInvalidSlot().WithDetail("duration_minutes", durationMinutes)
	}
	return nil
}

func minuteOfDay(startTime string) (int, error) {
	t, err := time.Parse(interview.TimeLayout, startTime)
	if err != nil {
		return 0, interview.ErrInvalidSlot().WithDetail("start_time", startTime)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
