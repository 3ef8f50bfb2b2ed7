package interviewapi

import (
	"context"
	"strconv"

	"github.com/Abraxas-365/stint/marketplace/company"
	"github.com/Abraxas-365/stint/marketplace/interview"
	"github.com/Abraxas-365/stint/marketplace/interview/interviewsrv"
	"github.com/Abraxas-365/stint/marketplace/seeker"
	"github.com/Abraxas-365/stint/pkg/iam/auth"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// CompanyDirectory resolves the company profile behind an account
type CompanyDirectory interface {
	ResolveProfile(ctx context.Context, accountID kernel.AccountID) (*company.Company, error)
}

// SeekerDirectory resolves the seeker profile behind an account
type SeekerDirectory interface {
	ResolveProfile(ctx context.Context, accountID kernel.AccountID) (*seeker.Seeker, error)
}

// Handlers provides HTTP handlers for interview operations
type Handlers struct {
	service   *interviewsrv.InterviewService
	companies CompanyDirectory
	seekers   SeekerDirectory
}

// NewHandlers creates a new interview handlers instance
func NewHandlers(service *interviewsrv.InterviewService, companies CompanyDirectory, seekers SeekerDirectory) *Handlers {
	return &Handlers{service: service, companies: companies, seekers: seekers}
}

// CheckConflicts returns interviews overlapping a candidate slot
// GET /api/interviews/conflicts?date=&start_time=&duration_minutes=
func (h *Handlers) CheckConflicts(c *fiber.Ctx) error {
	comp, err := h.callerCompany(c)
	if err != nil {
		return err
	}

	duration, _ := strconv.Atoi(c.Query("duration_minutes", "30"))
	conflicts, err := h.service.CheckConflicts(c.Context(), interview.ConflictQuery{
		CompanyID:       comp.ID,
		Date:            c.Query("date"),
		StartTime:       c.Query("start_time"),
		DurationMinutes: duration,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"conflicts": conflicts, "has_conflicts": len(conflicts) > 0})
}

// AvailableSlots returns the free intervals of the caller's day
// GET /api/interviews/available-slots?date=&duration_minutes=
func (h *Handlers) AvailableSlots(c *fiber.Ctx) error {
	comp, err := h.callerCompany(c)
	if err != nil {
		return err
	}

	duration, _ := strconv.Atoi(c.Query("duration_minutes", "30"))
	slots, err := h.service.AvailableSlots(c.Context(), comp.ID, c.Query("date"), duration)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"slots": slots})
}

// GetInterview retrieves an interview
// GET /api/interviews/:interviewId
func (h *Handlers) GetInterview(c *fiber.Ctx) error {
	iv, err := h.service.GetInterview(c.Context(), kernel.NewInterviewID(c.Params("interviewId")))
	if err != nil {
		return err
	}
	return c.JSON(iv)
}

// Confirm records the seeker's confirmation
// PUT /api/interviews/:interviewId/confirm
func (h *Handlers) Confirm(c *fiber.Ctx) error {
	skr, err := h.callerSeeker(c)
	if err != nil {
		return err
	}

	iv, err := h.service.Confirm(c.Context(), skr.ID, kernel.NewInterviewID(c.Params("interviewId")))
	if err != nil {
		return err
	}
	return c.JSON(iv)
}

// Reschedule moves an interview to a new slot
// PUT /api/interviews/:interviewId/reschedule
func (h *Handlers) Reschedule(c *fiber.Ctx) error {
	comp, err := h.callerCompany(c)
	if err != nil {
		return err
	}

	var req interview.RescheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return interview.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	iv, err := h.service.Reschedule(c.Context(), comp.ID, kernel.NewInterviewID(c.Params("interviewId")), req)
	if err != nil {
		return err
	}
	return c.JSON(iv)
}

// Complete marks an interview as held
// PUT /api/interviews/:interviewId/complete
func (h *Handlers) Complete(c *fiber.Ctx) error {
	return h.companyStatusChange(c, h.service.Complete)
}

// Cancel calls an interview off
// PUT /api/interviews/:interviewId/cancel
func (h *Handlers) Cancel(c *fiber.Ctx) error {
	return h.companyStatusChange(c, h.service.Cancel)
}

// MarkNoShow records a seeker no-show
// PUT /api/interviews/:interviewId/no-show
func (h *Handlers) MarkNoShow(c *fiber.Ctx) error {
	return h.companyStatusChange(c, h.service.MarkNoShow)
}

// ListMine lists the caller's interviews as a seeker
// GET /api/interviews/mine
func (h *Handlers) ListMine(c *fiber.Ctx) error {
	skr, err := h.callerSeeker(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))
	result, err := h.service.ListSeekerInterviews(c.Context(), skr.ID, kernel.PaginationOptions{Page: page, PageSize: pageSize})
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *Handlers) companyStatusChange(c *fiber.Ctx, op func(ctx context.Context, companyID kernel.CompanyID, id kernel.InterviewID) (*interview.Interview, error)) error {
	comp, err := h.callerCompany(c)
	if err != nil {
		return err
	}

	iv, err := op(c.Context(), comp.ID, kernel.NewInterviewID(c.Params("interviewId")))
	if err != nil {
		return err
	}
	return c.JSON(iv)
}

func (h *Handlers) callerCompany(c *fiber.Ctx) (*company.Company, error) {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return nil, auth.ErrUnauthorized()
	}
	return h.companies.ResolveProfile(c.Context(), authContext.AccountID)
}

func (h *Handlers) callerSeeker(c *fiber.Ctx) (*seeker.Seeker, error) {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return nil, auth.ErrUnauthorized()
	}
	return h.seekers.ResolveProfile(c.Context(), authContext.AccountID)
}

// RegisterRoutes registers all interview routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.AuthMiddleware) {
	api := app.Group("/api/interviews", authMiddleware.Authenticate())

	api.Get("/conflicts",
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.CheckConflicts,
	)

	api.Get("/available-slots",
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.AvailableSlots,
	)

	api.Get("/mine",
		authMiddleware.RequireType(kernel.AccountTypeSeeker),
		handlers.ListMine,
	)

	api.Get("/:interviewId", handlers.GetInterview)

	api.Put("/:interviewId/confirm",
		authMiddleware.RequireType(kernel.AccountTypeSeeker),
		handlers.Confirm,
	)

	api.Put("/:interviewId/reschedule",
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.Reschedule,
	)

	api.Put("/:interviewId/complete",
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.Complete,
	)

	api.Put("/:interviewId/cancel",
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.Cancel,
	)

	api.Put("/:interviewId/no-show",
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.MarkNoShow,
	)
}
