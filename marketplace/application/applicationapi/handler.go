package applicationapi

import (
	"context"
	"strconv"

	"github.com/Abraxas-365/stint/marketplace/application"
	"github.com/Abraxas-365/stint/marketplace/application/applicationsrv"
	"github.com/Abraxas-365/stint/pkg/iam/auth"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for the application lifecycle
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{service: service}
}

// Apply creates a seeker-initiated application
// POST /api/jobs/:jobId/apply
func (h *Handlers) Apply(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	resp, err := h.service.Apply(c.Context(), authContext.AccountID, kernel.NewJobID(c.Params("jobId")))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Invite creates a company-initiated application
// POST /api/jobs/:jobId/invite
func (h *Handlers) Invite(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	var req application.InviteRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.Invite(c.Context(), authContext.AccountID, kernel.NewJobID(c.Params("jobId")), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetApplication retrieves an application visible to the caller
// GET /api/applications/:ref
func (h *Handlers) GetApplication(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	resp, err := h.service.GetByRef(c.Context(), authContext.AccountID, authContext.AccountType, c.Params("ref"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// AcceptInvitation moves an invited application to applied
// PUT /api/applications/:ref/accept-invitation
func (h *Handlers) AcceptInvitation(c *fiber.Ctx) error {
	return h.simpleTransition(c, h.service.AcceptInvitation)
}

// Shortlist marks the candidate as shortlisted
// PUT /api/applications/:ref/shortlist
func (h *Handlers) Shortlist(c *fiber.Ctx) error {
	return h.simpleTransition(c, h.service.Shortlist)
}

// SendHireRequest extends a hire offer
// PUT /api/applications/:ref/hire
func (h *Handlers) SendHireRequest(c *fiber.Ctx) error {
	return h.simpleTransition(c, h.service.SendHireRequest)
}

// RespondToHireRequest records the seeker's answer to a hire offer
// PUT /api/applications/:ref/hire-response
func (h *Handlers) RespondToHireRequest(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	var req application.HireResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.RespondToHireRequest(c.Context(), authContext.AccountID, c.Params("ref"), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ScheduleInterview moves the application to interviewed
// PUT /api/applications/:ref/interview
func (h *Handlers) ScheduleInterview(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	var req application.ScheduleInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.ScheduleInterview(c.Context(), authContext.AccountID, c.Params("ref"), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RespondToInterviewRequest records the seeker's answer to an interview
// PUT /api/applications/:ref/interview-response
func (h *Handlers) RespondToInterviewRequest(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	var req application.InterviewResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.RespondToInterviewRequest(c.Context(), authContext.AccountID, c.Params("ref"), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Accept hires the candidate directly
// PUT /api/applications/:ref/accept
func (h *Handlers) Accept(c *fiber.Ctx) error {
	return h.simpleTransition(c, h.service.Accept)
}

// Reject rejects the candidate
// PUT /api/applications/:ref/reject
func (h *Handlers) Reject(c *fiber.Ctx) error {
	return h.simpleTransition(c, h.service.Reject)
}

// Decline declines the candidate with a structured reason
// PUT /api/applications/:ref/decline
func (h *Handlers) Decline(c *fiber.Ctx) error {
	return h.reasonTransition(c, h.service.Decline)
}

// Withdraw removes the seeker's candidacy
// PUT /api/applications/:ref/withdraw
func (h *Handlers) Withdraw(c *fiber.Ctx) error {
	return h.simpleTransition(c, h.service.Withdraw)
}

// ReportAbsence annotates a no-show
// PUT /api/applications/:ref/report-absence
func (h *Handlers) ReportAbsence(c *fiber.Ctx) error {
	return h.reasonTransition(c, h.service.ReportAbsence)
}

// CompleteJob finishes a hired engagement
// PUT /api/applications/:ref/complete
func (h *Handlers) CompleteJob(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	resp, err := h.service.CompleteJob(c.Context(), authContext.AccountID, authContext.AccountType, c.Params("ref"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CancelJob ends the engagement
// PUT /api/applications/:ref/cancel
func (h *Handlers) CancelJob(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	var req application.ReasonRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.CancelJob(c.Context(), authContext.AccountID, authContext.AccountType, c.Params("ref"), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListMine lists the caller's applications as a seeker
// GET /api/applications/mine
func (h *Handlers) ListMine(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	resp, err := h.service.ListMine(c.Context(), authContext.AccountID, paginationFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListForJob lists applications against one of the caller's jobs
// GET /api/jobs/:jobId/applications
func (h *Handlers) ListForJob(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	resp, err := h.service.ListForJob(c.Context(), authContext.AccountID, kernel.NewJobID(c.Params("jobId")), paginationFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListForCompany lists applications across the caller's jobs
// GET /api/applications/company
func (h *Handlers) ListForCompany(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	resp, err := h.service.ListForCompany(c.Context(), authContext.AccountID, paginationFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *Handlers) simpleTransition(c *fiber.Ctx, op func(ctx context.Context, accountID kernel.AccountID, ref string) (*application.ApplicationResponse, error)) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	resp, err := op(c.Context(), authContext.AccountID, c.Params("ref"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *Handlers) reasonTransition(c *fiber.Ctx, op func(ctx context.Context, accountID kernel.AccountID, ref string, req application.ReasonRequest) (*application.ApplicationResponse, error)) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	var req application.ReasonRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := op(c.Context(), authContext.AccountID, c.Params("ref"), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func paginationFromQuery(c *fiber.Ctx) kernel.PaginationOptions {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))
	return kernel.PaginationOptions{Page: page, PageSize: pageSize}
}

// RegisterRoutes registers all application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.AuthMiddleware) {
	jobs := app.Group("/api/jobs", authMiddleware.Authenticate())

	jobs.Post("/:jobId/apply",
		authMiddleware.RequireType(kernel.AccountTypeSeeker),
		handlers.Apply,
	)
	jobs.Post("/:jobId/invite",
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.Invite,
	)
	jobs.Get("/:jobId/applications",
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.ListForJob,
	)

	api := app.Group("/api/applications", authMiddleware.Authenticate())

	api.Get("/mine",
		authMiddleware.RequireType(kernel.AccountTypeSeeker),
		handlers.ListMine,
	)
	api.Get("/company",
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.ListForCompany,
	)
	api.Get("/:ref", handlers.GetApplication)

	api.Put("/:ref/accept-invitation",
		authMiddleware.RequireType(kernel.AccountTypeSeeker),
		handlers.AcceptInvitation,
	)
	api.Put("/:ref/shortlist",
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.Shortlist,
	)
	api.Put("/:ref/hire",
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.SendHireRequest,
	)
	api.Put("/:ref/hire-response",
		authMiddleware.RequireType(kernel.AccountTypeSeeker),
		handlers.RespondToHireRequest,
	)
	api.Put("/:ref/interview",
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.ScheduleInterview,
	)
	api.Put("/:ref/interview-response",
		authMiddleware.RequireType(kernel.AccountTypeSeeker),
		handlers.RespondToInterviewRequest,
	)
	api.Put("/:ref/accept",
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.Accept,
	)
	api.Put("/:ref/reject",
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.Reject,
	)
	api.Put("/:ref/decline",
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.Decline,
	)
	api.Put("/:ref/withdraw",
		authMiddleware.RequireType(kernel.AccountTypeSeeker),
		handlers.Withdraw,
	)
	api.Put("/:ref/report-absence",
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.ReportAbsence,
	)
	api.Put("/:ref/complete", handlers.CompleteJob)
	api.Put("/:ref/cancel", handlers.CancelJob)
}
