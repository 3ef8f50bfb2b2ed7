package jobapi

import (
	"context"
	"strconv"

	"github.com/Abraxas-365/stint/marketplace/job"
	"github.com/Abraxas-365/stint/marketplace/job/jobsrv"
	"github.com/Abraxas-365/stint/pkg/iam/auth"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{service: service}
}

// CreateJob creates a new job posting
// POST /api/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.CreateJob(c.Context(), authContext.AccountID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetJob retrieves a job by ID
// GET /api/jobs/:jobId
func (h *Handlers) GetJob(c *fiber.Ctx) error {
	jobID := kernel.NewJobID(c.Params("jobId"))

	resp, err := h.service.GetJob(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// UpdateJob updates a job owned by the caller
// PUT /api/jobs/:jobId
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	jobID := kernel.NewJobID(c.Params("jobId"))
	resp, err := h.service.UpdateJob(c.Context(), authContext.AccountID, jobID, req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// PublishJob publishes a job
// POST /api/jobs/:jobId/publish
func (h *Handlers) PublishJob(c *fiber.Ctx) error {
	return h.statusChange(c, h.service.PublishJob)
}

// PauseJob pauses a job
// POST /api/jobs/:jobId/pause
func (h *Handlers) PauseJob(c *fiber.Ctx) error {
	return h.statusChange(c, h.service.PauseJob)
}

// CloseJob closes a job
// POST /api/jobs/:jobId/close
func (h *Handlers) CloseJob(c *fiber.Ctx) error {
	return h.statusChange(c, h.service.CloseJob)
}

// SearchJobs searches published jobs
// GET /api/jobs
func (h *Handlers) SearchJobs(c *fiber.Ctx) error {
	req := job.SearchJobsRequest{
		Query:      c.Query("q"),
		HiringType: kernel.HiringType(c.Query("hiring_type")),
		Location:   c.Query("location"),
		Pagination: paginationFromQuery(c),
	}

	resp, err := h.service.SearchJobs(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListOwnJobs lists jobs posted by the caller's company
// GET /api/jobs/mine
func (h *Handlers) ListOwnJobs(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	resp, err := h.service.ListOwnJobs(c.Context(), authContext.AccountID, paginationFromQuery(c))
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handlers) statusChange(c *fiber.Ctx, op func(ctx context.Context, accountID kernel.AccountID, id kernel.JobID) (*job.JobResponse, error)) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	jobID := kernel.NewJobID(c.Params("jobId"))
	resp, err := op(c.Context(), authContext.AccountID, jobID)
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

// RegisterRoutes registers all job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.AuthMiddleware) {
	api := app.Group("/api/jobs")

	api.Get("/", handlers.SearchJobs)

	api.Get("/mine",
		authMiddleware.Authenticate(),
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.ListOwnJobs,
	)

	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.CreateJob,
	)

	api.Get("/:jobId", handlers.GetJob)

	api.Put("/:jobId",
		authMiddleware.Authenticate(),
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.UpdateJob,
	)

	api.Post("/:jobId/publish",
		authMiddleware.Authenticate(),
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.PublishJob,
	)

	api.Post("/:jobId/pause",
		authMiddleware.Authenticate(),
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.PauseJob,
	)

	api.Post("/:jobId/close",
		authMiddleware.Authenticate(),
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.CloseJob,
	)
}
