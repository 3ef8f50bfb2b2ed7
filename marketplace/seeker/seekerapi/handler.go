package seekerapi

import (
	"io"

	"github.com/Abraxas-365/stint/marketplace/seeker"
	"github.com/Abraxas-365/stint/marketplace/seeker/seekersrv"
	"github.com/Abraxas-365/stint/pkg/iam/auth"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for seeker profile operations
type Handlers struct {
	service *seekersrv.SeekerService
}

// NewHandlers creates a new seeker handlers instance
func NewHandlers(service *seekersrv.SeekerService) *Handlers {
	return &Handlers{service: service}
}

// GetOwnProfile returns the caller's seeker profile
// GET /api/seekers/me
func (h *Handlers) GetOwnProfile(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	profile, err := h.service.ResolveProfile(c.Context(), authContext.AccountID)
	if err != nil {
		return err
	}

	resp, err := h.service.GetProfile(c.Context(), profile.ID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// UpdateOwnProfile updates the caller's seeker profile
// PUT /api/seekers/me
func (h *Handlers) UpdateOwnProfile(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	var req seeker.UpdateSeekerRequest
	if err := c.BodyParser(&req); err != nil {
		return seeker.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.UpdateProfile(c.Context(), authContext.AccountID, req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// UploadCV uploads the caller's CV
// POST /api/seekers/me/cv
func (h *Handlers) UploadCV(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	file, err := c.FormFile("file")
	if err != nil {
		return seeker.ErrInvalidRequest().WithDetail("file_error", err.Error())
	}

	fileContent, err := file.Open()
	if err != nil {
		return seeker.ErrInvalidRequest().WithDetail("file_open_error", err.Error())
	}
	defer fileContent.Close()

	data, err := io.ReadAll(fileContent)
	if err != nil {
		return seeker.ErrInvalidRequest().WithDetail("file_read_error", err.Error())
	}

	resp, err := h.service.UploadCV(
		c.Context(),
		authContext.AccountID,
		file.Filename,
		file.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// DownloadCV streams the caller's stored CV
// GET /api/seekers/me/cv
func (h *Handlers) DownloadCV(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	stream, filename, err := h.service.DownloadCV(c.Context(), authContext.AccountID)
	if err != nil {
		return err
	}
	defer stream.Close()

	c.Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Set("Content-Type", "application/octet-stream")

	return c.SendStream(stream)
}

// RegisterRoutes registers all seeker routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.AuthMiddleware) {
	api := app.Group("/api/seekers")

	api.Get("/me",
		authMiddleware.Authenticate(),
		authMiddleware.RequireType(kernel.AccountTypeSeeker),
		handlers.GetOwnProfile,
	)

	api.Put("/me",
		authMiddleware.Authenticate(),
		authMiddleware.RequireType(kernel.AccountTypeSeeker),
		handlers.UpdateOwnProfile,
	)

	api.Post("/me/cv",
		authMiddleware.Authenticate(),
		authMiddleware.RequireType(kernel.AccountTypeSeeker),
		handlers.UploadCV,
	)

	api.Get("/me/cv",
		authMiddleware.Authenticate(),
		authMiddleware.RequireType(kernel.AccountTypeSeeker),
		handlers.DownloadCV,
	)
}
