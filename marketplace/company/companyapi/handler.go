package companyapi

import (
	"github.com/Abraxas-365/stint/marketplace/company"
	"github.com/Abraxas-365/stint/marketplace/company/companysrv"
	"github.com/Abraxas-365/stint/pkg/iam/auth"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for company profile operations
type Handlers struct {
	service *companysrv.CompanyService
}

// NewHandlers creates a new company handlers instance
func NewHandlers(service *companysrv.CompanyService) *Handlers {
	return &Handlers{service: service}
}

// GetOwnProfile returns the caller's company profile
// GET /api/companies/me
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

// UpdateOwnProfile updates the caller's company profile
// PUT /api/companies/me
func (h *Handlers) UpdateOwnProfile(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	var req company.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return company.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.UpdateProfile(c.Context(), authContext.AccountID, req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetUsage reports ledger-derived usage against plan limits
// GET /api/companies/me/usage
func (h *Handlers) GetUsage(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	resp, err := h.service.GetUsage(c.Context(), authContext.AccountID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers all company routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.AuthMiddleware) {
	api := app.Group("/api/companies")

	api.Get("/me",
		authMiddleware.Authenticate(),
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.GetOwnProfile,
	)

	api.Put("/me",
		authMiddleware.Authenticate(),
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.UpdateOwnProfile,
	)

	api.Get("/me/usage",
		authMiddleware.Authenticate(),
		authMiddleware.RequireType(kernel.AccountTypeCompany),
		handlers.GetUsage,
	)
}
