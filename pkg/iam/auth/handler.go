package auth

import (
	"context"
	"time"

	"github.com/Abraxas-365/stint/pkg/errx"
	"github.com/Abraxas-365/stint/pkg/iam/account"
	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ProfileProvisioner creates the domain profile backing a freshly
// registered account. Implemented in the container over the seeker and
// company services so this package stays free of marketplace imports.
type ProfileProvisioner interface {
	ProvisionSeeker(ctx context.Context, accountID kernel.AccountID, name string, email kernel.Email) error
	ProvisionCompany(ctx context.Context, accountID kernel.AccountID, name kernel.CompanyName, email kernel.Email) error
}

// AuthHandlers provides registration and login endpoints
type AuthHandlers struct {
	accounts  account.Repository
	passwords PasswordService
	tokens    TokenService
	profiles  ProfileProvisioner
}

// NewAuthHandlers creates the auth handlers
func NewAuthHandlers(
	accounts account.Repository,
	passwords PasswordService,
	tokens TokenService,
	profiles ProfileProvisioner,
) *AuthHandlers {
	return &AuthHandlers{
		accounts:  accounts,
		passwords: passwords,
		tokens:    tokens,
		profiles:  profiles,
	}
}

// RegisterRequest - DTO for account registration
type RegisterRequest struct {
	Email       kernel.Email       `json:"email"`
	Phone       kernel.Phone       `json:"phone,omitempty"`
	Password    string             `json:"password"`
	AccountType kernel.AccountType `json:"account_type"`
	Name        string             `json:"name"`
}

// LoginRequest - DTO for login
type LoginRequest struct {
	Email    kernel.Email `json:"email"`
	Password string       `json:"password"`
}

// TokenResponse - DTO returned on successful authentication
type TokenResponse struct {
	AccessToken string             `json:"access_token"`
	AccountID   kernel.AccountID   `json:"account_id"`
	AccountType kernel.AccountType `json:"account_type"`
}

// Register creates an account plus its domain profile
// POST /api/auth/register
func (h *AuthHandlers) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		return ErrInvalidRequest().WithDetail("fields", "email, password and name are required")
	}
	if !req.AccountType.IsValid() {
		return ErrInvalidRequest().WithDetail("account_type", req.AccountType)
	}
	if len(req.Password) < 8 {
		return ErrInvalidRequest().WithDetail("password", "must be at least 8 characters")
	}

	exists, err := h.accounts.ExistsByEmail(c.Context(), req.Email)
	if err != nil {
		return errx.Wrap(err, "failed to check email", errx.TypeInternal)
	}
	if exists {
		return account.ErrEmailTaken().WithDetail("email", req.Email)
	}

	hash, err := h.passwords.Hash(req.Password)
	if err != nil {
		return errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	now := time.Now()
	acc := &account.Account{
		ID:           kernel.NewAccountID(uuid.NewString()),
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Type:         req.AccountType,
		Status:       account.AccountStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.accounts.Create(c.Context(), acc); err != nil {
		return err
	}

	switch req.AccountType {
	case kernel.AccountTypeSeeker:
		err = h.profiles.ProvisionSeeker(c.Context(), acc.ID, req.Name, req.Email)
	case kernel.AccountTypeCompany:
		err = h.profiles.ProvisionCompany(c.Context(), acc.ID, kernel.CompanyName(req.Name), req.Email)
	}
	if err != nil {
		return errx.Wrap(err, "failed to provision profile", errx.TypeInternal)
	}

	token, err := h.tokens.GenerateAccessToken(acc.ID, acc.Type)
	if err != nil {
		return errx.Wrap(err, "failed to generate token", errx.TypeInternal)
	}

	return c.Status(fiber.StatusCreated).JSON(TokenResponse{
		AccessToken: token,
		AccountID:   acc.ID,
		AccountType: acc.Type,
	})
}

// Login authenticates an account
// POST /api/auth/login
func (h *AuthHandlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	acc, err := h.accounts.GetByEmail(c.Context(), req.Email)
	if err != nil {
		// Do not reveal whether the email exists
		return ErrInvalidCredentials()
	}

	if !acc.IsActive() {
		return account.ErrAccountSuspended()
	}

	if !h.passwords.Verify(acc.PasswordHash, req.Password) {
		return ErrInvalidCredentials()
	}

	token, err := h.tokens.GenerateAccessToken(acc.ID, acc.Type)
	if err != nil {
		return errx.Wrap(err, "failed to generate token", errx.TypeInternal)
	}

	return c.JSON(TokenResponse{
		AccessToken: token,
		AccountID:   acc.ID,
		AccountType: acc.Type,
	})
}

// RegisterRoutes registers the auth routes
func (h *AuthHandlers) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/auth")
	api.Post("/register", h.Register)
	api.Post("/login", h.Login)
}
